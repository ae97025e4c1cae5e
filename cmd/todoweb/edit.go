package main

import (
	"fmt"
	"strconv"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/views"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a saved weekly to-do in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number: %q", args[0])
		}

		api := apiClient()
		todo, err := api.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, formatTodoCard(todo))
		return runComposer(cmd.Context(), cmd.InOrStdin(), out, views.NewEditor(todo), api)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
