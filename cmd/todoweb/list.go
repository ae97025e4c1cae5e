package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved weekly to-dos, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		todos, err := apiClient().List(cmd.Context())
		if err != nil {
			return err
		}

		// same ordering as the saved-list screen: newest on top
		for i, j := 0, len(todos)-1; i < j; i, j = i+1, j-1 {
			todos[i], todos[j] = todos[j], todos[i]
		}
		fmt.Fprint(cmd.OutOrStdout(), formatTodoTable(todos))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
