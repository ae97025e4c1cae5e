package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change a to-do's status (not started, in progress, complete)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number: %q", args[0])
		}

		// allow "in progress" unquoted
		status, err := models.ParseStatus(strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		if err := apiClient().UpdateStatus(cmd.Context(), id, status); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "To-do %d is now %s.\n", id, statusBadge(status))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
