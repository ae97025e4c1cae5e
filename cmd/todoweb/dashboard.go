package main

import (
	"fmt"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/views"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the weekly overview with completion totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := views.NewDashboard()
		if err := d.Refresh(cmd.Context(), apiClient()); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		total, completed, pending := d.Totals()
		fmt.Fprintf(out, "Total: %d  Completed: %d  Pending: %d\n\n", total, completed, pending)

		items := d.Items()
		if len(items) == 0 {
			fmt.Fprintln(out, "No todos available. Add some!")
			return nil
		}
		for i, todo := range items {
			fmt.Fprintf(out, "Week %d - %s  [%d]  %s\n",
				i+1, formatDate(todo.CreatedAt), todo.ID, statusBadge(todo.Status))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
