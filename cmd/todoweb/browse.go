package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/client"
	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
	"github.com/MbongeniMhlanga/ToDoWebApp/internal/views"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Page through saved to-dos one at a time",
	Long: `Page through saved to-dos, most recent first. Commands: "n" (next),
"p" (previous), "s <status>" (change status), "d" (delete), "q" (quit).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b := views.NewBrowser()
		api := apiClient()
		if err := b.Refresh(cmd.Context(), api); err != nil {
			return err
		}
		return runBrowser(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), b, api)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowser(ctx context.Context, in io.Reader, out io.Writer, b *views.Browser, api *client.Client) error {
	printCurrent(out, b)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		word, rest := splitCommand(strings.TrimSpace(scanner.Text()))

		switch strings.ToLower(word) {
		case "q", "quit":
			return nil

		case "n", "next":
			if !b.Next() {
				fmt.Fprintln(out, "Already at the last to-do.")
				continue
			}
			printCurrent(out, b)

		case "p", "prev":
			if !b.Prev() {
				fmt.Fprintln(out, "Already at the first to-do.")
				continue
			}
			printCurrent(out, b)

		case "d", "delete":
			if err := b.DeleteCurrent(ctx, api); err != nil {
				fmt.Fprintf(out, "Delete failed: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Deleted.")
			printCurrent(out, b)

		case "s", "status":
			current, ok := b.Current()
			if !ok {
				fmt.Fprintln(out, "Nothing to update.")
				continue
			}
			status, err := models.ParseStatus(rest)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if err := api.UpdateStatus(ctx, current.ID, status); err != nil {
				fmt.Fprintf(out, "Status update failed: %v\n", err)
				continue
			}
			if err := b.Refresh(ctx, api); err != nil {
				fmt.Fprintf(out, "Refresh failed: %v\n", err)
				continue
			}
			printCurrent(out, b)

		case "":
			continue

		default:
			fmt.Fprintln(out, `Commands: "n", "p", "s <status>", "d", "q".`)
		}
	}
}

func printCurrent(out io.Writer, b *views.Browser) {
	current, ok := b.Current()
	if !ok {
		fmt.Fprintln(out, "No saved todos found.")
		return
	}
	pos, total := b.Position()
	fmt.Fprintf(out, "\nTo-do %d of %d\n", pos, total)
	fmt.Fprint(out, formatTodoCard(current))
}
