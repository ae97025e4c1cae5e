package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/client"
	"github.com/MbongeniMhlanga/ToDoWebApp/internal/views"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Compose and save a new weekly to-do",
	Long: `Compose a weekly to-do interactively. Enter one task per line as
"<day> <task>", e.g. "Monday water the plants". A filled day must be selected
with "edit <day>" before it can be changed. Type "done" to save, "show" to
review the draft, "quit" to leave without saving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComposer(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(),
			views.NewComposer(), apiClient())
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

// runComposer drives the composer state machine with a line protocol so it
// can be tested without a terminal.
func runComposer(ctx context.Context, in io.Reader, out io.Writer, comp *views.Composer, api *client.Client) error {
	fmt.Fprintln(out, `Enter tasks as "<day> <task>"; "edit <day>", "show", "done" or "quit".`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		word, rest := splitCommand(line)
		switch strings.ToLower(word) {
		case "quit":
			fmt.Fprintln(out, "Draft discarded.")
			return nil

		case "show":
			printDraft(out, comp)

		case "edit":
			day := normalizeDay(rest)
			if err := comp.SelectForEdit(day); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			task, _ := comp.Task(day)
			fmt.Fprintf(out, "Editing %s (currently %q).\n", day, task)

		case "done":
			id, err := comp.Submit(ctx, api)
			if errors.Is(err, views.ErrIncomplete) {
				fmt.Fprintln(out, "Please enter a task for all 5 weekdays.")
				continue
			}
			if err != nil {
				// draft survives so the user can retry
				fmt.Fprintf(out, "Save failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Saved as to-do %d.\n", id)
			return nil

		default:
			day := normalizeDay(word)
			if err := comp.SetTask(day, rest); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, "%s task set.\n", day)
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func normalizeDay(day string) string {
	day = strings.TrimSpace(strings.ToLower(day))
	if day == "" {
		return ""
	}
	return strings.ToUpper(day[:1]) + day[1:]
}

func printDraft(out io.Writer, comp *views.Composer) {
	filled := comp.Filled()
	if len(filled) == 0 {
		fmt.Fprintln(out, "Draft is empty.")
		return
	}
	for _, day := range filled {
		task, _ := comp.Task(day)
		fmt.Fprintf(out, "%s: %s\n", day, task)
	}
}
