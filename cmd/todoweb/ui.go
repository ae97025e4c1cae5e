package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)

	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusNotStarted: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		models.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.StatusComplete:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

func statusBadge(status models.Status) string {
	label := status.Label()
	if style, ok := statusStyles[status]; ok {
		return style.Render(label)
	}
	return label
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "no date"
	}
	return t.Format("Jan 2, 2006")
}

// formatTodoTable renders records as rows of id, date, status and the five
// tasks, one column per weekday.
func formatTodoTable(todos []models.Todo) string {
	if len(todos) == 0 {
		return "No saved todos found.\n"
	}

	var b strings.Builder
	cols := append([]string{"ID", "CREATED", "STATUS"}, models.Weekdays()...)
	b.WriteString(headerStyle.Render(strings.Join(cols, "\t")))
	b.WriteByte('\n')
	for _, todo := range todos {
		week := todo.Week()
		row := []string{
			fmt.Sprintf("%d", todo.ID),
			formatDate(todo.CreatedAt),
			statusBadge(todo.Status),
		}
		for _, day := range models.Weekdays() {
			row = append(row, truncate(week.Task(day), 24))
		}
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// formatTodoCard renders one record the way the saved-list screen shows it.
func formatTodoCard(todo models.Todo) string {
	var b strings.Builder
	week := todo.Week()
	for _, day := range models.Weekdays() {
		if task := week.Task(day); task != "" {
			fmt.Fprintf(&b, "%s: %s\n", headerStyle.Render(day), task)
		}
	}
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Status:"), statusBadge(todo.Status))
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Created:"), formatDate(todo.CreatedAt))
	return b.String()
}

// truncate shortens a task to max characters, counting runes so multi-byte
// text is never cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
