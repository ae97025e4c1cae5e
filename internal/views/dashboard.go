package views

import (
	"context"
	"sort"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/client"
	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
)

// Dashboard is the overview: every record oldest first ("Week 1" is the
// oldest), completion totals, and the status switch.
type Dashboard struct {
	todos []models.Todo
}

func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// Load replaces the read copy, re-sorted ascending by creation time.
func (d *Dashboard) Load(todos []models.Todo) {
	sorted := make([]models.Todo, len(todos))
	copy(sorted, todos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	d.todos = sorted
}

func (d *Dashboard) Refresh(ctx context.Context, api *client.Client) error {
	todos, err := api.List(ctx)
	if err != nil {
		return err
	}
	d.Load(todos)
	return nil
}

func (d *Dashboard) Items() []models.Todo { return d.todos }

func (d *Dashboard) Totals() (total, completed, pending int) {
	total = len(d.todos)
	for _, todo := range d.todos {
		if todo.Status == models.StatusComplete {
			completed++
		}
	}
	return total, completed, total - completed
}

// SetStatus patches one record's status and then re-fetches, so the view
// only ever shows server-confirmed state.
func (d *Dashboard) SetStatus(ctx context.Context, api *client.Client, id int64, status models.Status) error {
	if err := api.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	return d.Refresh(ctx, api)
}
