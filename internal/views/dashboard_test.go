package views

import (
	"context"
	"testing"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_SortsOldestFirst(t *testing.T) {
	todos := sampleTodos(3)
	// hand the dashboard a shuffled copy
	shuffled := []models.Todo{todos[2], todos[0], todos[1]}

	d := NewDashboard()
	d.Load(shuffled)

	items := d.Items()
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID, "ascending by created_at")
	}
}

func TestDashboard_Totals(t *testing.T) {
	todos := sampleTodos(4)
	todos[1].Status = models.StatusComplete
	todos[3].Status = models.StatusInProgress

	d := NewDashboard()
	d.Load(todos)

	total, completed, pending := d.Totals()
	assert.Equal(t, 4, total)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 3, pending, "in-progress counts as pending")
}

func TestDashboard_SetStatusIsPessimistic(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	week := models.Week{Monday: "a", Tuesday: "b", Wednesday: "c", Thursday: "d", Friday: "e"}
	id, err := api.Create(ctx, week)
	require.NoError(t, err)

	d := NewDashboard()
	require.NoError(t, d.Refresh(ctx, api))

	require.NoError(t, d.SetStatus(ctx, api, id, models.StatusComplete))

	// the view shows the server-confirmed value
	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.StatusComplete, items[0].Status)

	total, completed, pending := d.Totals()
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, completed)
	assert.Zero(t, pending)
}

func TestDashboard_SetStatusFailureLeavesViewAlone(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	week := models.Week{Monday: "a", Tuesday: "b", Wednesday: "c", Thursday: "d", Friday: "e"}
	id, err := api.Create(ctx, week)
	require.NoError(t, err)

	d := NewDashboard()
	require.NoError(t, d.Refresh(ctx, api))

	// patching a record that vanished fails and must not flip the view
	require.NoError(t, api.Delete(ctx, id))
	err = d.SetStatus(ctx, api, id, models.StatusComplete)
	require.Error(t, err)

	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.StatusNotStarted, items[0].Status)
}
