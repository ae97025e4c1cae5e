package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

func setupTodosDB(t *testing.T) *sql.DB {
	t.Helper()
	dbx, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// sqlite flavor of the todo_list table
	ddl := `
CREATE TABLE todo_list (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  monday TEXT,
  tuesday TEXT,
  wednesday TEXT,
  thursday TEXT,
  friday TEXT,
  status TEXT NOT NULL DEFAULT 'n',
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := dbx.Exec(ddl); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() { dbx.Close() })
	return dbx
}

func testWeek() models.Week {
	return models.Week{
		Monday:    "gym",
		Tuesday:   "groceries",
		Wednesday: "laundry",
		Thursday:  "call mom",
		Friday:    "movie night",
	}
}

func TestTodoRepository_CreateAndList(t *testing.T) {
	repo := NewTodoRepository(setupTodosDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, testWeek())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Fatalf("Create returned zero id")
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("List returned %d todos, want 1", len(todos))
	}
	got := todos[0]
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Week() != testWeek() {
		t.Errorf("weekday fields = %+v, want %+v", got.Week(), testWeek())
	}
	if got.Status != models.StatusNotStarted {
		t.Errorf("default status = %q, want %q", got.Status, models.StatusNotStarted)
	}
	if got.CreatedAt.IsZero() {
		t.Errorf("created_at was not assigned")
	}
}

func TestTodoRepository_ListInsertionOrder(t *testing.T) {
	repo := NewTodoRepository(setupTodosDB(t))
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := repo.Create(ctx, testWeek())
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		ids = append(ids, id)
	}

	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("List returned %d todos, want 3", len(todos))
	}
	for i, todo := range todos {
		if todo.ID != ids[i] {
			t.Errorf("List[%d].ID = %d, want %d (insertion order)", i, todo.ID, ids[i])
		}
	}
}

func TestTodoRepository_Replace(t *testing.T) {
	repo := NewTodoRepository(setupTodosDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, testWeek())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.UpdateStatus(ctx, id, models.StatusInProgress); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	before, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}

	updated := models.Week{
		Monday:    "run",
		Tuesday:   "swim",
		Wednesday: "bike",
		Thursday:  "rest",
		Friday:    "race",
	}
	if err := repo.Replace(ctx, id, updated); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	after, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID after replace: %v", err)
	}
	if after.Week() != updated {
		t.Errorf("weekday fields = %+v, want %+v", after.Week(), updated)
	}
	// status and created_at must be untouched by a replace
	if after.Status != models.StatusInProgress {
		t.Errorf("status changed by Replace: %q", after.Status)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("created_at changed by Replace: %v -> %v", before.CreatedAt, after.CreatedAt)
	}
}

func TestTodoRepository_UpdateStatusOnlyTouchesStatus(t *testing.T) {
	repo := NewTodoRepository(setupTodosDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, testWeek())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.UpdateStatus(ctx, id, models.StatusComplete); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.StatusComplete {
		t.Errorf("status = %q, want %q", got.Status, models.StatusComplete)
	}
	if got.Week() != testWeek() {
		t.Errorf("weekday fields changed by UpdateStatus: %+v", got.Week())
	}
}

func TestTodoRepository_MissingID(t *testing.T) {
	repo := NewTodoRepository(setupTodosDB(t))
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID missing id: err = %v, want ErrNotFound", err)
	}
	if err := repo.Replace(ctx, 42, testWeek()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Replace missing id: err = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateStatus(ctx, 42, models.StatusComplete); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStatus missing id: err = %v, want ErrNotFound", err)
	}
	// delete is idempotent: a missing id is success
	if err := repo.Delete(ctx, 42); err != nil {
		t.Errorf("Delete missing id: %v", err)
	}
	// none of the above may have created a row
	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("List returned %d todos, want 0", len(todos))
	}
}

func TestTodoRepository_Delete(t *testing.T) {
	repo := NewTodoRepository(setupTodosDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, testWeek())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	todos, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("List returned %d todos after delete, want 0", len(todos))
	}
}
