package db

import (
	"context"
	"database/sql"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
)

// defines methods for todo_list db operations
type TodoRepositoryInterface interface {
	List(ctx context.Context) ([]*models.Todo, error)
	GetByID(ctx context.Context, id int64) (*models.Todo, error)
	Create(ctx context.Context, week models.Week) (int64, error)
	Replace(ctx context.Context, id int64, week models.Week) error
	UpdateStatus(ctx context.Context, id int64, status models.Status) error
	Delete(ctx context.Context, id int64) error
}

type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// List returns every record in store-native (insertion) order.
func (r *TodoRepository) List(ctx context.Context) ([]*models.Todo, error) {
	query := `SELECT id, monday, tuesday, wednesday, thursday, friday, status, created_at
	 FROM todo_list`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(
			&todo.ID, &todo.Monday, &todo.Tuesday, &todo.Wednesday,
			&todo.Thursday, &todo.Friday, &todo.Status, &todo.CreatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id int64) (*models.Todo, error) {
	query := `SELECT id, monday, tuesday, wednesday, thursday, friday, status, created_at
	 FROM todo_list WHERE id = $1`
	todo := &models.Todo{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&todo.ID, &todo.Monday, &todo.Tuesday, &todo.Wednesday,
		&todo.Thursday, &todo.Friday, &todo.Status, &todo.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

// Create inserts one row; the store assigns id, created_at and default status.
func (r *TodoRepository) Create(ctx context.Context, week models.Week) (int64, error) {
	query := `INSERT INTO todo_list (monday, tuesday, wednesday, thursday, friday)
	 VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(
		ctx, query, week.Monday, week.Tuesday, week.Wednesday, week.Thursday, week.Friday,
	).Scan(&id)
	return id, err
}

// Replace overwrites only the weekday columns; status and created_at are untouched.
func (r *TodoRepository) Replace(ctx context.Context, id int64, week models.Week) error {
	query := `UPDATE todo_list
	 SET monday = $1, tuesday = $2, wednesday = $3, thursday = $4, friday = $5
	 WHERE id = $6`
	res, err := r.db.ExecContext(
		ctx, query, week.Monday, week.Tuesday, week.Wednesday, week.Thursday, week.Friday, id)
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

// UpdateStatus overwrites only the status column.
func (r *TodoRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	query := `UPDATE todo_list SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return errIfNoRows(res)
}

// Delete removes the row if present. A missing id is not an error: delete is
// idempotent at the store boundary.
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM todo_list WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func errIfNoRows(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
