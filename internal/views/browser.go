package views

import (
	"context"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/client"
	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
)

// Browser pages through the read copy one record at a time, most recent
// first, with the cursor clamped at both bounds.
type Browser struct {
	todos  []models.Todo
	cursor int
}

func NewBrowser() *Browser {
	return &Browser{}
}

// Load replaces the read copy. Records arrive in store-native (insertion)
// order and are shown newest first, so the slice is reversed.
func (b *Browser) Load(todos []models.Todo) {
	reversed := make([]models.Todo, len(todos))
	for i, todo := range todos {
		reversed[len(todos)-1-i] = todo
	}
	b.todos = reversed
	b.clamp()
}

// Refresh re-fetches the read copy after a mutation.
func (b *Browser) Refresh(ctx context.Context, api *client.Client) error {
	todos, err := api.List(ctx)
	if err != nil {
		return err
	}
	b.Load(todos)
	return nil
}

func (b *Browser) Len() int { return len(b.todos) }

func (b *Browser) Current() (models.Todo, bool) {
	if len(b.todos) == 0 {
		return models.Todo{}, false
	}
	return b.todos[b.cursor], true
}

// Position reports the cursor as 1-based position and total.
func (b *Browser) Position() (int, int) {
	if len(b.todos) == 0 {
		return 0, 0
	}
	return b.cursor + 1, len(b.todos)
}

// Next advances the cursor; it reports whether the cursor moved.
func (b *Browser) Next() bool {
	if b.cursor < len(b.todos)-1 {
		b.cursor++
		return true
	}
	return false
}

// Prev moves the cursor back; it reports whether the cursor moved.
func (b *Browser) Prev() bool {
	if b.cursor > 0 {
		b.cursor--
		return true
	}
	return false
}

// DeleteCurrent removes the record under the cursor, re-fetches the read
// copy and clamps the cursor into the shorter list.
func (b *Browser) DeleteCurrent(ctx context.Context, api *client.Client) error {
	current, ok := b.Current()
	if !ok {
		return nil
	}
	if err := api.Delete(ctx, current.ID); err != nil {
		return err
	}
	return b.Refresh(ctx, api)
}

func (b *Browser) clamp() {
	if b.cursor >= len(b.todos) {
		b.cursor = len(b.todos) - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}
