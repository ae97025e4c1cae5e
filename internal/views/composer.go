// Package views holds the per-view state machines of the terminal client:
// the composer (draft weekly record), the browser (saved-record pager) and
// the dashboard (overview plus status switch).
package views

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MbongeniMhlanga/ToDoWebApp/internal/client"
	"github.com/MbongeniMhlanga/ToDoWebApp/internal/models"
)

var (
	ErrEmptyTask  = errors.New("task cannot be empty")
	ErrUnknownDay = errors.New("day must be Monday through Friday")
	ErrIncomplete = errors.New("all five weekdays need a task")
)

// Composer holds the working mapping of weekday to task text, plus the
// editing-day pointer. A zero target id means submit creates a new record;
// otherwise submit replaces the record being edited.
type Composer struct {
	targetID   int64
	tasks      map[string]string
	editingDay string
}

func NewComposer() *Composer {
	return &Composer{tasks: make(map[string]string)}
}

// NewEditor returns a composer prefilled from an existing record, so that
// submitting replaces it.
func NewEditor(todo models.Todo) *Composer {
	c := NewComposer()
	c.targetID = todo.ID
	week := todo.Week()
	for _, day := range models.Weekdays() {
		if task := week.Task(day); task != "" {
			c.tasks[day] = task
		}
	}
	return c
}

func (c *Composer) TargetID() int64 { return c.targetID }

// SetTask merges one day's task into the working mapping. Empty text is
// refused; a day that already holds a task is refused unless that day was
// selected for edit first.
func (c *Composer) SetTask(day, text string) error {
	if !validDay(day) {
		return ErrUnknownDay
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyTask
	}
	if _, filled := c.tasks[day]; filled && c.editingDay != day {
		return fmt.Errorf("%s already has a task, select it to edit", day)
	}
	c.tasks[day] = text
	if c.editingDay == day {
		c.editingDay = ""
	}
	return nil
}

// SelectForEdit marks an already-filled day so its task may be overwritten.
func (c *Composer) SelectForEdit(day string) error {
	if !validDay(day) {
		return ErrUnknownDay
	}
	if _, filled := c.tasks[day]; !filled {
		return fmt.Errorf("%s has no task to edit yet", day)
	}
	c.editingDay = day
	return nil
}

func (c *Composer) EditingDay() string { return c.editingDay }

func (c *Composer) Task(day string) (string, bool) {
	task, ok := c.tasks[day]
	return task, ok
}

// Filled lists the days that already hold a task, in week order.
func (c *Composer) Filled() []string {
	var days []string
	for _, day := range models.Weekdays() {
		if _, ok := c.tasks[day]; ok {
			days = append(days, day)
		}
	}
	return days
}

func (c *Composer) Complete() bool {
	return len(c.tasks) == len(models.Weekdays())
}

// Week returns the draft as a submit payload. Submission of a partial set is
// refused.
func (c *Composer) Week() (models.Week, error) {
	if !c.Complete() {
		return models.Week{}, ErrIncomplete
	}
	return models.Week{
		Monday:    c.tasks["Monday"],
		Tuesday:   c.tasks["Tuesday"],
		Wednesday: c.tasks["Wednesday"],
		Thursday:  c.tasks["Thursday"],
		Friday:    c.tasks["Friday"],
	}, nil
}

// Submit sends the draft: Replace when editing an existing record, Create
// otherwise. The working mapping is cleared on success and preserved on
// failure so the user can retry.
func (c *Composer) Submit(ctx context.Context, api *client.Client) (int64, error) {
	week, err := c.Week()
	if err != nil {
		return 0, err
	}

	id := c.targetID
	if id != 0 {
		err = api.Replace(ctx, id, week)
	} else {
		id, err = api.Create(ctx, week)
	}
	if err != nil {
		return 0, err
	}

	c.tasks = make(map[string]string)
	c.editingDay = ""
	c.targetID = 0
	return id, nil
}

func validDay(day string) bool {
	for _, d := range models.Weekdays() {
		if d == day {
			return true
		}
	}
	return false
}
