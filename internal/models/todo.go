package models

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusNotStarted Status = "n"
	StatusInProgress Status = "i"
	StatusComplete   Status = "c"
)

// Label returns the display form of a status code.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusComplete:
		return "complete"
	}
	// unknown codes pass through unchanged for display
	return string(s)
}

/*
ParseStatus converts user and wire input to a canonical status code.
Accepts the short codes in either case plus the full labels the two
legacy list views used ("complete"/"Completed", "in progress"/"In
Progress", "not started"/"Not Started").
*/
func ParseStatus(input string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "n", "not started", "not-started", "not_started":
		return StatusNotStarted, nil
	case "i", "in progress", "in-progress", "in_progress", "inprogress":
		return StatusInProgress, nil
	case "c", "complete", "completed", "done":
		return StatusComplete, nil
	}
	return "", fmt.Errorf("unknown status %q", input)
}

// Todo is one weekly task-set row, keyed by id.
type Todo struct {
	ID        int64     `json:"id"`
	Monday    string    `json:"monday"`
	Tuesday   string    `json:"tuesday"`
	Wednesday string    `json:"wednesday"`
	Thursday  string    `json:"thursday"`
	Friday    string    `json:"friday"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Week holds the five weekday task descriptions of a record. Values may
// be empty strings, but a create or full replace must supply all five.
type Week struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
}

// Weekdays lists the five day names in week order.
func Weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
}

// Week returns the weekday fields of a record as a Week value.
func (t Todo) Week() Week {
	return Week{
		Monday:    t.Monday,
		Tuesday:   t.Tuesday,
		Wednesday: t.Wednesday,
		Thursday:  t.Thursday,
		Friday:    t.Friday,
	}
}

// Task returns the task text for a day name ("Monday".."Friday").
func (w Week) Task(day string) string {
	switch day {
	case "Monday":
		return w.Monday
	case "Tuesday":
		return w.Tuesday
	case "Wednesday":
		return w.Wednesday
	case "Thursday":
		return w.Thursday
	case "Friday":
		return w.Friday
	}
	return ""
}
