package models

import (
	"fmt"
	"slices"
	"strings"
)

// Status is the lifecycle state of a task
type Status string

const (
	StatusPending Status = "Pending"
	StatusDone    Status = "Done"
	StatusOverdue Status = "Overdue"
)

// ValidStatuses lists the valid statuses in list order
var ValidStatuses = []Status{StatusPending, StatusOverdue, StatusDone}

// Valid reports whether s is one of the three known statuses
func (s Status) Valid() bool {
	return slices.Contains(ValidStatuses, s)
}

func (s Status) String() string {
	return string(s)
}

// Rank returns the primary sort key for list ordering.
// Unknown values sort last.
func (s Status) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusOverdue:
		return 1
	case StatusDone:
		return 2
	default:
		return 3
	}
}

// ParseStatus maps user input to a Status, ignoring case
func ParseStatus(s string) (Status, error) {
	for _, st := range ValidStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be: Pending, Overdue, Done)", ErrInvalidStatus, s)
}

// DeriveStatus applies the deadline rule to a task that is not done:
// Overdue when the deadline is strictly before today, Pending otherwise.
func DeriveStatus(deadline string, today Date) Status {
	if IsPastDue(deadline, today) {
		return StatusOverdue
	}
	return StatusPending
}

// SortTasks orders tasks by status rank, then deadline ascending.
// The sort is stable so equal keys keep their incoming order.
func SortTasks(tasks []*Task) {
	slices.SortStableFunc(tasks, func(a, b *Task) int {
		if ra, rb := a.Status.Rank(), b.Status.Rank(); ra != rb {
			return ra - rb
		}
		return strings.Compare(a.Deadline, b.Deadline)
	})
}
