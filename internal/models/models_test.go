package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRank(t *testing.T) {
	assert.Equal(t, 0, StatusPending.Rank())
	assert.Equal(t, 1, StatusOverdue.Rank())
	assert.Equal(t, 2, StatusDone.Rank())
	assert.Equal(t, 3, Status("Archived").Rank())
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("done")
	require.NoError(t, err)
	assert.Equal(t, StatusDone, st)

	st, err = ParseStatus("Overdue")
	require.NoError(t, err)
	assert.Equal(t, StatusOverdue, st)

	_, err = ParseStatus("finished")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestValidStatuses(t *testing.T) {
	assert.Equal(t, []Status{StatusPending, StatusOverdue, StatusDone}, ValidStatuses)

	// The list filter sentinel is not a storable status
	assert.False(t, Status(AllStatuses).Valid())
	_, err := ParseStatus(AllStatuses)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDeriveStatus(t *testing.T) {
	today := NewDate(2024, time.March, 10)

	tests := []struct {
		name     string
		deadline string
		want     Status
	}{
		{"yesterday is overdue", "2024-03-09", StatusOverdue},
		{"today is pending", "2024-03-10", StatusPending},
		{"tomorrow is pending", "2024-03-11", StatusPending},
		{"previous year is overdue", "2023-12-31", StatusOverdue},
		{"malformed earlier string is overdue", "2024-03", StatusOverdue},
		{"malformed later string is pending", "2024-99-99", StatusPending},
		{"empty deadline is overdue", "", StatusOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.deadline, today))
		})
	}
}

func TestToday_UsesLocalCalendarDay(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*60*60)
	// 23:30 UTC on the 9th is already the 10th in UTC+10
	now := time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC).In(zone)

	assert.Equal(t, "2024-03-10", Today(now).String())
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2024-02-27", d.AddDays(-1).String())
}

func TestSortTasks(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Status: StatusDone, Deadline: "2024-01-01"},
		{ID: 2, Status: StatusPending, Deadline: "2024-05-01"},
		{ID: 3, Status: StatusOverdue, Deadline: "2024-02-01"},
		{ID: 4, Status: StatusPending, Deadline: "2024-04-01"},
		{ID: 5, Status: Status("Unknown"), Deadline: "2020-01-01"},
		{ID: 6, Status: StatusOverdue, Deadline: "2024-01-15"},
		{ID: 7, Status: StatusPending, Deadline: "2024-04-01"},
	}

	SortTasks(tasks)

	var ids []int
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []int{4, 7, 2, 6, 3, 1, 5}, ids)
}

func TestTaskCategoryLabel(t *testing.T) {
	assert.Equal(t, UncategorizedLabel, (&Task{}).CategoryLabel())
	assert.Equal(t, "Errands", (&Task{Category: "Errands"}).CategoryLabel())
}

func TestStatsProgress(t *testing.T) {
	assert.Equal(t, 0, Stats{}.Progress())
	assert.Equal(t, 33, Stats{Total: 3, Done: 1}.Progress())
	assert.Equal(t, 100, Stats{Total: 2, Done: 2}.Progress())
}
