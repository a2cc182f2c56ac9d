package hr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avtoservice/internal/core/id"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysOff_DurationDays(t *testing.T) {
	// 10th through 12th inclusive is 3 days.
	d := NewDaysOff(id.New(), LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	assert.Equal(t, 3, d.DurationDays())

	// Single day.
	d = NewDaysOff(id.New(), LeaveSick, date(2025, 3, 5), date(2025, 3, 5))
	assert.Equal(t, 1, d.DurationDays())

	// Across a month boundary.
	d = NewDaysOff(id.New(), LeaveVacation, date(2025, 7, 28), date(2025, 8, 8))
	assert.Equal(t, 12, d.DurationDays())
}

func TestDaysOff_Validate(t *testing.T) {
	d := NewDaysOff(id.New(), LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	require.NoError(t, d.Validate(context.Background()))

	d = NewDaysOff(id.New(), LeaveVacation, date(2025, 1, 12), date(2025, 1, 10))
	require.Error(t, d.Validate(context.Background()), "end before start")

	d = NewDaysOff(id.Nil(), LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	require.Error(t, d.Validate(context.Background()), "no employee")

	d = NewDaysOff(id.New(), LeaveType("weekend"), date(2025, 1, 10), date(2025, 1, 12))
	require.Error(t, d.Validate(context.Background()), "bad type")
}

func TestDaysOff_CountsAgainstAllowance(t *testing.T) {
	d := NewDaysOff(id.New(), LeaveVacation, date(2025, 1, 10), date(2025, 1, 12))
	assert.False(t, d.CountsAgainstAllowance(2025), "unapproved does not count")

	d.Approve("manager")
	assert.True(t, d.CountsAgainstAllowance(2025))
	assert.False(t, d.CountsAgainstAllowance(2024), "other year")

	sick := NewDaysOff(id.New(), LeaveSick, date(2025, 1, 10), date(2025, 1, 12))
	sick.Approve("manager")
	assert.False(t, sick.CountsAgainstAllowance(2025), "sick leave does not count")
}
