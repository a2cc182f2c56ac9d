package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestEvent_Validate(t *testing.T) {
	e := New("Годишен технически преглед", TypeInspection, ts(2026, 9, 1, 9), ts(2026, 9, 1, 10))
	require.NoError(t, e.Validate(context.Background()))

	e = New("", TypeMeeting, ts(2026, 9, 1, 9), ts(2026, 9, 1, 10))
	require.Error(t, e.Validate(context.Background()), "empty title")

	e = New("Среща", TypeMeeting, ts(2026, 9, 1, 10), ts(2026, 9, 1, 9))
	require.Error(t, e.Validate(context.Background()), "end before start")

	e = New("Среща", TypeMeeting, ts(2026, 9, 1, 9), ts(2026, 9, 1, 9))
	require.Error(t, e.Validate(context.Background()), "zero duration")

	e = New("Среща", EventType("party"), ts(2026, 9, 1, 9), ts(2026, 9, 1, 10))
	require.Error(t, e.Validate(context.Background()), "bad type")
}

func TestWeekWindow(t *testing.T) {
	// 2026-08-29 is a Saturday; its week runs Mon 24th .. Mon 31st.
	from, to := WeekWindow(ts(2026, 8, 29, 15))
	assert.Equal(t, ts(2026, 8, 24, 0), from)
	assert.Equal(t, ts(2026, 8, 31, 0), to)

	// A Monday maps to itself.
	from, to = WeekWindow(ts(2026, 8, 24, 0))
	assert.Equal(t, ts(2026, 8, 24, 0), from)
	assert.Equal(t, ts(2026, 8, 31, 0), to)

	// Sunday belongs to the preceding Monday's week.
	from, _ = WeekWindow(ts(2026, 8, 30, 23))
	assert.Equal(t, ts(2026, 8, 24, 0), from)
}
