package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_RemainingLeaveDays(t *testing.T) {
	e := NewEmployee("Иван", "Петров")
	assert.Equal(t, DefaultAnnualLeaveDays, e.RemainingLeaveDays())

	e.CurrentYearLeaveUsed = 7
	assert.Equal(t, 13, e.RemainingLeaveDays())

	// Over-approved leave clamps at zero, never negative.
	e.CurrentYearLeaveUsed = 25
	assert.Equal(t, 0, e.RemainingLeaveDays())
}

func TestEmployee_Validate(t *testing.T) {
	e := NewEmployee("Иван", "Петров")
	require.NoError(t, e.Validate(context.Background()))
	assert.Equal(t, "Иван Петров", e.Name)

	e = NewEmployee("", "")
	require.Error(t, e.Validate(context.Background()))

	e = NewEmployee("Иван", "Петров")
	e.AnnualLeaveDays = -1
	require.Error(t, e.Validate(context.Background()))
}
