package cache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	c := NewMemory()
	c.Set("rate", decimal.RequireFromString("1.95583"), time.Minute)

	v, ok := c.Get("rate")
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.RequireFromString("1.95583")))
}

func TestMemory_Miss(t *testing.T) {
	c := NewMemory()
	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestMemory_Expiry(t *testing.T) {
	c := NewMemory()
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	c.Set("rate", decimal.NewFromInt(2), time.Hour)

	c.now = func() time.Time { return base.Add(59 * time.Minute) }
	_, ok := c.Get("rate")
	assert.True(t, ok, "entry still valid before TTL")

	c.now = func() time.Time { return base.Add(61 * time.Minute) }
	_, ok = c.Get("rate")
	assert.False(t, ok, "entry expired after TTL")
}

func TestMemory_Overwrite(t *testing.T) {
	c := NewMemory()
	c.Set("rate", decimal.NewFromInt(1), time.Minute)
	c.Set("rate", decimal.NewFromInt(2), time.Minute)

	v, ok := c.Get("rate")
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(2)))
}

func TestMemory_Delete(t *testing.T) {
	c := NewMemory()
	c.Set("rate", decimal.NewFromInt(1), time.Minute)
	c.Delete("rate")

	_, ok := c.Get("rate")
	assert.False(t, ok)
}

func TestMemory_Purge(t *testing.T) {
	c := NewMemory()
	c.Set("a", decimal.NewFromInt(1), time.Minute)
	c.Set("b", decimal.NewFromInt(2), time.Minute)
	c.Purge()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
