package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday 2025-06-18, fixed so every window resolves deterministically.
var testNow = time.Date(2025, time.June, 18, 14, 30, 0, 0, time.Local)

func TestResolveWindowDay(t *testing.T) {
	w := ResolveWindow(WindowDay, testNow, CustomRange{})

	assert.True(t, w.Contains("2025-06-18"))
	assert.False(t, w.Contains("2025-06-17"))
	assert.False(t, w.Contains(""))
	assert.False(t, w.Contains("not-a-date"))
}

func TestResolveWindowWeekStartsSunday(t *testing.T) {
	w := ResolveWindow(WindowWeek, testNow, CustomRange{})

	// 2025-06-15 is the Sunday before the fixed Wednesday.
	assert.True(t, w.Contains("2025-06-15"))
	assert.True(t, w.Contains("2025-06-18"))
	assert.False(t, w.Contains("2025-06-14"))
	assert.False(t, w.Contains("2025-06-19"))
}

func TestResolveWindowWeekOnSunday(t *testing.T) {
	sunday := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.Local)
	w := ResolveWindow(WindowWeek, sunday, CustomRange{})

	// A Sunday is its own week start, not the previous one.
	assert.True(t, w.Contains("2025-06-15"))
	assert.False(t, w.Contains("2025-06-14"))
}

func TestResolveWindowMonthAndYear(t *testing.T) {
	month := ResolveWindow(WindowMonth, testNow, CustomRange{})
	assert.True(t, month.Contains("2025-06-01"))
	assert.True(t, month.Contains("2025-06-18"))
	assert.False(t, month.Contains("2025-05-31"))

	year := ResolveWindow(WindowYear, testNow, CustomRange{})
	assert.True(t, year.Contains("2025-01-01"))
	assert.False(t, year.Contains("2024-12-31"))
}

func TestResolveWindowCustom(t *testing.T) {
	t.Run("inclusive on both ends", func(t *testing.T) {
		w := ResolveWindow(WindowCustom, testNow, CustomRange{From: "2025-06-01", To: "2025-06-10"})

		assert.True(t, w.Contains("2025-06-01"))
		assert.True(t, w.Contains("2025-06-10"))
		assert.False(t, w.Contains("2025-05-31"))
		assert.False(t, w.Contains("2025-06-11"))
	})

	t.Run("missing bound matches nothing", func(t *testing.T) {
		w := ResolveWindow(WindowCustom, testNow, CustomRange{From: "2025-06-01"})
		assert.False(t, w.Contains("2025-06-05"))
	})

	t.Run("malformed bound matches nothing", func(t *testing.T) {
		w := ResolveWindow(WindowCustom, testNow, CustomRange{From: "01/06/2025", To: "2025-06-10"})
		assert.False(t, w.Contains("2025-06-05"))
	})
}

func TestResolveWindowAllMatchesEverything(t *testing.T) {
	w := ResolveWindow(WindowAll, testNow, CustomRange{})

	assert.True(t, w.Unbounded())
	assert.True(t, w.Contains("1999-01-01"))
	assert.True(t, w.Contains(""))
	assert.True(t, w.Contains("garbage"))
}

func TestResolveWindowUnknownFilterActsAsAll(t *testing.T) {
	w := ResolveWindow(WindowFilter("quarter"), testNow, CustomRange{})
	assert.True(t, w.Unbounded())
}
