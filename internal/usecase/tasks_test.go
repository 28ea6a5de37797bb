package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shirshiz/studio-crm/internal/entity"
)

func TestDaysUntilCall(t *testing.T) {
	t.Run("today is zero days away", func(t *testing.T) {
		days, ok := DaysUntilCall(entity.Lead{NextCallDate: "2025-06-18"}, testNow)
		assert.True(t, ok)
		assert.Equal(t, 0, days)
	})

	t.Run("tomorrow is one", func(t *testing.T) {
		days, ok := DaysUntilCall(entity.Lead{NextCallDate: "2025-06-19"}, testNow)
		assert.True(t, ok)
		assert.Equal(t, 1, days)
	})

	t.Run("yesterday is minus one", func(t *testing.T) {
		days, ok := DaysUntilCall(entity.Lead{NextCallDate: "2025-06-17"}, testNow)
		assert.True(t, ok)
		assert.Equal(t, -1, days)
	})

	t.Run("no call scheduled", func(t *testing.T) {
		_, ok := DaysUntilCall(entity.Lead{}, testNow)
		assert.False(t, ok)
	})

	t.Run("unparseable date", func(t *testing.T) {
		_, ok := DaysUntilCall(entity.Lead{NextCallDate: "18/06/2025"}, testNow)
		assert.False(t, ok)
	})
}

func TestClassifyUrgency(t *testing.T) {
	t.Run("missed call of an in-progress lead is overdue", func(t *testing.T) {
		l := entity.Lead{Status: entity.StatusInProgress, NextCallDate: "2025-06-17"}
		assert.Equal(t, UrgencyOverdue, ClassifyUrgency(l, testNow))
	})

	t.Run("missed call of a new lead is not flagged", func(t *testing.T) {
		l := entity.Lead{Status: entity.StatusNew, NextCallDate: "2025-06-17"}
		assert.Equal(t, UrgencyRoutine, ClassifyUrgency(l, testNow))
	})

	t.Run("call today is due soon", func(t *testing.T) {
		l := entity.Lead{Status: entity.StatusNew, NextCallDate: "2025-06-18"}
		assert.Equal(t, UrgencyDueSoon, ClassifyUrgency(l, testNow))
	})

	t.Run("call in two days is due soon", func(t *testing.T) {
		l := entity.Lead{Status: entity.StatusInProgress, NextCallDate: "2025-06-20"}
		assert.Equal(t, UrgencyDueSoon, ClassifyUrgency(l, testNow))
	})

	t.Run("call in three days is routine", func(t *testing.T) {
		l := entity.Lead{Status: entity.StatusInProgress, NextCallDate: "2025-06-21"}
		assert.Equal(t, UrgencyRoutine, ClassifyUrgency(l, testNow))
	})

	t.Run("closed lead is never classified", func(t *testing.T) {
		l := entity.Lead{Status: entity.StatusClosed, NextCallDate: "2025-06-17"}
		assert.Equal(t, UrgencyRoutine, ClassifyUrgency(l, testNow))
	})

	t.Run("no scheduled call is routine", func(t *testing.T) {
		l := entity.Lead{Status: entity.StatusInProgress}
		assert.Equal(t, UrgencyRoutine, ClassifyUrgency(l, testNow))
	})
}

func TestBuildTaskBoard(t *testing.T) {
	leads := []entity.Lead{
		{ID: "late", Status: entity.StatusInProgress, NextCallDate: "2025-06-10"},
		{ID: "soon", Status: entity.StatusNew, NextCallDate: "2025-06-19"},
		{ID: "unscheduled", Status: entity.StatusNew},
		{ID: "closed", Status: entity.StatusClosed, NextCallDate: "2025-06-18"},
		{ID: "irrelevant", Status: entity.StatusIrrelevant},
	}

	board := BuildTaskBoard(leads, testNow)

	// Closed and irrelevant leads never reach the board.
	assert.Len(t, board.Entries, 3)

	// Unscheduled sorts first, then by call date ascending.
	assert.Equal(t, "unscheduled", board.Entries[0].Lead.ID)
	assert.Equal(t, "late", board.Entries[1].Lead.ID)
	assert.Equal(t, "soon", board.Entries[2].Lead.ID)

	assert.Nil(t, board.Entries[0].DaysUntil)
	assert.Equal(t, -8, *board.Entries[1].DaysUntil)
	assert.Equal(t, 1, *board.Entries[2].DaysUntil)

	assert.Equal(t, 2, board.Summary.New)
	assert.Equal(t, 1, board.Summary.InProgress)
	assert.Equal(t, 1, board.Summary.DueSoon)
	assert.Equal(t, 1, board.Summary.Overdue)
}
