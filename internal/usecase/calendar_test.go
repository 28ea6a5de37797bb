package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shirshiz/studio-crm/internal/entity"
)

func TestEventsOnDayCall(t *testing.T) {
	leads := []entity.Lead{
		{ID: "a", Name: "דנה", Status: entity.StatusInProgress, NextCallDate: "2025-06-18"},
		{ID: "b", Name: "רונית", Status: entity.StatusNew, NextCallDate: "2025-06-19"},
	}

	events := EventsOnDay(leads, 2025, time.June, 18)

	assert.Len(t, events, 1)
	assert.Equal(t, EventCall, events[0].Kind)
	assert.Equal(t, "a", events[0].LeadID)
	assert.Equal(t, "📞", events[0].Emoji)
}

func TestEventsOnDayPrimaryEventEmoji(t *testing.T) {
	leads := []entity.Lead{
		{ID: "a", Name: "דנה", EventDate: "2025-06-18", EventType: entity.EventTypePro},
		{ID: "b", Name: "רונית", EventDate: "2025-06-18", EventType: entity.EventTypeVintage},
		{ID: "c", Name: "מיכל", EventDate: "2025-06-18", EventType: ""},
	}

	events := EventsOnDay(leads, 2025, time.June, 18)

	assert.Len(t, events, 3)
	assert.Equal(t, "🎓", events[0].Emoji)
	assert.Equal(t, "🎂", events[1].Emoji)
	// Empty event type falls back to the "other" bucket.
	assert.Equal(t, "📦", events[2].Emoji)
	assert.Equal(t, entity.EventTypeOther, events[2].EventType)
}

func TestEventsOnDaySecondSession(t *testing.T) {
	t.Run("closed pro workshop gets a second session", func(t *testing.T) {
		leads := []entity.Lead{{
			ID:         "a",
			Name:       "דנה",
			Status:     entity.StatusClosed,
			EventType:  entity.EventTypePro,
			Event2Date: "2025-06-25",
		}}

		events := EventsOnDay(leads, 2025, time.June, 25)

		assert.Len(t, events, 1)
		assert.Equal(t, EventSecondary, events[0].Kind)
		assert.Equal(t, "מאפס למקצוענית - מפגש 2", events[0].Label)
	})

	t.Run("event2Date ignored for other event types", func(t *testing.T) {
		leads := []entity.Lead{{
			ID:         "a",
			Status:     entity.StatusClosed,
			EventType:  entity.EventTypeOther,
			Event2Date: "2025-06-25",
		}}

		assert.Empty(t, EventsOnDay(leads, 2025, time.June, 25))
	})

	t.Run("event2Date ignored while still in progress", func(t *testing.T) {
		leads := []entity.Lead{{
			ID:         "a",
			Status:     entity.StatusInProgress,
			EventType:  entity.EventTypePro,
			Event2Date: "2025-06-25",
		}}

		assert.Empty(t, EventsOnDay(leads, 2025, time.June, 25))
	})
}

func TestEventsOnDayNoDeduplication(t *testing.T) {
	// One lead with the call and the event on the same day contributes two
	// independent entries.
	leads := []entity.Lead{{
		ID:           "a",
		Name:         "דנה",
		Status:       entity.StatusInProgress,
		NextCallDate: "2025-06-18",
		EventDate:    "2025-06-18",
		EventType:    entity.EventTypeVintage,
	}}

	events := EventsOnDay(leads, 2025, time.June, 18)

	assert.Len(t, events, 2)
	assert.Equal(t, EventCall, events[0].Kind)
	assert.Equal(t, EventPrimary, events[1].Kind)
}

func TestMonthGridPadding(t *testing.T) {
	// June 2025 starts on a Sunday: no padding, 30 cells.
	june := MonthGrid(2025, time.June)
	assert.Len(t, june, 30)
	assert.NotNil(t, june[0])
	assert.Equal(t, 1, *june[0])

	// May 2025 starts on a Thursday: four nil cells first.
	may := MonthGrid(2025, time.May)
	assert.Len(t, may, 4+31)
	for i := 0; i < 4; i++ {
		assert.Nil(t, may[i])
	}
	assert.Equal(t, 1, *may[4])
	assert.Equal(t, 31, *may[len(may)-1])
}
