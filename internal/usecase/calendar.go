package usecase

import (
	"fmt"
	"time"

	"github.com/shirshiz/studio-crm/internal/entity"
)

type EventKind string

const (
	EventCall      EventKind = "call"
	EventPrimary   EventKind = "event"
	EventSecondary EventKind = "event2"
)

// CalendarEvent is one projected entry on a calendar day. A single lead
// can contribute several entries when its dates coincide.
type CalendarEvent struct {
	LeadID    string    `json:"leadId"`
	LeadName  string    `json:"leadName"`
	Kind      EventKind `json:"kind"`
	EventType string    `json:"eventType,omitempty"`
	Label     string    `json:"label"`
	Emoji     string    `json:"emoji"`
}

// EventsOnDay projects each lead onto the target day. The three rules are
// evaluated independently, without deduplication:
//
//  1. nextCallDate matches        -> follow-up call
//  2. eventDate matches           -> primary event, tagged with its type
//  3. event2Date matches          -> second session, only for a closed
//     pro-workshop lead; otherwise event2Date is ignored even when set.
func EventsOnDay(leads []entity.Lead, year int, month time.Month, day int) []CalendarEvent {
	dateStr := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)

	var events []CalendarEvent
	for _, l := range leads {
		if l.NextCallDate == dateStr {
			events = append(events, CalendarEvent{
				LeadID:   l.ID,
				LeadName: l.Name,
				Kind:     EventCall,
				Label:    "שיחה",
				Emoji:    "📞",
			})
		}

		if l.EventDate == dateStr {
			eventType := l.EventType
			if eventType == "" {
				eventType = entity.EventTypeOther
			}
			events = append(events, CalendarEvent{
				LeadID:    l.ID,
				LeadName:  l.Name,
				Kind:      EventPrimary,
				EventType: eventType,
				Label:     entity.EventTypeLabel(eventType),
				Emoji:     primaryEmoji(eventType),
			})
		}

		if l.Event2Date == dateStr && l.HasSecondSession() {
			events = append(events, CalendarEvent{
				LeadID:    l.ID,
				LeadName:  l.Name,
				Kind:      EventSecondary,
				EventType: entity.EventTypePro,
				Label:     entity.EventTypeLabel(entity.EventTypePro) + " - מפגש 2",
				Emoji:     "🎓",
			})
		}
	}
	return events
}

func primaryEmoji(eventType string) string {
	switch eventType {
	case entity.EventTypePro:
		return "🎓"
	case entity.EventTypeVintage:
		return "🎂"
	default:
		return "📦"
	}
}

// MonthGrid lays a month out on a Sunday-first week grid: nil cells pad the
// weekday offset of the 1st, then one cell per day of month. The ragged
// final row is left to the renderer.
func MonthGrid(year int, month time.Month) []*int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := make([]*int, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		grid = append(grid, nil)
	}
	for d := 1; d <= daysInMonth; d++ {
		day := d
		grid = append(grid, &day)
	}
	return grid
}
