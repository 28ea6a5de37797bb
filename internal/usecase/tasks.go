package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/shirshiz/studio-crm/internal/entity"
)

type Urgency string

const (
	UrgencyRoutine Urgency = "routine"
	UrgencyDueSoon Urgency = "due_soon"
	UrgencyOverdue Urgency = "overdue"
)

// DaysUntilCall returns whole days from today's midnight until the lead's
// next scheduled call, negative when the call date has passed. ok is false
// when no call is scheduled or the date does not parse.
func DaysUntilCall(l entity.Lead, now time.Time) (days int, ok bool) {
	if l.NextCallDate == "" {
		return 0, false
	}
	call, err := time.ParseInLocation(DateLayout, l.NextCallDate, now.Location())
	if err != nil {
		return 0, false
	}
	// Ceil over hours keeps the count correct across DST transitions.
	return int(math.Ceil(call.Sub(midnight(now)).Hours() / 24)), true
}

// ClassifyUrgency flags an active lead's follow-up call. Due-soon covers
// calls within the next two days, today included. A missed call date is
// overdue only for a lead already in progress; a brand-new lead is not
// flagged. Leads outside the active statuses are never classified.
func ClassifyUrgency(l entity.Lead, now time.Time) Urgency {
	if !l.Status.IsActive() {
		return UrgencyRoutine
	}
	days, ok := DaysUntilCall(l, now)
	if !ok {
		return UrgencyRoutine
	}
	if days < 0 {
		if l.Status == entity.StatusInProgress {
			return UrgencyOverdue
		}
		return UrgencyRoutine
	}
	if days <= 2 {
		return UrgencyDueSoon
	}
	return UrgencyRoutine
}

// TaskEntry is one row on the follow-up board.
type TaskEntry struct {
	Lead      entity.Lead `json:"lead"`
	Urgency   Urgency     `json:"urgency"`
	DaysUntil *int        `json:"daysUntil,omitempty"`
}

type TaskSummary struct {
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	DueSoon    int `json:"dueSoon"`
	Overdue    int `json:"overdue"`
}

type TaskBoard struct {
	Entries []TaskEntry `json:"entries"`
	Summary TaskSummary `json:"summary"`
}

// BuildTaskBoard classifies every active lead (status new or in progress)
// and orders the board by next call date, earliest first; leads without a
// scheduled call sort ahead so they are not lost below the fold.
func BuildTaskBoard(leads []entity.Lead, now time.Time) TaskBoard {
	var board TaskBoard
	for _, l := range leads {
		if !l.Status.IsActive() {
			continue
		}

		entry := TaskEntry{Lead: l, Urgency: ClassifyUrgency(l, now)}
		if days, ok := DaysUntilCall(l, now); ok {
			d := days
			entry.DaysUntil = &d
		}
		board.Entries = append(board.Entries, entry)

		switch l.Status {
		case entity.StatusNew:
			board.Summary.New++
		case entity.StatusInProgress:
			board.Summary.InProgress++
		}
		switch entry.Urgency {
		case UrgencyDueSoon:
			board.Summary.DueSoon++
		case UrgencyOverdue:
			board.Summary.Overdue++
		}
	}

	sort.SliceStable(board.Entries, func(i, j int) bool {
		return board.Entries[i].Lead.NextCallDate < board.Entries[j].Lead.NextCallDate
	})
	return board
}
