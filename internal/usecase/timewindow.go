package usecase

import "time"

// DateLayout is the ISO calendar date layout used for every date-only field
// on a lead (regDate, nextCallDate, eventDate, payment dates).
const DateLayout = "2006-01-02"

type WindowFilter string

const (
	WindowDay    WindowFilter = "day"
	WindowWeek   WindowFilter = "week"
	WindowMonth  WindowFilter = "month"
	WindowYear   WindowFilter = "year"
	WindowAll    WindowFilter = "all"
	WindowCustom WindowFilter = "custom"
)

// CustomRange is a user-picked inclusive date range, both bounds as ISO
// calendar date strings.
type CustomRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TimeWindow is an immutable resolved date range. Comparisons are inclusive
// on both ends and happen at local midnight, so date-only fields are never
// shifted by timezone drift.
type TimeWindow struct {
	filter    WindowFilter
	from, to  time.Time
	today     string
	loc       *time.Location
	unbounded bool
	empty     bool
}

// ResolveWindow computes the inclusive date range for a named filter
// relative to now's local calendar. Unknown filters resolve like "all".
// A custom filter with a missing or malformed bound matches nothing.
func ResolveWindow(filter WindowFilter, now time.Time, custom CustomRange) TimeWindow {
	loc := now.Location()
	today := midnight(now)
	w := TimeWindow{filter: filter, loc: loc, today: now.Format(DateLayout)}

	switch filter {
	case WindowDay:
		w.from, w.to = today, today
	case WindowWeek:
		// Most recent Sunday at or before today.
		w.from = today.AddDate(0, 0, -int(now.Weekday()))
		w.to = today
	case WindowMonth:
		w.from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		w.to = today
	case WindowYear:
		w.from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		w.to = today
	case WindowCustom:
		from, errFrom := time.ParseInLocation(DateLayout, custom.From, loc)
		to, errTo := time.ParseInLocation(DateLayout, custom.To, loc)
		if custom.From == "" || custom.To == "" || errFrom != nil || errTo != nil {
			w.empty = true
			return w
		}
		w.from = from
		w.to = to.Add(24*time.Hour - time.Millisecond)
	default:
		w.unbounded = true
	}
	return w
}

// Contains reports whether an ISO date string falls inside the window.
// Empty or unparseable dates never match a bounded window; an unbounded
// window matches everything. The day filter matches by string equality on
// the raw field, not by range comparison.
func (w TimeWindow) Contains(dateStr string) bool {
	if w.unbounded {
		return true
	}
	if w.empty {
		return false
	}
	if w.filter == WindowDay {
		return dateStr == w.today
	}
	d, err := time.ParseInLocation(DateLayout, dateStr, w.loc)
	if err != nil {
		return false
	}
	return !d.Before(w.from) && !d.After(w.to)
}

// Unbounded reports whether every record matches.
func (w TimeWindow) Unbounded() bool { return w.unbounded }

// Bounds returns the resolved range; meaningful only for bounded,
// non-empty windows.
func (w TimeWindow) Bounds() (from, to time.Time) { return w.from, w.to }

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
