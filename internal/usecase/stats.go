package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shirshiz/studio-crm/internal/entity"
)

// Stats is the full derived-statistics document recomputed over a snapshot.
// Counts and per-status revenue are scoped to leads registered inside the
// window; the payment-based figures scan the entire collection.
type Stats struct {
	Total      int `json:"total"`
	Closed     int `json:"closed"`
	NewLeads   int `json:"newLeads"`
	InProgress int `json:"inProgress"`
	Irrelevant int `json:"irrelevant"`

	// Conversion is closed/total as a percentage, one decimal place.
	Conversion float64 `json:"conversion"`

	TotalRevenue     float64 `json:"totalRevenue"`
	PotentialRevenue float64 `json:"potentialRevenue"`
	AvgDealSize      float64 `json:"avgDealSize"`

	// FilteredRevenue (turnover) counts the full value of deals whose
	// first payment date falls in the window.
	FilteredRevenue float64 `json:"filteredRevenue"`
	// FilteredCashFlow sums individual payments dated inside the window,
	// cash-basis, regardless of which deal they belong to.
	FilteredCashFlow float64 `json:"filteredCashFlow"`
	// FutureRevenue sums payments dated strictly after today. Always
	// forward-looking from now, never window-scoped.
	FutureRevenue float64 `json:"futureRevenue"`

	SourceData  map[string]int  `json:"sourceData"`
	StatusData  StatusData      `json:"statusData"`
	MonthlyData []MonthlyBucket `json:"monthlyData"`

	Workshops WorkshopComparison `json:"workshops"`
}

type StatusData struct {
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Closed     int `json:"closed"`
	Irrelevant int `json:"irrelevant"`
}

// MonthlyBucket is one entry of the trailing six-month trend series.
type MonthlyBucket struct {
	Month  string `json:"month"` // "2006-01"
	Total  int    `json:"total"`
	Closed int    `json:"closed"`
}

type WorkshopBucket struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// WorkshopComparison compares closed pro-workshop deals against vintage
// ones among deals whose first payment fell in the window. Percentages are
// shares of the two types' combined total.
type WorkshopComparison struct {
	Pro     WorkshopBucket `json:"pro"`
	Vintage WorkshopBucket `json:"vintage"`
}

// Aggregate recomputes every statistic from scratch over the snapshot.
// Missing numeric fields count as 0 and unknown enum values land in the
// "other" bucket; nothing here returns an error.
func Aggregate(leads []entity.Lead, window TimeWindow, now time.Time) Stats {
	var windowed []entity.Lead
	for _, l := range leads {
		if window.Contains(l.RegDate) {
			windowed = append(windowed, l)
		}
	}

	s := Stats{
		Total:      len(windowed),
		SourceData: make(map[string]int),
	}

	for _, l := range windowed {
		switch l.Status {
		case entity.StatusNew:
			s.NewLeads++
		case entity.StatusInProgress:
			s.InProgress++
			s.PotentialRevenue += l.Quote
		case entity.StatusClosed:
			s.Closed++
			s.TotalRevenue += l.Quote
		case entity.StatusIrrelevant:
			s.Irrelevant++
		}

		source := l.Source
		if source == "" {
			source = entity.SourceOther
		}
		s.SourceData[source]++
	}

	if s.Total > 0 {
		s.Conversion = round1(float64(s.Closed) / float64(s.Total) * 100)
	}
	if s.Closed > 0 {
		s.AvgDealSize = math.Round(s.TotalRevenue / float64(s.Closed))
	}

	s.StatusData = StatusData{
		New:        s.NewLeads,
		InProgress: s.InProgress,
		Closed:     s.Closed,
		Irrelevant: s.Irrelevant,
	}

	today := midnight(now)
	for _, l := range leads {
		for _, p := range l.Payments {
			if window.Contains(p.Date) {
				s.FilteredCashFlow += p.Amount
			}
			if d, err := time.ParseInLocation(DateLayout, p.Date, now.Location()); err == nil && d.After(today) {
				s.FutureRevenue += p.Amount
			}
		}

		if len(l.Payments) == 0 {
			continue
		}
		first, total := firstPaymentAndTotal(l.Payments)
		if window.Contains(first) {
			s.FilteredRevenue += total
		}
	}

	s.MonthlyData = monthlyTrend(leads, now)
	s.Workshops = workshopComparison(leads, window)
	return s
}

// monthlyTrend buckets the entire collection by regDate year-month into a
// fixed series: the current month and the five before it.
func monthlyTrend(leads []entity.Lead, now time.Time) []MonthlyBucket {
	buckets := make([]MonthlyBucket, 0, 6)
	index := make(map[string]int, 6)
	for i := 5; i >= 0; i-- {
		key := monthKey(now, -i)
		index[key] = len(buckets)
		buckets = append(buckets, MonthlyBucket{Month: key})
	}

	for _, l := range leads {
		if len(l.RegDate) < 7 {
			continue
		}
		i, ok := index[l.RegDate[:7]]
		if !ok {
			continue
		}
		buckets[i].Total++
		if l.Status == entity.StatusClosed {
			buckets[i].Closed++
		}
	}
	return buckets
}

func workshopComparison(leads []entity.Lead, window TimeWindow) WorkshopComparison {
	var pro, vintage int
	for _, l := range leads {
		if l.Status != entity.StatusClosed || len(l.Payments) == 0 {
			continue
		}
		if l.EventType != entity.EventTypePro && l.EventType != entity.EventTypeVintage {
			continue
		}
		first, _ := firstPaymentAndTotal(l.Payments)
		if !window.Contains(first) {
			continue
		}
		if l.EventType == entity.EventTypePro {
			pro++
		} else {
			vintage++
		}
	}

	cmp := WorkshopComparison{
		Pro:     WorkshopBucket{Count: pro},
		Vintage: WorkshopBucket{Count: vintage},
	}
	if combined := pro + vintage; combined > 0 {
		cmp.Pro.Percent = round1(float64(pro) / float64(combined) * 100)
		cmp.Vintage.Percent = round1(float64(vintage) / float64(combined) * 100)
	}
	return cmp
}

// firstPaymentAndTotal sorts a copy of the schedule by date ascending and
// returns the earliest payment date plus the sum of every installment.
func firstPaymentAndTotal(payments []entity.Payment) (firstDate string, total float64) {
	sorted := make([]entity.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	for _, p := range sorted {
		total += p.Amount
	}
	return sorted[0].Date, total
}

// monthKey computes the "2006-01" key offset whole months from now,
// without the end-of-month drift of naive date arithmetic.
func monthKey(now time.Time, offset int) string {
	months := now.Year()*12 + int(now.Month()) - 1 + offset
	return fmt.Sprintf("%04d-%02d", months/12, months%12+1)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
