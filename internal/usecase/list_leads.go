package usecase

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shirshiz/studio-crm/internal/entity"
)

// LeadQuery is the list view's filter and sort state.
type LeadQuery struct {
	Search  string
	Status  string // "all" or a numeric status
	SortBy  string
	SortDir string // "asc" or "desc"
}

// FilterLeads applies free-text search (name, phone, email, city), the
// status filter, and sorting over a snapshot. The snapshot itself is never
// mutated. Default order is registration date, newest first.
func FilterLeads(leads []entity.Lead, q LeadQuery) []entity.Lead {
	if q.SortBy == "" {
		q.SortBy = "regDate"
		q.SortDir = "desc"
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	statusFilter, filterByStatus := parseStatusFilter(q.Status)

	out := make([]entity.Lead, 0, len(leads))
	for _, l := range leads {
		if filterByStatus && l.Status != statusFilter {
			continue
		}
		if search != "" && !matchesSearch(l, search) {
			continue
		}
		out = append(out, l)
	}

	desc := q.SortDir == "desc"
	sort.SliceStable(out, func(i, j int) bool {
		less := leadLess(out[i], out[j], q.SortBy)
		if desc {
			return leadLess(out[j], out[i], q.SortBy)
		}
		return less
	})
	return out
}

func parseStatusFilter(s string) (entity.Status, bool) {
	if s == "" || s == "all" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return entity.Status(n), true
}

func matchesSearch(l entity.Lead, search string) bool {
	return strings.Contains(strings.ToLower(l.Name), search) ||
		strings.Contains(l.Phone, search) ||
		strings.Contains(strings.ToLower(l.Email), search) ||
		strings.Contains(strings.ToLower(l.City), search)
}

func leadLess(a, b entity.Lead, key string) bool {
	switch key {
	case "quote":
		return a.Quote < b.Quote
	case "status":
		return a.Status < b.Status
	case "name":
		return a.Name < b.Name
	case "nextCallDate":
		return a.NextCallDate < b.NextCallDate
	case "eventDate":
		return a.EventDate < b.EventDate
	case "city":
		return a.City < b.City
	case "source":
		return a.Source < b.Source
	default:
		return a.RegDate < b.RegDate
	}
}
