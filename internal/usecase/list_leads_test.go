package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shirshiz/studio-crm/internal/entity"
)

func listFixture() []entity.Lead {
	return []entity.Lead{
		{ID: "a", Name: "דנה כהן", Phone: "0501111111", City: "תל אביב", Status: entity.StatusNew, Quote: 300, RegDate: "2025-06-01"},
		{ID: "b", Name: "רונית לוי", Phone: "0502222222", City: "חיפה", Status: entity.StatusClosed, Quote: 1200, RegDate: "2025-06-10"},
		{ID: "c", Name: "Dana Mizrahi", Phone: "0503333333", Email: "dana@example.com", Status: entity.StatusInProgress, Quote: 700, RegDate: "2025-06-05"},
	}
}

func TestFilterLeadsDefaultSort(t *testing.T) {
	out := FilterLeads(listFixture(), LeadQuery{})

	// Newest registration first.
	assert.Equal(t, []string{"b", "c", "a"}, leadIDs(out))
}

func TestFilterLeadsSearch(t *testing.T) {
	t.Run("by name, case-insensitive", func(t *testing.T) {
		out := FilterLeads(listFixture(), LeadQuery{Search: "dana"})
		assert.Equal(t, []string{"c"}, leadIDs(out))
	})

	t.Run("by phone fragment", func(t *testing.T) {
		out := FilterLeads(listFixture(), LeadQuery{Search: "0502"})
		assert.Equal(t, []string{"b"}, leadIDs(out))
	})

	t.Run("by city", func(t *testing.T) {
		out := FilterLeads(listFixture(), LeadQuery{Search: "חיפה"})
		assert.Equal(t, []string{"b"}, leadIDs(out))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterLeads(listFixture(), LeadQuery{Search: "xyz"}))
	})
}

func TestFilterLeadsStatus(t *testing.T) {
	out := FilterLeads(listFixture(), LeadQuery{Status: "3"})
	assert.Equal(t, []string{"b"}, leadIDs(out))

	// "all" and garbage both mean no status filter.
	assert.Len(t, FilterLeads(listFixture(), LeadQuery{Status: "all"}), 3)
	assert.Len(t, FilterLeads(listFixture(), LeadQuery{Status: "open"}), 3)
}

func TestFilterLeadsSortByQuote(t *testing.T) {
	asc := FilterLeads(listFixture(), LeadQuery{SortBy: "quote", SortDir: "asc"})
	assert.Equal(t, []string{"a", "c", "b"}, leadIDs(asc))

	desc := FilterLeads(listFixture(), LeadQuery{SortBy: "quote", SortDir: "desc"})
	assert.Equal(t, []string{"b", "c", "a"}, leadIDs(desc))
}

func TestFilterLeadsDoesNotMutateSnapshot(t *testing.T) {
	leads := listFixture()
	FilterLeads(leads, LeadQuery{SortBy: "quote", SortDir: "desc"})

	assert.Equal(t, "a", leads[0].ID)
	assert.Equal(t, "b", leads[1].ID)
}

func leadIDs(leads []entity.Lead) []string {
	ids := make([]string, len(leads))
	for i, l := range leads {
		ids[i] = l.ID
	}
	return ids
}
