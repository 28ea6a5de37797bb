package snapshot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shirshiz/studio-crm/internal/entity"
)

func TestHolderReplace(t *testing.T) {
	h := NewHolder()

	assert.Empty(t, h.Leads())
	assert.Equal(t, uint64(0), h.Version())

	h.Replace([]entity.Lead{{ID: "a"}, {ID: "b"}})
	assert.Len(t, h.Leads(), 2)
	assert.Equal(t, uint64(1), h.Version())

	// A replace is wholesale, not a merge.
	h.Replace([]entity.Lead{{ID: "c"}})
	assert.Len(t, h.Leads(), 1)
	assert.Equal(t, "c", h.Leads()[0].ID)
	assert.Equal(t, uint64(2), h.Version())
}

func TestHolderLeadLookup(t *testing.T) {
	h := NewHolder()
	h.Replace([]entity.Lead{{ID: "a", Name: "דנה"}})

	l, ok := h.Lead("a")
	assert.True(t, ok)
	assert.Equal(t, "דנה", l.Name)

	_, ok = h.Lead("missing")
	assert.False(t, ok)
}

func TestHolderConcurrentAccess(t *testing.T) {
	h := NewHolder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Replace([]entity.Lead{{ID: "a"}})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.Leads()
				h.Lead("a")
				h.Version()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(800), h.Version())
}
