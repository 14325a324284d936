package adapters

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore(Bar{ID: "a", Seq: "A"})
	snap := s.All()
	s.Append(Bar{ID: "b", Seq: "C"})
	assert.Len(t, snap, 1)
	assert.Equal(t, 2, s.Len())

	snap[0].ID = "mutated"
	assert.Equal(t, "a", s.All()[0].ID)
}

func TestStoreSetCopiesInput(t *testing.T) {
	in := []Bar{{ID: "a", Seq: "A"}}
	var s Store
	s.Set(in)
	in[0].ID = "changed"
	assert.Equal(t, "a", s.All()[0].ID)

	s.Set(nil)
	assert.Zero(t, s.Len())
}

func TestStoreConcurrentAppend(t *testing.T) {
	var (
		s  Store
		wg sync.WaitGroup
	)
	const writers, per = 8, 200
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < per; i++ {
				s.Append(Bar{ID: fmt.Sprintf("w%d-%d", w, i), Seq: "ACGT"})
				_ = s.All()
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, writers*per, s.Len())

	// Per-writer order is preserved.
	last := map[byte]int{}
	for _, b := range s.All() {
		var w, i int
		_, err := fmt.Sscanf(b.ID, "w%d-%d", &w, &i)
		require.NoError(t, err)
		if prev, ok := last[byte(w)]; ok {
			assert.Greater(t, i, prev)
		}
		last[byte(w)] = i
	}
}
