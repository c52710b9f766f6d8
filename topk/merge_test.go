package topk

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEntryLists(t *testing.T) {
	t.Run("no lists", func(t *testing.T) {
		assert.Empty(t, MergeEntryLists(5))
		assert.Empty(t, MergeEntryLists(5, nil, nil))
	})

	t.Run("single list truncates without aliasing", func(t *testing.T) {
		src := []Entry{{0, 1}, {1, 2}, {2, 3}}
		got := MergeEntryLists(2, src)

		require.Equal(t, []Entry{{0, 1}, {1, 2}}, got)
		got[0] = Entry{9, 9}
		assert.Equal(t, Entry{0, 1}, src[0])
	})

	t.Run("two lists", func(t *testing.T) {
		a := []Entry{{0, 1}, {2, 4}}
		b := []Entry{{1, 2}, {3, 3}}
		assert.Equal(t, []Entry{{0, 1}, {1, 2}, {3, 3}}, MergeEntryLists(3, a, b))
	})

	t.Run("ties drain by index", func(t *testing.T) {
		a := []Entry{{4, 1}}
		b := []Entry{{1, 1}}
		c := []Entry{{3, 1}}
		assert.Equal(t, []Entry{{1, 1}, {3, 1}, {4, 1}}, MergeEntryLists(3, a, b, c))
	})

	t.Run("k larger than total", func(t *testing.T) {
		a := []Entry{{0, 1}}
		b := []Entry{{1, 2}}
		assert.Equal(t, []Entry{{0, 1}, {1, 2}}, MergeEntryLists(10, a, b))
	})

	t.Run("zero k", func(t *testing.T) {
		assert.Empty(t, MergeEntryLists(0, []Entry{{0, 1}}))
	})
}

// Merging drained partitions must match a single selector over the union,
// for any number of lists (exercising the 1-, 2- and N-way paths).
func TestMergeEntryListsEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(17))

	for _, parts := range []int{1, 2, 3, 9, 12} {
		for _, k := range []int{1, 8, 50} {
			entries := randomEntries(rng, 240)

			single := NewSelector(k)
			for _, e := range entries {
				single.Offer(e.Index, e.Score)
			}

			lists := make([][]Entry, parts)
			for p := 0; p < parts; p++ {
				lo := p * len(entries) / parts
				hi := (p + 1) * len(entries) / parts

				sel := NewSelector(k)
				for _, e := range entries[lo:hi] {
					sel.Offer(e.Index, e.Score)
				}
				lists[p] = sel.Drain()
			}

			assert.Equal(t, single.Drain(), MergeEntryLists(k, lists...), "parts=%d k=%d", parts, k)
		}
	}
}

func TestMergeEntryListsInto(t *testing.T) {
	buf := make([]Entry, 0, 8)
	a := []Entry{{0, 1}, {1, 5}}
	b := []Entry{{2, 3}}

	MergeEntryListsInto(&buf, 2, a, b)
	assert.Equal(t, []Entry{{0, 1}, {2, 3}}, buf)

	// Reuse clears previous contents.
	MergeEntryListsInto(&buf, 1, b)
	assert.Equal(t, []Entry{{2, 3}}, buf)
}
