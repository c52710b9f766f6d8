package topk

import "container/heap"

// MergeEntryLists merges sorted entry lists into a single sorted list of at
// most k entries. Inputs must be ordered best-to-worst (as produced by
// Drain); the output is freshly allocated and never aliases an input.
func MergeEntryLists(k int, lists ...[]Entry) []Entry {
	out := make([]Entry, 0, k)
	MergeEntryListsInto(&out, k, lists...)
	return out
}

// MergeEntryListsInto merges sorted entry lists into the provided buffer,
// clearing it first.
func MergeEntryListsInto(dst *[]Entry, k int, lists ...[]Entry) {
	*dst = (*dst)[:0]
	if k <= 0 {
		return
	}

	// Filter out empty lists. A small fixed-size array avoids allocation for
	// the common fan-out widths (up to 8 partitions).
	var activeBuf [8][]Entry
	var active [][]Entry
	if len(lists) <= 8 {
		active = activeBuf[:0]
	} else {
		active = make([][]Entry, 0, len(lists))
	}

	for _, l := range lists {
		if len(l) > 0 {
			active = append(active, l)
		}
	}

	switch len(active) {
	case 0:
		return
	case 1:
		l := active[0]
		if len(l) > k {
			l = l[:k]
		}
		*dst = append(*dst, l...)
		return
	case 2:
		mergeTwoInto(dst, active[0], active[1], k)
		return
	}

	// N-way merge via a min-heap keyed on each list's current head.
	h := make(mergeHeap, 0, len(active))
	for i, list := range active {
		h = append(h, mergeItem{head: list[0], listIdx: i})
	}
	heap.Init(&h)

	for h.Len() > 0 && len(*dst) < k {
		item := h[0]
		*dst = append(*dst, item.head)

		if next := item.elemIdx + 1; next < len(active[item.listIdx]) {
			h[0] = mergeItem{
				head:    active[item.listIdx][next],
				listIdx: item.listIdx,
				elemIdx: next,
			}
			heap.Fix(&h, 0)
		} else {
			heap.Pop(&h)
		}
	}
}

func mergeTwoInto(dst *[]Entry, a, b []Entry, k int) {
	i, j := 0, 0
	for len(*dst) < k && (i < len(a) || j < len(b)) {
		switch {
		case i < len(a) && j < len(b):
			if Less(b[j], a[i]) {
				*dst = append(*dst, b[j])
				j++
			} else {
				*dst = append(*dst, a[i])
				i++
			}
		case i < len(a):
			*dst = append(*dst, a[i])
			i++
		default:
			*dst = append(*dst, b[j])
			j++
		}
	}
}

type mergeItem struct {
	head    Entry
	listIdx int
	elemIdx int
}

type mergeHeap []mergeItem

func (h mergeHeap) Len() int { return len(h) }

// Less orders by the entry total order, then by list position so equal
// duplicates drain in a stable order.
func (h mergeHeap) Less(i, j int) bool {
	if h[i].head != h[j].head {
		return Less(h[i].head, h[j].head)
	}
	return h[i].listIdx < h[j].listIdx
}

func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x any) {
	*h = append(*h, x.(mergeItem))
}

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
