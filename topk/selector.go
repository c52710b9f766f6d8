package topk

// Entry is one retained candidate: a database row index and its score.
type Entry struct {
	Index uint32
	Score float32
}

// Less reports whether a ranks strictly better than b: lower score wins,
// equal scores break toward the lower index.
//
// This is a total order over distinct rows, which is what makes selection
// and merging deterministic regardless of offer order.
func Less(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Index < b.Index
}

// Selector keeps the k best entries seen so far.
//
// Internally it is a binary heap ordered worst-at-top, so a full selector
// rejects or replaces in O(1) comparisons against the current worst entry.
// Value-based storage, no allocations after construction.
type Selector struct {
	k     int
	items []Entry
}

// NewSelector creates a selector retaining at most k entries.
// It panics if k < 1; callers validate k against the store first.
func NewSelector(k int) *Selector {
	if k < 1 {
		panic("topk: k must be at least 1")
	}
	return &Selector{
		k:     k,
		items: make([]Entry, 0, k),
	}
}

// K returns the selector's capacity.
func (s *Selector) K() int { return s.k }

// Len returns the number of entries currently retained.
func (s *Selector) Len() int { return len(s.items) }

// Worst returns the worst retained entry, if any. A full selector admits a
// new candidate only if it beats this entry.
func (s *Selector) Worst() (Entry, bool) {
	if len(s.items) == 0 {
		return Entry{}, false
	}
	return s.items[0], true
}

// Offer considers a candidate. It is inserted if the selector holds fewer
// than k entries, or if it ranks strictly better than the current worst
// (ties lose, keeping the lower-index entry already retained).
func (s *Selector) Offer(index uint32, score float32) {
	e := Entry{Index: index, Score: score}

	if len(s.items) < s.k {
		s.items = append(s.items, e)
		s.siftUp(len(s.items) - 1)
		return
	}

	if !Less(e, s.items[0]) {
		return
	}
	s.items[0] = e
	s.siftDown(0)
}

// Merge offers every entry retained by o into s. o is not modified.
//
// Merging is associative and commutative: selectors fed disjoint partitions
// of a candidate stream merge into exactly the single-pass result.
func (s *Selector) Merge(o *Selector) {
	if o == nil {
		return
	}
	for _, e := range o.items {
		s.Offer(e.Index, e.Score)
	}
}

// Drain removes and returns all retained entries ordered best to worst,
// leaving the selector empty and ready for reuse.
func (s *Selector) Drain() []Entry {
	out := make([]Entry, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out[i] = s.popWorst()
	}
	return out
}

// Reset clears the selector for reuse.
func (s *Selector) Reset() {
	s.items = s.items[:0]
}

func (s *Selector) popWorst() Entry {
	n := len(s.items)
	root := s.items[0]
	last := s.items[n-1]
	s.items[n-1] = Entry{}
	s.items = s.items[:n-1]
	if n-1 > 0 {
		s.items[0] = last
		s.siftDown(0)
	}
	return root
}

// worse reports whether items[i] ranks worse than items[j]; the heap keeps
// the worst entry at the root.
func (s *Selector) worse(i, j int) bool {
	return Less(s.items[j], s.items[i])
}

func (s *Selector) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !s.worse(i, p) {
			return
		}
		s.items[i], s.items[p] = s.items[p], s.items[i]
		i = p
	}
}

func (s *Selector) siftDown(i int) {
	n := len(s.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		worst := l
		if r := l + 1; r < n && s.worse(r, l) {
			worst = r
		}
		if !s.worse(worst, i) {
			return
		}
		s.items[i], s.items[worst] = s.items[worst], s.items[i]
		i = worst
	}
}
