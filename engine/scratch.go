package engine

import "sync"

// blockRows is the number of rows scored per batch kernel call. One block of
// float32 scores fits comfortably in L1 alongside the rows being scanned.
const blockRows = 256

// scratch holds a worker's per-block score buffer, pooled across searches so
// steady-state scans allocate nothing per task.
type scratch struct {
	scores []float32
}

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{scores: make([]float32, blockRows)}
	},
}

func acquireScratch() *scratch {
	return scratchPool.Get().(*scratch)
}

func releaseScratch(s *scratch) {
	scratchPool.Put(s)
}
