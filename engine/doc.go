// Package engine implements the parallel search coordinator.
//
// A Coordinator binds one immutable vectorstore.Store snapshot and fans a
// query batch out across worker goroutines. Two partitioning axes are used,
// chosen deterministically from the batch size and worker count:
//
//   - queries >= workers: each worker owns a contiguous range of queries and
//     scans the whole store for each of them.
//   - queries < workers: each query's row range is split across workers;
//     every task fills a private top-k selector and the drained partials are
//     merged per query at the join point.
//
// Workers share nothing but the read-only store: each task owns its selector
// and a pooled score buffer, so the hot loop takes no locks. Because
// selection is a total order over (score, row index), the merged result is
// identical to a sequential scan for every worker count and partitioning.
//
// Scores inside the coordinator follow the internal "smaller is better"
// convention; Search converts them to metric-natural values (applying the
// deferred square root for MetricL2, un-negating similarities) before
// returning.
package engine
