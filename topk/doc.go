// Package topk provides the bounded selection structures used to keep the k
// best candidates per query.
//
// Scores follow an internal "smaller is better" convention; the engine maps
// similarity metrics into it by negation. Ties are broken by ascending index,
// which makes selection a total order: any partitioning of the candidate
// stream, offered to separate Selectors and merged, yields exactly the same
// k entries as a single sequential pass.
package topk
