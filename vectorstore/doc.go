// Package vectorstore owns the searchable vector database.
//
// A Store is an immutable, row-major float32 buffer plus shape metadata.
// Vectors are stored contiguously, giving sequential scans cache locality and
// letting the batch kernels walk whole row ranges without gathering.
//
// Stores are never edited in place. Loading new data builds a new Store; the
// engine swaps it in atomically so in-flight searches keep reading the
// snapshot they started with.
//
// The constructor copies the caller's buffer, so the caller may reuse or free
// its memory immediately, and caches the L2 norm of every row for the cosine
// search path.
package vectorstore
