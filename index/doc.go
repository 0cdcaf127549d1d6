// Package index embeds chunks and answers nearest-neighbor similarity
// queries over them.
//
// The index itself is a brute-force inner-product structure: every vector is
// L2-normalized at build time, so similarity is cosine similarity and a
// query is a single pass over the chunk set. Corpus sizes here are a few
// thousand chunks, well under where an approximate structure would pay off.
//
// Builder embeds chunk sets on a worker pool. Manager owns the live index,
// swaps rebuilds in atomically, and persists the embedded chunk set through
// a storage.ChunkStore so restarts skip re-embedding.
package index
