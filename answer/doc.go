// Package answer resolves a question to a response through a fixed
// cascade of strategies: cached answer, grounded generation against a
// matched guide section, hierarchical semantic search over the vector
// index, keyword scoring against the FAQ corpus, and finally a hinting
// default. Every query produces a well-formed Answer; stage failures are
// logged and treated as misses, never surfaced to the caller.
package answer
