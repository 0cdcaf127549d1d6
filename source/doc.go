// Package source reads the markdown guide documents. Store serves whole
// documents for segmentation and line-range slices for grounded answer
// generation; Watcher reports document changes so the index can rebuild.
//
// Documents are addressed by sourceId, which is the file name inside the
// configured directory, e.g. "생활가이드.md".
package source
