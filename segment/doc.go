// Package segment turns markdown guide documents into retrievable chunks.
//
// Documents use a heading hierarchy of levels 2 through 5: level 2 is the
// coarse category, deeper levels narrow the topic. The segmenter walks the
// document once and emits a chunk per closed heading section, deepest
// sections first within a closing run. Sections written in the explicit
// 질문/답변 FAQ style yield one qa chunk per pair.
//
// Segmentation is deterministic: the same document text always produces the
// same chunk sequence, including chunk ids and keyword order.
package segment
