package badger

import "encoding/binary"

// Key prefixes for different data types
const (
	chunkPrefix   = "chkrec"
	chunkBuildKey = "chkbuild"
	answerPrefix  = "ansrec"
	faqPrefix     = "faqrec"
)

// makeChunkKey generates an ordered key for a chunk by build position.
// BigEndian positions keep lexicographic iteration in insertion order,
// which the index relies on for deterministic rankings.
func makeChunkKey(position uint64) []byte {
	prefix := chunkPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], position)
	return buf
}

// makeAnswerKey generates a key for a cached answer by normalized query.
func makeAnswerKey(key string) []byte {
	return []byte(answerPrefix + ":" + key)
}

// makeFAQKey generates an ordered key for a FAQ item by corpus position.
func makeFAQKey(position uint64) []byte {
	prefix := faqPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], position)
	return buf
}

// makeChunkBuildKey is the key holding the build timestamp record.
func makeChunkBuildKey() []byte {
	return []byte(chunkBuildKey)
}
