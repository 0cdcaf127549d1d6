// Copyright 2026 Mundap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/mundap-io/mundap/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalChunk serializes a Chunk to bytes.
func MarshalChunk(chunk *core.Chunk) []byte {
	buf := make([]byte, core.ChunkMUS.Size(*chunk))
	core.ChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(data []byte) (*core.Chunk, error) {
	chunk, _, err := core.ChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// MarshalCachedAnswer serializes a CachedAnswer to bytes.
func MarshalCachedAnswer(answer *core.CachedAnswer) []byte {
	buf := make([]byte, core.CachedAnswerMUS.Size(*answer))
	core.CachedAnswerMUS.Marshal(*answer, buf)
	return buf
}

// UnmarshalCachedAnswer deserializes a CachedAnswer from bytes. The
// wire format carries CreatedAt as a unix timestamp, so the decoded
// time is pinned to UTC rather than the process-local zone.
func UnmarshalCachedAnswer(data []byte) (*core.CachedAnswer, error) {
	answer, _, err := core.CachedAnswerMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	answer.CreatedAt = answer.CreatedAt.UTC()
	return &answer, nil
}

// MarshalFAQItem serializes a FAQItem to bytes.
func MarshalFAQItem(item *core.FAQItem) []byte {
	buf := make([]byte, core.FAQItemMUS.Size(*item))
	core.FAQItemMUS.Marshal(*item, buf)
	return buf
}

// UnmarshalFAQItem deserializes a FAQItem from bytes.
func UnmarshalFAQItem(data []byte) (*core.FAQItem, error) {
	item, _, err := core.FAQItemMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
