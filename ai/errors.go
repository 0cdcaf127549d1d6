package ai

import "errors"

var (
	// ErrNoSection indicates the section classifier declined to pick a
	// section, or picked one outside the offered set.
	ErrNoSection = errors.New("no suitable section")

	// ErrEmptyResponse indicates the chat model returned no usable content.
	ErrEmptyResponse = errors.New("empty model response")
)
