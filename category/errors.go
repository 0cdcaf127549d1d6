package category

import "errors"

var (
	// ErrEmptyMetadata is returned when a metadata file parses but
	// contains no sections.
	ErrEmptyMetadata = errors.New("metadata contains no sections")

	// ErrInvalidMetadata is returned when a metadata file cannot be
	// decoded or a section record is missing required fields.
	ErrInvalidMetadata = errors.New("invalid metadata")
)
