package source

import "errors"

var (
	// ErrUnknownDocument is returned when a sourceId does not name a
	// document in the store's directory.
	ErrUnknownDocument = errors.New("unknown source document")

	// ErrNoDocuments is returned when the directory holds no markdown
	// documents.
	ErrNoDocuments = errors.New("no source documents")

	// ErrInvalidRange is returned when a requested line range is empty
	// after clamping to the document.
	ErrInvalidRange = errors.New("invalid line range")
)
