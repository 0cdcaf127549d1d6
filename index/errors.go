package index

import "errors"

var (
	// ErrNotReady indicates a search was attempted before any index was
	// built or loaded.
	ErrNotReady = errors.New("index not ready")

	// ErrEmbedderRequired indicates a nil embedder was passed to a constructor.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrNoChunks indicates a build was attempted over an empty chunk set.
	ErrNoChunks = errors.New("no chunks to index")

	// ErrVectorCount indicates the embedder returned a different number of
	// vectors than texts submitted.
	ErrVectorCount = errors.New("embedder returned wrong vector count")

	// ErrInvalidAttempts indicates a retry count below one.
	ErrInvalidAttempts = errors.New("retry attempts must be positive")
)
