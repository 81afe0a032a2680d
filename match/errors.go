package match

import "errors"

var (
	// ErrSourceRequired is returned when a corpus source is not provided.
	ErrSourceRequired = errors.New("corpus source required")

	// ErrInvalidNGramSize is returned for an n-gram size below 1.
	ErrInvalidNGramSize = errors.New("n-gram size must be at least 1")

	// ErrInvalidEmbedDim is returned for a non-positive embedding dimension.
	ErrInvalidEmbedDim = errors.New("embedding dimension must be positive")

	// ErrInvalidWeights is returned when a blend weight is negative.
	ErrInvalidWeights = errors.New("blend weights must be non-negative")

	// ErrInvalidThreshold is returned for an acceptance threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("acceptance threshold must be in [0, 1]")
)
