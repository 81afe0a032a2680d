package corpus

import "errors"

var (
	// ErrSourceUnavailable is returned when the corpus source cannot be read at all.
	ErrSourceUnavailable = errors.New("corpus source unavailable")

	// ErrMalformedFile is returned when a symbol directory file cannot be parsed.
	ErrMalformedFile = errors.New("malformed symbol directory file")
)
