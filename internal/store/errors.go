package store

import "errors"

// Sentinel errors returned by [VaultStorage] implementations. Callers should
// use [errors.Is] to match against these values. A missing file is never an
// error: it is reported through the found result instead.
var (
	// ErrReadingFile is returned when an existing vault or fingerprint file
	// can not be read.
	ErrReadingFile = errors.New("error reading vault file")

	// ErrWritingFile is returned when a vault or fingerprint file can not be
	// replaced.
	ErrWritingFile = errors.New("error writing vault file")
)
