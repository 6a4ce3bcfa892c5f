// Package errs defines the sentinel errors returned by strview's encoding and
// compress packages.
//
// The core strview package never returns errors; its outcomes are encoded in
// the state of the returned View. The packages built on top of it write whole
// records into caller-owned buffers and report failures through these
// sentinels, usually wrapped with context. Test them with errors.Is.
package errs

import "errors"

var (
	// ErrShortBuffer is returned when a record or compressed block does not fit
	// in the destination segment. Nothing is written in that case.
	ErrShortBuffer = errors.New("destination segment too small")

	// ErrInvalidView is returned when an Invalid view is passed as input.
	ErrInvalidView = errors.New("invalid view")

	// ErrUnusableSegment is returned when the destination segment has no buffer.
	ErrUnusableSegment = errors.New("unusable segment")

	// ErrTextTooLong is returned when a string exceeds the limit of its length
	// prefix.
	ErrTextTooLong = errors.New("text exceeds maximum length")

	// ErrInvalidCompressionLevel is returned for an out-of-range codec level.
	ErrInvalidCompressionLevel = errors.New("invalid compression level")

	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
