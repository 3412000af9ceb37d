// Package errs defines the sentinel errors shared across the vlen codec.
//
// All errors returned by the codec wrap one of these sentinels, so callers
// can classify failures with errors.Is regardless of the detail attached at
// the return site:
//
//	if errors.Is(err, errs.ErrTruncatedInput) {
//	    // fetch more bytes and retry
//	}
package errs

import "errors"

var (
	// ErrBufferTooSmall indicates the destination buffer is shorter than the
	// exact encoded size of the value being written. Nothing is written when
	// this error is returned.
	ErrBufferTooSmall = errors.New("destination buffer too small")

	// ErrTruncatedInput indicates the source buffer ends before the length
	// declared by the first byte of the encoding, or is empty.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrOverflow indicates a well-formed encoding whose value does not fit
	// the requested integer width.
	ErrOverflow = errors.New("value overflows target width")

	// ErrValueTooLarge indicates a value outside [0, 2^128) was passed to a
	// dynamic-width encode entry point.
	ErrValueTooLarge = errors.New("value too large to encode")
)
