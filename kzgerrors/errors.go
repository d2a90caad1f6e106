// Package kzgerrors defines the sentinel error values returned by every
// layer of the KZG verification core, from byte-container construction down
// to the batch pairing check.
//
// Callers should match with errors.Is, not string comparison: every error
// the core itself produces is, or wraps with %w, one of the four sentinels
// below. The file-open error of kzg4844.LoadTrustedSetupFile is returned
// unwrapped.
package kzgerrors

import "errors"

var (
	// ErrInvalidBytesLength is returned when a fixed-size byte container is
	// constructed from a slice of the wrong length, or when parallel arrays
	// passed to a batch operation have mismatched lengths.
	ErrInvalidBytesLength = errors.New("invalid bytes length")

	// ErrBadArgs is returned for any semantic decode failure: a scalar at or
	// above the field modulus, a curve point off the curve or outside the
	// prime-order subgroup, a malformed compression flag, or a batch whose
	// cardinalities disagree after length checks already passed.
	ErrBadArgs = errors.New("bad arguments")

	// ErrInvalidTrustedSetup is returned when a trusted setup fails to
	// parse: wrong point counts, malformed hex, or a point/scalar that does
	// not decode.
	ErrInvalidTrustedSetup = errors.New("invalid trusted setup")

	// ErrUnexpected marks an invariant the arithmetic oracle is not
	// supposed to be able to violate. Seeing it means a precondition this
	// package believed impossible was false; treat it as a programmer
	// error, not a user-input error.
	ErrUnexpected = errors.New("unexpected internal error")
)
