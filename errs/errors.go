// Package errs defines sentinel errors shared across the zrx packages.
//
// All fallible operations wrap one of these values with fmt.Errorf("%w: ...")
// so that callers can classify failures with errors.Is while still receiving
// a message that names the offending input.
package errs

import "errors"

// Sentinel errors for identifier, selector and matcher operations.
var (
	// ErrBackslash indicates a component value contains a backslash.
	// Backslashes must be normalized to forward slashes by the caller before
	// values enter the system, so that identifiers stay portable.
	ErrBackslash = errors.New("backslash in value")

	// ErrCardinality indicates a parsed string does not contain exactly the
	// expected number of ':' separators for its schema.
	ErrCardinality = errors.New("invalid span count")

	// ErrLength indicates a span mutation or parse would require a length or
	// bound outside the 16-bit representable range.
	ErrLength = errors.New("invalid span length")

	// ErrPrefix indicates a parsed string carries the wrong literal tag,
	// e.g. a selector string passed where an identifier is expected.
	ErrPrefix = errors.New("invalid prefix")

	// ErrComponent indicates a required component is empty after parsing.
	ErrComponent = errors.New("missing required component")

	// ErrPattern indicates a selector component is not a valid glob pattern.
	ErrPattern = errors.New("invalid glob pattern")

	// ErrParentDir indicates an identifier path contains a ".." segment,
	// which is rejected to prevent escaping the context directory.
	ErrParentDir = errors.New("parent directory traversal")

	// ErrRootDir indicates an identifier path is absolute or rooted, which
	// is rejected to keep resolved paths portable.
	ErrRootDir = errors.New("rooted path")
)
