// Package format implements the span-indexed string encoding that backs
// identifiers and selectors.
//
// A formatted string holds a fixed number of values separated by ':'. Each
// value occupies a span, a byte range into a single backing buffer, so
// components can be read and rewritten without re-parsing the whole string.
// Values containing ':' or control characters are percent-encoded, which is
// tracked with a per-span flag bit; unescaped spans are returned as
// zero-copy views of the buffer, the expected common case.
//
// The flag set is packed into a single uint64, which caps the arity at 64
// spans. This is a structural limit of the encoding, not a tunable.
package format

import (
	"bytes"
	"fmt"
	"math"
	"unsafe"

	"github.com/zensical/zrx/errs"
	"github.com/zensical/zrx/internal/buffer"
	"github.com/zensical/zrx/internal/hash"
)

// MaxSpans is the maximum arity of a formatted string, bounded by the
// 64-bit encoding flag word.
const MaxSpans = 64

// separator divides the spans of a formatted string.
const separator = ':'

// Format is a fixed-arity formatted string.
//
// Formatted strings are optimized for fast parsing and cloning: span
// bookkeeping makes component reads cheap, and updating one component only
// shifts the spans after it instead of re-parsing. Equality, ordering and
// hashing are defined on the raw encoded bytes, so two formatted strings
// holding the same logical values under different escaping compare unequal.
// This is a deliberate trade-off that callers must not "fix".
type Format struct {
	// value is the string representation.
	value buffer.Buffer
	// spans index the values within the buffer.
	spans []Span
	// flags marks spans holding percent-encoded content.
	flags uint64
}

// New creates an empty formatted string with the given arity.
//
// The buffer holds exactly arity-1 separators and every span is empty.
// Panics if arity is not in [1, MaxSpans]; the arity is a structural
// property known at the call site, so a violation is a programmer error.
func New(arity int) *Format {
	checkArity(arity)

	value := make([]byte, arity-1)
	for i := range value {
		value[i] = separator
	}

	return &Format{
		value: buffer.Buffer{B: value},
		spans: initSpans(arity),
	}
}

// Parse creates a formatted string from its string representation.
//
// The input is scanned once, splitting on ':'. A span containing a '%'
// followed by two hexadecimal digits is flagged as percent-encoded; this is
// a detection heuristic so that reads know to decode, not a validation of
// the escape sequences themselves.
//
// Returns errs.ErrCardinality unless the scan produces exactly arity spans,
// and errs.ErrLength if the input exceeds 65535 bytes. Panics if arity is
// not in [1, MaxSpans].
func Parse(value string, arity int) (*Format, error) {
	checkArity(arity)

	if len(value) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: input is %d bytes", errs.ErrLength, len(value))
	}

	f := &Format{
		value: buffer.FromString(value),
		spans: make([]Span, arity),
	}

	raw := f.value.Bytes()
	start := uint16(0)
	index := 0

	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case c == separator:
			if index == arity-1 {
				return nil, fmt.Errorf("%w: more than %d separators", errs.ErrCardinality, arity-1)
			}

			f.spans[index] = Span{Start: start, End: uint16(i)} //nolint:gosec // len <= MaxUint16
			index++
			start = uint16(i) + 1 //nolint:gosec

		case c == '%' && f.flags&(1<<index) == 0:
			// Percent-encoding is only assumed when a full escape could
			// follow, so stray percent signs keep the fast read path.
			if i+2 < len(raw) && isHex(raw[i+1]) && isHex(raw[i+2]) {
				f.flags |= 1 << index
			}
		}
	}

	f.spans[index] = Span{Start: start, End: uint16(len(raw))} //nolint:gosec

	if index != arity-1 {
		return nil, fmt.Errorf("%w: got %d spans, want %d", errs.ErrCardinality, index+1, arity)
	}

	return f, nil
}

// Get returns the value at the given index.
//
// If the span is not flagged as percent-encoded, the returned string is a
// zero-copy view of the backing buffer and must not be retained across a
// subsequent Set. Otherwise the span is decoded into an owned string.
//
// Panics if the index is out of bounds, which is a programmer error since
// span indexes are fixed by the schema.
func (f *Format) Get(index int) string {
	span := f.spans[index]
	raw := f.value.Bytes()[span.Start:span.End]

	if f.flags&(1<<index) == 0 {
		return bytesToString(raw)
	}

	return Decode(raw)
}

// Set updates the value at the given index.
//
// The value is percent-encoded first; if encoding changed nothing the
// span's flag is cleared, otherwise it is set. The encoded bytes replace
// the span's byte range, the span's end shifts by the length difference,
// and every subsequent span shifts by the same amount, preserving
// contiguity. Spans before the index are untouched.
//
// Returns errs.ErrLength if the length difference cannot be represented in
// a signed 16-bit integer or if a shifted bound would overflow. All bounds
// are validated before any mutation, so a failed Set leaves the formatted
// string unchanged.
func (f *Format) Set(index int, value string) error {
	encoded, changed := Encode(value)

	span := f.spans[index]
	delta := len(encoded) - int(span.Len())
	if delta < math.MinInt16 || delta > math.MaxInt16 {
		return fmt.Errorf("%w: length delta %d", errs.ErrLength, delta)
	}

	// The last span carries the highest bound, so checking it covers every
	// shifted span. Negative deltas cannot underflow: no subsequent bound
	// is smaller than the bytes being removed.
	if last := f.spans[len(f.spans)-1]; int(last.End)+delta > math.MaxUint16 {
		return fmt.Errorf("%w: buffer would exceed %d bytes", errs.ErrLength, math.MaxUint16)
	}

	if changed {
		f.flags |= 1 << index
	} else {
		f.flags &^= 1 << index
	}

	f.value.Splice(int(span.Start), int(span.End), []byte(encoded))

	// The shifts cannot fail: the delta and the highest bound were
	// validated above.
	by := int16(delta)
	if err := f.spans[index].ShiftEnd(by); err != nil {
		return err
	}

	for i := index + 1; i < len(f.spans); i++ {
		if err := f.spans[i].Shift(by); err != nil {
			return err
		}
	}

	return nil
}

// Arity returns the number of spans.
func (f *Format) Arity() int {
	return len(f.spans)
}

// Len returns the length of the string representation in bytes.
func (f *Format) Len() int {
	return f.value.Len()
}

// String returns the string representation.
//
// The returned string is a zero-copy view of the backing buffer and must
// not be retained across a subsequent Set.
func (f *Format) String() string {
	return bytesToString(f.value.Bytes())
}

// Bytes returns the raw encoded bytes of the string representation.
func (f *Format) Bytes() []byte {
	return f.value.Bytes()
}

// Clone returns a deep copy of the formatted string.
func (f *Format) Clone() *Format {
	spans := make([]Span, len(f.spans))
	copy(spans, f.spans)

	return &Format{
		value: f.value.Clone(),
		spans: spans,
		flags: f.flags,
	}
}

// Equal reports whether two formatted strings hold identical encoded bytes.
// Differently-escaped encodings of the same logical values are unequal.
func (f *Format) Equal(other *Format) bool {
	return bytes.Equal(f.value.Bytes(), other.value.Bytes())
}

// Compare orders two formatted strings by their raw encoded bytes.
func (f *Format) Compare(other *Format) int {
	return bytes.Compare(f.value.Bytes(), other.value.Bytes())
}

// Sum64 returns the xxHash64 of the raw encoded bytes.
func (f *Format) Sum64() uint64 {
	return hash.Sum64(f.value.Bytes())
}

// checkArity panics when the arity leaves the structural bounds of the
// encoding. Arity is always known at the call site, so this is never an
// input-dependent failure.
func checkArity(arity int) {
	if arity < 1 || arity > MaxSpans {
		panic(fmt.Sprintf("format: arity %d out of range [1, %d]", arity, MaxSpans))
	}
}

// bytesToString reinterprets b as a string without copying. The result
// aliases b and is only valid while b is unmodified.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}
