package format

import (
	"fmt"
	"math"

	"github.com/zensical/zrx/errs"
)

// Span is a half-open byte range [Start, End) into a formatted string's
// backing buffer.
//
// Spans use uint16 instead of int to keep the per-format footprint small;
// formatted strings are never expected to exceed 65535 bytes. Start must
// never be greater than End.
type Span struct {
	// Start of the span, inclusive.
	Start uint16
	// End of the span, exclusive.
	End uint16
}

// Len returns the length of the span.
func (s Span) Len() uint16 {
	return s.End - s.Start
}

// IsEmpty returns whether the span is empty.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Shift moves both bounds of the span by the given amount.
//
// The two half-shifts are ordered by the sign of the shift so that the
// Start <= End invariant holds between them. Returns errs.ErrLength if
// either bound would leave the 16-bit range.
func (s *Span) Shift(by int16) error {
	if by >= 0 {
		if err := s.ShiftEnd(by); err != nil {
			return err
		}

		return s.ShiftStart(by)
	}

	if err := s.ShiftStart(by); err != nil {
		return err
	}

	return s.ShiftEnd(by)
}

// ShiftStart moves the start of the span by the given amount.
// Returns errs.ErrLength if the bound would leave the 16-bit range.
func (s *Span) ShiftStart(by int16) error {
	value := int(s.Start) + int(by)
	if value < 0 || value > math.MaxUint16 {
		return fmt.Errorf("%w: span start %d shifted by %d", errs.ErrLength, s.Start, by)
	}

	s.Start = uint16(value)

	return nil
}

// ShiftEnd moves the end of the span by the given amount.
// Returns errs.ErrLength if the bound would leave the 16-bit range.
func (s *Span) ShiftEnd(by int16) error {
	value := int(s.End) + int(by)
	if value < 0 || value > math.MaxUint16 {
		return fmt.Errorf("%w: span end %d shifted by %d", errs.ErrLength, s.End, by)
	}

	s.End = uint16(value)

	return nil
}

// initSpans returns n empty spans at consecutive offsets, leaving a one-byte
// gap between neighbors for the separator.
func initSpans(n int) []Span {
	spans := make([]Span, n)
	for i := range spans {
		at := uint16(i) //nolint:gosec // n is capped at MaxSpans
		spans[i] = Span{Start: at, End: at}
	}

	return spans
}
