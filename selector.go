package zrx

import (
	"fmt"

	"github.com/zensical/zrx/errs"
	"github.com/zensical/zrx/format"
)

// selectorTag is the literal tag of the selector wire format.
const selectorTag = "zrs"

// selectorWildcard is the string form of a fully wildcarded selector.
const selectorWildcard = "zrs:::::"

// Selector is a pattern over the five identifier components.
//
// Selectors share the identifier shape but no component is required: an
// empty component is a wildcard that matches any value, including an absent
// optional component. Non-empty components are glob patterns supporting
// '*', '**', '?' and bracket classes.
//
// The wire format is:
//
//	zrs:<scheme>:<binding>:<context>:<path>:<fragment>
//
// Selectors are building blocks for a Matcher, which compiles an arbitrary
// number of them for matching identifiers in a single pass.
type Selector struct {
	// format is the backing formatted string.
	format *format.Format
}

// NewSelector creates a fully wildcarded selector that matches every
// identifier. Narrow it with the setters.
func NewSelector() *Selector {
	f, err := format.Parse(selectorWildcard, numSpans)
	if err != nil {
		// The wildcard form is a constant with the correct arity.
		panic(err)
	}

	return &Selector{format: f}
}

// ParseSelector creates a selector from its string representation.
//
// The string must contain exactly five ':' separators; every component may
// be empty. Returns errs.ErrBackslash, errs.ErrCardinality, errs.ErrLength
// or errs.ErrPrefix on invalid input.
func ParseSelector(value string) (*Selector, error) {
	if err := validate(value); err != nil {
		return nil, err
	}

	f, err := format.Parse(value, numSpans)
	if err != nil {
		return nil, err
	}

	if tag := f.Get(spanTag); tag != selectorTag {
		return nil, fmt.Errorf("%w: %q", errs.ErrPrefix, tag)
	}

	return &Selector{format: f}, nil
}

// Scheme returns the scheme pattern. The second return value is false when
// the component is a wildcard.
func (s *Selector) Scheme() (string, bool) {
	value := s.format.Get(spanScheme)

	return value, value != ""
}

// Binding returns the binding pattern. The second return value is false
// when the component is a wildcard.
func (s *Selector) Binding() (string, bool) {
	value := s.format.Get(spanBinding)

	return value, value != ""
}

// Context returns the context pattern. The second return value is false
// when the component is a wildcard.
func (s *Selector) Context() (string, bool) {
	value := s.format.Get(spanContext)

	return value, value != ""
}

// Path returns the path pattern. The second return value is false when the
// component is a wildcard.
func (s *Selector) Path() (string, bool) {
	value := s.format.Get(spanPath)

	return value, value != ""
}

// Fragment returns the fragment pattern. The second return value is false
// when the component is a wildcard.
func (s *Selector) Fragment() (string, bool) {
	value := s.format.Get(spanFragment)

	return value, value != ""
}

// SetScheme updates the scheme pattern. The empty string resets the
// component to a wildcard. Returns errs.ErrBackslash or errs.ErrLength on
// invalid input.
func (s *Selector) SetScheme(scheme string) error {
	if err := validate(scheme); err != nil {
		return err
	}

	return s.format.Set(spanScheme, scheme)
}

// SetBinding updates the binding pattern. The empty string resets the
// component to a wildcard. Returns errs.ErrBackslash or errs.ErrLength on
// invalid input.
func (s *Selector) SetBinding(binding string) error {
	if err := validate(binding); err != nil {
		return err
	}

	return s.format.Set(spanBinding, binding)
}

// SetContext updates the context pattern. The empty string resets the
// component to a wildcard. Returns errs.ErrBackslash or errs.ErrLength on
// invalid input.
func (s *Selector) SetContext(context string) error {
	if err := validate(context); err != nil {
		return err
	}

	return s.format.Set(spanContext, context)
}

// SetPath updates the path pattern. The empty string resets the component
// to a wildcard. Returns errs.ErrBackslash or errs.ErrLength on invalid
// input.
func (s *Selector) SetPath(path string) error {
	if err := validate(path); err != nil {
		return err
	}

	return s.format.Set(spanPath, path)
}

// SetFragment updates the fragment pattern. The empty string resets the
// component to a wildcard. Returns errs.ErrBackslash or errs.ErrLength on
// invalid input.
func (s *Selector) SetFragment(fragment string) error {
	if err := validate(fragment); err != nil {
		return err
	}

	return s.format.Set(spanFragment, fragment)
}

// String returns the string representation.
func (s *Selector) String() string {
	return s.format.String()
}

// Clone returns a deep copy of the selector.
func (s *Selector) Clone() *Selector {
	return &Selector{format: s.format.Clone()}
}

// Equal reports whether two selectors hold identical encoded bytes.
func (s *Selector) Equal(other *Selector) bool {
	return s.format.Equal(other.format)
}

// Compare orders two selectors by their raw encoded bytes.
func (s *Selector) Compare(other *Selector) int {
	return s.format.Compare(other.format)
}

// Sum64 returns the xxHash64 of the raw encoded bytes.
func (s *Selector) Sum64() uint64 {
	return s.format.Sum64()
}

// MarshalText implements encoding.TextMarshaler using the wire format.
func (s *Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the wire format.
func (s *Selector) UnmarshalText(text []byte) error {
	parsed, err := ParseSelector(string(text))
	if err != nil {
		return err
	}

	*s = *parsed

	return nil
}
