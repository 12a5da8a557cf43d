package zrx

import (
	"fmt"
	"strings"

	"github.com/zensical/zrx/errs"
	"github.com/zensical/zrx/format"
)

// idTag is the literal tag of the identifier wire format.
const idTag = "zri"

// numSpans is the arity of identifiers and selectors: the literal tag plus
// the five components.
const numSpans = 6

// Component span indexes within the formatted string.
const (
	spanTag = iota
	spanScheme
	spanBinding
	spanContext
	spanPath
	spanFragment
)

// ID is a structured identifier for addressing resources.
//
// Identifiers uniquely identify resources within a system using a compact,
// human-readable string representation with five named components:
//
//   - scheme: the scheme of the resource, e.g. file or git
//   - binding: the binding of the resource, e.g. volume, branch or tag
//   - context: the context of the resource, e.g. source or output directory
//   - path: the path to the resource, e.g. file or folder to resolve
//   - fragment: the fragment of the resource, e.g. line number or anchor
//
// Scheme, context and path are required; binding and fragment are optional.
// Slashes can be used inside components to model hierarchy. Backslashes must
// be normalized to slashes by the caller before values enter the system, so
// every method taking a value returns errs.ErrBackslash when one is found.
//
// The wire format is:
//
//	zri:<scheme>:<binding>:<context>:<path>:<fragment>
//
// Identifiers are ordinary values: Clone for a deep copy, Equal, Compare and
// Sum64 for use as keys. All three operate on the raw encoded bytes, not on
// decoded component values (see format.Format).
type ID struct {
	// format is the backing formatted string.
	format *format.Format
}

// NewID creates an identifier from the three required components.
//
// Each component is validated against the backslash rule and percent-encoded.
// The canonical string form is assembled directly and parsed back, which
// guarantees the result satisfies every formatted-string invariant.
//
// Returns errs.ErrBackslash if a component contains a backslash, and
// errs.ErrComponent if a required component is empty.
func NewID(scheme, context, path string) (*ID, error) {
	for _, value := range []string{scheme, context, path} {
		if err := validate(value); err != nil {
			return nil, err
		}
	}

	es, _ := format.Encode(scheme)
	ec, _ := format.Encode(context)
	ep, _ := format.Encode(path)

	// Assembling the string and parsing it back is faster than setting the
	// components one after another, as every set shifts all later spans.
	var b strings.Builder
	b.Grow(8 + len(es) + len(ec) + len(ep))
	b.WriteString(idTag)
	b.WriteByte(':')
	b.WriteString(es)
	b.WriteString("::")
	b.WriteString(ec)
	b.WriteByte(':')
	b.WriteString(ep)
	b.WriteByte(':')

	return ParseID(b.String())
}

// ParseID creates an identifier from its string representation.
//
// The string must contain exactly five ':' separators. The binding and
// fragment components may be empty; scheme, context and path must not.
//
// Returns errs.ErrBackslash, errs.ErrCardinality, errs.ErrLength,
// errs.ErrPrefix or errs.ErrComponent on invalid input.
func ParseID(value string) (*ID, error) {
	if err := validate(value); err != nil {
		return nil, err
	}

	f, err := format.Parse(value, numSpans)
	if err != nil {
		return nil, err
	}

	if tag := f.Get(spanTag); tag != idTag {
		return nil, fmt.Errorf("%w: %q", errs.ErrPrefix, tag)
	}

	for _, req := range []struct {
		span int
		name string
	}{
		{spanScheme, "scheme"},
		{spanContext, "context"},
		{spanPath, "path"},
	} {
		if f.Get(req.span) == "" {
			return nil, fmt.Errorf("%w: %s", errs.ErrComponent, req.name)
		}
	}

	return &ID{format: f}, nil
}

// Scheme returns the scheme component.
func (id *ID) Scheme() string {
	return id.format.Get(spanScheme)
}

// Binding returns the binding component. The second return value is false
// when the component is absent.
func (id *ID) Binding() (string, bool) {
	value := id.format.Get(spanBinding)

	return value, value != ""
}

// Context returns the context component.
func (id *ID) Context() string {
	return id.format.Get(spanContext)
}

// Path returns the path component.
func (id *ID) Path() string {
	return id.format.Get(spanPath)
}

// Fragment returns the fragment component. The second return value is false
// when the component is absent.
func (id *ID) Fragment() (string, bool) {
	value := id.format.Get(spanFragment)

	return value, value != ""
}

// SetScheme updates the scheme component.
// Returns errs.ErrBackslash or errs.ErrLength on invalid input.
func (id *ID) SetScheme(scheme string) error {
	if err := validate(scheme); err != nil {
		return err
	}

	return id.format.Set(spanScheme, scheme)
}

// SetBinding updates the binding component. Setting it to the empty string
// removes it. Returns errs.ErrBackslash or errs.ErrLength on invalid input.
func (id *ID) SetBinding(binding string) error {
	if err := validate(binding); err != nil {
		return err
	}

	return id.format.Set(spanBinding, binding)
}

// SetContext updates the context component.
// Returns errs.ErrBackslash or errs.ErrLength on invalid input.
func (id *ID) SetContext(context string) error {
	if err := validate(context); err != nil {
		return err
	}

	return id.format.Set(spanContext, context)
}

// SetPath updates the path component.
// Returns errs.ErrBackslash or errs.ErrLength on invalid input.
func (id *ID) SetPath(path string) error {
	if err := validate(path); err != nil {
		return err
	}

	return id.format.Set(spanPath, path)
}

// SetFragment updates the fragment component. Setting it to the empty string
// removes it. Returns errs.ErrBackslash or errs.ErrLength on invalid input.
func (id *ID) SetFragment(fragment string) error {
	if err := validate(fragment); err != nil {
		return err
	}

	return id.format.Set(spanFragment, fragment)
}

// String returns the string representation.
func (id *ID) String() string {
	return id.format.String()
}

// Clone returns a deep copy of the identifier.
func (id *ID) Clone() *ID {
	return &ID{format: id.format.Clone()}
}

// Equal reports whether two identifiers hold identical encoded bytes.
func (id *ID) Equal(other *ID) bool {
	return id.format.Equal(other.format)
}

// Compare orders two identifiers by their raw encoded bytes.
func (id *ID) Compare(other *ID) int {
	return id.format.Compare(other.format)
}

// Sum64 returns the xxHash64 of the raw encoded bytes, for use as a compact
// map key.
func (id *ID) Sum64() uint64 {
	return id.format.Sum64()
}

// MarshalText implements encoding.TextMarshaler using the wire format.
func (id *ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the wire format.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}

	*id = *parsed

	return nil
}
