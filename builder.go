package zrx

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/zensical/zrx/errs"
)

// wildcard is the pattern substituted for absent selector components.
//
// Substituting an explicit wildcard, rather than skipping the component,
// keeps every component set at exactly one pattern per selector. The
// parallel indexing is what makes the set intersection in Matcher.Matches
// valid.
const wildcard = "**"

// Builder collects selectors and compiles them into a Matcher.
//
// A builder is write-once: add any number of selectors, then call Build.
// Changing the pattern set of an existing matcher requires a fresh builder.
type Builder struct {
	// sets holds the per-component pattern sets in span order, i.e.
	// scheme, binding, context, path, fragment.
	sets [5]patternSet
}

// NewBuilder creates a matcher builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a selector to the builder.
//
// Each of the five components contributes one pattern to the corresponding
// component set; absent components contribute "**". All five patterns are
// validated before any of them is added, so a failed Add leaves the builder
// unchanged. Returns errs.ErrPattern if a component is not a valid glob.
func (b *Builder) Add(selector *Selector) error {
	patterns := [5]string{
		orWildcard(selector.Scheme()),
		orWildcard(selector.Binding()),
		orWildcard(selector.Context()),
		orWildcard(selector.Path()),
		orWildcard(selector.Fragment()),
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", errs.ErrPattern, pattern)
		}
	}

	for i, pattern := range patterns {
		b.sets[i] = append(b.sets[i], pattern)
	}

	return nil
}

// AddString parses a selector from its string representation and adds it.
// See ParseSelector and Add for the possible errors.
func (b *Builder) AddString(value string) error {
	selector, err := ParseSelector(value)
	if err != nil {
		return err
	}

	return b.Add(selector)
}

// Build compiles the collected selectors into a matcher.
//
// The builder must not be used after Build. Patterns are validated during
// Add, so Build only fails if the builder was tampered with.
func (b *Builder) Build() (*Matcher, error) {
	m := &Matcher{}
	for i, set := range b.sets {
		for _, pattern := range set {
			if !doublestar.ValidatePattern(pattern) {
				return nil, fmt.Errorf("%w: %q", errs.ErrPattern, pattern)
			}
		}

		m.sets[i] = set.clone()
	}

	return m, nil
}

// orWildcard maps an absent component to the universal wildcard pattern.
func orWildcard(value string, ok bool) string {
	if !ok {
		return wildcard
	}

	return value
}
