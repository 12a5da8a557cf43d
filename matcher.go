package zrx

import "github.com/bmatcuk/doublestar/v4"

// absent is the value an absent optional component is matched as.
//
// U+FFFE is a non-character that never appears in a proper UTF-8 string, so
// the wildcard pattern "**" matches it while any narrower pattern correctly
// fails to match "nothing". The component sets do not retain which patterns
// were substituted wildcards, and tracking that separately would cost more
// than the sentinel.
const absent = "￾"

// Matcher index positions of the per-component pattern sets.
const (
	setScheme = iota
	setBinding
	setContext
	setPath
	setFragment
)

// patternSet is one compiled pattern per added selector, in insertion
// order, for a single component.
type patternSet []string

// clone returns an independent copy of the set.
func (s patternSet) clone() patternSet {
	if s == nil {
		return nil
	}

	out := make(patternSet, len(s))
	copy(out, s)

	return out
}

// isMatch reports whether any pattern in the set matches the value.
func (s patternSet) isMatch(value string) bool {
	for _, pattern := range s {
		if doublestar.MatchUnvalidated(pattern, value) {
			return true
		}
	}

	return false
}

// Matcher matches identifiers against a compiled set of selectors.
//
// A matcher holds five independent pattern sets, one per component, each
// with one pattern for every selector added to the Builder. Matching tests
// an identifier's components against the sets and intersects the results,
// so an arbitrary number of selectors is answered in a single pass.
//
// Matchers are immutable once built and safe for concurrent reads.
type Matcher struct {
	// sets holds the per-component pattern sets in span order.
	sets [5]patternSet
}

// ParseMatcher creates a matcher from a single selector string.
func ParseMatcher(value string) (*Matcher, error) {
	builder := NewBuilder()
	if err := builder.AddString(value); err != nil {
		return nil, err
	}

	return builder.Build()
}

// Len returns the number of selectors the matcher was built from.
func (m *Matcher) Len() int {
	return len(m.sets[setScheme])
}

// Clone returns an independent copy of the matcher.
func (m *Matcher) Clone() *Matcher {
	out := &Matcher{}
	for i, set := range m.sets {
		out.sets[i] = set.clone()
	}

	return out
}

// IsMatch reports whether any of the underlying selectors matches the
// identifier.
//
// Components are compared in descending variability, starting with the
// path, to short-circuit on the component most likely to mismatch. Absent
// optional components are matched as the sentinel value, so wildcards
// match them and narrower patterns do not.
func (m *Matcher) IsMatch(id *ID) bool {
	binding, bindingOK := id.Binding()
	fragment, fragmentOK := id.Fragment()

	return m.sets[setPath].isMatch(id.Path()) &&
		m.sets[setContext].isMatch(id.Context()) &&
		m.sets[setScheme].isMatch(id.Scheme()) &&
		m.sets[setBinding].isMatch(orAbsent(binding, bindingOK)) &&
		m.sets[setFragment].isMatch(orAbsent(fragment, fragmentOK))
}

// Matches returns the indexes of the selectors matching the identifier, in
// the order the selectors were added.
//
// For each component, the set of matching pattern indexes is collected; an
// absent optional component counts as a match for every selector. A match
// count is kept per selector slot, and as soon as one component matches
// nothing the result is known to be empty and returned immediately. The
// result contains the slots that matched in all five components.
func (m *Matcher) Matches(id *ID) []int {
	n := m.Len()
	if n == 0 {
		return nil
	}

	binding, bindingOK := id.Binding()
	fragment, fragmentOK := id.Fragment()

	// Compare components in descending variability, like IsMatch.
	dims := [5]struct {
		set   patternSet
		value string
		ok    bool
	}{
		{m.sets[setPath], id.Path(), true},
		{m.sets[setContext], id.Context(), true},
		{m.sets[setScheme], id.Scheme(), true},
		{m.sets[setBinding], binding, bindingOK},
		{m.sets[setFragment], fragment, fragmentOK},
	}

	slots := make([]uint8, n)
	for _, dim := range dims {
		// Wildcard match: an absent component matches every selector.
		if !dim.ok {
			for i := range slots {
				slots[i]++
			}

			continue
		}

		matched := false
		for i, pattern := range dim.set {
			if doublestar.MatchUnvalidated(pattern, dim.value) {
				slots[i]++
				matched = true
			}
		}

		if !matched {
			return nil
		}
	}

	var out []int
	for i, count := range slots {
		if count == 5 {
			out = append(out, i)
		}
	}

	return out
}

// orAbsent maps an absent component to the sentinel value.
func orAbsent(value string, ok bool) string {
	if !ok {
		return absent
	}

	return value
}
