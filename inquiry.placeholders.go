package inquiry

import (
	"sort"

	"go.uber.org/zap"

	"github.com/itsatony/go-inquiry/internal"
)

// PlaceholderStyle is the substitution style of a template's placeholders.
// A template uses exactly one style across all of its placeholders.
type PlaceholderStyle int

const (
	// StyleNamed substitutes by keyword: {account}, {year}.
	StyleNamed PlaceholderStyle = iota + 1
	// StyleIndexed substitutes by position-by-number: {0}, {1}.
	StyleIndexed
	// StyleBlank substitutes by pure left-to-right order: {}.
	StyleBlank
)

// String returns the human-readable style name.
func (s PlaceholderStyle) String() string {
	return internalStyle(s).String()
}

// internalStyle converts a public style to its internal representation.
func internalStyle(s PlaceholderStyle) internal.Style {
	switch s {
	case StyleNamed:
		return internal.StyleNamed
	case StyleIndexed:
		return internal.StyleIndexed
	case StyleBlank:
		return internal.StyleBlank
	default:
		return internal.StyleInvalid
	}
}

// publicStyle converts an internal style to its public representation.
func publicStyle(s internal.Style) PlaceholderStyle {
	switch s {
	case internal.StyleNamed:
		return StyleNamed
	case internal.StyleIndexed:
		return StyleIndexed
	default:
		return StyleBlank
	}
}

// PlaceholderSet is the set of required substitution slots discovered in a
// template, tagged with the template's resolved style.
//
// For named and indexed styles, repeated references to the same token
// collapse to one required slot: a name or index used twice still needs
// just one supplied value. Blank placeholders are positionally distinct,
// so each occurrence is its own required slot.
type PlaceholderSet struct {
	style PlaceholderStyle
	slots []string
}

// Style returns the template's resolved placeholder style. For a template
// without placeholders the style carries no meaning; no substitution will
// occur.
func (s *PlaceholderSet) Style() PlaceholderStyle {
	return s.style
}

// Count returns the number of required slots.
func (s *PlaceholderSet) Count() int {
	return len(s.slots)
}

// IsEmpty reports whether the template is parameter-free.
func (s *PlaceholderSet) IsEmpty() bool {
	return len(s.slots) == 0
}

// Tokens returns the slot tokens in first-seen source order.
func (s *PlaceholderSet) Tokens() []string {
	tokens := make([]string, len(s.slots))
	copy(tokens, s.slots)
	return tokens
}

// Forms returns the bracketed textual forms of the required slots, sorted
// lexicographically for deterministic error and check-mode output
// (e.g. "{0}", "{1}", "{name}").
func (s *PlaceholderSet) Forms() []string {
	forms := make([]string, len(s.slots))
	for i, token := range s.slots {
		forms[i] = "{" + token + "}"
	}
	sort.Strings(forms)
	return forms
}

// Scan extracts every placeholder occurrence from a template, enforces
// that all occurrences share one style, and returns the resulting
// PlaceholderSet. Templates containing literal, non-placeholder braces are
// unsupported.
func Scan(template string) (*PlaceholderSet, error) {
	return scanWithLogger(template, nil)
}

func scanWithLogger(template string, logger *zap.Logger) (*PlaceholderSet, error) {
	result, err := internal.NewScanner(template, logger).Scan()
	if err != nil {
		return nil, NewScanError(err)
	}
	return newPlaceholderSet(result), nil
}

// newPlaceholderSet builds the public set from a scan result, collapsing
// duplicate tokens for named and indexed styles.
func newPlaceholderSet(result *internal.ScanResult) *PlaceholderSet {
	set := &PlaceholderSet{style: publicStyle(result.Style)}
	if len(result.Placeholders) == 0 {
		return set
	}

	if result.Style == internal.StyleBlank {
		for range result.Placeholders {
			set.slots = append(set.slots, "")
		}
		return set
	}

	seen := make(map[string]bool, len(result.Placeholders))
	for _, ph := range result.Placeholders {
		if seen[ph.Token] {
			continue
		}
		seen[ph.Token] = true
		set.slots = append(set.slots, ph.Token)
	}
	return set
}
