package internal

import (
	"strings"
)

// Lookup resolves one placeholder occurrence to its value. token is the raw
// inner text of the placeholder and ordinal is the zero-based index of the
// occurrence in source order (used by blank-style placeholders). The second
// return value reports whether a value was found.
type Lookup func(token string, ordinal int) (string, bool)

// Substitute replaces every placeholder occurrence in the template with the
// value produced by lookup, preserving all other text verbatim. It does not
// validate the template's placeholder contract; a missing value or an
// unscannable token surfaces as a SubstituteError carrying the offending
// token. Callers that validated first should never see that error.
func Substitute(template string, lookup Lookup) (string, error) {
	var sb strings.Builder
	sb.Grow(len(template))

	scanner := NewScanner(template, nil)
	result, err := scanner.Scan()
	if err != nil {
		if scanErr, ok := err.(*ScanError); ok {
			return "", &SubstituteError{
				Token:    scanErr.Token,
				Position: scanErr.Position,
				Message:  scanErr.Message,
			}
		}
		return "", err
	}

	last := 0
	for i, ph := range result.Placeholders {
		value, ok := lookup(ph.Token, i)
		if !ok {
			return "", &SubstituteError{
				Token:    ph.Token,
				Position: ph.Position,
				Message:  ErrMsgValueNotFound,
			}
		}
		sb.WriteString(template[last:ph.Position.Offset])
		sb.WriteString(value)
		last = ph.Position.Offset + len(ph.Form())
	}
	sb.WriteString(template[last:])
	return sb.String(), nil
}

// SubstituteError represents a failure to resolve a placeholder at
// substitution time.
type SubstituteError struct {
	Token    string
	Position Position
	Message  string
}

func (e *SubstituteError) Error() string {
	return e.Message + ": {" + e.Token + "} at " + e.Position.String()
}
