package inquiry

import (
	"strconv"

	"github.com/itsatony/go-inquiry/internal"
)

// Substitute replaces every placeholder in the template with its value
// from params, preserving all non-placeholder text verbatim. Substitution
// is all-or-nothing: any unresolvable placeholder fails the whole call.
//
// With empty params the template is returned unchanged. A placeholder that
// cannot be resolved despite params being non-empty (possible when the
// caller skipped Validate) is reported as a substitution error carrying
// the offending key or index.
func Substitute(template string, params Params) (string, error) {
	if params.Len() == 0 {
		return template, nil
	}

	resolved, err := internal.Substitute(template, substitutionLookup(params))
	if err != nil {
		return "", NewSubstituteError(err)
	}
	return resolved, nil
}

// substitutionLookup adapts params to the internal lookup contract:
// mappings resolve by token, sequences by explicit index or by occurrence
// order for blank placeholders.
func substitutionLookup(params Params) internal.Lookup {
	if params.IsMapping() {
		mapping := params.Mapping()
		return func(token string, _ int) (string, bool) {
			value, ok := mapping[token]
			return value, ok
		}
	}

	values := params.Positional()
	return func(token string, ordinal int) (string, bool) {
		var index int
		switch internal.Classify(token) {
		case internal.StyleBlank:
			index = ordinal
		case internal.StyleIndexed:
			parsed, err := strconv.Atoi(token)
			if err != nil {
				return "", false
			}
			index = parsed
		default:
			// Named placeholders need a mapping; a sequence cannot serve them.
			return "", false
		}
		if index < 0 || index >= len(values) {
			return "", false
		}
		return values[index], true
	}
}
