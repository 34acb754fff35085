package inquiry

import (
	"sort"
)

// Validate checks materialized parameters against a template's discovered
// placeholders. It never mutates its inputs; on success the parameters are
// guaranteed to satisfy every slot the template requires.
//
// Rules, first failing rule wins:
//  1. A template requiring placeholders with no parameters supplied at all
//     fails immediately.
//  2. Indexed and blank styles require an ordered sequence whose length
//     equals the slot count exactly. A bare scalar is accepted only when
//     exactly one slot is required.
//  3. Named style requires a mapping covering exactly the discovered
//     names. Missing and unrecognized keys are collected together and
//     reported in one error, each list sorted.
//  4. A parameter-free template accepts any supplied parameters silently;
//     substitution simply does not occur.
func Validate(params Params, set *PlaceholderSet) error {
	if set.IsEmpty() {
		return nil
	}
	if params.Len() == 0 {
		return NewParamsRequiredError(set)
	}

	switch set.Style() {
	case StyleNamed:
		return validateNamed(params, set)
	default:
		return validatePositional(params, set)
	}
}

// validatePositional enforces sequence shape and exact count for indexed
// and blank styles.
func validatePositional(params Params, set *PlaceholderSet) error {
	if params.IsMapping() {
		return NewSequenceRequiredError(set)
	}
	if params.IsScalar() && set.Count() != 1 {
		return NewCountMismatchError(set, params.Len())
	}
	if params.Len() != set.Count() {
		return NewCountMismatchError(set, params.Len())
	}
	return nil
}

// validateNamed enforces mapping shape and exact key coverage. Both checks
// run; the offenders of both are reported together.
func validateNamed(params Params, set *PlaceholderSet) error {
	if !params.IsMapping() {
		return NewMappingRequiredError(set)
	}

	names := make(map[string]bool, set.Count())
	for _, token := range set.Tokens() {
		names[token] = true
	}
	mapping := params.Mapping()

	var missing []string
	for name := range names {
		if _, ok := mapping[name]; !ok {
			missing = append(missing, name)
		}
	}
	var unrecognized []string
	for key := range mapping {
		if !names[key] {
			unrecognized = append(unrecognized, key)
		}
	}

	if len(missing) == 0 && len(unrecognized) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(unrecognized)
	return NewKeyCoverageError(set, missing, unrecognized)
}
