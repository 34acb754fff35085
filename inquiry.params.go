package inquiry

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/itsatony/go-inquiry/internal"
)

// RawParams is caller-supplied parameter input before materialization:
// either a sequence of CLI argument tokens or a single parameter literal.
// A RawParams value is immutable after construction.
type RawParams struct {
	args      []string
	literal   string
	isLiteral bool
}

// RawParamsFromArgs builds raw input from CLI argument tokens. For named
// templates each token must be a key:value pair; for positional templates
// tokens are used in the order given.
func RawParamsFromArgs(args []string) RawParams {
	copied := make([]string, len(args))
	copy(copied, args)
	return RawParams{args: copied}
}

// RawParamsFromLiteral builds raw input from a single parameter literal:
// strict JSON, or the permissive literal grammar as a fallback. A string
// literal is one scalar parameter, a sequence supplies positional
// parameters and a mapping supplies named parameters.
func RawParamsFromLiteral(literal string) RawParams {
	return RawParams{literal: literal, isLiteral: true}
}

// IsEmpty reports whether no parameter input was supplied at all.
func (r RawParams) IsEmpty() bool {
	if r.isLiteral {
		return strings.TrimSpace(r.literal) == ""
	}
	return len(r.args) == 0
}

// Params is the materialized, usable form of caller input: either an
// ordered sequence or a key-to-value mapping, shaped to match the
// template's placeholder style.
type Params struct {
	positional []string
	mapping    map[string]string
	isMapping  bool
	scalar     bool
}

// IsMapping reports whether the parameters are a key-to-value mapping.
func (p Params) IsMapping() bool {
	return p.isMapping
}

// IsScalar reports whether the parameters were a single bare scalar. A
// scalar only satisfies a template requiring exactly one slot.
func (p Params) IsScalar() bool {
	return p.scalar
}

// Len returns the number of supplied values.
func (p Params) Len() int {
	if p.isMapping {
		return len(p.mapping)
	}
	return len(p.positional)
}

// Positional returns the ordered value sequence. Empty for mappings.
func (p Params) Positional() []string {
	values := make([]string, len(p.positional))
	copy(values, p.positional)
	return values
}

// Mapping returns the key-to-value mapping. Nil for sequences.
func (p Params) Mapping() map[string]string {
	if p.mapping == nil {
		return nil
	}
	mapping := make(map[string]string, len(p.mapping))
	for k, v := range p.mapping {
		mapping[k] = v
	}
	return mapping
}

// Materialize converts raw caller input into the sequence or mapping shape
// suited to the template's placeholder style. It does not check key
// coverage or counts; that is Validate's job.
func Materialize(raw RawParams, style PlaceholderStyle) (Params, error) {
	if raw.IsEmpty() {
		return Params{}, nil
	}
	if raw.isLiteral {
		return materializeLiteral(raw.literal)
	}
	return materializeArgs(raw.args, style)
}

// materializeArgs shapes CLI argument tokens. Named style splits each
// token on the first separator; positional styles use tokens as given.
func materializeArgs(args []string, style PlaceholderStyle) (Params, error) {
	if style != StyleNamed {
		values := make([]string, len(args))
		copy(values, args)
		return Params{positional: values}, nil
	}

	mapping := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, ParamSeparator)
		if !found {
			return Params{}, NewParamSeparatorError(arg)
		}
		mapping[key] = value
	}
	return Params{mapping: mapping, isMapping: true}, nil
}

// materializeLiteral decodes a parameter literal. Strict JSON is attempted
// first; on failure the permissive literal grammar is tried. If both fail
// the original strict-parse error is reported.
func materializeLiteral(literal string) (Params, error) {
	var decoded any
	strictErr := json.Unmarshal([]byte(literal), &decoded)
	if strictErr == nil {
		return shapeLiteral(decoded)
	}

	parsed, permissiveErr := internal.ParseLiteral(literal)
	if permissiveErr != nil {
		return Params{}, NewParamParseError(strictErr)
	}
	return shapeLiteral(parsed)
}

// shapeLiteral converts a decoded literal into Params.
func shapeLiteral(decoded any) (Params, error) {
	switch v := decoded.(type) {
	case []any:
		values := make([]string, 0, len(v))
		for i, item := range v {
			value, err := stringifyScalar(item)
			if err != nil {
				return Params{}, NewParamElementError(strconv.Itoa(i))
			}
			values = append(values, value)
		}
		return Params{positional: values}, nil
	case map[string]any:
		mapping := make(map[string]string, len(v))
		for key, item := range v {
			value, err := stringifyScalar(item)
			if err != nil {
				return Params{}, NewParamElementError(key)
			}
			mapping[key] = value
		}
		return Params{mapping: mapping, isMapping: true}, nil
	default:
		value, err := stringifyScalar(decoded)
		if err != nil {
			return Params{}, NewParamElementError("")
		}
		return Params{positional: []string{value}, scalar: true}, nil
	}
}

// stringifyScalar renders a decoded scalar as substitution text. Nested
// containers are not usable as substitution values.
func stringifyScalar(v any) (string, error) {
	switch value := v.(type) {
	case string:
		return value, nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(value), nil
	case nil:
		return "", nil
	default:
		return "", NewParamElementError("")
	}
}
