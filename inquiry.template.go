package inquiry

import (
	"go.uber.org/zap"
)

// Template is a scanned query template that can be resolved multiple times
// with different parameters.
type Template struct {
	source string
	set    *PlaceholderSet
	logger *zap.Logger
}

// newTemplate creates a template from a source string and its scan result.
func newTemplate(source string, set *PlaceholderSet, logger *zap.Logger) *Template {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Template{
		source: source,
		set:    set,
		logger: logger,
	}
}

// Source returns the original template source string.
func (t *Template) Source() string {
	return t.source
}

// Placeholders returns the required substitution slots of the template.
func (t *Template) Placeholders() *PlaceholderSet {
	return t.set
}

// Resolve materializes the raw parameters against the template's style,
// validates them against the placeholder contract, and substitutes them
// into the source. Substitution is all-or-nothing.
func (t *Template) Resolve(raw RawParams) (string, error) {
	params, err := Materialize(raw, t.set.Style())
	if err != nil {
		return "", err
	}
	if err := Validate(params, t.set); err != nil {
		return "", err
	}
	return Substitute(t.source, params)
}
