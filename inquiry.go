// Package inquiry injects caller-supplied parameters into named queries
// embedded in a plain-text accounting ledger.
//
// Queries live in the ledger as directives of the form:
//
//	2024-01-01 query "cash" "SELECT * WHERE account = {account}"
//
// A query template marks its substitution slots with {...} placeholders in
// one of three styles: named ({account}), indexed ({0}, {1}) or blank ({}).
// A single template must use exactly one style; mixing styles is an error.
//
// # Basic Usage
//
// Create an engine and resolve a template against parameters:
//
//	engine := inquiry.MustNew()
//	resolved, err := engine.Resolve(
//	    "SELECT * WHERE account = {account}",
//	    inquiry.RawParamsFromArgs([]string{"account:Assets:Cash"}),
//	)
//	// resolved: "SELECT * WHERE account = Assets:Cash"
//
// # Parameter Input
//
// Parameters arrive either as CLI argument tokens (key:value pairs for
// named templates, bare values for positional ones) or as one literal
// string: strict JSON first, with a permissive literal grammar as a
// fallback. A string literal is a single scalar parameter, a sequence
// supplies positional parameters and a mapping supplies named parameters.
//
// # Validation
//
// Before substitution the supplied parameters are checked against the
// template's discovered placeholders: exact count for indexed and blank
// styles, exact key coverage for named style. Missing and unrecognized
// keys are reported together, sorted. Substitution is all-or-nothing.
//
// # Pipeline
//
// The full CLI pipeline loads the ledger, selects the query by name,
// resolves it and dispatches the result to the external bean-query engine:
//
//	engine := inquiry.MustNew()
//	resolved, err := engine.Run(ctx, "ledger.beancount", "cash",
//	    inquiry.RawParamsFromArgs(args), inquiry.FormatText)
//
// # Limitations
//
// Templates containing literal, non-placeholder brace characters are
// unsupported: every opening brace is treated as the start of a
// placeholder.
package inquiry
