package inquiry

import (
	"errors"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-inquiry/internal"
)

// NewScanError wraps an internal scan failure, attaching the offending
// token, both styles for conflicts, and the source position.
func NewScanError(err error) error {
	var scanErr *internal.ScanError
	if !errors.As(err, &scanErr) {
		return cuserr.WrapStdError(err, ErrCodeScan, ErrMsgScanFailed)
	}

	var msg string
	switch scanErr.Message {
	case internal.ErrMsgStyleConflict:
		msg = ErrMsgStyleConflict
	case internal.ErrMsgInvalidToken:
		msg = ErrMsgInvalidToken
	default:
		msg = ErrMsgUnterminated
	}

	cerr := cuserr.WrapStdError(err, ErrCodeScan, msg).
		WithMetadata(MetaKeyToken, scanErr.Token).
		WithMetadata(MetaKeyLine, strconv.Itoa(scanErr.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(scanErr.Position.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(scanErr.Position.Offset))
	if scanErr.Message == internal.ErrMsgStyleConflict {
		cerr = cerr.
			WithMetadata(MetaKeyStyleExpected, scanErr.Expected.String()).
			WithMetadata(MetaKeyStyleActual, scanErr.Actual.String())
	}
	return cerr
}

// NewParamParseError creates an error for raw parameter input that cannot
// be decoded into scalar, sequence or mapping form.
func NewParamParseError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeParams, ErrMsgParamParseFailed)
}

// NewParamSeparatorError creates an error for a named-style CLI parameter
// token without a key:value separator.
func NewParamSeparatorError(token string) error {
	return cuserr.NewValidationError(ErrCodeParams, ErrMsgParamNoSeparator).
		WithMetadata(MetaKeyParam, token)
}

// NewParamElementError creates an error for a parameter literal element
// that cannot be used as a substitution value (e.g. a nested container).
func NewParamElementError(key string) error {
	return cuserr.NewValidationError(ErrCodeParams, ErrMsgParamBadElement).
		WithMetadata(MetaKeyParam, key)
}

// NewParamsRequiredError creates an error for a template that requires
// placeholders when no parameters were supplied at all.
func NewParamsRequiredError(set *PlaceholderSet) error {
	return cuserr.NewValidationError(ErrCodeValidate, ErrMsgParamsRequired).
		WithMetadata(MetaKeyExpectedCount, strconv.Itoa(set.Count())).
		WithMetadata(MetaKeyRequired, strings.Join(set.Forms(), ", "))
}

// NewCountMismatchError creates an error for a positional parameter count
// differing from the required slot count.
func NewCountMismatchError(set *PlaceholderSet, actual int) error {
	return cuserr.NewValidationError(ErrCodeValidate, ErrMsgCountMismatch).
		WithMetadata(MetaKeyExpectedCount, strconv.Itoa(set.Count())).
		WithMetadata(MetaKeyActualCount, strconv.Itoa(actual)).
		WithMetadata(MetaKeyRequired, strings.Join(set.Forms(), ", "))
}

// NewKeyCoverageError creates an error for a named parameter mapping that
// diverges from the discovered placeholder names. Both the missing and the
// unrecognized key sets are reported together, each sorted.
func NewKeyCoverageError(set *PlaceholderSet, missing, unrecognized []string) error {
	return cuserr.NewValidationError(ErrCodeValidate, ErrMsgKeyCoverage).
		WithMetadata(MetaKeyMissingKeys, strings.Join(missing, ", ")).
		WithMetadata(MetaKeyUnrecognized, strings.Join(unrecognized, ", ")).
		WithMetadata(MetaKeyRequired, strings.Join(set.Forms(), ", "))
}

// NewMappingRequiredError creates an error for named-style templates given
// non-mapping parameters.
func NewMappingRequiredError(set *PlaceholderSet) error {
	return cuserr.NewValidationError(ErrCodeValidate, ErrMsgMappingRequired).
		WithMetadata(MetaKeyRequired, strings.Join(set.Forms(), ", "))
}

// NewSequenceRequiredError creates an error for positional-style templates
// given mapping parameters.
func NewSequenceRequiredError(set *PlaceholderSet) error {
	return cuserr.NewValidationError(ErrCodeValidate, ErrMsgSequenceRequired).
		WithMetadata(MetaKeyRequired, strings.Join(set.Forms(), ", "))
}

// NewSubstituteError wraps an internal substitution failure. This path is
// unreachable after a successful Validate, but substitution can be invoked
// independently and must surface the offending key or index.
func NewSubstituteError(err error) error {
	cerr := cuserr.WrapStdError(err, ErrCodeSubstitute, ErrMsgSubstituteFailed)
	var subErr *internal.SubstituteError
	if errors.As(err, &subErr) {
		cerr = cerr.
			WithMetadata(MetaKeyToken, subErr.Token).
			WithMetadata(MetaKeyLine, strconv.Itoa(subErr.Position.Line)).
			WithMetadata(MetaKeyColumn, strconv.Itoa(subErr.Position.Column)).
			WithMetadata(MetaKeyOffset, strconv.Itoa(subErr.Position.Offset))
	}
	return cerr
}

// NewLedgerReadError creates an error for an unreadable ledger source.
func NewLedgerReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeLedger, ErrMsgLedgerRead).
		WithMetadata(MetaKeyLedger, path)
}

// NewNoQueriesError creates an error for a ledger without query directives.
func NewNoQueriesError() error {
	return cuserr.NewNotFoundError(MetaKeyLedger, ErrMsgNoQueries)
}

// NewQueryNotFoundError creates an error for an unknown query name,
// listing the available names.
func NewQueryNotFoundError(name string, available []string) error {
	return cuserr.NewNotFoundError(MetaKeyQueryName, ErrMsgQueryNotFound).
		WithMetadata(MetaKeyQueryName, name).
		WithMetadata(MetaKeyAvailable, strings.Join(available, ", "))
}

// NewInvalidFormatError creates an error for an unsupported output format.
func NewInvalidFormatError(format string) error {
	return cuserr.NewValidationError(ErrCodeRun, ErrMsgInvalidFormat).
		WithMetadata(MetaKeyFormat, format)
}

// NewRunnerNotFoundError creates an error for a missing query engine binary.
func NewRunnerNotFoundError(binary string) error {
	return cuserr.NewNotFoundError(MetaKeyBinary, ErrMsgRunnerNotFound).
		WithMetadata(MetaKeyBinary, binary)
}

// NewRunError wraps a query engine execution failure.
func NewRunError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRun, ErrMsgRunFailed)
}
