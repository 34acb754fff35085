package inquiry

// Version is the library version.
const Version = "0.2.1"

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Scan errors
	ErrMsgScanFailed       = "template scan failed"
	ErrMsgInvalidToken     = "invalid placeholder token"
	ErrMsgStyleConflict    = "placeholders must all use the same style"
	ErrMsgUnterminated     = "unterminated placeholder"

	// Parameter errors
	ErrMsgParamParseFailed = "parameter parsing failed"
	ErrMsgParamNoSeparator = "named parameters must be given as key:value"
	ErrMsgParamBadElement  = "unsupported parameter element"

	// Validation errors
	ErrMsgParamsRequired    = "parameters required but none given"
	ErrMsgCountMismatch     = "parameter and placeholder count do not match"
	ErrMsgKeyCoverage       = "parameter keys do not match placeholder names"
	ErrMsgMappingRequired   = "named placeholders require key:value parameters"
	ErrMsgSequenceRequired  = "positional placeholders require a sequence of values"

	// Substitution errors
	ErrMsgSubstituteFailed = "placeholder substitution failed"

	// Ledger errors
	ErrMsgLedgerRead     = "failed to read ledger"
	ErrMsgNoQueries      = "no queries found in ledger"
	ErrMsgQueryNotFound  = "no query found with that name in ledger"

	// Runner errors
	ErrMsgInvalidFormat   = "invalid output format"
	ErrMsgRunnerNotFound  = "query engine is not installed on the system"
	ErrMsgRunFailed       = "query execution failed"
)

// Error code constants for categorization
const (
	ErrCodeScan       = "INQUIRY_SCAN"
	ErrCodeParams     = "INQUIRY_PARAMS"
	ErrCodeValidate   = "INQUIRY_VALIDATE"
	ErrCodeSubstitute = "INQUIRY_SUBSTITUTE"
	ErrCodeLedger     = "INQUIRY_LEDGER"
	ErrCodeRun        = "INQUIRY_RUN"
)

// Metadata key constants for error context
const (
	MetaKeyToken           = "token"
	MetaKeyStyleExpected   = "style_expected"
	MetaKeyStyleActual     = "style_actual"
	MetaKeyLine            = "line"
	MetaKeyColumn          = "column"
	MetaKeyOffset          = "offset"
	MetaKeyExpectedCount   = "expected_count"
	MetaKeyActualCount     = "actual_count"
	MetaKeyRequired        = "required"
	MetaKeyMissingKeys     = "missing_keys"
	MetaKeyUnrecognized    = "unrecognized_keys"
	MetaKeyQueryName       = "query_name"
	MetaKeyAvailable       = "available"
	MetaKeyFormat          = "format"
	MetaKeyBinary          = "binary"
	MetaKeyLedger          = "ledger"
	MetaKeyParam           = "param"
)

// Log message constants
const (
	LogMsgTemplateParsed  = "template parsed"
	LogMsgTemplateCached  = "template served from cache"
	LogMsgResolveStart    = "resolve started"
	LogMsgResolveDone     = "resolve finished"
	LogMsgLedgerLoaded    = "ledger loaded"
	LogMsgQuerySelected   = "query selected"
	LogMsgRunnerInvoked   = "query runner invoked"
)

// Log field name constants
const (
	LogFieldInvocation   = "invocation_id"
	LogFieldQueryName    = "query_name"
	LogFieldStyle        = "style"
	LogFieldPlaceholders = "placeholders"
	LogFieldQueries      = "queries"
	LogFieldFormat       = "format"
	LogFieldResolved     = "resolved_len"
)

// Engine defaults
const (
	// DefaultCacheSize is the default capacity of the engine's scan cache.
	DefaultCacheSize = 128
)

// Parameter syntax constants
const (
	// ParamSeparator splits a CLI parameter token into key and value.
	// Only the first occurrence splits; the value may contain further
	// separators (account names like Assets:Cash rely on this).
	ParamSeparator = ":"
)

// Output formats accepted by the query runner.
const (
	OutputFormatText = "text"
	OutputFormatCSV  = "csv"
)

// DefaultRunnerBinary is the query engine executable dispatched to by the
// production runner.
const DefaultRunnerBinary = "bean-query"
