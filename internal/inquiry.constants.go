package internal

// Placeholder delimiters
const (
	CharOpenBrace  = '{'
	CharCloseBrace = '}'
	CharNewline    = '\n'
	CharUnderscore = '_'
)

// Error message constants for the internal scanning layer
const (
	ErrMsgInvalidToken      = "invalid placeholder token"
	ErrMsgStyleConflict     = "placeholder style conflict"
	ErrMsgUnterminated      = "unterminated placeholder"
	ErrMsgValueNotFound     = "no value for placeholder"
	ErrMsgLiteralSyntax     = "invalid literal syntax"
	ErrMsgLiteralUnexpected = "unexpected character in literal"
	ErrMsgLiteralUntermStr  = "unterminated string literal"
	ErrMsgLiteralTrailing   = "trailing content after literal"
)

// Log message constants
const (
	LogMsgScannerCreated = "scanner created"
	LogMsgScanStart      = "scan started"
	LogMsgScanEnd        = "scan finished"
)

// Log field name constants
const (
	LogFieldSource       = "source_len"
	LogFieldPlaceholders = "placeholders"
	LogFieldStyle        = "style"
)
