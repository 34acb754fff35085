package internal

import (
	"strconv"

	"go.uber.org/zap"
)

// Position is a location in the source template.
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string.
func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Column)
}

// Placeholder is one placeholder occurrence in a template: the raw token
// text between the braces and the position of the opening brace.
type Placeholder struct {
	Token    string
	Position Position
}

// Form returns the bracketed textual form of the placeholder, e.g. "{name}".
func (p Placeholder) Form() string {
	return "{" + p.Token + "}"
}

// ScanResult holds every placeholder occurrence found in a template, in
// left-to-right source order, together with the single style shared by all
// of them. Style is StyleInvalid when Placeholders is empty.
type ScanResult struct {
	Style        Style
	Placeholders []Placeholder
}

// Scanner extracts placeholder occurrences from a template string and
// enforces that all of them share one style. Templates containing literal,
// non-placeholder brace characters are unsupported; the scanner treats
// every opening brace as the start of a placeholder.
type Scanner struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewScanner creates a scanner for the given template source.
func NewScanner(source string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSource, len(source)))
	return &Scanner{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Scan walks the template and returns every placeholder occurrence. The
// first occurrence establishes the expected style; any later occurrence
// classifying to a different style (including StyleInvalid) fails the scan
// with a StyleConflictError naming both styles and the offending token.
// A template without placeholders yields an empty result.
func (s *Scanner) Scan() (*ScanResult, error) {
	s.logger.Debug(LogMsgScanStart)
	result := &ScanResult{}

	for !s.isAtEnd() {
		if s.peek() != CharOpenBrace {
			s.advance()
			continue
		}

		pos := s.currentPosition()
		s.advance() // consume '{'
		token, ok := s.scanToken()
		if !ok {
			return nil, &ScanError{
				Message:  ErrMsgUnterminated,
				Position: pos,
			}
		}

		ph := Placeholder{Token: token, Position: pos}
		style := Classify(token)

		if len(result.Placeholders) == 0 {
			if style == StyleInvalid {
				return nil, &ScanError{
					Message:  ErrMsgInvalidToken,
					Token:    token,
					Expected: StyleInvalid,
					Actual:   StyleInvalid,
					Position: pos,
				}
			}
			result.Style = style
		} else if style != result.Style {
			return nil, &ScanError{
				Message:  ErrMsgStyleConflict,
				Token:    token,
				Expected: result.Style,
				Actual:   style,
				Position: pos,
			}
		}
		result.Placeholders = append(result.Placeholders, ph)
	}

	s.logger.Debug(LogMsgScanEnd,
		zap.Int(LogFieldPlaceholders, len(result.Placeholders)),
		zap.String(LogFieldStyle, result.Style.String()))
	return result, nil
}

// scanToken consumes characters up to and including the next closing brace
// and returns the token text between the braces. Returns false if the
// source ends before a closing brace is found.
func (s *Scanner) scanToken() (string, bool) {
	start := s.pos
	for !s.isAtEnd() {
		if s.peek() == CharCloseBrace {
			token := s.source[start:s.pos]
			s.advance() // consume '}'
			return token, true
		}
		s.advance()
	}
	return "", false
}

// Helper methods

func (s *Scanner) currentPosition() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.pos]
}

func (s *Scanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.source[s.pos]
	s.pos++
	if ch == CharNewline {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// ScanError represents a scan failure with position context.
type ScanError struct {
	Message  string
	Token    string
	Expected Style
	Actual   Style
	Position Position
}

func (e *ScanError) Error() string {
	if e.Message == ErrMsgStyleConflict {
		return e.Message + ": expected " + e.Expected.String() + ", got " +
			e.Actual.String() + " for {" + e.Token + "} at " + e.Position.String()
	}
	if e.Token != "" || e.Message == ErrMsgInvalidToken {
		return e.Message + ": {" + e.Token + "} at " + e.Position.String()
	}
	return e.Message + " at " + e.Position.String()
}
