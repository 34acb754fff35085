package internal

import (
	"strconv"
	"strings"
)

// ParseLiteral parses a permissive parameter literal. It accepts the subset
// of literal syntax callers tend to reach for when strict JSON rejects
// their input: single- or double-quoted strings, bare words, decimal
// numbers, booleans, null/None, lists in [] or (), and {key: value}
// mappings with quoted or bare identifier keys.
//
// Scalars are returned as string, lists as []any and mappings as
// map[string]any, so the result shapes directly into positional or named
// parameters.
func ParseLiteral(input string) (any, error) {
	p := &literalParser{source: input}
	p.skipWhitespace()
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if !p.isAtEnd() {
		return nil, p.errorAt(ErrMsgLiteralTrailing)
	}
	return value, nil
}

// literalParser is a recursive-descent parser over the literal source.
type literalParser struct {
	source string
	pos    int
}

func (p *literalParser) parseValue() (any, error) {
	if p.isAtEnd() {
		return nil, p.errorAt(ErrMsgLiteralSyntax)
	}
	switch ch := p.peek(); {
	case ch == '\'' || ch == '"':
		return p.parseString()
	case ch == '[':
		return p.parseList(']')
	case ch == '(':
		return p.parseList(')')
	case ch == '{':
		return p.parseMapping()
	default:
		return p.parseBare()
	}
}

// parseString parses a quoted string with backslash escapes for the quote
// character and the backslash itself.
func (p *literalParser) parseString() (string, error) {
	quote := p.advance()
	var sb strings.Builder
	for !p.isAtEnd() {
		ch := p.advance()
		if ch == quote {
			return sb.String(), nil
		}
		if ch == '\\' && !p.isAtEnd() {
			next := p.peek()
			if next == quote || next == '\\' {
				sb.WriteByte(p.advance())
				continue
			}
		}
		sb.WriteByte(ch)
	}
	return "", p.errorAt(ErrMsgLiteralUntermStr)
}

// parseList parses a [...] or (...) sequence of values.
func (p *literalParser) parseList(close byte) ([]any, error) {
	p.advance() // consume opening bracket
	var items []any
	for {
		p.skipWhitespace()
		if p.isAtEnd() {
			return nil, p.errorAt(ErrMsgLiteralSyntax)
		}
		if p.peek() == close {
			p.advance()
			return items, nil
		}
		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		p.skipWhitespace()
		if !p.isAtEnd() && p.peek() == ',' {
			p.advance()
			continue
		}
		if !p.isAtEnd() && p.peek() == close {
			continue
		}
		return nil, p.errorAt(ErrMsgLiteralUnexpected)
	}
}

// parseMapping parses a {key: value, ...} mapping. Keys may be quoted
// strings or bare identifiers.
func (p *literalParser) parseMapping() (map[string]any, error) {
	p.advance() // consume '{'
	mapping := make(map[string]any)
	for {
		p.skipWhitespace()
		if p.isAtEnd() {
			return nil, p.errorAt(ErrMsgLiteralSyntax)
		}
		if p.peek() == '}' {
			p.advance()
			return mapping, nil
		}

		var key string
		var err error
		if ch := p.peek(); ch == '\'' || ch == '"' {
			key, err = p.parseString()
		} else {
			key, err = p.parseBare()
		}
		if err != nil {
			return nil, err
		}

		p.skipWhitespace()
		if p.isAtEnd() || p.peek() != ':' {
			return nil, p.errorAt(ErrMsgLiteralUnexpected)
		}
		p.advance() // consume ':'
		p.skipWhitespace()

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		mapping[key] = value

		p.skipWhitespace()
		if !p.isAtEnd() && p.peek() == ',' {
			p.advance()
			continue
		}
		if !p.isAtEnd() && p.peek() == '}' {
			continue
		}
		return nil, p.errorAt(ErrMsgLiteralUnexpected)
	}
}

// parseBare parses an unquoted scalar: a number, boolean, null/None or a
// bare word. The raw text is returned as-is, with booleans and null
// normalized to their lower-case JSON spellings.
func (p *literalParser) parseBare() (string, error) {
	start := p.pos
	for !p.isAtEnd() {
		ch := p.peek()
		if ch == ',' || ch == ':' || ch == ']' || ch == ')' || ch == '}' ||
			ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			break
		}
		p.advance()
	}
	word := p.source[start:p.pos]
	if word == "" {
		return "", p.errorAt(ErrMsgLiteralUnexpected)
	}
	switch word {
	case "True", "true":
		return "true", nil
	case "False", "false":
		return "false", nil
	case "None", "null":
		return "", nil
	}
	return word, nil
}

// Helper methods

func (p *literalParser) isAtEnd() bool {
	return p.pos >= len(p.source)
}

func (p *literalParser) peek() byte {
	if p.isAtEnd() {
		return 0
	}
	return p.source[p.pos]
}

func (p *literalParser) advance() byte {
	if p.isAtEnd() {
		return 0
	}
	ch := p.source[p.pos]
	p.pos++
	return ch
}

func (p *literalParser) skipWhitespace() {
	for !p.isAtEnd() {
		ch := p.peek()
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			p.advance()
		} else {
			break
		}
	}
}

func (p *literalParser) errorAt(message string) error {
	return &LiteralError{Message: message, Offset: p.pos}
}

// LiteralError represents a permissive literal parse failure.
type LiteralError struct {
	Message string
	Offset  int
}

func (e *LiteralError) Error() string {
	return e.Message + " at offset " + strconv.Itoa(e.Offset)
}
