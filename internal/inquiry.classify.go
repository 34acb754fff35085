package internal

// Style is the placeholder style of a single token, or of a whole template.
// A template must use exactly one style across all of its placeholders.
type Style int

const (
	// StyleInvalid marks a token that matches none of the supported styles.
	StyleInvalid Style = iota
	// StyleNamed is an identifier placeholder such as {account}.
	StyleNamed
	// StyleIndexed is a non-negative integer placeholder such as {0}.
	StyleIndexed
	// StyleBlank is an anonymous placeholder {} resolved by position.
	StyleBlank
)

// Style name constants
const (
	StyleNameInvalid = "invalid"
	StyleNameNamed   = "named"
	StyleNameIndexed = "indexed"
	StyleNameBlank   = "blank"
)

// String returns the human-readable style name.
func (s Style) String() string {
	switch s {
	case StyleNamed:
		return StyleNameNamed
	case StyleIndexed:
		return StyleNameIndexed
	case StyleBlank:
		return StyleNameBlank
	default:
		return StyleNameInvalid
	}
}

// Classify determines the style of a single placeholder token (the text
// between the braces). It is a pure function with no side effects.
//
// An identifier (letter or underscore, then letters/digits/underscores)
// classifies as StyleNamed; one or more decimal digits classify as
// StyleIndexed; the empty string classifies as StyleBlank. Anything else,
// including signs, spaces and punctuation, is StyleInvalid.
func Classify(token string) Style {
	if token == "" {
		return StyleBlank
	}
	if isIdentifier(token) {
		return StyleNamed
	}
	if isDigits(token) {
		return StyleIndexed
	}
	return StyleInvalid
}

// isIdentifier reports whether s is a valid identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if !isLetter(s[0]) && s[0] != CharUnderscore {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !isLetter(ch) && !isDigit(ch) && ch != CharUnderscore {
			return false
		}
	}
	return true
}

// isDigits reports whether s consists of one or more decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
