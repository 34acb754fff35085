package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteral_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double quoted string", `"Assets:Cash"`, "Assets:Cash"},
		{"single quoted string", `'Assets:Cash'`, "Assets:Cash"},
		{"escaped quote", `'it\'s'`, "it's"},
		{"bare number", "42", "42"},
		{"bare decimal", "3.14", "3.14"},
		{"bare word", "2024-01-01", "2024-01-01"},
		{"python true", "True", "true"},
		{"json true", "true", "true"},
		{"python false", "False", "false"},
		{"python none", "None", ""},
		{"json null", "null", ""},
		{"surrounding whitespace", "  42  ", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLiteral(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLiteral_Lists(t *testing.T) {
	got, err := ParseLiteral(`['2024-01-01', "Assets:Cash", 3]`)
	require.NoError(t, err)
	assert.Equal(t, []any{"2024-01-01", "Assets:Cash", "3"}, got)

	got, err = ParseLiteral(`("a", "b")`)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = ParseLiteral("[]")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseLiteral_Mappings(t *testing.T) {
	got, err := ParseLiteral(`{'account': 'Assets:Cash', "year": 2024}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"account": "Assets:Cash", "year": "2024"}, got)

	// Bare identifier keys are accepted in the permissive grammar.
	got, err = ParseLiteral(`{account: 'Assets:Cash'}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"account": "Assets:Cash"}, got)
}

func TestParseLiteral_Nested(t *testing.T) {
	got, err := ParseLiteral(`{'accounts': ['a', 'b']}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"accounts": []any{"a", "b"}}, got)
}

func TestParseLiteral_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated string", `'open`},
		{"unterminated list", `[1, 2`},
		{"unterminated mapping", `{'a': 1`},
		{"missing colon", `{'a' 1}`},
		{"trailing content", `'a' extra`},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLiteral(tt.input)
			require.Error(t, err)

			var litErr *LiteralError
			assert.ErrorAs(t, err, &litErr)
		})
	}
}
