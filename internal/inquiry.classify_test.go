package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Style
	}{
		{"simple identifier", "amount", StyleNamed},
		{"identifier with digits", "account2", StyleNamed},
		{"leading underscore", "_internal", StyleNamed},
		{"underscore only", "_", StyleNamed},
		{"single digit", "0", StyleIndexed},
		{"multi digit", "12", StyleIndexed},
		{"leading zero", "007", StyleIndexed},
		{"empty token", "", StyleBlank},
		{"digit prefix identifier", "1a", StyleInvalid},
		{"negative number", "-1", StyleInvalid},
		{"embedded space", "a b", StyleInvalid},
		{"punctuation", "a.b", StyleInvalid},
		{"leading space", " name", StyleInvalid},
		{"plus sign", "+1", StyleInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.token))
		})
	}
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, StyleNameNamed, StyleNamed.String())
	assert.Equal(t, StyleNameIndexed, StyleIndexed.String())
	assert.Equal(t, StyleNameBlank, StyleBlank.String())
	assert.Equal(t, StyleNameInvalid, StyleInvalid.String())
}
