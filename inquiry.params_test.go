package inquiry

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_EmptyInput(t *testing.T) {
	params, err := Materialize(RawParamsFromArgs(nil), StyleNamed)
	require.NoError(t, err)
	assert.Equal(t, 0, params.Len())

	params, err = Materialize(RawParamsFromLiteral(""), StyleIndexed)
	require.NoError(t, err)
	assert.Equal(t, 0, params.Len())
}

func TestMaterialize_ArgsPositional(t *testing.T) {
	raw := RawParamsFromArgs([]string{"2024-01-01", "Assets:Cash"})

	for _, style := range []PlaceholderStyle{StyleIndexed, StyleBlank} {
		params, err := Materialize(raw, style)
		require.NoError(t, err)
		assert.False(t, params.IsMapping())
		assert.Equal(t, []string{"2024-01-01", "Assets:Cash"}, params.Positional())
	}
}

func TestMaterialize_ArgsNamed(t *testing.T) {
	params, err := Materialize(RawParamsFromArgs([]string{"account:Assets:Cash", "year:2024"}), StyleNamed)
	require.NoError(t, err)
	assert.True(t, params.IsMapping())
	// The token splits on the first separator only; the value keeps the rest.
	assert.Equal(t, map[string]string{"account": "Assets:Cash", "year": "2024"}, params.Mapping())
}

func TestMaterialize_ArgsNamedMissingSeparator(t *testing.T) {
	_, err := Materialize(RawParamsFromArgs([]string{"account"}), StyleNamed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgParamNoSeparator)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	param, ok := customErr.GetMetadata(MetaKeyParam)
	assert.True(t, ok)
	assert.Equal(t, "account", param)
}

func TestMaterialize_LiteralJSON(t *testing.T) {
	t.Run("string scalar", func(t *testing.T) {
		params, err := Materialize(RawParamsFromLiteral(`"Assets:Cash"`), StyleBlank)
		require.NoError(t, err)
		assert.True(t, params.IsScalar())
		assert.Equal(t, []string{"Assets:Cash"}, params.Positional())
	})

	t.Run("number scalar", func(t *testing.T) {
		params, err := Materialize(RawParamsFromLiteral("2024"), StyleBlank)
		require.NoError(t, err)
		assert.True(t, params.IsScalar())
		assert.Equal(t, []string{"2024"}, params.Positional())
	})

	t.Run("sequence", func(t *testing.T) {
		params, err := Materialize(RawParamsFromLiteral(`["2024-01-01", "Assets:Cash", 3]`), StyleIndexed)
		require.NoError(t, err)
		assert.False(t, params.IsMapping())
		assert.Equal(t, []string{"2024-01-01", "Assets:Cash", "3"}, params.Positional())
	})

	t.Run("mapping", func(t *testing.T) {
		params, err := Materialize(RawParamsFromLiteral(`{"account": "Assets:Cash", "year": 2024}`), StyleNamed)
		require.NoError(t, err)
		assert.True(t, params.IsMapping())
		assert.Equal(t, map[string]string{"account": "Assets:Cash", "year": "2024"}, params.Mapping())
	})
}

func TestMaterialize_LiteralPermissiveFallback(t *testing.T) {
	// Single-quoted strings are not JSON; the permissive grammar picks
	// them up on the second attempt.
	params, err := Materialize(RawParamsFromLiteral(`{'account': 'Assets:Cash'}`), StyleNamed)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"account": "Assets:Cash"}, params.Mapping())

	params, err = Materialize(RawParamsFromLiteral(`('a', 'b')`), StyleIndexed)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, params.Positional())
}

func TestMaterialize_LiteralDoubleFailure(t *testing.T) {
	_, err := Materialize(RawParamsFromLiteral(`{'unclosed`), StyleNamed)
	require.Error(t, err)
	// The original strict-parse failure is what gets reported.
	assert.Contains(t, err.Error(), ErrMsgParamParseFailed)
}

func TestMaterialize_LiteralNestedElement(t *testing.T) {
	_, err := Materialize(RawParamsFromLiteral(`{"a": ["nested"]}`), StyleNamed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgParamBadElement)
}

func TestRawParamsImmutable(t *testing.T) {
	args := []string{"a", "b"}
	raw := RawParamsFromArgs(args)
	args[0] = "mutated"

	params, err := Materialize(raw, StyleBlank)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, params.Positional())
}

func TestParamsAccessorsCopy(t *testing.T) {
	params, err := Materialize(RawParamsFromArgs([]string{"x"}), StyleBlank)
	require.NoError(t, err)

	seq := params.Positional()
	seq[0] = "mutated"
	assert.Equal(t, []string{"x"}, params.Positional())
}
