package inquiry

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstitute_NamedRoundTrip(t *testing.T) {
	template := "WHERE account = {a} AND year = {b}"
	set := mustScan(t, template)
	params := mustMaterialize(t, RawParamsFromLiteral(`{"a": "x", "b": "y"}`), StyleNamed)
	require.NoError(t, Validate(params, set))

	resolved, err := Substitute(template, params)
	require.NoError(t, err)
	assert.Equal(t, "WHERE account = x AND year = y", resolved)
}

func TestSubstitute_IndexedScenario(t *testing.T) {
	template := "SELECT * WHERE date = {0} AND account = {1}"
	params := mustMaterialize(t, RawParamsFromArgs([]string{"2024-01-01", "Assets:Cash"}), StyleIndexed)

	resolved, err := Substitute(template, params)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * WHERE date = 2024-01-01 AND account = Assets:Cash", resolved)
}

func TestSubstitute_NamedCLIScenario(t *testing.T) {
	template := "SELECT * WHERE account = {account}"
	params := mustMaterialize(t, RawParamsFromArgs([]string{"account:Assets:Cash"}), StyleNamed)

	resolved, err := Substitute(template, params)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * WHERE account = Assets:Cash", resolved)
}

func TestSubstitute_BlankOrder(t *testing.T) {
	params := mustMaterialize(t, RawParamsFromArgs([]string{"first", "second"}), StyleBlank)

	resolved, err := Substitute("{} then {}", params)
	require.NoError(t, err)
	assert.Equal(t, "first then second", resolved)
}

func TestSubstitute_RepeatedIndex(t *testing.T) {
	params := mustMaterialize(t, RawParamsFromArgs([]string{"X", "Y"}), StyleIndexed)

	resolved, err := Substitute("{0} {1} {0}", params)
	require.NoError(t, err)
	assert.Equal(t, "X Y X", resolved)
}

func TestSubstitute_EmptyParamsReturnsTemplate(t *testing.T) {
	template := "SELECT * FROM entries"
	resolved, err := Substitute(template, Params{})
	require.NoError(t, err)
	assert.Equal(t, template, resolved)
}

func TestSubstitute_MissingKeyDefensive(t *testing.T) {
	// Validation was skipped: the mapping does not cover the template.
	params := mustMaterialize(t, RawParamsFromLiteral(`{"other": "v"}`), StyleNamed)

	_, err := Substitute("WHERE account = {account}", params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSubstituteFailed)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	token, ok := customErr.GetMetadata(MetaKeyToken)
	assert.True(t, ok)
	assert.Equal(t, "account", token)
}

func TestSubstitute_IndexOutOfRangeDefensive(t *testing.T) {
	params := mustMaterialize(t, RawParamsFromArgs([]string{"only"}), StyleIndexed)

	_, err := Substitute("{0} and {5}", params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSubstituteFailed)
}

func TestSubstitute_NamedTokenWithSequenceDefensive(t *testing.T) {
	params := mustMaterialize(t, RawParamsFromArgs([]string{"v"}), StyleBlank)

	_, err := Substitute("WHERE account = {account}", params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgSubstituteFailed)
}
