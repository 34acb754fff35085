package inquiry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	format, err := ParseOutputFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	format, err = ParseOutputFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, format)

	_, err = ParseOutputFormat("json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidFormat)

	_, err = ParseOutputFormat("")
	require.Error(t, err)
}

func TestBeanQueryRunner_MissingBinary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	runner := NewBeanQueryRunnerWithOutput("definitely-not-installed-binary", &stdout, &stderr)

	err := runner.Run(context.Background(), "ledger.beancount", "SELECT 1", FormatText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgRunnerNotFound)
}

func TestBeanQueryRunner_Defaults(t *testing.T) {
	runner := NewBeanQueryRunner()
	assert.Equal(t, DefaultRunnerBinary, runner.binary)

	runner = NewBeanQueryRunnerWithOutput("", nil, nil)
	assert.Equal(t, DefaultRunnerBinary, runner.binary)
}
