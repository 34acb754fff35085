package inquiry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingRunner captures what would have been dispatched to bean-query.
type recordingRunner struct {
	ledgerPath string
	query      string
	format     OutputFormat
	err        error
	calls      int
}

func (r *recordingRunner) Run(_ context.Context, ledgerPath, query string, format OutputFormat) error {
	r.calls++
	r.ledgerPath = ledgerPath
	r.query = query
	r.format = format
	return r.err
}

func writeTestLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.beancount")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const testLedger = `2024-01-01 open Assets:Cash
2024-01-05 query "cash" "SELECT * WHERE account = {account}"
2024-01-06 query "range" "SELECT * WHERE date >= {0} AND date <= {1}"
2024-01-07 query "all" "SELECT account, sum(position) FROM entries"
`

func TestEngine_Resolve(t *testing.T) {
	engine := MustNew(WithLogger(zap.NewNop()))

	resolved, err := engine.Resolve(
		"SELECT * WHERE account = {account}",
		RawParamsFromArgs([]string{"account:Assets:Cash"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * WHERE account = Assets:Cash", resolved)
}

func TestEngine_ResolveValidationError(t *testing.T) {
	engine := MustNew()

	_, err := engine.Resolve(
		"SELECT * WHERE date = {} AND account = {}",
		RawParamsFromArgs([]string{"2024-01-01"}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgCountMismatch)
}

func TestEngine_Check(t *testing.T) {
	engine := MustNew()

	set, err := engine.Check("SELECT * WHERE account = {account} AND year = {year}")
	require.NoError(t, err)
	assert.Equal(t, []string{"{account}", "{year}"}, set.Forms())

	set, err = engine.Check("SELECT * FROM entries")
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())
}

func TestEngine_ParseCaches(t *testing.T) {
	engine := MustNew(WithCacheSize(4))
	source := "SELECT * WHERE account = {account}"

	first, err := engine.Parse(source)
	require.NoError(t, err)
	second, err := engine.Parse(source)
	require.NoError(t, err)

	// The cached PlaceholderSet is shared between parses of the same source.
	assert.Same(t, first.Placeholders(), second.Placeholders())
}

func TestEngine_Run(t *testing.T) {
	runner := &recordingRunner{}
	engine := MustNew(WithRunner(runner))
	path := writeTestLedger(t, testLedger)

	resolved, err := engine.Run(context.Background(), path, "cash",
		RawParamsFromArgs([]string{"account:Assets:Cash"}), FormatText)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * WHERE account = Assets:Cash", resolved)
	assert.Equal(t, 1, runner.calls)
	assert.Equal(t, path, runner.ledgerPath)
	assert.Equal(t, resolved, runner.query)
	assert.Equal(t, FormatText, runner.format)
}

func TestEngine_Dispatch(t *testing.T) {
	runner := &recordingRunner{}
	engine := MustNew(WithRunner(runner))

	// Resolve-then-dispatch is the split the CLI uses to print the
	// resolved query before execution.
	resolved, err := engine.Resolve(
		"SELECT * WHERE account = {account}",
		RawParamsFromArgs([]string{"account:Assets:Cash"}),
	)
	require.NoError(t, err)

	err = engine.Dispatch(context.Background(), "ledger.beancount", resolved, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, runner.calls)
	assert.Equal(t, "ledger.beancount", runner.ledgerPath)
	assert.Equal(t, resolved, runner.query)
	assert.Equal(t, FormatCSV, runner.format)
}

func TestEngine_RunUnknownQuery(t *testing.T) {
	runner := &recordingRunner{}
	engine := MustNew(WithRunner(runner))
	path := writeTestLedger(t, testLedger)

	_, err := engine.Run(context.Background(), path, "missing", RawParamsFromArgs(nil), FormatText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgQueryNotFound)
	// The runner is never invoked on failure.
	assert.Equal(t, 0, runner.calls)
}

func TestEngine_RunValidationStopsDispatch(t *testing.T) {
	runner := &recordingRunner{}
	engine := MustNew(WithRunner(runner))
	path := writeTestLedger(t, testLedger)

	_, err := engine.Run(context.Background(), path, "range", RawParamsFromArgs([]string{"only-one"}), FormatCSV)
	require.Error(t, err)
	assert.Equal(t, 0, runner.calls)
}

func TestEngine_RunParameterFreeQuery(t *testing.T) {
	runner := &recordingRunner{}
	engine := MustNew(WithRunner(runner))
	path := writeTestLedger(t, testLedger)

	resolved, err := engine.Run(context.Background(), path, "all", RawParamsFromArgs(nil), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "SELECT account, sum(position) FROM entries", resolved)
	assert.Equal(t, FormatCSV, runner.format)
}

func TestTemplate_Resolve(t *testing.T) {
	engine := MustNew()
	tmpl, err := engine.Parse("SELECT * WHERE date = {0} AND account = {1}")
	require.NoError(t, err)

	assert.Equal(t, "SELECT * WHERE date = {0} AND account = {1}", tmpl.Source())

	resolved, err := tmpl.Resolve(RawParamsFromArgs([]string{"2024-01-01", "Assets:Cash"}))
	require.NoError(t, err)
	assert.Equal(t, "SELECT * WHERE date = 2024-01-01 AND account = Assets:Cash", resolved)
}

func TestTemplate_ResolveParameterFreeIgnoresSurplus(t *testing.T) {
	engine := MustNew()
	tmpl, err := engine.Parse("SELECT * FROM entries")
	require.NoError(t, err)

	resolved, err := tmpl.Resolve(RawParamsFromArgs([]string{"ignored"}))
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM entries", resolved)
}
