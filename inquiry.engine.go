package inquiry

import (
	"context"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Engine is the main entry point for the inquiry templating pipeline. It
// scans templates (with an internal LRU cache keyed by template source),
// resolves parameters and dispatches resolved queries to the configured
// query runner. The pipeline itself is per-invocation and stateless; the
// scan cache is internally synchronized.
type Engine struct {
	config *engineConfig
	cache  *lru.Cache[string, *PlaceholderSet]
	runner QueryRunner
	logger *zap.Logger
}

// New creates a new inquiry Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := lru.New[string, *PlaceholderSet](config.cacheSize)
	if err != nil {
		return nil, err
	}

	runner := config.runner
	if runner == nil {
		runner = NewBeanQueryRunner()
	}

	return &Engine{
		config: config,
		cache:  cache,
		runner: runner,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse scans a template source string and returns a Template. The scan
// result is cached by source string, so repeated parses of the same query
// are free.
func (e *Engine) Parse(source string) (*Template, error) {
	if set, ok := e.cache.Get(source); ok {
		e.logger.Debug(LogMsgTemplateCached,
			zap.Int(LogFieldPlaceholders, set.Count()),
			zap.String(LogFieldStyle, set.Style().String()))
		return newTemplate(source, set, e.logger), nil
	}

	set, err := scanWithLogger(source, e.logger)
	if err != nil {
		return nil, err
	}
	e.cache.Add(source, set)
	e.logger.Debug(LogMsgTemplateParsed,
		zap.Int(LogFieldPlaceholders, set.Count()),
		zap.String(LogFieldStyle, set.Style().String()))
	return newTemplate(source, set, e.logger), nil
}

// Check scans a template and returns its required placeholder slots
// without resolving anything. This backs the CLI's check mode.
func (e *Engine) Check(source string) (*PlaceholderSet, error) {
	tmpl, err := e.Parse(source)
	if err != nil {
		return nil, err
	}
	return tmpl.Placeholders(), nil
}

// Resolve parses the template and resolves it against the raw parameters
// in one step: materialize, validate, substitute.
func (e *Engine) Resolve(source string, raw RawParams) (string, error) {
	invocation := uuid.NewString()
	e.logger.Debug(LogMsgResolveStart, zap.String(LogFieldInvocation, invocation))

	tmpl, err := e.Parse(source)
	if err != nil {
		return "", err
	}
	resolved, err := tmpl.Resolve(raw)
	if err != nil {
		return "", err
	}

	e.logger.Debug(LogMsgResolveDone,
		zap.String(LogFieldInvocation, invocation),
		zap.Int(LogFieldResolved, len(resolved)))
	return resolved, nil
}

// Run executes the full pipeline for one CLI invocation: load the ledger,
// select the named query, resolve it against the raw parameters and hand
// the resolved query string to the external query runner.
func (e *Engine) Run(ctx context.Context, ledgerPath, name string, raw RawParams, format OutputFormat) (string, error) {
	queries, err := LoadLedgerFile(ledgerPath)
	if err != nil {
		return "", err
	}
	e.logger.Debug(LogMsgLedgerLoaded, zap.Int(LogFieldQueries, len(queries)))

	query, err := queries.Find(name)
	if err != nil {
		return "", err
	}
	e.logger.Debug(LogMsgQuerySelected, zap.String(LogFieldQueryName, name))

	resolved, err := e.Resolve(query.QueryString, raw)
	if err != nil {
		return "", err
	}

	if err := e.Dispatch(ctx, ledgerPath, resolved, format); err != nil {
		return "", err
	}
	return resolved, nil
}

// Dispatch hands a fully resolved query to the configured runner. Callers
// that need the resolved string before execution (the CLI prints it) can
// resolve first and dispatch separately; Run composes both.
func (e *Engine) Dispatch(ctx context.Context, ledgerPath, resolved string, format OutputFormat) error {
	e.logger.Debug(LogMsgRunnerInvoked, zap.String(LogFieldFormat, string(format)))
	return e.runner.Run(ctx, ledgerPath, resolved, format)
}
