package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	inquiry "github.com/itsatony/go-inquiry"
)

// runConfig holds parsed run command configuration
type runConfig struct {
	ledgerPath string
	queryName  string
	paramsStr  string
	format     string
	configPath string
	verbose    bool
	paramArgs  []string
}

func runRun(args []string, _ io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRunFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgBadArguments, err)
		return ExitCodeUsageError
	}

	fileCfg, err := loadCLIConfig(cfg.configPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigRead, err)
		return ExitCodeInputError
	}
	cfg.ledgerPath = applyDefault(cfg.ledgerPath, fileCfg.Ledger)
	cfg.format = applyDefault(cfg.format, applyDefault(fileCfg.Format, inquiry.OutputFormatText))

	if cfg.ledgerPath == "" {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgMissingLedger, CmdNameRun)
		return ExitCodeUsageError
	}
	if cfg.queryName == "" {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgMissingName, CmdNameRun)
		return ExitCodeUsageError
	}

	format, err := inquiry.ParseOutputFormat(cfg.format)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, inquiry.ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	queries, err := inquiry.LoadLedgerFile(cfg.ledgerPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, inquiry.ErrMsgLedgerRead, err)
		return ExitCodeInputError
	}
	query, err := queries.Find(cfg.queryName)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, inquiry.ErrMsgQueryNotFound, err)
		return ExitCodeInputError
	}
	fmt.Fprintf(stdout, FmtQueryLine, query.QueryString)

	engine := inquiry.MustNew(
		inquiry.WithLogger(newLogger(cfg.verbose)),
		inquiry.WithRunner(inquiry.NewBeanQueryRunnerWithOutput(fileCfg.Runner, stdout, stderr)),
	)

	resolved, err := engine.Resolve(query.QueryString, rawParams(cfg))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgResolveFailed, err)
		return ExitCodeValidationError
	}
	fmt.Fprintf(stdout, FmtResolvedLine, resolved)

	if err := engine.Dispatch(context.Background(), cfg.ledgerPath, resolved, format); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, inquiry.ErrMsgRunFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// rawParams selects the parameter input form: the -p literal wins over
// positional argument tokens.
func rawParams(cfg *runConfig) inquiry.RawParams {
	if cfg.paramsStr != "" {
		return inquiry.RawParamsFromLiteral(cfg.paramsStr)
	}
	return inquiry.RawParamsFromArgs(cfg.paramArgs)
}

func parseRunFlags(args []string) (*runConfig, error) {
	fs := flag.NewFlagSet(CmdNameRun, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &runConfig{}

	fs.StringVar(&cfg.ledgerPath, FlagLedger, "", "")
	fs.StringVar(&cfg.ledgerPath, FlagLedgerShort, "", "")
	fs.StringVar(&cfg.queryName, FlagName, "", "")
	fs.StringVar(&cfg.queryName, FlagNameShort, "", "")
	fs.StringVar(&cfg.paramsStr, FlagParams, "", "")
	fs.StringVar(&cfg.paramsStr, FlagParamsShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, "", "")
	fs.StringVar(&cfg.format, FlagFormatShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.paramArgs = fs.Args()

	return cfg, nil
}

// newLogger returns a debug-level logger when verbose is set, a no-op
// logger otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
