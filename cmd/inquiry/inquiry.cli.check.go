package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	inquiry "github.com/itsatony/go-inquiry"
)

// checkConfig holds parsed check command configuration
type checkConfig struct {
	ledgerPath string
	queryName  string
	configPath string
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseCheckFlags(args)
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

	if cfg.ledgerPath == "" {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgMissingLedger, CmdNameCheck)
		return ExitCodeUsageError
	}
	if cfg.queryName == "" {
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgMissingName, CmdNameCheck)
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

	set, err := inquiry.Scan(query.QueryString)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, inquiry.ErrMsgScanFailed, err)
		return ExitCodeValidationError
	}

	if set.IsEmpty() {
		fmt.Fprintf(stdout, FmtCheckNone, cfg.queryName)
	} else {
		fmt.Fprintf(stdout, FmtCheckRequired, cfg.queryName, set.Count(), strings.Join(set.Forms(), ", "))
	}
	return ExitCodeSuccess
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	fs := flag.NewFlagSet(CmdNameCheck, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &checkConfig{}

	fs.StringVar(&cfg.ledgerPath, FlagLedger, "", "")
	fs.StringVar(&cfg.ledgerPath, FlagLedgerShort, "", "")
	fs.StringVar(&cfg.queryName, FlagName, "", "")
	fs.StringVar(&cfg.queryName, FlagNameShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
