package main

import (
	"flag"
	"fmt"
	"io"

	inquiry "github.com/itsatony/go-inquiry"
)

// listConfig holds parsed list command configuration
type listConfig struct {
	ledgerPath string
	configPath string
}

func runList(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseListFlags(args)
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
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgMissingLedger, CmdNameList)
		return ExitCodeUsageError
	}

	queries, err := inquiry.LoadLedgerFile(cfg.ledgerPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, inquiry.ErrMsgLedgerRead, err)
		return ExitCodeInputError
	}

	for _, name := range queries.Names() {
		fmt.Fprintf(stdout, FmtListLine, name)
	}
	return ExitCodeSuccess
}

func parseListFlags(args []string) (*listConfig, error) {
	fs := flag.NewFlagSet(CmdNameList, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &listConfig{}

	fs.StringVar(&cfg.ledgerPath, FlagLedger, "", "")
	fs.StringVar(&cfg.ledgerPath, FlagLedgerShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
