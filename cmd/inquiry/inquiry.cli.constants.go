package main

// Command names
const (
	CmdNameRun     = "run"
	CmdNameCheck   = "check"
	CmdNameList    = "list"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagLedger  = "ledger"
	FlagName    = "name"
	FlagParams  = "params"
	FlagFormat  = "format"
	FlagConfig  = "config"
	FlagVerbose = "verbose"
)

// Flag names - short form
const (
	FlagLedgerShort  = "l"
	FlagNameShort    = "n"
	FlagParamsShort  = "p"
	FlagFormatShort  = "f"
	FlagConfigShort  = "c"
	FlagVerboseShort = "v"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand = "unknown command"
	ErrMsgBadArguments   = "invalid arguments"
	ErrMsgMissingLedger  = "ledger file required"
	ErrMsgMissingName    = "query name required"
	ErrMsgConfigRead     = "failed to read config file"
	ErrMsgResolveFailed  = "failed to resolve query"
)

// Output format strings
const (
	FmtErrorWithDetail = "Error: %s: %s\n"
	FmtErrorWithCause  = "Error: %s: %v\n"
	FmtQueryLine       = "Query   : %s\n"
	FmtResolvedLine    = "Resolved: %s\n"
	FmtCheckRequired   = "Required parameters for query '%s' (%d): %s\n"
	FmtCheckNone       = "No parameters required for query '%s'\n"
	FmtListLine        = "%s\n"
	FmtVersionLine     = "%s version %s\n"
)

// Help text templates
const (
	HelpMainUsage = `inquiry - inject parameters into queries embedded in a plain-text ledger

Usage:
    inquiry <command> [options]

Commands:
    run         Resolve a named query and dispatch it to bean-query
    check       Report the parameters a named query requires
    list        List all query names available in a ledger
    version     Show version information
    help        Show help for a command

Use "inquiry help <command>" for more information about a command.`

	HelpRunUsage = `Resolve a named query and dispatch it to bean-query

Usage:
    inquiry run [options] [key:value | value]...

Options:
    -l, --ledger <file>     Ledger file containing query directives
    -n, --name <name>       Name of the query to resolve
    -p, --params <literal>  Parameters as one JSON or literal string
    -f, --format <format>   Output format: text, csv (default: text)
    -c, --config <file>     YAML config file with flag defaults
    -v, --verbose           Enable debug logging

Positional arguments supply parameters one per token: key:value pairs
for named placeholders, bare values for indexed or blank placeholders.

Examples:
    inquiry run -l ledger.beancount -n cash account:Assets:Cash
    inquiry run -l ledger.beancount -n range 2024-01-01 2024-12-31
    inquiry run -l ledger.beancount -n cash -p '{"account": "Assets:Cash"}'
    inquiry run -l ledger.beancount -n all -f csv`

	HelpCheckUsage = `Report the parameters a named query requires

Usage:
    inquiry check [options]

Options:
    -l, --ledger <file>     Ledger file containing query directives
    -n, --name <name>       Name of the query to check
    -c, --config <file>     YAML config file with flag defaults

Examples:
    inquiry check -l ledger.beancount -n cash`

	HelpListUsage = `List all query names available in a ledger

Usage:
    inquiry list [options]

Options:
    -l, --ledger <file>     Ledger file containing query directives
    -c, --config <file>     YAML config file with flag defaults

Examples:
    inquiry list -l ledger.beancount`

	HelpVersionUsage = `Show version information

Usage:
    inquiry version`

	HelpHelpUsage = `Show help for a command

Usage:
    inquiry help [command]

Commands:
    run         Show help for run command
    check       Show help for check command
    list        Show help for list command
    version     Show help for version command`
)

// CLI metadata
const (
	CLIName = "inquiry"
)
