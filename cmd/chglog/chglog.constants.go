package main

// Flag names
const (
	FlagReplace = "replace"
	FlagDry     = "dry"
	FlagOutput  = "output"
	FlagConfig  = "config"
	FlagTemp    = "temp"

	FlagReplaceShort = "r"
	FlagDryShort     = "d"
	FlagOutputShort  = "o"
	FlagConfigShort  = "c"
	FlagTempShort    = "t"
)

// Flag default values
const (
	DefaultOutputPath = "CHANGELOG.md"
	DefaultConfigPath = ".chglog/config-tag.yml"
	DefaultTempPath   = ".chglog/current-tag.md"
)

// External tool names
const (
	ToolGit    = "git"
	ToolChglog = "git-chglog"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
)

// Error messages - ALL must be constants
const (
	ErrMsgBadArguments    = "invalid arguments"
	ErrMsgMissingVersion  = "version argument required"
	ErrMsgInvalidVersion  = "invalid semantic version (e.g. v1.0.1)"
	ErrMsgInvalidPrevious = "invalid previous version tag"
	ErrMsgToolMissing     = "required tool is not installed"
	ErrMsgCommandFailed   = "command failed"
	ErrMsgReplaceFailed   = "failed to update version info"
)

// Output format strings
const (
	FmtErrorWithDetail = "Error: %s: %s\n"
	FmtErrorWithCause  = "Error: %s: %v\n"
	FmtCommandDone     = "%s ... DONE\n"
	FmtPrevVersion     = "Previous version: %s\n"
	FmtReplaceDone     = "Updated version info: %s\n"
	FmtReplaceDry      = "Will update version info in %s\n"
	FmtWriteChangelog  = "Writing changelog to %s"
	FmtWriteTagNote    = "Writing tag annotation to %s"
	FmtCommitRelease   = "Committing release %s"
	FmtCreateTag       = "Creating git tag %s"
	FmtPushReminder    = "Remember to run 'git push && git push origin --tags'\n"
)

// Help text
const HelpUsage = `chglog - create CHANGELOG using git-chglog and update version info

Usage:
    chglog [options] <version>

Options:
    -r, --replace <file>    File to search and replace previous version
                            with new version (repeatable)
    -d, --dry               Dry run, do not commit or write files
    -o, --output <file>     Output changelog file (default: CHANGELOG.md)
    -c, --config <file>     git-chglog config path (default: .chglog/config-tag.yml)
    -t, --temp <file>       Temp tag annotation path (default: .chglog/current-tag.md)

Examples:
    chglog v1.2.0
    chglog -r version.go -r README.md v1.2.0
    chglog -d v1.2.0`
