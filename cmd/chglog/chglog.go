package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// semverPattern validates release tags like v1.0.1 and v2.0.0-rc.1.
var semverPattern = regexp.MustCompile(
	`^v(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-(alpha|beta|rc)(?:\.(0|[1-9]\d*))?)?$`)

// releaseConfig holds parsed command configuration
type releaseConfig struct {
	version    string
	replace    []string
	dry        bool
	outputPath string
	configPath string
	tempPath   string
}

// commandRunner abstracts external process execution for testing.
type commandRunner interface {
	lookPath(name string) error
	run(name string, args ...string) (string, error)
}

// systemCommands runs real processes.
type systemCommands struct{}

func (s *systemCommands) lookPath(name string) error {
	_, err := exec.LookPath(name)
	return err
}

func (s *systemCommands) run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// stringSliceFlag collects repeated flag values.
type stringSliceFlag []string

func (f *stringSliceFlag) String() string {
	return strings.Join(*f, ", ")
}

func (f *stringSliceFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func parseFlags(args []string) (*releaseConfig, error) {
	fs := flag.NewFlagSet(ToolChglog, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &releaseConfig{}
	var replace stringSliceFlag

	fs.Var(&replace, FlagReplace, "")
	fs.Var(&replace, FlagReplaceShort, "")
	fs.BoolVar(&cfg.dry, FlagDry, false, "")
	fs.BoolVar(&cfg.dry, FlagDryShort, false, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, DefaultOutputPath, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, DefaultOutputPath, "")
	fs.StringVar(&cfg.configPath, FlagConfig, DefaultConfigPath, "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, DefaultConfigPath, "")
	fs.StringVar(&cfg.tempPath, FlagTemp, DefaultTempPath, "")
	fs.StringVar(&cfg.tempPath, FlagTempShort, DefaultTempPath, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.replace = replace

	if fs.NArg() != 1 {
		return nil, errors.New(ErrMsgMissingVersion)
	}
	cfg.version = fs.Arg(0)
	if !semverPattern.MatchString(cfg.version) {
		return nil, errors.New(ErrMsgInvalidVersion)
	}

	return cfg, nil
}

func usageError(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgBadArguments, err)
	fmt.Fprintln(stderr, HelpUsage)
	return ExitCodeUsageError
}

// release runs the changelog workflow: verify tooling, rewrite version
// strings in the requested files, write the changelog and tag annotation,
// then commit and tag. A dry run only previews the changelog.
func release(cfg *releaseConfig, stdout, stderr io.Writer, commands commandRunner) int {
	for _, tool := range []string{ToolGit, ToolChglog} {
		if err := commands.lookPath(tool); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgToolMissing, tool)
			return ExitCodeError
		}
	}

	if len(cfg.replace) > 0 {
		previous, err := commands.run(ToolGit, "describe", "--tags", "--abbrev=0")
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCommandFailed, err)
			return ExitCodeError
		}
		if !semverPattern.MatchString(previous) {
			fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgInvalidPrevious, previous)
			return ExitCodeError
		}
		fmt.Fprintf(stdout, FmtPrevVersion, previous)

		for _, path := range cfg.replace {
			if cfg.dry {
				fmt.Fprintf(stdout, FmtReplaceDry, path)
				continue
			}
			if err := replaceVersion(path, previous, cfg.version); err != nil {
				fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReplaceFailed, err)
				return ExitCodeError
			}
			fmt.Fprintf(stdout, FmtReplaceDone, path)
		}
	}

	if cfg.dry {
		return dryRun(cfg, stdout, stderr, commands)
	}

	steps := []struct {
		message string
		name    string
		args    []string
	}{
		{fmt.Sprintf(FmtWriteChangelog, cfg.outputPath), ToolChglog,
			[]string{"--next-tag", cfg.version, "-o", cfg.outputPath}},
		{fmt.Sprintf(FmtWriteTagNote, cfg.tempPath), ToolChglog,
			[]string{"--config", cfg.configPath, "--next-tag", cfg.version, "-o", cfg.tempPath, cfg.version}},
		{fmt.Sprintf(FmtCommitRelease, cfg.version), ToolGit,
			[]string{"commit", "-am", "release " + cfg.version}},
		{fmt.Sprintf(FmtCreateTag, cfg.version), ToolGit,
			[]string{"tag", cfg.version, "-F", cfg.tempPath}},
	}
	for _, step := range steps {
		if _, err := commands.run(step.name, step.args...); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCommandFailed, err)
			return ExitCodeError
		}
		fmt.Fprintf(stdout, FmtCommandDone, step.message)
	}

	fmt.Fprint(stdout, FmtPushReminder)
	return ExitCodeSuccess
}

// dryRun previews the changelog without writing files or committing.
func dryRun(cfg *releaseConfig, stdout, stderr io.Writer, commands commandRunner) int {
	preview, err := commands.run(ToolChglog, "--next-tag", cfg.version)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCommandFailed, err)
		return ExitCodeError
	}
	fmt.Fprintln(stdout, preview)

	annotation, err := commands.run(ToolChglog, "--config", cfg.configPath, "--next-tag", cfg.version, cfg.version)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCommandFailed, err)
		return ExitCodeError
	}
	fmt.Fprintln(stdout, annotation)
	return ExitCodeSuccess
}

// replaceVersion rewrites every occurrence of the previous version string
// (without the leading "v") with the new one in the given file.
func replaceVersion(path, previous, next string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	updated := strings.ReplaceAll(string(content), previous[1:], next[1:])
	return os.WriteFile(path, []byte(updated), 0644)
}
