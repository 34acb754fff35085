package inquiry

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// OutputFormat selects how the external query engine renders results.
type OutputFormat string

const (
	// FormatText renders results as an aligned text table.
	FormatText OutputFormat = OutputFormatText
	// FormatCSV renders results as CSV.
	FormatCSV OutputFormat = OutputFormatCSV
)

// ParseOutputFormat validates a format string from caller input.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case FormatText, FormatCSV:
		return OutputFormat(s), nil
	default:
		return "", NewInvalidFormatError(s)
	}
}

// QueryRunner executes a fully resolved query against a ledger and renders
// the result. Implementations own all I/O; the resolver pipeline never
// reads or writes anything itself.
type QueryRunner interface {
	Run(ctx context.Context, ledgerPath, query string, format OutputFormat) error
}

// BeanQueryRunner dispatches resolved queries to the bean-query executable.
type BeanQueryRunner struct {
	binary string
	stdout io.Writer
	stderr io.Writer
}

// NewBeanQueryRunner creates a runner using the default bean-query binary,
// writing results to stdout and stderr.
func NewBeanQueryRunner() *BeanQueryRunner {
	return &BeanQueryRunner{
		binary: DefaultRunnerBinary,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// NewBeanQueryRunnerWithOutput creates a runner with explicit binary name
// and output writers.
func NewBeanQueryRunnerWithOutput(binary string, stdout, stderr io.Writer) *BeanQueryRunner {
	if binary == "" {
		binary = DefaultRunnerBinary
	}
	return &BeanQueryRunner{
		binary: binary,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes `bean-query -f <format> <ledger> <query>`. A missing binary
// is reported before any execution is attempted.
func (r *BeanQueryRunner) Run(ctx context.Context, ledgerPath, query string, format OutputFormat) error {
	if _, err := exec.LookPath(r.binary); err != nil {
		return NewRunnerNotFoundError(r.binary)
	}

	cmd := exec.CommandContext(ctx, r.binary, "-f", string(format), ledgerPath, query)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		return NewRunError(err)
	}
	return nil
}
