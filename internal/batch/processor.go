// Package batch applies compress, decompress and info operations to a
// single file or a whole directory tree, delegating codec work to the
// external chdman executable.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Cyclone1070/chdbatch/internal/config"
	"github.com/Cyclone1070/chdbatch/internal/disc"
	"github.com/Cyclone1070/chdbatch/internal/executil"
	"github.com/fatih/color"
)

// Runner executes an assembled command line. *executil.OSCommandExecutor
// is the production implementation; tests substitute fakes.
type Runner interface {
	Run(ctx context.Context, argv []string) (*executil.Result, error)
}

// Processor dispatches batch operations. One Processor handles one
// run; the info-header state is per call, not per Processor.
type Processor struct {
	cfg    *config.Config
	runner Runner
	out    io.Writer
	errOut io.Writer

	// DryRun renders command lines without spawning chdman or touching
	// the filesystem. The read-only info probe during decompress still
	// runs, so the rendered extract command is the real one.
	DryRun bool

	cyan   func(a ...interface{}) string
	yellow func(a ...interface{}) string
}

// New creates a Processor. out receives command echoes and info
// tables; errOut receives warnings and progress.
func New(cfg *config.Config, runner Runner, out, errOut io.Writer) *Processor {
	if cfg == nil {
		panic("cfg is required")
	}
	if runner == nil {
		panic("runner is required")
	}
	return &Processor{
		cfg:    cfg,
		runner: runner,
		out:    out,
		errOut: errOut,
		cyan:   color.New(color.FgCyan).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
	}
}

// echo prints a command line before execution.
func (p *Processor) echo(line string) {
	fmt.Fprintln(p.out, p.cyan(line))
}

// statInput classifies the input path, rejecting anything that is
// neither a regular file nor a directory.
func (p *Processor) statInput(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", disc.ErrPathNotFound, path)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", disc.ErrPathNotFound, path)
	}
	return info, nil
}

// checkOutputFile rejects an output path that already names a regular
// file. Called for both supplied and derived paths, always before any
// subprocess is spawned.
func checkOutputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if info.IsDir() {
		return nil
	}
	return fmt.Errorf("%w: %s", disc.ErrOutputExists, path)
}

// ensureOutputDir creates the output directory tree, or just prints
// the mkdir in dry-run.
func (p *Processor) ensureOutputDir(path string) error {
	if p.DryRun {
		fmt.Fprintln(p.out, p.yellow("mkdir -p "+path))
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

// fileFailed records a rejected file. In strict mode the error is
// returned and aborts the batch; otherwise a warning is printed and
// the batch continues.
func (p *Processor) fileFailed(report *Report, input string, err error) error {
	report.add(FileResult{Input: input, Status: StatusFailed, Err: err})
	if p.cfg.Batch.StrictAbort {
		return err
	}
	fmt.Fprintln(p.errOut, p.yellow(fmt.Sprintf("warning: skipping %s: %v", input, err)))
	return nil
}

// toolFailed records a non-zero chdman exit. It never aborts the batch.
func (p *Processor) toolFailed(report *Report, input, output string, exitCode int) {
	err := fmt.Errorf("%w: exit code %d", ErrToolFailed, exitCode)
	report.add(FileResult{Input: input, Output: output, Status: StatusToolFailed, Err: err})
	fmt.Fprintln(p.errOut, p.yellow(fmt.Sprintf("warning: %s: %v", input, err)))
}
