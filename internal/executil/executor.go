// Package executil runs external commands with bounded output capture,
// context cancellation and an optional timeout with graceful shutdown.
package executil

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/Cyclone1070/chdbatch/internal/config"
)

// Result represents the outcome of a command execution. A non-zero
// ExitCode is data for the caller to interpret, not an error.
type Result struct {
	Stdout    string
	Stderr    string
	ExitCode  int
	Truncated bool
}

// OSCommandExecutor implements command execution using os/exec for real system commands.
type OSCommandExecutor struct {
	config *config.Config
}

// NewOSCommandExecutor creates a new OSCommandExecutor with injected config.
func NewOSCommandExecutor(cfg *config.Config) *OSCommandExecutor {
	if cfg == nil {
		panic("cfg is required")
	}
	return &OSCommandExecutor{config: cfg}
}

// Run executes argv[0] with argv[1:] and waits for it to exit,
// buffering output internally. When tool.timeout_seconds is set the
// process gets an interrupt on expiry and a kill after the configured
// grace period, and Run returns ErrTimeout. Exit status never produces
// an error; it is reported through Result.ExitCode.
func (f *OSCommandExecutor) Run(ctx context.Context, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, os.ErrInvalid
	}

	maxBytes := int(f.config.Tool.MaxOutputBytes)
	stdoutCollector := newCollector(maxBytes)
	stderrCollector := newCollector(maxBytes)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = nil
	// The collectors are handed straight to the command so Wait owns
	// pipe draining; no output can be lost between exit and collection.
	cmd.Stdout = stdoutCollector
	cmd.Stderr = stderrCollector

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: argv[0], Cause: err, Stage: "start"}
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var waitErr, execErr error
	select {
	case waitErr = <-done:
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		execErr = ctx.Err()
	case <-f.timeoutChan():
		// Try graceful shutdown
		_ = cmd.Process.Signal(os.Interrupt)
		select {
		case <-done:
		case <-time.After(time.Duration(f.config.Tool.GracefulShutdownMs) * time.Millisecond):
			_ = cmd.Process.Kill()
			<-done
		}
		execErr = ErrTimeout
	}

	if execErr != nil {
		return nil, execErr
	}

	exitCode := 0
	if waitErr != nil {
		exitCode = f.getExitCode(waitErr)
	}

	return &Result{
		Stdout:    stdoutCollector.String(),
		Stderr:    stderrCollector.String(),
		ExitCode:  exitCode,
		Truncated: stdoutCollector.Truncated() || stderrCollector.Truncated(),
	}, nil
}

// timeoutChan returns a channel that never fires when no timeout is
// configured.
func (f *OSCommandExecutor) timeoutChan() <-chan time.Time {
	if f.config.Tool.TimeoutSeconds <= 0 {
		return nil
	}
	return time.After(time.Duration(f.config.Tool.TimeoutSeconds) * time.Second)
}

func (f *OSCommandExecutor) getExitCode(err error) int {
	if err == nil {
		return 0
	}
	type exitCoder interface {
		ExitCode() int
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}
