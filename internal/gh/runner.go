// Package gh runs the GitHub CLI to look up pull request details.
package gh

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/wizzomafizzo/tasksave/internal/constants"
)

// waitDelay caps how long Wait blocks on pipes held open by grandchildren
// after the timeout has killed gh.
const waitDelay = time.Second

// Status tags the outcome of a gh invocation.
type Status int

const (
	StatusSuccess Status = iota
	StatusNonZeroExit
	StatusNotFound
	StatusTimedOut
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNonZeroExit:
		return "nonzero-exit"
	case StatusNotFound:
		return "not-found"
	case StatusTimedOut:
		return "timed-out"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a lookup. Body is only set on StatusSuccess,
// ExitCode and Stderr only on StatusNonZeroExit, Err on every other status.
type Result struct {
	Err      error
	Body     string
	Stderr   string
	Status   Status
	ExitCode int
}

// Runner executes gh with a fixed timeout
type Runner struct {
	Binary  string
	Timeout time.Duration
}

// NewRunner creates a runner, falling back to "gh" and the default timeout
// when binary or timeout are unset.
func NewRunner(binary string, timeout time.Duration) *Runner {
	if binary == "" {
		binary = constants.GHBinary
	}
	if timeout <= 0 {
		timeout = constants.LookupTimeout
	}
	return &Runner{Binary: binary, Timeout: timeout}
}

// PRBody fetches the description of the pull request at url.
func (r *Runner) PRBody(ctx context.Context, url string) Result {
	return r.run(ctx, "pr", "view", url, "--json", "body", "-q", ".body")
}

func (r *Runner) run(ctx context.Context, args ...string) Result {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	// #nosec G204 -- binary comes from tasksave config, args are fixed
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return Result{Status: StatusSuccess, Body: strings.TrimSpace(stdout.String())}
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Result{Status: StatusTimedOut, Err: ctx.Err()}
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return Result{Status: StatusNotFound, Err: err}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{
			Status:   StatusNonZeroExit,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}

	return Result{Status: StatusFailed, Err: err}
}

// Available reports whether the configured binary can be resolved.
func (r *Runner) Available() (string, bool) {
	path, err := exec.LookPath(r.Binary)
	if err != nil {
		return "", false
	}
	return path, true
}
