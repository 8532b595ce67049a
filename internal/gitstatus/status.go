// Package gitstatus reads the git branch and working-tree status for the prompt.
//
// Status can be slow on large or networked trees, so Probe waits for it
// only until a deadline. A probe that misses the deadline reports Unknown
// and leaves its worker running; the prompt process exits soon after and
// nothing waits on it.
package gitstatus

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/drolfe/shell-prompt/internal/config"
	"github.com/drolfe/shell-prompt/internal/logger"
)

// State is the outcome of a status probe.
type State int

const (
	// Unknown means the status query did not finish in time.
	Unknown State = iota
	// Clean means no tracked file differs from HEAD.
	Clean
	// Dirty means at least one tracked file is modified or staged.
	Dirty
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	default:
		return "unknown"
	}
}

// Status is the result of a probe. Codes holds the distinct two-letter
// porcelain codes in lexicographic order and is empty unless State is Dirty.
type Status struct {
	State State
	Codes []string
}

// Runner produces `git status --porcelain` output for dir.
type Runner func(ctx context.Context, dir string) ([]byte, error)

// StatusArgs limits the query to the directory itself and skips untracked files.
var StatusArgs = []string{"status", "-uno", "--porcelain", "."}

// CommandRunner runs the git CLI.
func CommandRunner(ctx context.Context, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", StatusArgs...)
	cmd.Dir = dir
	return cmd.Output()
}

// Prober runs status queries with a deadline.
type Prober struct {
	Run     Runner
	Timeout time.Duration
	Log     logger.Logger
}

// NewProber returns a Prober using the git CLI.
func NewProber(timeout time.Duration, log logger.Logger) *Prober {
	return &Prober{Run: CommandRunner, Timeout: timeout, Log: log}
}

type result struct {
	out []byte
	err error
}

// Probe queries the status of dir. It returns Unknown if the query has not
// finished after p.Timeout or ctx ends first. The worker is not cancelled on
// timeout.
func (p *Prober) Probe(ctx context.Context, dir string) Status {
	run := p.Run
	if run == nil {
		run = CommandRunner
	}
	log := p.Log
	if log == nil {
		log = logger.Noop()
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = config.DefaultGitTimeout
	}

	// Capacity one so an abandoned worker can still deliver and exit.
	done := make(chan result, 1)
	go func() {
		out, err := run(ctx, dir)
		done <- result{out: out, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			log.Warn("git status in %s failed: %v", dir, r.err)
			return Status{State: Clean}
		}
		return Parse(r.out)
	case <-timer.C:
		log.Debug("git status in %s still running after %s", dir, timeout)
		return Status{State: Unknown}
	case <-ctx.Done():
		return Status{State: Unknown}
	}
}

// Parse aggregates porcelain output into a Status. Untracked (??) and
// ignored (!!) entries are skipped.
func Parse(out []byte) Status {
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		code := line
		if len(code) > 2 {
			code = code[:2]
		}
		if code == "??" || code == "!!" {
			continue
		}
		seen[code] = struct{}{}
	}

	if len(seen) == 0 {
		return Status{State: Clean}
	}

	codes := make([]string, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return Status{State: Dirty, Codes: codes}
}

// Label formats the status suffix of the git bar: "" when clean,
// " |<hourglass>..|" when unknown, " |M |A |" when dirty.
func (s Status) Label(hourglass string) string {
	switch s.State {
	case Unknown:
		return " |" + hourglass + "..|"
	case Dirty:
		return " |" + strings.Join(s.Codes, "|") + "|"
	default:
		return ""
	}
}
