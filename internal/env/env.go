// Package env captures everything the prompt reads from the process
// environment into one immutable snapshot, so rendering stays a pure
// function of its inputs.
package env

import (
	"fmt"
	"os"
	"time"

	"github.com/drolfe/shell-prompt/internal/errors"
	"golang.org/x/term"
)

// Environment variables the prompt reads.
const (
	VarUser      = "USER"
	VarHome      = "HOME"
	VarTerm      = "TERM"
	VarColorTerm = "COLORTERM"
	VarRoxTerm   = "ROXTERM_NUM"
	VarNoUnicode = "PROMPT_NO_UNICODE"
	VarContainer = "APPTAINER_CONTAINER"
)

// Environment is a snapshot of the prompt's inputs.
type Environment struct {
	User      string
	Home      string
	Term      string
	ColorTerm string

	// RoxTerm and NoUnicode record the presence of ROXTERM_NUM and
	// PROMPT_NO_UNICODE; their values are ignored.
	RoxTerm   bool
	NoUnicode bool

	// Container is the APPTAINER_CONTAINER image path when InContainer is set.
	Container   string
	InContainer bool

	Cwd     string
	Host    string
	Columns int
	Jobs    int
	Now     time.Time
}

// Sources are the lookups Gather reads from. Tests replace them.
type Sources struct {
	LookupEnv     func(key string) (string, bool)
	Getwd         func() (string, error)
	Hostname      func() (string, error)
	TerminalWidth func() (int, error)
	Now           func() time.Time
}

// OSSources reads from the running process.
func OSSources() Sources {
	return Sources{
		LookupEnv:     os.LookupEnv,
		Getwd:         os.Getwd,
		Hostname:      os.Hostname,
		TerminalWidth: stdinWidth,
		Now:           time.Now,
	}
}

// stdinWidth reads the terminal size from stdin, which stays attached to
// the terminal while the shell captures stdout.
func stdinWidth() (int, error) {
	width, _, err := term.GetSize(int(os.Stdin.Fd()))
	return width, err
}

// Options carries values supplied on the command line.
type Options struct {
	// Columns overrides the terminal width when positive.
	Columns int
	// Jobs is the number of background jobs in the calling shell.
	Jobs int
}

// Gather builds an Environment. USER, HOME and TERM are required.
func Gather(src Sources, opts Options) (*Environment, error) {
	e := &Environment{Jobs: opts.Jobs}

	required := []struct {
		key string
		dst *string
	}{
		{VarUser, &e.User},
		{VarHome, &e.Home},
		{VarTerm, &e.Term},
	}
	for _, r := range required {
		v, ok := src.LookupEnv(r.key)
		if !ok {
			return nil, errors.New(errors.ErrEnv,
				r.key+" is not set",
				fmt.Sprintf("Export %s in your shell profile", r.key))
		}
		*r.dst = v
	}

	e.ColorTerm, _ = src.LookupEnv(VarColorTerm)
	_, e.RoxTerm = src.LookupEnv(VarRoxTerm)
	_, e.NoUnicode = src.LookupEnv(VarNoUnicode)
	e.Container, e.InContainer = src.LookupEnv(VarContainer)

	cwd, err := src.Getwd()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrEnv,
			"Cannot determine current directory",
			"The directory may have been removed; cd somewhere else")
	}
	e.Cwd = cwd

	host, err := src.Hostname()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrEnv,
			"Cannot determine hostname", "")
	}
	e.Host = host

	if opts.Columns > 0 {
		e.Columns = opts.Columns
	} else {
		cols, err := src.TerminalWidth()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrTerm,
				"Cannot read terminal size",
				"Run the prompt from an interactive terminal or pass --columns")
		}
		e.Columns = cols
	}

	e.Now = src.Now()
	return e, nil
}
