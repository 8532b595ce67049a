package cli

import (
	"context"
	"time"

	"github.com/drolfe/shell-prompt/internal/config"
	"github.com/drolfe/shell-prompt/internal/env"
	"github.com/drolfe/shell-prompt/internal/gitstatus"
	"github.com/drolfe/shell-prompt/internal/logger"
	"github.com/drolfe/shell-prompt/internal/prompt"
)

// promptOptions holds the root command's flags.
type promptOptions struct {
	configPath string
	columns    int
	jobs       int
}

// promptRunner gathers the prompt's inputs and renders it.
type promptRunner struct {
	sources env.Sources
	branch  func(dir string) (name string, ok bool, err error)
	gitRun  gitstatus.Runner
	log     logger.Logger
}

func newPromptRunner() *promptRunner {
	return &promptRunner{
		sources: env.OSSources(),
		branch:  gitstatus.Branch,
		gitRun:  gitstatus.CommandRunner,
		log:     logger.Default(),
	}
}

func (r *promptRunner) render(ctx context.Context, opts promptOptions) (string, error) {
	e, err := env.Gather(r.sources, env.Options{Columns: opts.columns, Jobs: opts.jobs})
	if err != nil {
		return "", err
	}

	cfg, _, err := loadConfig(opts.configPath, e.Home)
	if err != nil {
		return "", err
	}

	in := prompt.Input{
		Env:    e,
		Config: cfg,
		Git:    r.git(ctx, e.Cwd, cfg.GitTimeout),
	}
	return prompt.Render(in, prompt.StylerFor(e)), nil
}

// git returns nil when dir is not inside a repository. A failed branch
// lookup hides the git bar.
func (r *promptRunner) git(ctx context.Context, dir string, timeout time.Duration) *prompt.Git {
	name, ok, err := r.branch(dir)
	if err != nil {
		r.log.Debug("branch lookup in %s failed: %v", dir, err)
		return nil
	}
	if !ok {
		return nil
	}

	p := gitstatus.NewProber(timeout, r.log)
	p.Run = r.gitRun
	return &prompt.Git{Branch: name, Status: p.Probe(ctx, dir)}
}

// loadConfig reads path when it is set; otherwise the default file under
// home, falling back to defaults when that file does not exist. It also
// returns the path it used.
func loadConfig(path, home string) (*config.Config, string, error) {
	if path != "" {
		cfg, err := config.Load(path)
		return cfg, path, err
	}
	path = config.DefaultPath(home)
	cfg, err := config.LoadOrDefault(path)
	return cfg, path, err
}
