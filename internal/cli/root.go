package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/drolfe/shell-prompt/internal/errors"
	"github.com/drolfe/shell-prompt/internal/prompt"
	"github.com/spf13/cobra"
)

const (
	errorHeader = "--- Prompt error -------------------------------------"
	errorFooter = "-------------------------------------------------------"
)

var rootCmd = newRootCmd(newPromptRunner())

func newRootCmd(r *promptRunner) *cobra.Command {
	opts := &promptOptions{}

	cmd := &cobra.Command{
		Use:   "shell-prompt",
		Short: "Print a one-shot shell prompt",
		Long: `Print the shell prompt: window title, a bar line sized to the terminal
showing user@host, git branch and status, the abbreviated working directory,
background jobs and the time, then an optional container line and "$ ".

Intended for command substitution:
  PS1='$(shell-prompt --jobs \j)'

Directory abbreviations are read from ~/.config/shell_prompt.conf:
  {"bookmarks": [["/data/{USER}", "data"]], "servers": [["/mnt/hpc", "hpc"]]}`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := r.render(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/shell_prompt.conf)")
	cmd.Flags().IntVar(&opts.columns, "columns", 0, "terminal width to fit (default is the width of stdin)")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 0, "number of background jobs to show")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// Execute runs the root command. Errors and panics are printed to stdout
// as a diagnostic block followed by a bare prompt; the process always
// exits 0.
func Execute() {
	execute(rootCmd, os.Stdout)
}

func execute(cmd *cobra.Command, out io.Writer) {
	defer func() {
		if r := recover(); r != nil {
			writeErrorBlock(out, fmt.Sprintf("panic: %v", r), string(debug.Stack()))
		}
	}()

	cmd.SetOut(out)
	if err := cmd.Execute(); err != nil {
		writeErrorBlock(out, err.Error(), errors.StackOf(err))
	}
}

func writeErrorBlock(w io.Writer, msg, stack string) {
	fmt.Fprintln(w, errorHeader)
	fmt.Fprintln(w, strings.TrimRight(msg, "\n"))
	if stack != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.TrimRight(stack, "\n"))
	}
	fmt.Fprintln(w, errorFooter)
	fmt.Fprintln(w, prompt.Marker)
}
