package cli

import (
	"os"

	"github.com/drolfe/shell-prompt/internal/config"
	"github.com/drolfe/shell-prompt/internal/env"
	"github.com/drolfe/shell-prompt/internal/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *promptOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration the prompt would use, as YAML: the file path,
whether it exists, the git status timeout and the bookmark and server
abbreviations in the order they are applied.

Patterns are shown before {USER} and {HOME} are substituted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, ok := os.LookupEnv(env.VarHome)
			if !ok && opts.configPath == "" {
				return errors.New(errors.ErrEnv,
					env.VarHome+" is not set",
					"Export HOME or pass --config")
			}

			cfg, path, err := loadConfig(opts.configPath, home)
			if err != nil {
				return err
			}
			_, statErr := os.Stat(path)

			out, err := config.MarshalYAML(cfg, path, statErr == nil)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
