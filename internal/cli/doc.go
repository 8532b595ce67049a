// Package cli implements the shell-prompt command line.
//
// The root command renders the prompt once and exits:
//
//	shell-prompt [--columns n] [--jobs n] [--config path]
//	shell-prompt config    - Print the effective config as YAML
//	shell-prompt version   - Print build information
//
// Execute never exits non-zero. The shell calls the program for every
// prompt, so a failure is printed in place of the prompt as a block
// holding the error and its stack, followed by "$ ".
//
// Collaborators that touch the process (environment, working directory,
// terminal, git) hang off promptRunner so tests can replace them.
package cli
