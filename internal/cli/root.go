// Package cli defines the beliefnet command: flag parsing, config and
// logger setup, and the Monty Hall query the binary answers.
package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time
var Version = "0.1.0"

// newRootCmd builds a fresh command for each invocation. pflag values
// persist across Execute calls on a shared command, so a reused command
// would leak flag state from one run into the next.
func newRootCmd() *cobra.Command {
	var evidencePairs []string

	cmd := &cobra.Command{
		Use:   "beliefnet",
		Short: "Exact inference on the Monty Hall network",
		Long: `beliefnet builds the classic Monty Hall network (the guest's pick, the
prize door, and the host's reveal) and prints the posterior probability
of every door given the observed evidence.

Examples:
  # The classic scenario: guest picked door A, the host opened door B
  beliefnet

  # Query the prior marginals with nothing observed
  beliefnet --evidence none

  # Arbitrary evidence, repeated or comma-separated
  beliefnet --evidence guest=B
  beliefnet --evidence guest=A,monty=C`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, evidencePairs)
		},
	}

	cmd.Flags().StringSliceVar(&evidencePairs, "evidence", []string{"guest=A", "monty=B"},
		`observed nodes as name=value pairs, or "none" to query the priors`)

	return cmd
}

// Execute runs the CLI
func Execute() error {
	return newRootCmd().Execute()
}
