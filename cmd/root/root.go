package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rulekit/crux/cmd/demo"

	"github.com/rulekit/crux/cmd/explain"
)

func NewRootCmd() *cobra.Command {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "crux",
		Short: "Crux explains why CNF rule sets have no solution",
		Long: `A satisfiability explainer for rule sets in conjunctive normal form.
Beyond deciding whether a formula has a model under a set of assumptions,
crux reports which assumptions and rules force a conflict and extracts a
minimal unsatisfiable core.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	// add sub-commands
	rootCmd.AddCommand(explain.NewExplainCommand(logger))
	rootCmd.AddCommand(demo.NewDemoCommand(logger))

	return rootCmd
}
