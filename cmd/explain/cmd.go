package explain

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rulekit/crux/internal/util"
	"github.com/rulekit/crux/pkg/crux"
	"github.com/rulekit/crux/pkg/crux/solver"
)

func NewExplainCommand(logger *logrus.Logger) *cobra.Command {
	var (
		assume    []int
		hint      []int
		rulesPath string
		trace     bool
	)

	cmd := &cobra.Command{
		Use:   "explain <path>",
		Short: "Explains the satisfiability of a CNF problem given in DIMACS format",
		Long: `Explains the satisfiability of a CNF problem given in DIMACS format.
For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)

Satisfiable problems report a model. Unsatisfiable problems report the
falsified clause, the assumptions that forced its literals and a minimal
unsatisfiable core. A YAML sidecar may tag clauses with the domain rules
they enforce so reports can name them:

rules:
  - id: R-PSU
    description: power budget compatibility
    clauses: [2]`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			if rulesPath != "" {
				if _, err := os.Stat(rulesPath); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", rulesPath)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, args[0], rulesPath, toLiterals(assume), toLiterals(hint), trace)
		},
	}

	cmd.Flags().IntSliceVar(&assume, "assume", nil, "assumption literals, e.g. --assume=1,-3")
	cmd.Flags().IntSliceVar(&hint, "hint", nil, "hint literals biasing decision order and focusing core extraction")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML sidecar tagging clauses with domain rules")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every conflict the search encounters to stderr")
	return cmd
}

func run(logger *logrus.Logger, path, rulesPath string, assumptions, hints []crux.Literal, trace bool) error {
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	formula, err := ParseDimacs(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}
	logger.Debugf("parsed %s: %d variables, %d clauses", path, formula.NumVars(), len(formula.Clauses()))

	if rulesPath != "" {
		formula, err = ApplyRulesFile(formula, rulesPath)
		if err != nil {
			return fmt.Errorf("error applying rules file (%s): %w", rulesPath, err)
		}
	}

	var options []solver.Option
	if trace {
		options = append(options, solver.WithTracer(crux.LoggingTracer{Writer: os.Stderr}))
	}
	explainer, err := solver.New(options...)
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := explainer.Explain(formula, assumptions, hints)
	if err != nil {
		return err
	}
	logger.Debugf("explained in %s: %s", time.Since(start), report.ReportType())

	out, err := util.JSONMarshalIndent(report)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func toLiterals(ns []int) []crux.Literal {
	ls := make([]crux.Literal, 0, len(ns))
	for _, n := range ns {
		ls = append(ls, crux.Literal(n))
	}
	return ls
}
