package demo

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rulekit/crux/internal/util"
	"github.com/rulekit/crux/pkg/crux"
	"github.com/rulekit/crux/pkg/crux/solver"
)

func NewDemoCommand(logger *logrus.Logger) *cobra.Command {
	var assume []int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Explains a conflicting build configuration",
		Long: `Explains a small product-configurator rule set. The default selection
(cpu-i9, gpu-pro, case-slim) has no valid build; the report names the
rules that clash and the minimal set of constraints behind the conflict.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, assume)
		},
	}

	cmd.Flags().IntSliceVar(&assume, "assume", []int{cpuI9, gpuPro, caseSlim}, "selected component variables")
	return cmd
}

func run(logger *logrus.Logger, assume []int) error {
	formula := Formula()
	logger.Debugf("configurator: %d variables, %d clauses", formula.NumVars(), len(formula.Clauses()))

	fmt.Println("components:")
	for v := cpuI5; v <= caseTower; v++ {
		fmt.Printf("%d = %s\n", v, componentNames[v])
	}

	assumptions := make([]crux.Literal, 0, len(assume))
	for _, v := range assume {
		assumptions = append(assumptions, crux.Literal(v))
	}

	explainer, err := solver.New()
	if err != nil {
		return err
	}
	report, err := explainer.Explain(formula, assumptions, nil)
	if err != nil {
		return err
	}

	out, err := util.JSONMarshalIndent(report)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
