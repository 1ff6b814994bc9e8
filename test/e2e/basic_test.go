package e2e

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rulekit/crux/cmd/explain"
	"github.com/rulekit/crux/internal/util"
	"github.com/rulekit/crux/pkg/crux"
	"github.com/rulekit/crux/pkg/crux/solver"
)

const problem = "c pc configurator\np cnf 3 2\n-1 2 0\n-2 -3 0\n"

const sidecar = `rules:
  - id: R-PWR
    description: high draw needs the big supply
    note: 1 requires 2
    clauses: [1]
  - id: R-FIT
    description: the big supply does not fit the slim case
    note: 2 conflicts with 3
    clauses: [2]
`

var _ = Describe("Explaining a DIMACS problem", func() {
	var formula *crux.Formula

	BeforeEach(func() {
		dir := GinkgoT().TempDir()
		cnfPath := filepath.Join(dir, "build.cnf")
		rulesPath := filepath.Join(dir, "rules.yaml")
		Expect(os.WriteFile(cnfPath, []byte(problem), 0600)).To(Succeed())
		Expect(os.WriteFile(rulesPath, []byte(sidecar), 0600)).To(Succeed())

		in, err := os.Open(cnfPath)
		Expect(err).ToNot(HaveOccurred())
		defer in.Close()

		formula, err = explain.ParseDimacs(in)
		Expect(err).ToNot(HaveOccurred())
		formula, err = explain.ApplyRulesFile(formula, rulesPath)
		Expect(err).ToNot(HaveOccurred())
	})

	explainUnder := func(assumptions ...crux.Literal) string {
		e, err := solver.New()
		Expect(err).ToNot(HaveOccurred())
		report, err := e.Explain(formula, assumptions, nil)
		Expect(err).ToNot(HaveOccurred())
		out, err := util.JSONMarshal(report)
		Expect(err).ToNot(HaveOccurred())
		return string(out)
	}

	When("the selection violates the tagged rule chain", func() {
		It("should name the falsified clause, its causes and a minimal core", func() {
			Expect(explainUnder(1, 3)).To(MatchJSON(`{
				"type": "unsat_with_core",
				"primary_explanation": {
					"type": "unsat_explanation",
					"conflict_clause": {"lits": [-2, -3], "rule_id": "R-FIT", "note": "2 conflicts with 3"},
					"falsified_literals": [-2, -3],
					"assumption_causes": [1, 3],
					"involved_rules": [
						{"rule_id": "R-PWR", "description": "high draw needs the big supply"}
					]
				},
				"mus_size": 2,
				"mus_clauses": [
					{"lits": [-1, 2], "rule_id": "R-PWR", "note": "1 requires 2"},
					{"lits": [-2, -3], "rule_id": "R-FIT", "note": "2 conflicts with 3"}
				],
				"mus_rules": [
					{"rule_id": "R-FIT", "description": "the big supply does not fit the slim case"},
					{"rule_id": "R-PWR", "description": "high draw needs the big supply"}
				],
				"hints_used": []
			}`))
		})
	})

	When("the selection has a valid build", func() {
		It("should report the model", func() {
			Expect(explainUnder(2)).To(MatchJSON(`{
				"type": "sat",
				"model": {"1": true, "2": true, "3": false},
				"note": "SAT under assumptions; no conflict to explain."
			}`))
		})
	})

	When("the selection contradicts itself", func() {
		It("should report the clashing pair and no core", func() {
			Expect(explainUnder(3, -3)).To(MatchJSON(`{
				"type": "unsat_with_core",
				"primary_explanation": {
					"type": "assumption_conflict",
					"conflicting_assumptions": [-3, 3]
				},
				"mus_size": 0,
				"mus_clauses": [],
				"mus_rules": [],
				"hints_used": []
			}`))
		})
	})
})
