package demo

import (
	"github.com/rulekit/crux/pkg/crux"
	"github.com/rulekit/crux/pkg/crux/rule"
)

// Component catalog for the build demo, one boolean variable per part.
const (
	cpuI5 = iota + 1
	cpuI9
	gpuBasic
	gpuPro
	psu450
	psu850
	caseSlim
	caseTower
)

var componentNames = map[int]string{
	cpuI5:     "cpu-i5",
	cpuI9:     "cpu-i9",
	gpuBasic:  "gpu-basic",
	gpuPro:    "gpu-pro",
	psu450:    "psu-450w",
	psu850:    "psu-850w",
	caseSlim:  "case-slim",
	caseTower: "case-tower",
}

// Formula returns the configurator's rule set. The default selection of
// cpu-i9, gpu-pro and case-slim is impossible: both high-draw parts need
// the 850W power supply, which does not fit the slim case.
func Formula() *crux.Formula {
	cpu := rule.New("R-CPU", "exactly one CPU is selected")
	gpu := rule.New("R-GPU", "at most one GPU is selected")
	psu := rule.New("R-PSU", "exactly one power supply is selected")
	chassis := rule.New("R-CASE", "exactly one case is selected")
	power := rule.New("R-PWR", "high-draw parts need the 850W power supply")
	fit := rule.New("R-FIT", "the 850W power supply does not fit the slim case")

	var clauses []*crux.Clause
	clauses = append(clauses, cpu.AnyOf(cpuI5, cpuI9))
	clauses = append(clauses, cpu.AtMostOne(cpuI5, cpuI9)...)
	clauses = append(clauses, gpu.AtMostOne(gpuBasic, gpuPro)...)
	clauses = append(clauses, psu.AnyOf(psu450, psu850))
	clauses = append(clauses, psu.AtMostOne(psu450, psu850)...)
	clauses = append(clauses, chassis.AnyOf(caseSlim, caseTower))
	clauses = append(clauses, chassis.AtMostOne(caseSlim, caseTower)...)
	clauses = append(clauses, power.Dependency(cpuI9, psu850))
	clauses = append(clauses, power.Dependency(gpuPro, psu850))
	clauses = append(clauses, fit.Conflict(psu850, caseSlim))

	return crux.NewFormula(caseTower, clauses,
		cpu.Meta(), gpu.Meta(), psu.Meta(), chassis.Meta(), power.Meta(), fit.Meta())
}
