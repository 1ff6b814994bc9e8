package solver

import (
	"sort"

	"github.com/rulekit/crux/pkg/crux"
)

// BuildExplanation accounts for a falsified clause under the final search
// state: which of its literals are assigned false, which assumptions the
// reason graph traces those literals back to, and which rules' clauses
// participated in the forcing. Plain decision variables terminate a trace
// silently; only assumption literals are reported as causes.
func BuildExplanation(f *crux.Formula, assign Assignment, reasons Reasons, conflict *crux.Clause, assumptions []crux.Literal) crux.Explanation {
	assumed := make(map[crux.Literal]struct{}, len(assumptions))
	for _, a := range assumptions {
		assumed[a] = struct{}{}
	}

	falsified := make([]crux.Literal, 0, len(conflict.Literals()))
	for _, l := range conflict.Literals() {
		if val, ok := assign.value(l); ok && !val {
			falsified = append(falsified, l)
		}
	}

	causeSet := make(map[crux.Literal]struct{})
	for _, l := range falsified {
		assumptionCauses(l.Var(), assign, reasons, assumed, causeSet)
	}
	causes := make([]crux.Literal, 0, len(causeSet))
	for l := range causeSet {
		causes = append(causes, l)
	}
	sort.Slice(causes, func(i, j int) bool {
		if causes[i].Var() != causes[j].Var() {
			return causes[i].Var() < causes[j].Var()
		}
		return causes[i] < causes[j]
	})

	ruleSet := involvedRules(falsified, reasons)
	ids := make([]string, 0, len(ruleSet))
	for id := range ruleSet {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	rules := make([]crux.RuleMeta, 0, len(ids))
	for _, id := range ids {
		rules = append(rules, f.Rule(id))
	}

	return crux.Explanation{
		Conflict:          conflict,
		FalsifiedLiterals: falsified,
		AssumptionCauses:  causes,
		InvolvedRules:     rules,
	}
}

// assumptionCauses walks the reason graph from root to the variables with
// no recorded reason. Such a variable entered the assignment as an
// assumption or a decision; its canonical signed literal is added to
// causes when it (or its negation) was assumed.
func assumptionCauses(root int, assign Assignment, reasons Reasons, assumed map[crux.Literal]struct{}, causes map[crux.Literal]struct{}) {
	frontier := []int{root}
	seen := make(map[int]struct{})
	for len(frontier) > 0 {
		v := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}

		reason, ok := reasons[v]
		if !ok {
			lit := crux.Literal(-v)
			if assign[v] {
				lit = crux.Literal(v)
			}
			_, pos := assumed[lit]
			_, neg := assumed[lit.Negate()]
			if pos || neg {
				causes[lit] = struct{}{}
			}
			continue
		}
		for _, l := range reason.Literals() {
			u := l.Var()
			if u == v {
				continue
			}
			if _, assigned := assign[u]; assigned {
				frontier = append(frontier, u)
			}
		}
	}
}

// involvedRules collects the rule id of every reason clause reachable
// from the falsified literals, untagged clauses contributing the empty
// id. The visited set is shared across roots.
func involvedRules(falsified []crux.Literal, reasons Reasons) map[string]struct{} {
	rules := make(map[string]struct{})
	visited := make(map[int]struct{})
	for _, l := range falsified {
		worklist := []int{l.Var()}
		for len(worklist) > 0 {
			v := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]
			if _, ok := visited[v]; ok {
				continue
			}
			visited[v] = struct{}{}

			reason, ok := reasons[v]
			if !ok {
				continue
			}
			rules[reason.RuleID()] = struct{}{}
			for _, rl := range reason.Literals() {
				if u := rl.Var(); u != v {
					worklist = append(worklist, u)
				}
			}
		}
	}
	return rules
}
