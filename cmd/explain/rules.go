package explain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rulekit/crux/pkg/crux"
)

// rulesFile is the YAML sidecar tagging DIMACS clauses with the domain
// rules they enforce:
//
//	rules:
//	  - id: R-PSU
//	    description: power budget compatibility
//	    note: stamped on every listed clause
//	    clauses: [2, 3]
//
// Clause indexes are 1-based positions in the parsed formula.
type rulesFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Note        string `yaml:"note"`
	Clauses     []int  `yaml:"clauses"`
}

// ApplyRulesFile rebuilds f with the sidecar's rule tags attached.
func ApplyRulesFile(f *crux.Formula, path string) (*crux.Formula, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return applyRules(f, data)
}

func applyRules(f *crux.Formula, data []byte) (*crux.Formula, error) {
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("error parsing rules data: %w", err)
	}

	clauses := f.Clauses()
	metas := make([]crux.RuleMeta, 0, len(rf.Rules))
	byIndex := map[int]ruleEntry{}
	for _, entry := range rf.Rules {
		if entry.ID == "" {
			return nil, fmt.Errorf("rule with empty id")
		}
		metas = append(metas, crux.RuleMeta{RuleID: entry.ID, Description: entry.Description})
		for _, idx := range entry.Clauses {
			if idx < 1 || idx > len(clauses) {
				return nil, fmt.Errorf("rule %s: clause index %d out of range 1..%d", entry.ID, idx, len(clauses))
			}
			if prev, ok := byIndex[idx]; ok {
				return nil, fmt.Errorf("clause %d tagged by both %s and %s", idx, prev.ID, entry.ID)
			}
			byIndex[idx] = entry
		}
	}

	tagged := make([]*crux.Clause, len(clauses))
	for i, c := range clauses {
		entry, ok := byIndex[i+1]
		if !ok {
			tagged[i] = c
			continue
		}
		tagged[i] = crux.NewRuleClause(entry.ID, entry.Note, c.Literals()...)
	}
	return crux.NewFormula(f.NumVars(), tagged, metas...), nil
}
