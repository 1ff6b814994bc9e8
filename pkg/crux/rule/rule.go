package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rulekit/crux/pkg/crux"
)

// Rule groups the clauses enforcing one domain rule under a shared id and
// human-readable description. Builders tag every emitted clause with the
// rule's id and a note describing the individual constraint, so reports
// can name both the rule and the exact clause that fired.
type Rule struct {
	id          string
	description string
}

// New returns a rule with the given id and description.
func New(id, description string) Rule {
	return Rule{id: id, description: description}
}

// Meta returns the rule's metadata for Formula construction.
func (r Rule) Meta() crux.RuleMeta {
	return crux.RuleMeta{RuleID: r.id, Description: r.description}
}

// Clause returns a clause over the given literals tagged with the rule's
// id and a caller-supplied note.
func (r Rule) Clause(note string, lits ...crux.Literal) *crux.Clause {
	return crux.NewRuleClause(r.id, note, lits...)
}

// Mandatory returns a clause that permits only assignments containing v.
func (r Rule) Mandatory(v int) *crux.Clause {
	return r.Clause(fmt.Sprintf("%d is mandatory", v), crux.Literal(v))
}

// Prohibited returns a clause that rejects any assignment containing v.
func (r Rule) Prohibited(v int) *crux.Clause {
	return r.Clause(fmt.Sprintf("%d is prohibited", v), crux.Literal(-v))
}

// Dependency returns a clause stating that choosing subject requires at
// least one of the dependencies. With no dependencies the subject is
// simply prohibited.
func (r Rule) Dependency(subject int, dependencies ...int) *crux.Clause {
	lits := make([]crux.Literal, 0, len(dependencies)+1)
	lits = append(lits, crux.Literal(-subject))
	for _, d := range dependencies {
		lits = append(lits, crux.Literal(d))
	}
	return r.Clause(fmt.Sprintf("%d requires at least one of %s", subject, joinVars(dependencies)), lits...)
}

// Conflict returns a clause stating that a and b cannot both be chosen.
func (r Rule) Conflict(a, b int) *crux.Clause {
	return r.Clause(fmt.Sprintf("%d conflicts with %d", a, b), crux.Literal(-a), crux.Literal(-b))
}

// AnyOf returns a clause requiring at least one of the variables.
func (r Rule) AnyOf(vs ...int) *crux.Clause {
	lits := make([]crux.Literal, 0, len(vs))
	for _, v := range vs {
		lits = append(lits, crux.Literal(v))
	}
	return r.Clause(fmt.Sprintf("at least one of %s must hold", joinVars(vs)), lits...)
}

// AtMostOne returns the pairwise clauses permitting at most one of the
// variables, all tagged with the rule.
func (r Rule) AtMostOne(vs ...int) []*crux.Clause {
	var clauses []*crux.Clause
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			clauses = append(clauses, r.Conflict(vs[i], vs[j]))
		}
	}
	return clauses
}

func joinVars(vs []int) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ", ")
}
