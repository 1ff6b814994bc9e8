package crux

import (
	"fmt"
	"sort"
)

// Clause is a disjunction of literals, optionally tagged with the domain
// rule it enforces and a free-form note. Clauses are immutable once
// constructed, so a clause pointer is a stable identity: the unsatisfiable
// cores reported by this package are subsets of the very clause pointers
// the Formula was built from.
type Clause struct {
	lits   []Literal
	ruleID string
	note   string
}

// NewClause returns an untagged clause over the given literals.
func NewClause(lits ...Literal) *Clause {
	return NewRuleClause("", "", lits...)
}

// NewRuleClause returns a clause tagged with the id of the domain rule it
// enforces. Literals are deduplicated by exact value and sorted by
// variable, the negative literal of a variable ordering before the
// positive one. A clause may keep both polarities of a variable; such a
// clause is simply always satisfiable.
func NewRuleClause(ruleID, note string, lits ...Literal) *Clause {
	seen := make(map[Literal]struct{}, len(lits))
	ls := make([]Literal, 0, len(lits))
	for _, l := range lits {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		ls = append(ls, l)
	}
	sort.Slice(ls, func(i, j int) bool {
		if ls[i].Var() != ls[j].Var() {
			return ls[i].Var() < ls[j].Var()
		}
		return ls[i] < ls[j]
	})
	return &Clause{lits: ls, ruleID: ruleID, note: note}
}

// Literals returns the clause's literals in normalized order. The
// returned slice is the clause's own storage and must not be modified.
func (c *Clause) Literals() []Literal {
	return c.lits
}

// RuleID returns the id of the rule this clause enforces, or the empty
// string for untagged clauses.
func (c *Clause) RuleID() string {
	return c.ruleID
}

// Note returns the clause's free-form annotation.
func (c *Clause) Note() string {
	return c.note
}

// String implements fmt.Stringer and renders the clause's literals in
// normalized order, with the rule tag when present.
func (c *Clause) String() string {
	if c.ruleID == "" {
		return fmt.Sprintf("%v", c.lits)
	}
	return fmt.Sprintf("%v (rule %s)", c.lits, c.ruleID)
}

// Formula is a propositional formula in conjunctive normal form together
// with a table of rule metadata. Variables are the integers 1..NumVars;
// clauses may mention variables beyond NumVars and such variables simply
// never appear in the decision order.
type Formula struct {
	numVars int
	clauses []*Clause
	rules   map[string]RuleMeta
}

// NewFormula returns a formula over variables 1..numVars with the given
// clauses and rule metadata. Clause rule ids are not required to appear
// in the metadata; missing ids resolve to a RuleMeta with an empty
// description.
func NewFormula(numVars int, clauses []*Clause, rules ...RuleMeta) *Formula {
	table := make(map[string]RuleMeta, len(rules))
	for _, r := range rules {
		table[r.RuleID] = r
	}
	return &Formula{numVars: numVars, clauses: clauses, rules: table}
}

// NumVars returns the number of decision variables.
func (f *Formula) NumVars() int {
	return f.numVars
}

// Clauses returns the formula's clauses in input order. The returned
// slice is the formula's own storage and must not be modified.
func (f *Formula) Clauses() []*Clause {
	return f.clauses
}

// Rule resolves a rule id against the formula's metadata table. Unknown
// ids, including the empty id of untagged clauses, resolve to a RuleMeta
// carrying the id and an empty description.
func (f *Formula) Rule(id string) RuleMeta {
	if r, ok := f.rules[id]; ok {
		return r
	}
	return RuleMeta{RuleID: id}
}

// Restrict returns a formula over the same variables and rule table but
// containing only the given clauses. It does not copy the clauses: the
// restriction shares identities with the receiver.
func (f *Formula) Restrict(clauses []*Clause) *Formula {
	return &Formula{numVars: f.numVars, clauses: clauses, rules: f.rules}
}
