package crux

import "encoding/json"

// Type tags under which reports and primary explanations marshal.
const (
	TypeSat                = "sat"
	TypeUnsatWithCore      = "unsat_with_core"
	TypeUnsatExplanation   = "unsat_explanation"
	TypeAssumptionConflict = "assumption_conflict"
)

// Report is the outcome of an Explain call: Sat when the formula has a
// model under the assumptions, UnsatWithCore otherwise.
type Report interface {
	ReportType() string
	sealedReport()
}

// PrimaryExplanation is the cheap, first account of unsatisfiability
// carried by an UnsatWithCore report: an Explanation derived from the
// reason graph, or an AssumptionConflict when the assumptions themselves
// clash.
type PrimaryExplanation interface {
	ExplanationType() string
	sealedPrimary()
}

// Sat reports that a satisfying assignment was found.
type Sat struct {
	Model map[int]bool
	Note  string
}

func (Sat) ReportType() string { return TypeSat }
func (Sat) sealedReport()      {}

func (s Sat) MarshalJSON() ([]byte, error) {
	model := s.Model
	if model == nil {
		model = map[int]bool{}
	}
	return json.Marshal(struct {
		Type  string       `json:"type"`
		Model map[int]bool `json:"model"`
		Note  string       `json:"note"`
	}{TypeSat, model, s.Note})
}

// UnsatWithCore reports unsatisfiability together with a minimal
// unsatisfiable subset of the formula's clauses. MUS holds the formula's
// own clause pointers in input order; removing any one of them makes the
// remainder satisfiable under the same assumptions.
type UnsatWithCore struct {
	Primary   PrimaryExplanation
	MUS       []*Clause
	MUSRules  []RuleMeta
	HintsUsed []Literal
}

func (UnsatWithCore) ReportType() string { return TypeUnsatWithCore }
func (UnsatWithCore) sealedReport()      {}

func (u UnsatWithCore) MarshalJSON() ([]byte, error) {
	clauses := make([]clauseJSON, 0, len(u.MUS))
	for _, c := range u.MUS {
		clauses = append(clauses, newClauseJSON(c))
	}
	return json.Marshal(struct {
		Type      string             `json:"type"`
		Primary   PrimaryExplanation `json:"primary_explanation"`
		MUSSize   int                `json:"mus_size"`
		MUS       []clauseJSON       `json:"mus_clauses"`
		MUSRules  []RuleMeta         `json:"mus_rules"`
		HintsUsed []Literal          `json:"hints_used"`
	}{TypeUnsatWithCore, u.Primary, len(u.MUS), clauses, nonNilRules(u.MUSRules), nonNilLits(u.HintsUsed)})
}

// Explanation accounts for a falsified clause: which of its literals are
// false, which assumptions forced them, and which rules participated in
// the forcing.
type Explanation struct {
	Conflict          *Clause
	FalsifiedLiterals []Literal
	AssumptionCauses  []Literal
	InvolvedRules     []RuleMeta
}

func (Explanation) ExplanationType() string { return TypeUnsatExplanation }
func (Explanation) sealedPrimary()          {}

func (e Explanation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string     `json:"type"`
		Conflict  clauseJSON `json:"conflict_clause"`
		Falsified []Literal  `json:"falsified_literals"`
		Causes    []Literal  `json:"assumption_causes"`
		Rules     []RuleMeta `json:"involved_rules"`
	}{TypeUnsatExplanation, newClauseJSON(e.Conflict), nonNilLits(e.FalsifiedLiterals), nonNilLits(e.AssumptionCauses), nonNilRules(e.InvolvedRules)})
}

// AssumptionConflict reports that the assumptions assign both polarities
// of one variable. Literals holds the clashing pair in ascending order.
type AssumptionConflict struct {
	Literals []Literal
}

func (AssumptionConflict) ExplanationType() string { return TypeAssumptionConflict }
func (AssumptionConflict) sealedPrimary()          {}

func (a AssumptionConflict) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string    `json:"type"`
		Literals []Literal `json:"conflicting_assumptions"`
	}{TypeAssumptionConflict, nonNilLits(a.Literals)})
}

type clauseJSON struct {
	Lits   []Literal `json:"lits"`
	RuleID string    `json:"rule_id"`
	Note   string    `json:"note"`
}

func newClauseJSON(c *Clause) clauseJSON {
	return clauseJSON{Lits: c.Literals(), RuleID: c.RuleID(), Note: c.Note()}
}

func nonNilLits(ls []Literal) []Literal {
	if ls == nil {
		return []Literal{}
	}
	return ls
}

func nonNilRules(rs []RuleMeta) []RuleMeta {
	if rs == nil {
		return []RuleMeta{}
	}
	return rs
}
