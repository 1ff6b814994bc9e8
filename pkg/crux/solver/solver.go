package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rulekit/crux/internal/solver"
	"github.com/rulekit/crux/pkg/crux"
)

var (
	ErrNoFormula   = errors.New("no formula provided")
	ErrZeroLiteral = errors.New("literal 0 is not valid")
)

const satNote = "SAT under assumptions; no conflict to explain."

// Explainer decides satisfiability of CNF formulas and explains their
// conflicts in terms of assumptions and domain rules.
type Explainer struct {
	tracer crux.Tracer
}

func New(options ...Option) (*Explainer, error) {
	e := Explainer{}
	for _, option := range append(options, defaults...) {
		if err := option(&e); err != nil {
			return nil, err
		}
	}
	return &e, nil
}

type Option func(e *Explainer) error

func WithTracer(t crux.Tracer) Option {
	return func(e *Explainer) error {
		e.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(e *Explainer) error {
		if e.tracer == nil {
			e.tracer = crux.DefaultTracer{}
		}
		return nil
	},
}

// Explain decides whether f is satisfiable under the given assumptions.
// Satisfiable formulas report a model. Unsatisfiable ones report a
// primary explanation (an assumption clash, or a falsified clause traced
// back to the assumptions and rules that forced it) together with a
// minimal unsatisfiable core of f's clauses. Hints bias the search's
// decision order and focus core extraction; they never change whether a
// formula is satisfiable.
//
// Explain never mutates f and keeps no state between calls, so a single
// Explainer may be used from concurrent goroutines.
func (e *Explainer) Explain(f *crux.Formula, assumptions, hints []crux.Literal) (crux.Report, error) {
	if f == nil {
		return nil, ErrNoFormula
	}
	if err := validate(assumptions); err != nil {
		return nil, fmt.Errorf("assumptions: %w", err)
	}
	if err := validate(hints); err != nil {
		return nil, fmt.Errorf("hints: %w", err)
	}

	r := solver.Search(f, assumptions, hints, e.tracer)
	if r.Satisfiable {
		model := make(map[int]bool, len(r.Assign))
		for v, val := range r.Assign {
			model[v] = val
		}
		return crux.Sat{Model: model, Note: satNote}, nil
	}

	hintsUsed := append([]crux.Literal{}, hints...)

	// Clashing assumptions leave nothing for core extraction to narrow
	// down; every reading of the formula conflicts with them.
	if r.Conflicting != nil {
		return crux.UnsatWithCore{
			Primary:   crux.AssumptionConflict{Literals: r.Conflicting},
			MUS:       []*crux.Clause{},
			MUSRules:  []crux.RuleMeta{},
			HintsUsed: hintsUsed,
		}, nil
	}

	core := solver.ExtractMUS(f, assumptions, hints)
	return crux.UnsatWithCore{
		Primary:   solver.BuildExplanation(f, r.Assign, r.Reasons, r.Conflict, assumptions),
		MUS:       core,
		MUSRules:  coreRules(f, core),
		HintsUsed: hintsUsed,
	}, nil
}

func validate(lits []crux.Literal) error {
	for _, l := range lits {
		if l == 0 {
			return ErrZeroLiteral
		}
	}
	return nil
}

// coreRules resolves the distinct rule ids tagged on core clauses,
// sorted by id. Untagged clauses contribute nothing.
func coreRules(f *crux.Formula, core []*crux.Clause) []crux.RuleMeta {
	set := make(map[string]struct{})
	for _, c := range core {
		if c.RuleID() != "" {
			set[c.RuleID()] = struct{}{}
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	rules := make([]crux.RuleMeta, 0, len(ids))
	for _, id := range ids {
		rules = append(rules, f.Rule(id))
	}
	return rules
}
