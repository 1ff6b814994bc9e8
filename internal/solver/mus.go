package solver

import "github.com/rulekit/crux/pkg/crux"

// ExtractMUS returns a subset-minimal unsatisfiable core of f's clauses
// under the given assumptions: the subset is unsatisfiable and removing
// any single clause from it leaves a satisfiable remainder. Clause
// identity is preserved, so every returned pointer is one of f's own
// clauses, in formula order.
//
// Hint variables focus the extraction: when the clauses mentioning a hint
// variable are already unsatisfiable on their own, deletion starts from
// that subset instead of the whole formula. Each deletion probe re-runs
// the search from scratch on the trial subset.
func ExtractMUS(f *crux.Formula, assumptions, hints []crux.Literal) []*crux.Clause {
	unsatisfiable := func(clauses []*crux.Clause) bool {
		r := Search(f.Restrict(clauses), assumptions, hints, crux.DefaultTracer{})
		return !r.Satisfiable
	}

	candidate := f.Clauses()
	if len(hints) > 0 {
		focused := clausesOnHintVars(f, hints)
		if len(focused) > 0 && unsatisfiable(focused) {
			candidate = focused
		}
	}

	core := make([]*crux.Clause, len(candidate))
	copy(core, candidate)
	for i := 0; i < len(core); {
		trial := make([]*crux.Clause, 0, len(core)-1)
		trial = append(trial, core[:i]...)
		trial = append(trial, core[i+1:]...)
		if unsatisfiable(trial) {
			core = trial
		} else {
			i++
		}
	}
	return core
}

func clausesOnHintVars(f *crux.Formula, hints []crux.Literal) []*crux.Clause {
	hintVars := make(map[int]struct{}, len(hints))
	for _, h := range hints {
		hintVars[h.Var()] = struct{}{}
	}
	var focused []*crux.Clause
	for _, c := range f.Clauses() {
		for _, l := range c.Literals() {
			if _, ok := hintVars[l.Var()]; ok {
				focused = append(focused, c)
				break
			}
		}
	}
	return focused
}
