package solver

import "github.com/rulekit/crux/pkg/crux"

// Result is the outcome of a single Search run.
type Result struct {
	Satisfiable bool

	// Assign and Reasons are the final search state. On a satisfiable
	// run Assign is a model. On an unsatisfiable run they are the state
	// under which Conflict was falsified: every literal of Conflict is
	// false under Assign.
	Assign  Assignment
	Reasons Reasons

	// Conflict is the clause whose falsification exhausted the search.
	// Nil on satisfiable runs and on assumption conflicts.
	Conflict *crux.Clause

	// Conflicting holds a directly clashing assumption pair in ascending
	// order. When set, no search was performed.
	Conflicting []crux.Literal
}

type snapshot struct {
	assign   Assignment
	reasons  Reasons
	decision int
	triedNeg bool
}

type position struct {
	stack    []snapshot
	conflict *crux.Clause
}

func (p position) Decisions() []crux.Literal {
	ds := make([]crux.Literal, 0, len(p.stack))
	for _, s := range p.stack {
		d := crux.Literal(s.decision)
		if s.triedNeg {
			d = d.Negate()
		}
		ds = append(ds, d)
	}
	return ds
}

func (p position) Conflict() *crux.Clause {
	return p.conflict
}

// Search decides satisfiability of f under the given assumptions with
// chronological backtracking, snapshotting the full assignment and reason
// state at every decision. Hints steer the decision order, never the
// polarity: decisions always try true first. The tracer is invoked once
// per falsified clause, before backtracking from it.
func Search(f *crux.Formula, assumptions, hints []crux.Literal, tracer crux.Tracer) Result {
	assign := make(Assignment)
	reasons := make(Reasons)

	for _, a := range assumptions {
		v := a.Var()
		if val, ok := assign[v]; ok && val != a.Positive() {
			return Result{
				Assign:      assign,
				Reasons:     reasons,
				Conflicting: []crux.Literal{crux.Literal(-v), crux.Literal(v)},
			}
		}
		assign[v] = a.Positive()
	}

	if conflict := propagate(f, assign, reasons); conflict != nil {
		tracer.Trace(position{conflict: conflict})
		return Result{Assign: assign, Reasons: reasons, Conflict: conflict}
	}

	var stack []snapshot
	for {
		v := nextDecision(f, assign, hints)
		if v == 0 {
			return Result{Satisfiable: true, Assign: assign, Reasons: reasons}
		}
		stack = append(stack, snapshot{assign.clone(), reasons.clone(), v, false})
		assign[v] = true
		conflict := propagate(f, assign, reasons)

		for conflict != nil {
			tracer.Trace(position{stack: stack, conflict: conflict})
			// Snapshots whose negative branch already failed are
			// exhausted; discard them without restoring so the final
			// state keeps the conflict falsified.
			for len(stack) > 0 && stack[len(stack)-1].triedNeg {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return Result{Assign: assign, Reasons: reasons, Conflict: conflict}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			assign = top.assign
			reasons = top.reasons
			stack = append(stack, snapshot{assign.clone(), reasons.clone(), top.decision, true})
			assign[top.decision] = false
			conflict = propagate(f, assign, reasons)
		}
	}
}

// nextDecision picks the next decision variable: the first unassigned
// hint variable in hint order (hint variables may lie beyond NumVars),
// then the lowest unassigned variable. Returns 0 when nothing is left to
// decide.
func nextDecision(f *crux.Formula, assign Assignment, hints []crux.Literal) int {
	for _, h := range hints {
		if _, ok := assign[h.Var()]; !ok {
			return h.Var()
		}
	}
	for v := 1; v <= f.NumVars(); v++ {
		if _, ok := assign[v]; !ok {
			return v
		}
	}
	return 0
}
