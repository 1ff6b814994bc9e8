package solver

import "github.com/rulekit/crux/pkg/crux"

type clauseState int

const (
	clauseSatisfied clauseState = iota
	clauseConflicting
	clauseUnit
	clauseUnresolved
)

// status classifies a clause under a partial assignment by scanning its
// literals in stored order and stopping at the first true one. For a unit
// clause the sole unassigned literal is returned alongside the state.
func status(c *crux.Clause, assign Assignment) (clauseState, crux.Literal) {
	var unit crux.Literal
	unassigned := 0
	for _, l := range c.Literals() {
		val, ok := assign.value(l)
		if !ok {
			unassigned++
			unit = l
			continue
		}
		if val {
			return clauseSatisfied, 0
		}
	}
	switch unassigned {
	case 0:
		return clauseConflicting, 0
	case 1:
		return clauseUnit, unit
	}
	return clauseUnresolved, 0
}

// propagate runs unit propagation to fixpoint, scanning the clauses in
// formula order and restarting the scan whenever a pass assigned
// something. A unit clause assigns its literal and is recorded as the
// variable's reason; the earliest clause in formula order wins, and a
// recorded reason is never overwritten. Returns the first conflicting
// clause, or nil once a pass completes without change.
func propagate(f *crux.Formula, assign Assignment, reasons Reasons) *crux.Clause {
	for changed := true; changed; {
		changed = false
		for _, c := range f.Clauses() {
			state, unit := status(c, assign)
			switch state {
			case clauseConflicting:
				return c
			case clauseUnit:
				v := unit.Var()
				if val, ok := assign[v]; ok {
					if val != unit.Positive() {
						return c
					}
					continue
				}
				assign[v] = unit.Positive()
				reasons[v] = c
				changed = true
			}
		}
	}
	return nil
}
