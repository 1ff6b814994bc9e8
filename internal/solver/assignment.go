package solver

import "github.com/rulekit/crux/pkg/crux"

// Assignment is a partial mapping from variable to truth value. Variables
// absent from the map are unassigned.
type Assignment map[int]bool

// value returns the literal's truth under the assignment and whether its
// variable is assigned at all.
func (a Assignment) value(l crux.Literal) (bool, bool) {
	val, ok := a[l.Var()]
	if !ok {
		return false, false
	}
	return val == l.Positive(), true
}

func (a Assignment) clone() Assignment {
	c := make(Assignment, len(a))
	for v, val := range a {
		c[v] = val
	}
	return c
}

// Reasons records, for each variable forced by unit propagation, the
// clause that forced it. Assumptions and decision variables never appear.
type Reasons map[int]*crux.Clause

func (r Reasons) clone() Reasons {
	c := make(Reasons, len(r))
	for v, cl := range r {
		c[v] = cl
	}
	return c
}
