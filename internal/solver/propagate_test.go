package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rulekit/crux/pkg/crux"
)

func lits(ns ...int) []crux.Literal {
	ls := make([]crux.Literal, 0, len(ns))
	for _, n := range ns {
		ls = append(ls, crux.Literal(n))
	}
	return ls
}

func clause(ns ...int) *crux.Clause {
	return crux.NewClause(lits(ns...)...)
}

func TestClauseStatus(t *testing.T) {
	type tc struct {
		Name   string
		Clause *crux.Clause
		Assign Assignment
		State  clauseState
		Unit   crux.Literal
	}

	for _, tt := range []tc{
		{
			Name:   "true literal satisfies",
			Clause: clause(1, 2),
			Assign: Assignment{1: true},
			State:  clauseSatisfied,
		},
		{
			Name:   "negative literal satisfies on false variable",
			Clause: clause(-1, 2),
			Assign: Assignment{1: false},
			State:  clauseSatisfied,
		},
		{
			Name:   "all literals false conflicts",
			Clause: clause(1, 2),
			Assign: Assignment{1: false, 2: false},
			State:  clauseConflicting,
		},
		{
			Name:   "single unassigned literal is unit",
			Clause: clause(1, 2),
			Assign: Assignment{1: false},
			State:  clauseUnit,
			Unit:   2,
		},
		{
			Name:   "two unassigned literals unresolved",
			Clause: clause(1, 2),
			Assign: Assignment{},
			State:  clauseUnresolved,
		},
		{
			Name:   "empty clause conflicts",
			Clause: clause(),
			Assign: Assignment{},
			State:  clauseConflicting,
		},
		{
			Name:   "both polarities satisfied once the variable is assigned",
			Clause: clause(1, -1),
			Assign: Assignment{1: false},
			State:  clauseSatisfied,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			state, unit := status(tt.Clause, tt.Assign)
			assert.Equal(t, tt.State, state)
			assert.Equal(t, tt.Unit, unit)
		})
	}
}

func TestPropagate(t *testing.T) {
	type tc struct {
		Name        string
		NumVars     int
		Clauses     []*crux.Clause
		Assign      Assignment
		Conflict    int // index into Clauses, -1 for none
		WantAssign  Assignment
		WantReasons map[int]int // variable -> clause index
	}

	for _, tt := range []tc{
		{
			Name:        "unit clause assigns its literal",
			NumVars:     1,
			Clauses:     []*crux.Clause{clause(1)},
			Conflict:    -1,
			WantAssign:  Assignment{1: true},
			WantReasons: map[int]int{1: 0},
		},
		{
			Name:        "chain propagates to fixpoint",
			NumVars:     3,
			Clauses:     []*crux.Clause{clause(1), clause(-1, 2), clause(-2, 3)},
			Conflict:    -1,
			WantAssign:  Assignment{1: true, 2: true, 3: true},
			WantReasons: map[int]int{1: 0, 2: 1, 3: 2},
		},
		{
			Name:        "restarted pass picks up clauses earlier in the list",
			NumVars:     3,
			Clauses:     []*crux.Clause{clause(-2, 3), clause(1), clause(-1, 2)},
			Conflict:    -1,
			WantAssign:  Assignment{1: true, 2: true, 3: true},
			WantReasons: map[int]int{3: 0, 1: 1, 2: 2},
		},
		{
			Name:        "recorded reason is never overwritten",
			NumVars:     2,
			Clauses:     []*crux.Clause{clause(1), clause(-1, 2), clause(2, -1)},
			Conflict:    -1,
			WantAssign:  Assignment{1: true, 2: true},
			WantReasons: map[int]int{1: 0, 2: 1},
		},
		{
			Name:        "seeded assignment propagates into a conflict",
			NumVars:     2,
			Clauses:     []*crux.Clause{clause(-1, 2), clause(-2)},
			Assign:      Assignment{1: true},
			Conflict:    1,
			WantAssign:  Assignment{1: true, 2: true},
			WantReasons: map[int]int{2: 0},
		},
		{
			Name:        "all false clause conflicts immediately",
			NumVars:     2,
			Clauses:     []*crux.Clause{clause(1, 2)},
			Assign:      Assignment{1: false, 2: false},
			Conflict:    0,
			WantAssign:  Assignment{1: false, 2: false},
			WantReasons: map[int]int{},
		},
		{
			Name:        "empty clause conflicts",
			NumVars:     0,
			Clauses:     []*crux.Clause{clause()},
			Conflict:    0,
			WantAssign:  Assignment{},
			WantReasons: map[int]int{},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			f := crux.NewFormula(tt.NumVars, tt.Clauses)
			assign := tt.Assign
			if assign == nil {
				assign = Assignment{}
			}
			reasons := Reasons{}

			conflict := propagate(f, assign, reasons)

			if tt.Conflict < 0 {
				assert.Nil(t, conflict)
			} else {
				assert.Same(t, tt.Clauses[tt.Conflict], conflict)
			}
			assert.Equal(t, tt.WantAssign, assign)
			wantReasons := Reasons{}
			for v, i := range tt.WantReasons {
				wantReasons[v] = tt.Clauses[i]
			}
			assert.Equal(t, wantReasons, reasons)
		})
	}
}
