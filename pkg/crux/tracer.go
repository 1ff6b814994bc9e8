package crux

import (
	"fmt"
	"io"
)

// SearchPosition exposes the state of the search at the moment a clause
// is falsified, before any backtracking happens.
type SearchPosition interface {
	// Decisions returns the decision literals currently in force,
	// outermost first. A decision appears negated once its positive
	// branch has been exhausted.
	Decisions() []Literal
	// Conflict returns the clause falsified at this position.
	Conflict() *Clause
}

// Tracer is notified of every conflict the search encounters.
// Implementations must not retain p beyond the call.
type Tracer interface {
	Trace(p SearchPosition)
}

// DefaultTracer ignores every conflict.
type DefaultTracer struct{}

func (DefaultTracer) Trace(_ SearchPosition) {
}

// LoggingTracer writes a line-oriented account of every conflict to
// Writer.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nDecisions:\n")
	for _, d := range p.Decisions() {
		fmt.Fprintf(t.Writer, "- %d\n", d)
	}
	fmt.Fprintf(t.Writer, "Conflict:\n- %s\n", p.Conflict())
}
