package crux

// Literal is a signed reference to a boolean variable: +v asserts that
// variable v is true, -v asserts that it is false. Literal 0 is never
// valid.
type Literal int

// Var returns the variable the literal refers to.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Positive reports whether the literal asserts its variable true.
func (l Literal) Positive() bool {
	return l > 0
}

// Negate returns the literal of the opposite polarity on the same
// variable.
func (l Literal) Negate() Literal {
	return -l
}

// RuleMeta describes a domain rule enforced by one or more clauses of a
// Formula. The zero Description is valid; reports echo it as-is.
type RuleMeta struct {
	RuleID      string `json:"rule_id"`
	Description string `json:"description"`
}
