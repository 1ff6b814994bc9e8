package explain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rulekit/crux/pkg/crux"
)

// ParseDimacs reads a CNF problem in DIMACS format.
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
//
// Parsing is lenient: blank lines and lines starting with c or p are
// skipped, every other line is a whitespace-separated clause with an
// optional trailing 0 terminator, and the number of variables is the
// highest magnitude mentioned by any clause. The format carries no rule
// metadata; clauses are tagged programmatically or through a rules
// sidecar.
func ParseDimacs(r io.Reader) (*crux.Formula, error) {
	var clauses []*crux.Clause
	maxVar := 0

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "p") {
			continue
		}

		fields := strings.Fields(line)
		lits := make([]crux.Literal, 0, len(fields))
		for _, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not a number", lineNo, field)
			}
			lits = append(lits, crux.Literal(n))
		}
		if len(lits) > 0 && lits[len(lits)-1] == 0 {
			lits = lits[:len(lits)-1]
		}
		for _, l := range lits {
			if l.Var() > maxVar {
				maxVar = l.Var()
			}
		}
		if len(lits) > 0 {
			clauses = append(clauses, crux.NewClause(lits...))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dimacs data: %w", err)
	}

	return crux.NewFormula(maxVar, clauses), nil
}
