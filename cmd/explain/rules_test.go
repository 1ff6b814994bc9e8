package explain_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rulekit/crux/cmd/explain"
	"github.com/rulekit/crux/pkg/crux"
)

var _ = Describe("ApplyRulesFile", func() {
	var (
		f    *crux.Formula
		path string
	)

	BeforeEach(func() {
		var err error
		f, err = explain.ParseDimacs(strings.NewReader("-1 2 0\n-2 -3 0\n"))
		Expect(err).ToNot(HaveOccurred())
		path = filepath.Join(GinkgoT().TempDir(), "rules.yaml")
	})

	write := func(doc string) {
		Expect(os.WriteFile(path, []byte(doc), 0600)).To(Succeed())
	}

	It("should tag the listed clauses and register rule metadata", func() {
		write(`rules:
  - id: R-PWR
    description: high draw needs the big supply
    note: 1 requires 2
    clauses: [1]
  - id: R-FIT
    description: the big supply does not fit
    clauses: [2]
`)
		tagged, err := explain.ApplyRulesFile(f, path)
		Expect(err).ToNot(HaveOccurred())
		Expect(tagged.NumVars()).To(Equal(3))
		Expect(tagged.Clauses()).To(HaveLen(2))
		Expect(tagged.Clauses()[0].RuleID()).To(Equal("R-PWR"))
		Expect(tagged.Clauses()[0].Note()).To(Equal("1 requires 2"))
		Expect(tagged.Clauses()[0].Literals()).To(Equal([]crux.Literal{-1, 2}))
		Expect(tagged.Clauses()[1].RuleID()).To(Equal("R-FIT"))
		Expect(tagged.Rule("R-PWR")).To(Equal(crux.RuleMeta{RuleID: "R-PWR", Description: "high draw needs the big supply"}))
		Expect(tagged.Rule("R-FIT")).To(Equal(crux.RuleMeta{RuleID: "R-FIT", Description: "the big supply does not fit"}))
	})

	It("should leave unlisted clauses untagged", func() {
		write(`rules:
  - id: R-PWR
    clauses: [2]
`)
		tagged, err := explain.ApplyRulesFile(f, path)
		Expect(err).ToNot(HaveOccurred())
		Expect(tagged.Clauses()[0].RuleID()).To(Equal(""))
		Expect(tagged.Clauses()[1].RuleID()).To(Equal("R-PWR"))
	})

	It("should reject an empty rule id", func() {
		write(`rules:
  - description: unnamed
    clauses: [1]
`)
		_, err := explain.ApplyRulesFile(f, path)
		Expect(err).To(MatchError("rule with empty id"))
	})

	It("should reject clause indexes outside the formula", func() {
		write(`rules:
  - id: R-PWR
    clauses: [3]
`)
		_, err := explain.ApplyRulesFile(f, path)
		Expect(err).To(MatchError("rule R-PWR: clause index 3 out of range 1..2"))
	})

	It("should reject a clause tagged by two rules", func() {
		write(`rules:
  - id: R-PWR
    clauses: [1]
  - id: R-FIT
    clauses: [1]
`)
		_, err := explain.ApplyRulesFile(f, path)
		Expect(err).To(MatchError("clause 1 tagged by both R-PWR and R-FIT"))
	})

	It("should reject malformed yaml", func() {
		write("rules: [")
		_, err := explain.ApplyRulesFile(f, path)
		Expect(err).To(HaveOccurred())
	})

	It("should fail when the sidecar does not exist", func() {
		_, err := explain.ApplyRulesFile(f, filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(MatchError(os.ErrNotExist))
	})
})
