package checker

import (
	"fmt"
	"math/rand"

	"github.com/lowbit-labs/lebin/internal/bintree"
)

// maxRecordedViolations bounds the violations kept per report; further
// falsifying inputs are counted in Checked but not recorded.
const maxRecordedViolations = 16

// Config describes the input domain laws are checked over.
type Config struct {
	// MaxNatural is the inclusive upper bound for natural-domain laws.
	MaxNatural uint64
	// MaxDigits bounds the exhaustive tree enumeration.
	MaxDigits int
	// RandomTrials is the number of additional random trees generated
	// for tree-domain laws.
	RandomTrials int
	// RandomMaxDigits bounds the digit count of random trees. Values
	// above roughly 40 make canonical-form checks expensive, since
	// those convert back through repeated increment.
	RandomMaxDigits int
	// Seed seeds the random tree generator. Runs with equal seeds
	// check identical domains.
	Seed int64
}

// DefaultConfig returns the default checking domain.
func DefaultConfig() Config {
	return Config{
		MaxNatural:      1024,
		MaxDigits:       7,
		RandomTrials:    512,
		RandomMaxDigits: 12,
		Seed:            1,
	}
}

// Checker evaluates laws over the domain described by its config.
type Checker struct {
	config Config
	trees  []bintree.Tree // generated once, shared across tree laws
}

// New creates a checker for the given config.
func New(config Config) *Checker {
	return &Checker{config: config}
}

// Check evaluates a single law over the configured domain.
func (c *Checker) Check(law Law) Report {
	report := Report{Law: law.Name, Outcome: Holds}

	record := func(input string, err error) {
		report.Outcome = Violated
		if len(report.Violations) < maxRecordedViolations {
			report.Violations = append(report.Violations, Violation{
				Input:  input,
				Detail: err.Error(),
			})
		}
	}

	switch law.Domain {
	case NaturalDomain:
		for n := uint64(0); n <= c.config.MaxNatural; n++ {
			report.Checked++
			if err := law.Natural(n); err != nil {
				record(fmt.Sprintf("%d", n), err)
			}
		}

	case TreeDomain:
		for _, tree := range c.treeDomain() {
			report.Checked++
			if err := law.Tree(tree); err != nil {
				record(tree.String(), err)
			}
		}

	case FixedDomain:
		report.Checked = 1
		if err := law.Fixed(); err != nil {
			record("fixed scenario", err)
		}
	}

	return report
}

// CheckAll evaluates every builtin law and returns one report per law.
func (c *Checker) CheckAll() []Report {
	laws := BuiltinLaws()
	reports := make([]Report, 0, len(laws))
	for _, law := range laws {
		reports = append(reports, c.Check(law))
	}
	return reports
}

// treeDomain returns the exhaustive enumeration up to MaxDigits plus
// the seeded random sample.
func (c *Checker) treeDomain() []bintree.Tree {
	if c.trees != nil {
		return c.trees
	}

	trees := bintree.EnumerateTrees(c.config.MaxDigits)
	rng := rand.New(rand.NewSource(c.config.Seed))
	for i := 0; i < c.config.RandomTrials; i++ {
		trees = append(trees, randomTree(rng, c.config.RandomMaxDigits))
	}

	c.trees = trees
	return trees
}

// randomTree builds a tree of up to maxDigits digits. Digit choice is
// uniform, so trailing zero digits (non-canonical shapes) occur with
// the same frequency as any other shape.
func randomTree(rng *rand.Rand, maxDigits int) bintree.Tree {
	tree := bintree.Zero()
	digits := rng.Intn(maxDigits + 1)
	for i := 0; i < digits; i++ {
		if rng.Intn(2) == 0 {
			tree = bintree.Even(tree)
		} else {
			tree = bintree.Odd(tree)
		}
	}
	return tree
}
