package checker

import "fmt"

// Outcome represents the result of checking a law.
type Outcome int

const (
	_ Outcome = iota
	// Holds indicates the law held for every checked input.
	Holds
	// Violated indicates at least one input falsified the law.
	Violated
)

func (o Outcome) String() string {
	switch o {
	case Holds:
		return "Holds"
	case Violated:
		return "Violated"
	default:
		return "?"
	}
}

// Violation records a single falsifying input.
type Violation struct {
	Input  string // the natural or tree that falsified the law
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Input, v.Detail)
}

// Report holds the result of checking one law.
type Report struct {
	Law        string
	Outcome    Outcome
	Checked    int // number of inputs evaluated
	Violations []Violation
}

// Holds reports whether the law held over the whole domain.
func (r Report) Holds() bool {
	return r.Outcome == Holds
}

func (r Report) String() string {
	if r.Holds() {
		return fmt.Sprintf("%s: holds (%d inputs)", r.Law, r.Checked)
	}
	return fmt.Sprintf("%s: violated (%d of %d inputs)", r.Law, len(r.Violations), r.Checked)
}

// Summarize returns a human-readable roll-up of a batch of reports.
func Summarize(reports []Report) string {
	held, violated, inputs := 0, 0, 0
	for _, r := range reports {
		inputs += r.Checked
		if r.Holds() {
			held++
		} else {
			violated++
		}
	}
	return fmt.Sprintf(
		"Checked %d laws over %d inputs: %d held, %d violated",
		len(reports), inputs, held, violated,
	)
}

// AllHold reports whether every report in the batch held.
func AllHold(reports []Report) bool {
	for _, r := range reports {
		if !r.Holds() {
			return false
		}
	}
	return true
}
