// Package formatter renders trees, normalization results, and law
// check reports as human-readable terminal output.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lowbit-labs/lebin/internal/bintree"
	"github.com/lowbit-labs/lebin/internal/checker"
	"github.com/lowbit-labs/lebin/internal/notation"
)

var (
	labelStyle  = color.New(color.FgCyan, color.Bold)
	valueStyle  = color.New(color.FgHiBlue, color.Bold)
	passStyle   = color.New(color.FgGreen, color.Bold)
	failStyle   = color.New(color.FgRed, color.Bold)
	detailStyle = color.New(color.FgYellow)
	caretStyle  = color.New(color.FgGreen, color.Bold)
)

// FormatTree renders a tree with its value, digit string, constructor
// form, and canonical status.
func FormatTree(t bintree.Tree) string {
	var builder strings.Builder

	writeField(&builder, "value", fmt.Sprintf("%d", bintree.ToNatural(t)))
	writeField(&builder, "bits", bitsOrEmpty(t))
	writeField(&builder, "form", t.String())
	writeField(&builder, "digits", fmt.Sprintf("%d", bintree.Size(t)))
	writeField(&builder, "canonical", fmt.Sprintf("%t", bintree.IsCanonical(t)))

	return builder.String()
}

// FormatNormalization renders a before/after view of a normalization.
// Dropped digits are always a run of high-order zeros, so the caret
// line marks the tail of the before string.
func FormatNormalization(before, after bintree.Tree) string {
	var builder strings.Builder

	beforeBits := bitsOrEmpty(before)
	writeField(&builder, "before", beforeBits)

	dropped := bintree.Size(before) - bintree.Size(after)
	if dropped == 0 {
		builder.WriteString(detailStyle.Sprint("already canonical"))
		builder.WriteString("\n")
	} else {
		// Align the carets under the dropped digits, past the
		// labelWidth-wide label column and the surviving digits.
		builder.WriteString(strings.Repeat(" ", labelWidth+bintree.Size(after)))
		builder.WriteString(caretStyle.Sprint(strings.Repeat("^", dropped)))
		builder.WriteString(detailStyle.Sprintf(" %d spurious zero digit(s)", dropped))
		builder.WriteString("\n")
	}

	writeField(&builder, "after", bitsOrEmpty(after))
	writeField(&builder, "value", fmt.Sprintf("%d", bintree.ToNatural(after)))

	return builder.String()
}

// FormatReports renders one line per law report plus a summary line.
// Violations are listed indented under the law that they falsify.
func FormatReports(reports []checker.Report) string {
	var builder strings.Builder

	for _, report := range reports {
		if report.Holds() {
			builder.WriteString(passStyle.Sprint("PASS"))
			builder.WriteString(fmt.Sprintf(" %s (%d inputs)\n", report.Law, report.Checked))
			continue
		}

		builder.WriteString(failStyle.Sprint("FAIL"))
		builder.WriteString(fmt.Sprintf(" %s (%d of %d inputs)\n",
			report.Law, len(report.Violations), report.Checked))
		for _, v := range report.Violations {
			builder.WriteString("     ")
			builder.WriteString(detailStyle.Sprint(v.String()))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(checker.Summarize(reports))
	builder.WriteString("\n")

	return builder.String()
}

// labelWidth fits the longest label, "canonical:", plus one space.
const labelWidth = 11

func writeField(builder *strings.Builder, label, value string) {
	// Pad the label so values line up in a column.
	builder.WriteString(labelStyle.Sprintf("%-*s", labelWidth, label+":"))
	builder.WriteString(valueStyle.Sprint(value))
	builder.WriteString("\n")
}

// bitsOrEmpty renders the digit string, with a placeholder for the
// zero tree so the output never contains a blank field.
func bitsOrEmpty(t bintree.Tree) string {
	bits := notation.RenderBits(t)
	if bits == "" {
		return "(none)"
	}
	return bits
}
