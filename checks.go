package lebin

import (
	"context"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/lowbit-labs/lebin/internal/checker"
)

// Report is one law's check result.
type Report = checker.Report

// RunChecks evaluates every builtin correctness law over the domain
// described by config, with a progress bar when showProgress is set.
// Checking stops between laws if ctx is cancelled.
func RunChecks(ctx context.Context, logger *zap.Logger, config Config, showProgress bool) ([]Report, error) {
	c := checker.New(config.checkerConfig())
	laws := checker.BuiltinLaws()

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(laws),
			progressbar.OptionSetDescription("checking laws"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	reports := make([]Report, 0, len(laws))
	for _, law := range laws {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		report := c.Check(law)
		if logger != nil {
			logger.Debug("checked law",
				zap.String("law", report.Law),
				zap.Int("inputs", report.Checked),
				zap.Bool("holds", report.Holds()),
			)
		}
		reports = append(reports, report)

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		fmt.Println()
	}

	return reports, nil
}

// Summarize returns a human-readable roll-up of a batch of reports.
func Summarize(reports []Report) string {
	return checker.Summarize(reports)
}

// AllHold reports whether every law in the batch held.
func AllHold(reports []Report) bool {
	return checker.AllHold(reports)
}
