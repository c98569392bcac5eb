package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Run is a contiguous piece of text sharing one direction.
type Run struct {
	Text string
	RTL  bool
}

// Runs splits s into bidi runs in logical order. Text without
// right-to-left characters comes back as a single left-to-right run.
func Runs(s string) []Run {
	if s == "" {
		return nil
	}

	single := []Run{{Text: s}}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return single
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return single
	}

	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		runs = append(runs, Run{
			Text: r.String(),
			RTL:  r.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}
