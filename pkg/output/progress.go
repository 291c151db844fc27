package output

import (
	"io"
	"os"

	pb "github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

// Progress wraps a progress bar over the pairs of one apply. A disabled
// progress is a no-op, so callers never branch
type Progress struct {
	bar *pb.ProgressBar
}

// ShouldShowProgress decides whether a progress bar makes sense: it must be
// enabled by configuration, stderr must be a terminal, and there must be
// enough moves for a bar to be worth the screen noise
func ShouldShowProgress(enabled bool, total int) bool {
	return enabled && total > 1 && term.IsTerminal(int(os.Stderr.Fd()))
}

// StartProgress starts a bar over total moves on w. With enabled false a
// no-op progress is returned
func StartProgress(w io.Writer, total int, enabled bool) *Progress {
	if !enabled {
		return &Progress{}
	}
	bar := pb.New(total)
	bar.SetWriter(w)
	bar.Start()
	return &Progress{bar: bar}
}

// Increment advances the bar by one move
func (p *Progress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Finish stops the bar
func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
