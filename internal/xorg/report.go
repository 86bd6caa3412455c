package xorg

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints user-facing warnings and errors. Color behaviour is
// carried by the value instead of process-global state so tests can build
// a plain reporter without terminal detection.
type Reporter struct {
	Out     io.Writer
	warnHdr *color.Color
	errHdr  *color.Color
}

// NewReporter returns a Reporter writing to out. With colored false the
// severity headers are printed plain.
func NewReporter(out io.Writer, colored bool) *Reporter {
	warn := color.New(color.FgYellow, color.Bold)
	errc := color.New(color.FgRed, color.Bold)
	if !colored {
		warn.DisableColor()
		errc.DisableColor()
	}
	return &Reporter{Out: out, warnHdr: warn, errHdr: errc}
}

func (r *Reporter) Warnf(format string, args ...any) {
	r.warnHdr.Fprint(r.Out, "Warning: ")
	fmt.Fprintf(r.Out, format+"\n", args...)
}

func (r *Reporter) Errorf(format string, args ...any) {
	r.errHdr.Fprint(r.Out, "Error: ")
	fmt.Fprintf(r.Out, format+"\n", args...)
}
