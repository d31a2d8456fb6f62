package logging

import (
	"fmt"
	"io"
	"os"
)

// Printer writes user-facing CLI output, honoring -v and -q.
type Printer struct {
	out     io.Writer
	err     io.Writer
	verbose bool
	quiet   bool
}

// NewPrinter creates a printer on stdout and stderr.
func NewPrinter(verbose, quiet bool) *Printer {
	return NewPrinterTo(os.Stdout, os.Stderr, verbose, quiet)
}

// NewPrinterTo creates a printer on the given writers.
func NewPrinterTo(out, errOut io.Writer, verbose, quiet bool) *Printer {
	return &Printer{out: out, err: errOut, verbose: verbose, quiet: quiet}
}

// Info prints messages (unless quiet)
func (p *Printer) Info(format string, args ...interface{}) {
	if !p.quiet {
		_, _ = fmt.Fprintf(p.out, format+"\n", args...)
	}
}

// Verbose prints debug messages (only if verbose and not quiet)
func (p *Printer) Verbose(format string, args ...interface{}) {
	if p.verbose && !p.quiet {
		_, _ = fmt.Fprintf(p.out, "[DEBUG] "+format+"\n", args...)
	}
}

// Error prints error messages to stderr
func (p *Printer) Error(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.err, "Error: "+format+"\n", args...)
}

// Raw writes text as is, unless quiet. Used for rendered output such as graphs.
func (p *Printer) Raw(text string) {
	if !p.quiet {
		_, _ = io.WriteString(p.out, text)
	}
}
