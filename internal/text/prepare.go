package text

import (
	"strings"

	"github.com/acarl005/stripansi"
	"golang.org/x/text/unicode/norm"
)

type PrepareOptions struct {
	// StripANSI removes terminal escape sequences before wrapping so they do
	// not count towards word lengths.
	StripANSI bool
	// NFC composes characters so equivalent input wraps to the same widths.
	NFC bool
}

var lineBreakReplacer = strings.NewReplacer("\r\n", space, "\r", space, "\n", space)

// Prepare turns raw file contents into the single stream of space separated
// words that Transform expects. Line breaks become spaces; tabs and other
// whitespace are left untouched.
func Prepare(input string, opts PrepareOptions) string {
	if opts.StripANSI {
		input = stripansi.Strip(input)
	}

	if opts.NFC {
		input = norm.NFC.String(input)
	}

	return lineBreakReplacer.Replace(input)
}
