package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nsgo-dev/nsgo/internal/errors"
)

// output writes command results to a command's stdout.
type output struct {
	w io.Writer
}

func newOutput(cmd *cobra.Command) output {
	return output{w: cmd.OutOrStdout()}
}

func (o output) success(format string, args ...any) {
	fmt.Fprintf(o.w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

func (o output) failure(format string, args ...any) {
	fmt.Fprintf(o.w, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}

func (o output) info(format string, args ...any) {
	fmt.Fprintf(o.w, "  %s\n", fmt.Sprintf(format, args...))
}

// fields prints label/value pairs in aligned columns.
func (o output) fields(pairs ...string) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "  %s:\t%s\n", pairs[i], pairs[i+1])
	}
	tw.Flush()
}

func (o output) json(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Error output formats for --error-format.
const (
	errorFormatAuto    = "auto"
	errorFormatPretty  = "pretty"
	errorFormatCompact = "compact"
	errorFormatJSON    = "json"
)

// printError writes err to w. The auto format is pretty on a terminal and
// compact otherwise.
func printError(w io.Writer, err error, format string) {
	var ne *errors.NSError
	if !errors.As(err, &ne) {
		ne = errors.Newf(errors.CategoryCLI, "%s", err.Error())
	}
	if format == errorFormatAuto || format == "" {
		format = errorFormatCompact
		if isTerminal(w) {
			format = errorFormatPretty
		}
	}

	switch format {
	case errorFormatJSON:
		fmt.Fprintln(w, ne.FormatJSON())
	case errorFormatCompact:
		fmt.Fprintln(w, ne.FormatCompact())
	default:
		errors.Fprint(w, ne)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	st, err := f.Stat()
	return err == nil && st.Mode()&os.ModeCharDevice != 0
}
