package cli

import (
	"fmt"
	"io"
)

// out writes a formatted message without a trailing newline.
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln writes its arguments followed by a newline, like fmt.Fprintln;
// format verbs in a string argument are not interpreted.
func outln(w io.Writer, args ...any) {
	if len(args) == 0 {
		fmt.Fprintln(w)
		return
	}
	if format, ok := args[0].(string); ok && len(args) == 1 {
		fmt.Fprintln(w, format)
		return
	}
	fmt.Fprintln(w, args...)
}
