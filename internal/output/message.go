package output

import (
	"fmt"
	"io"
)

// Warn writes a warning message to w with a warning prefix.
func Warn(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, "⚠️  "+msg)
}

// Successf writes a formatted success message to w with a success prefix.
func Successf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "✅ "+format+"\n", args...)
}
