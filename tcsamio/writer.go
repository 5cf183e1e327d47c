package tcsamio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writer emits the annotated line format the scanner consumes. Errors stick:
// the first write failure is kept and all later writes become no-ops, so
// callers can write a whole file and check Err once at the end.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Line writes a value followed by a tab and a '#' annotation. An empty
// comment writes the bare value.
func (w *Writer) Line(value any, comment string) {
	if comment == "" {
		w.printf("%v\n", value)
		return
	}
	w.printf("%v\t#%s\n", value, comment)
}

// Comment writes a full-line '#' comment.
func (w *Writer) Comment(text string) {
	w.printf("#%s\n", text)
}

// Values writes tokens on one line separated by single spaces.
func (w *Writer) Values(vs ...any) {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	w.printf("%s\n", strings.Join(parts, " "))
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// Err reports the first write error, if any.
func (w *Writer) Err() error { return w.err }

// FormatBool renders a boolean as the TRUE/FALSE token Bool reads back.
func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// FormatOnOff renders a boolean as the ON/OFF token OnOff reads back.
func FormatOnOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// FormatFloat renders a float with the shortest representation that parses
// back to the same value.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
