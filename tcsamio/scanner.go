// Package tcsamio reads and writes the whitespace-delimited, '#'-commented
// text format used by TCSAM model configuration and data files.
//
// Tokens are runs of non-space characters. A '#' begins a comment that runs
// to the end of the line; readers never see comment text. Writers emit one
// value per line with an optional trailing '#' annotation, so written files
// scan back identically.
package tcsamio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Scanner tokenizes a model file. It tracks the source name and line number
// so parse errors can point at the offending input.
type Scanner struct {
	r    *bufio.Reader
	name string
	line int
}

// NewScanner returns a Scanner reading from r. The name is used only in
// error messages; pass the file name or any label useful to the reader.
func NewScanner(r io.Reader, name string) *Scanner {
	return &Scanner{r: bufio.NewReader(r), name: name, line: 1}
}

// Name reports the source label given at construction.
func (s *Scanner) Name() string { return s.name }

// Line reports the current 1-based line number.
func (s *Scanner) Line() int { return s.line }

// Errorf builds an error prefixed with the scanner's source name and line.
func (s *Scanner) Errorf(format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s", s.name, s.line, fmt.Sprintf(format, args...))
}

// Wrap prefixes err with the scanner's source position, preserving the
// error chain for errors.Is.
func (s *Scanner) Wrap(err error) error {
	return fmt.Errorf("%s:%d: %w", s.name, s.line, err)
}

func (s *Scanner) wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s: %w", s.name, s.line, fmt.Sprintf(format, args...), err)
}

// Token returns the next token, or an error wrapping io.ErrUnexpectedEOF
// when the input runs out. The format never makes a trailing token optional,
// so exhaustion mid-read is always a caller-visible fault.
func (s *Scanner) Token() (string, error) {
	for {
		c, _, err := s.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", s.wrapf(err, "reading token")
		}
		switch {
		case c == '\n':
			s.line++
		case unicode.IsSpace(c):
			// keep skipping
		case c == '#':
			s.skipComment()
		default:
			return s.readToken(c)
		}
	}
}

func (s *Scanner) readToken(first rune) (string, error) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		c, _, err := s.r.ReadRune()
		if err != nil {
			// EOF terminates the token cleanly.
			return b.String(), nil
		}
		if unicode.IsSpace(c) || c == '#' {
			_ = s.r.UnreadRune()
			return b.String(), nil
		}
		b.WriteRune(c)
	}
}

func (s *Scanner) skipComment() {
	for {
		c, _, err := s.r.ReadRune()
		if err != nil {
			return // comment ran to EOF
		}
		if c == '\n' {
			s.line++
			return
		}
	}
}

// Keyword consumes the next token and requires it to equal want.
func (s *Scanner) Keyword(want string) error {
	tok, err := s.Token()
	if err != nil {
		return err
	}
	if tok != want {
		return s.Errorf("expected keyword %q, got %q", want, tok)
	}
	return nil
}

// Int consumes the next token as a base-10 integer.
func (s *Scanner) Int() (int, error) {
	tok, err := s.Token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, s.Errorf("expected integer, got %q", tok)
	}
	return n, nil
}

// Float consumes the next token as a float64.
func (s *Scanner) Float() (float64, error) {
	tok, err := s.Token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, s.Errorf("expected number, got %q", tok)
	}
	return v, nil
}

// Floats consumes n consecutive float tokens.
func (s *Scanner) Floats(n int) ([]float64, error) {
	vs := make([]float64, n)
	for i := range vs {
		v, err := s.Float()
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// Strings consumes n consecutive tokens.
func (s *Scanner) Strings(n int) ([]string, error) {
	ts := make([]string, n)
	for i := range ts {
		t, err := s.Token()
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

// Bool consumes a TRUE/FALSE token (case-insensitive).
func (s *Scanner) Bool() (bool, error) {
	tok, err := s.Token()
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(tok) {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	}
	return false, s.Errorf("expected TRUE or FALSE, got %q", tok)
}

// OnOff consumes an ON/OFF token (case-insensitive).
func (s *Scanner) OnOff() (bool, error) {
	tok, err := s.Token()
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(tok) {
	case "ON":
		return true, nil
	case "OFF":
		return false, nil
	}
	return false, s.Errorf("expected ON or OFF, got %q", tok)
}
