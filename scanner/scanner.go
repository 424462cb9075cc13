package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scanner collects classified tokens from a sequence of lines. A scanner is
// not safe for concurrent use; create one per compilation run.
type Scanner struct {
	tokens []Token
	lines  int
	errors int
	lower  cases.Caser
	Error  func(error) // error handler
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Option configures a scanner.
type Option func(*Scanner)

// WithErrorHandler sets an error handler at creation time.
func WithErrorHandler(h func(error)) Option {
	return func(s *Scanner) {
		s.SetErrorHandler(h)
	}
}

// New creates a scanner without any tokens.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		lower: cases.Lower(language.Und),
		Error: logError,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// ScanLine classifies the words of a line and appends them to the scanner's
// tokens. Unrecognized words are appended with symbol Error and reported to
// the error handler.
func (s *Scanner) ScanLine(line string) {
	s.lines++
	text := s.lower.String(normalize(line))
	for _, word := range strings.Fields(text) {
		sym, err := classify(word, s.lines)
		if err != nil {
			s.errors++
			s.Error(err)
		}
		tok := NewToken(word, sym, s.lines)
		tracer().Debugf("token %v in line %d", tok, s.lines)
		s.tokens = append(s.tokens, tok)
	}
}

// ScanReader scans every line of r. Lines may be of any length; a final
// line without a newline is scanned as well.
func (s *Scanner) ScanReader(r io.Reader) error {
	input := bufio.NewReader(r)
	for {
		line, err := input.ReadString('\n')
		if len(line) > 0 {
			s.ScanLine(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("scanner cannot read input: %w", err)
		}
	}
}

// Tokens returns the tokens scanned so far, terminated by an EndOfInput token.
// The returned slice belongs to the caller.
func (s *Scanner) Tokens() []Token {
	toks := make([]Token, len(s.tokens), len(s.tokens)+1)
	copy(toks, s.tokens)
	return append(toks, EOI(s.lines))
}

// ErrorCount returns the number of unrecognized words.
func (s *Scanner) ErrorCount() int {
	return s.errors
}

// Lines returns the number of lines scanned.
func (s *Scanner) Lines() int {
	return s.lines
}

// Scan is a shortcut which scans lines with a default scanner and returns
// the terminated token sequence.
func Scan(lines ...string) []Token {
	s := New()
	for _, line := range lines {
		s.ScanLine(line)
	}
	return s.Tokens()
}

// ScanString splits src at newlines and scans it with a default scanner.
// A trailing newline does not start another line.
func ScanString(src string) []Token {
	src = strings.TrimSuffix(src, "\n")
	return Scan(strings.Split(src, "\n")...)
}
