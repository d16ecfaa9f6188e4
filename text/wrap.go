package text

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// LineSplitter turns a stream of text into lines of at most MaxWidth code
// points. Source newlines always end a line; longer lines are wrapped at the
// last ASCII whitespace that fits, or cut hard at MaxWidth when there is none.
//
// A LineSplitter makes one forward pass over its reader and cannot be
// restarted. It is not safe for concurrent use.
type LineSplitter struct {
	r        *bufio.Reader
	maxWidth int

	// pending holds the unwrapped rest of the current source line.
	pending string
	// inLine is set while pending belongs to a source line that was wrapped.
	inLine bool
	eof    bool
	err    error
}

// NewLineSplitter returns a splitter reading from r.
// It fails with ErrInvalidWidth before touching r when maxWidth <= 0.
func NewLineSplitter(r io.Reader, maxWidth int) (*LineSplitter, error) {
	if maxWidth <= 0 {
		return nil, ErrInvalidWidth
	}
	return &LineSplitter{r: bufio.NewReader(r), maxWidth: maxWidth}, nil
}

// Next returns the next line. ok is false once input is exhausted or a read
// error occurred; check Err afterwards.
func (s *LineSplitter) Next() (line string, ok bool) {
	for {
		if utf8.RuneCountInString(s.pending) > s.maxWidth {
			line, s.pending = SplitLine(s.pending, s.maxWidth)
			s.inLine = true
			return line, true
		}
		if s.inLine {
			// Rest of a wrapped line. An empty rest means the wrap consumed
			// the trailing whitespace and nothing is left to emit.
			s.inLine = false
			if s.pending != "" {
				line, s.pending = s.pending, ""
				return line, true
			}
		}
		if s.eof {
			return "", false
		}

		raw, err := s.r.ReadString('\n')
		if err != nil {
			s.eof = true
			if !errors.Is(err, io.EOF) {
				s.err = err
				Logger().Warn("line splitter read failed", "err", err)
			}
			if raw == "" {
				return "", false
			}
		}
		s.pending = strings.TrimRight(raw, "\r\n")
		if utf8.RuneCountInString(s.pending) <= s.maxWidth {
			line, s.pending = s.pending, ""
			return line, true
		}
	}
}

// Err returns the first non-EOF read error.
func (s *LineSplitter) Err() error {
	return s.err
}

// Lines returns the remaining lines as a single-use sequence.
func (s *LineSplitter) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, ok := s.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}

// SplitText splits an in-memory string with a LineSplitter.
func SplitText(text string, maxWidth int) ([]string, error) {
	s, err := NewLineSplitter(strings.NewReader(text), maxWidth)
	if err != nil {
		return nil, err
	}
	var out []string
	for line := range s.Lines() {
		out = append(out, line)
	}
	return out, s.Err()
}

// SplitLine breaks line once so that head holds at most maxWidth code
// points. It wraps at the last ASCII whitespace among the first maxWidth+1
// code points, trimming whitespace around the break; without one it cuts
// exactly at maxWidth. A line that already fits is returned whole.
func SplitLine(line string, maxWidth int) (head, rest string) {
	if maxWidth <= 0 || utf8.RuneCountInString(line) <= maxWidth {
		return line, ""
	}

	cut := byteOffset(line, maxWidth)
	// Include the code point at the limit: whitespace there still lets
	// the first maxWidth code points stay together.
	_, size := utf8.DecodeRuneInString(line[cut:])
	window := line[:cut+size]

	if i := strings.LastIndexFunc(window, isASCIISpace); i >= 0 {
		return strings.TrimRightFunc(window[:i], isASCIISpace),
			strings.TrimLeftFunc(line[i:], isASCIISpace)
	}
	return line[:cut], line[cut:]
}

// byteOffset returns the byte index of the n-th code point of s.
func byteOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
