package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestHighlightLineRoundTrip(t *testing.T) {
	h, err := NewHighlighter(nil)
	require.NoError(t, err)

	lines := []string{
		`func main() { fmt.Println("hi", 42) } // done`,
		`let s = 'unterminated`,
		`x := 0x1F + 3.5e-2 /* inline */ - y`,
		`	indented	tabs  and   spaces`,
		`ünïcödé → ✓ 你好`,
		`#include <stdio.h>`,
	}
	for _, line := range lines {
		spans, err := h.HighlightLine(line)
		require.NoError(t, err, line)
		assert.Equal(t, line, joinSpans(spans), "spans must reassemble the line")
	}
}

func TestHighlightLineClasses(t *testing.T) {
	th, err := ThemeByName("gruvbox-dark")
	require.NoError(t, err)
	h, err := NewHighlighter(th)
	require.NoError(t, err)

	spans, err := h.HighlightLine(`return foo(1) // x`)
	require.NoError(t, err)

	find := func(prefix string) Span {
		for _, s := range spans {
			if strings.HasPrefix(strings.TrimSpace(s.Text), prefix) {
				return s
			}
		}
		t.Fatalf("no span starting with %q in %+v", prefix, spans)
		return Span{}
	}

	kwColor, kwStyle := th.Resolve(ClassKeyword)
	kw := find("return")
	assert.Equal(t, kwColor, kw.Color)
	assert.Equal(t, kwStyle, kw.Style)

	fnColor, _ := th.Resolve(ClassFunction)
	assert.Equal(t, fnColor, find("foo").Color)

	numColor, _ := th.Resolve(ClassNumber)
	assert.Equal(t, numColor, find("1").Color)

	comment := find("//")
	commentColor, commentStyle := th.Resolve(ClassComment)
	assert.Equal(t, commentColor, comment.Color)
	assert.Equal(t, commentStyle, comment.Style)
	assert.Equal(t, "italic", comment.TextStyle().String())
}

func TestHighlightLineMergesSpans(t *testing.T) {
	h, err := NewHighlighter(nil, WithKeywords())
	require.NoError(t, err)

	spans, err := h.HighlightLine("alpha beta gamma")
	require.NoError(t, err)
	require.Len(t, spans, 1, "identifiers and spaces of one colour form one span")
	assert.Equal(t, "alpha beta gamma", spans[0].Text)
}

func TestHighlightLineEmpty(t *testing.T) {
	h, err := NewHighlighter(nil)
	require.NoError(t, err)

	spans, err := h.HighlightLine("")
	require.NoError(t, err)
	assert.Empty(t, spans)
}
