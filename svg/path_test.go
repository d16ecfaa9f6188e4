package svg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{1, 3, "1"},
		{1.5, 3, "1.5"},
		{1.23456, 3, "1.235"},
		{-0.0001, 3, "0"},
		{math.Copysign(0, -1), 3, "0"},
		{-12.5, 0, "-13"},
		{100, 2, "100"},
		{0.30000000000000004, -1, "0.30000000000000004"},
		{1.0 / 3, 4, "0.3333"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.v, tt.precision), "FormatNumber(%v, %d)", tt.v, tt.precision)
	}
}

func TestPathData(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadraticTo(15, 5, 10, 10)
	p.CubicTo(8, 12, 2, 12, 0.5, 10.25)
	p.Close()

	assert.Equal(t, "M0 0L10 0Q15 5 10 10C8 12 2 12 0.5 10.25Z", p.Data(3))
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, "", NewPath().Data(3))
	assert.True(t, NewPath().Empty())
}

func TestMatrix(t *testing.T) {
	assert.Equal(t, Pt(4, 6), Translate(3, 4).TransformPoint(Pt(1, 2)))
	assert.Equal(t, Pt(2, 6), Scale(2, 3).TransformPoint(Pt(1, 2)))

	m := Translate(5, 0).Multiply(Scale(2, 3))
	assert.Equal(t, Pt(7, 3), m.TransformPoint(Pt(1, 1)))

	g := GlyphMatrix(0.5, 10, 100)
	assert.Equal(t, Translate(10, 100).Multiply(Scale(0.5, -0.5)), g)
	assert.Equal(t, Pt(15, 90), g.TransformPoint(Pt(10, 20)), "y-up input must be flipped")
}
