package svg

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type xmlUse struct {
	Href   string `xml:"http://www.w3.org/1999/xlink href,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Fill   string `xml:"fill,attr"`
	Stroke string `xml:"stroke,attr"`
}

type xmlGroup struct {
	Transform string   `xml:"transform,attr"`
	Uses      []xmlUse `xml:"use"`
}

type xmlDoc struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Style   string   `xml:"style"`
	Paths   []struct {
		ID string `xml:"id,attr"`
		D  string `xml:"d,attr"`
	} `xml:"defs>path"`
	Content struct {
		Class       string     `xml:"class,attr"`
		Fill        string     `xml:"fill,attr"`
		Stroke      string     `xml:"stroke,attr"`
		StrokeWidth string     `xml:"stroke-width,attr"`
		LineCap     string     `xml:"stroke-linecap,attr"`
		LineJoin    string     `xml:"stroke-linejoin,attr"`
		Lines       []xmlGroup `xml:"g"`
	} `xml:"g"`
}

func sampleDocument() *Document {
	return &Document{
		Width:  120.5,
		Height: 128,
		Symbols: []SymbolDefinition{
			{ID: "g0", PathData: "M0 0L10 0L10 -10Z"},
			{ID: "g1", PathData: "M0 0L5 -5Z"},
		},
		Groups: []Group{
			{OffsetY: 0, Placements: []Placement{
				{SymbolID: "g0", X: 0, Y: 50},
				{SymbolID: "", X: 12, Y: 50},
				{SymbolID: "g1", X: 20.1234, Y: 50, Fill: "rgba(255,0,0,1.000)"},
			}},
			{OffsetY: 64, Placements: []Placement{
				{SymbolID: "g0", X: 0, Y: 50},
			}},
		},
		Style: DefaultPathStyle(),
	}
}

func decode(t *testing.T, data []byte) xmlDoc {
	t.Helper()
	var doc xmlDoc
	require.NoError(t, xml.Unmarshal(data, &doc), "output:\n%s", data)
	return doc
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	n, err := sampleDocument().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	doc := decode(t, buf.Bytes())
	assert.Equal(t, "120.5", doc.Width)
	assert.Equal(t, "128", doc.Height)
	assert.Equal(t, "0 0 120.5 128", doc.ViewBox)
	assert.Empty(t, strings.TrimSpace(doc.Style))

	require.Len(t, doc.Paths, 2)
	assert.Equal(t, "g0", doc.Paths[0].ID)
	assert.Equal(t, "M0 0L10 0L10 -10Z", doc.Paths[0].D)

	assert.Equal(t, TextClass, doc.Content.Class)
	assert.Equal(t, "none", doc.Content.Fill)
	assert.Equal(t, "#000", doc.Content.Stroke)
	assert.Equal(t, "1", doc.Content.StrokeWidth)
	assert.Equal(t, "round", doc.Content.LineCap)
	assert.Equal(t, "round", doc.Content.LineJoin)

	require.Len(t, doc.Content.Lines, 2)
	first := doc.Content.Lines[0]
	assert.Empty(t, first.Transform)
	require.Len(t, first.Uses, 2, "invisible placements are not written")
	assert.Equal(t, "#g0", first.Uses[0].Href)
	assert.Equal(t, "20.123", first.Uses[1].X)
	assert.Equal(t, "rgba(255,0,0,1.000)", first.Uses[1].Fill)
	assert.Empty(t, first.Uses[0].Fill)

	assert.Equal(t, "translate(0 64)", doc.Content.Lines[1].Transform)
}

func TestEncodeAnimation(t *testing.T) {
	d := sampleDocument()
	anim := DefaultAnimation()
	d.Animation = &anim

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf, DefaultEncodeOptions()))

	doc := decode(t, buf.Bytes())
	assert.Contains(t, doc.Style, "@keyframes draw")
	assert.Contains(t, doc.Style, "stroke-dasharray: 450 450;")
	assert.Contains(t, doc.Style, "animation: draw 2.3s ease forwards infinite;")
}

func TestEncodePrecision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleDocument().Encode(&buf, EncodeOptions{Precision: 0}))

	doc := decode(t, buf.Bytes())
	assert.Equal(t, "121", doc.Width)
	assert.Equal(t, "20", doc.Content.Lines[0].Uses[1].X)
}

func TestEncodeMinify(t *testing.T) {
	var plain, small bytes.Buffer
	require.NoError(t, sampleDocument().Encode(&plain, DefaultEncodeOptions()))
	require.NoError(t, sampleDocument().Encode(&small, EncodeOptions{Precision: 3, Minify: true}))

	assert.Less(t, small.Len(), plain.Len())
	out := small.String()
	assert.True(t, strings.HasPrefix(out, "<svg"), out)
	assert.Contains(t, out, "g0")
	assert.Contains(t, out, "<use")
}

func TestLineCapJoin(t *testing.T) {
	c, err := ParseLineCap("Square")
	require.NoError(t, err)
	assert.Equal(t, "square", c.String())
	_, err = ParseLineCap("pointy")
	assert.Error(t, err)

	j, err := ParseLineJoin("bevel")
	require.NoError(t, err)
	assert.Equal(t, "bevel", j.String())
	_, err = ParseLineJoin("")
	assert.NoError(t, err)
	_, err = ParseLineJoin("mitre")
	assert.Error(t, err)
}
