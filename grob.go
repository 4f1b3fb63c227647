package seasonal

import (
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Viewport is the drawing surface grobs render onto.
type Viewport struct {
	Canvas *svg.SVG

	// Width and Height of the view box in pixels.
	Width, Height float64
}

// NewViewport starts an SVG document on w whose view box is
// width x height pixels. Close it with End.
func NewViewport(w io.Writer, width, height float64, attrs ...string) Viewport {
	canvas := svg.New(w)
	ns := []string{
		`viewBox="0 0 ` + fmtNum(width) + " " + fmtNum(height) + `"`,
		`preserveAspectRatio="xMinYMin meet"`,
	}
	canvas.Startraw(append(ns, attrs...)...)
	return Viewport{Canvas: canvas, Width: width, Height: height}
}

// End closes the SVG document.
func (vp Viewport) End() {
	vp.Canvas.End()
}

// Grob is a graphical object: the unit of the chart's draw order.
type Grob interface {
	Draw(vp Viewport)

	// Class is the grob's class list. It may be nil.
	Class() StringSet
}

// Vertex is a point in pixel coordinates.
type Vertex struct {
	X, Y float64
}

// fmtNum formats pixel values with at most three decimals.
func fmtNum(x float64) string {
	return strconv.FormatFloat(math.Round(x*1000)/1000, 'f', -1, 64)
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func classAttrs(class StringSet, more ...string) []string {
	if len(class) == 0 {
		return more
	}
	return append([]string{attr("class", class.String())}, more...)
}

// -------------------------------------------------------------------------
// Grob Path

// GrobPath is a polyline through its vertices.
type GrobPath struct {
	points []Vertex
	class  StringSet
	style  AesMapping

	// label and tooltip are set for plot lines with hover labels.
	label   string
	tooltip *GrobGroup
	hovered bool
}

func (p *GrobPath) Class() StringSet    { return p.class }
func (p *GrobPath) Vertices() []Vertex  { return p.points }
func (p *GrobPath) Label() string       { return p.label }
func (p *GrobPath) Tooltip() *GrobGroup { return p.tooltip }
func (p *GrobPath) Highlighted() bool   { return p.class.Contains(ClassHighlighted) }

// PathData returns the SVG path data: "Mx,yLx,y..." or "Mx,yZ" for a
// single vertex.
func (p *GrobPath) PathData() string {
	if len(p.points) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, pt := range p.points {
		if i == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('L')
		}
		sb.WriteString(fmtNum(pt.X))
		sb.WriteByte(',')
		sb.WriteString(fmtNum(pt.Y))
	}
	if len(p.points) == 1 {
		sb.WriteByte('Z')
	}
	return sb.String()
}

func (p *GrobPath) Draw(vp Viewport) {
	attrs := classAttrs(p.class, p.style.strokeAttrs()...)
	if p.label != "" {
		attrs = append(attrs, attr("data-label", p.label))
	}
	if p.tooltip != nil {
		attrs = append(attrs, attr("data-tooltip", p.tooltip.id))
	}
	vp.Canvas.Path(p.PathData(), attrs...)
}

// -------------------------------------------------------------------------
// Grob Raw Path

// grobRawPath draws fixed path data, e.g. an axis domain line.
type grobRawPath struct {
	d     string
	class StringSet
	attrs []string
}

func (p grobRawPath) Class() StringSet { return p.class }

func (p grobRawPath) Draw(vp Viewport) {
	vp.Canvas.Path(p.d, classAttrs(p.class, p.attrs...)...)
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	x0, y0, x1, y1 int
	class          StringSet
	attrs          []string
}

func (line GrobLine) Class() StringSet { return line.class }

func (line GrobLine) Draw(vp Viewport) {
	vp.Canvas.Line(line.x0, line.y0, line.x1, line.y1, classAttrs(line.class, line.attrs...)...)
}

// -------------------------------------------------------------------------
// Grob Text

type GrobText struct {
	x, y  int
	text  string
	class StringSet
	attrs []string
}

func (t GrobText) Class() StringSet { return t.class }
func (t GrobText) Text() string     { return t.text }

func (t GrobText) Draw(vp Viewport) {
	vp.Canvas.Text(t.x, t.y, t.text, classAttrs(t.class, t.attrs...)...)
}

// -------------------------------------------------------------------------
// Grob Rect

type GrobRect struct {
	x, y, w, h int
	class      StringSet
}

func (r GrobRect) Class() StringSet { return r.class }

// Bounds returns position and size of the rectangle.
func (r GrobRect) Bounds() (x, y, w, h int) { return r.x, r.y, r.w, r.h }

func (r GrobRect) Draw(vp Viewport) {
	vp.Canvas.Rect(r.x, r.y, r.w, r.h, classAttrs(r.class)...)
}

// -------------------------------------------------------------------------
// Grob Group

// GrobGroup is an SVG group of grobs sharing a transform.
type GrobGroup struct {
	id         string
	class      StringSet
	transform  string
	visibility string // "", "hidden" or "visible"
	attrs      []string
	children   []Grob
}

func (g *GrobGroup) Class() StringSet  { return g.class }
func (g *GrobGroup) ID() string        { return g.id }
func (g *GrobGroup) Transform() string { return g.transform }
func (g *GrobGroup) Children() []Grob  { return g.children }

// Visible reports whether the group is not hidden.
func (g *GrobGroup) Visible() bool { return g.visibility != "hidden" }

func (g *GrobGroup) Draw(vp Viewport) {
	var attrs []string
	if g.id != "" {
		attrs = append(attrs, attr("id", g.id))
	}
	attrs = classAttrs(g.class, attrs...)
	if g.transform != "" {
		attrs = append(attrs, attr("transform", g.transform))
	}
	if g.visibility != "" {
		attrs = append(attrs, attr("visibility", g.visibility))
	}
	attrs = append(attrs, g.attrs...)
	vp.Canvas.Group(attrs...)
	for _, child := range g.children {
		child.Draw(vp)
	}
	vp.Canvas.Gend()
}
