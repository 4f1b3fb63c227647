package seasonal

import (
	"bytes"
	"strings"
	"testing"
)

func TestGrobs(t *testing.T) {
	var buf bytes.Buffer
	vp := NewViewport(&buf, 500, 400, attr("class", ClassRoot))

	path := &GrobPath{
		points: []Vertex{{10, 20}, {30.5, 40.25}, {50, 60}},
		class:  NewStringSetFrom([]string{ClassPlotLine}),
		style:  DefaultTheme.PlotLineStyle,
		label:  "March",
	}
	group := &GrobGroup{
		id:         "tooltip-0",
		class:      NewStringSetFrom([]string{ClassTooltip}),
		transform:  "translate(1,2)",
		visibility: "hidden",
		children: []Grob{
			GrobRect{x: -2, y: -13, w: 39, h: 15, class: NewStringSetFrom([]string{ClassTextBG})},
			GrobText{text: "March"},
		},
	}
	for _, g := range []Grob{
		path,
		group,
		GrobLine{x0: 0, y0: 0, x1: 0, y1: -330},
		grobRawPath{d: "M0,0H10", class: NewStringSetFrom([]string{"domain"})},
	} {
		g.Draw(vp)
	}
	vp.End()

	out := buf.String()
	for _, want := range []string{
		`viewBox="0 0 500 400"`,
		`preserveAspectRatio="xMinYMin meet"`,
		`class="svgd3"`,
		`d="M10,20L30.5,40.25L50,60"`,
		`class="plotline"`,
		`stroke="#999999"`,
		`data-label="March"`,
		`id="tooltip-0"`,
		`visibility="hidden"`,
		`transform="translate(1,2)"`,
		`class="textbg"`,
		`>March</text>`,
		`d="M0,0H10"`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Missing %s in\n%s", want, out)
		}
	}
}

func TestPathData(t *testing.T) {
	for _, tc := range []struct {
		points []Vertex
		want   string
	}{
		{nil, ""},
		{[]Vertex{{1, 2}}, "M1,2Z"},
		{[]Vertex{{1, 2}, {3.14159, 4}}, "M1,2L3.142,4"},
	} {
		p := &GrobPath{points: tc.points}
		if got := p.PathData(); got != tc.want {
			t.Errorf("Got %q, want %q", got, tc.want)
		}
	}
}

func TestAxisGrob(t *testing.T) {
	a := Axis{
		Orient:        Left,
		Ticks:         []Tick{{Pos: 350, Label: "310"}, {Pos: 20, Label: "352"}},
		RangeMin:      350,
		RangeMax:      20,
		TickSizeInner: -440,
		TickSizeOuter: 6,
		TickPadding:   3,
		Offset:        40,
		Style:         DefaultTheme.GridStyle,
	}
	g := a.Grob()
	if !g.Class().Contains(ClassAxis) || g.Transform() != "translate(40,0)" {
		t.Errorf("Got class %s transform %s", g.Class(), g.Transform())
	}
	children := g.Children()
	if len(children) != 3 {
		t.Fatalf("Got %d children, want domain and 2 ticks", len(children))
	}
	if d := children[0].(grobRawPath).d; d != "M-6,350H0V20H-6" {
		t.Errorf("Got domain %q", d)
	}
	tick := children[1].(*GrobGroup)
	line := tick.Children()[0].(GrobLine)
	label := tick.Children()[1].(GrobText)
	if line.x1 != 440 || label.x != -3 || label.Text() != "310" {
		t.Errorf("Got line x1 %d, label x %d %q", line.x1, label.x, label.Text())
	}
	if attrs := strings.Join(line.attrs, " "); !strings.Contains(attrs, `stroke-width="0.5"`) {
		t.Errorf("Got gridline attributes %s", attrs)
	}
}
