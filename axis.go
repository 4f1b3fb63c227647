package seasonal

import (
	"math"
)

// Orientation of an axis.
type Orientation int

const (
	Bottom Orientation = iota
	Left
)

// Axis describes a bottom or left axis: its ticks, the extent of its
// domain line and the length of the tick lines. A negative TickSizeInner
// of minus the plot's height (width) turns the tick lines into gridlines.
type Axis struct {
	Orient Orientation
	Ticks  []Tick

	RangeMin, RangeMax float64

	TickSizeInner float64
	TickSizeOuter float64
	TickPadding   float64

	// Offset is the distance of the axis from the chart's top (bottom
	// axis) or left edge (left axis).
	Offset float64

	Style AesMapping
}

// Grob builds the axis group the way d3's axisBottom and axisLeft lay it
// out: a domain path plus one translated group per tick holding the tick
// line and its label.
func (a Axis) Grob() *GrobGroup {
	k := 1.0
	group := &GrobGroup{
		class: NewStringSetFrom([]string{ClassAxis}),
		attrs: []string{`fill="none"`, `font-size="10"`, `font-family="sans-serif"`},
	}
	if a.Orient == Bottom {
		group.class.Add("axis-x")
		group.transform = "translate(0," + fmtNum(a.Offset) + ")"
		group.attrs = append(group.attrs, `text-anchor="middle"`)
	} else {
		k = -1
		group.class.Add("axis-y")
		group.transform = "translate(" + fmtNum(a.Offset) + ",0)"
		group.attrs = append(group.attrs, `text-anchor="end"`)
	}

	outer := fmtNum(k * a.TickSizeOuter)
	domain := grobRawPath{
		class: NewStringSetFrom([]string{"domain"}),
		attrs: []string{`stroke="currentColor"`},
	}
	if a.Orient == Bottom {
		domain.d = "M" + fmtNum(a.RangeMin) + "," + outer + "V0H" + fmtNum(a.RangeMax) + "V" + outer
	} else {
		domain.d = "M" + outer + "," + fmtNum(a.RangeMin) + "H0V" + fmtNum(a.RangeMax) + "H" + outer
	}
	group.children = append(group.children, domain)

	stroke := "currentColor"
	if _, ok := a.Style["color"]; ok {
		stroke = Color2Hex(a.Style.Color("color", nil))
	}
	lineAttrs := []string{attr("stroke", stroke)}
	if _, ok := a.Style["size"]; ok {
		lineAttrs = append(lineAttrs, attr("stroke-width", fmtNum(a.Style.Size("size", 1))))
	}
	inner := int(math.Round(k * a.TickSizeInner))
	spacing := int(math.Round(k * (math.Max(a.TickSizeInner, 0) + a.TickPadding)))
	for _, tick := range a.Ticks {
		tg := &GrobGroup{class: NewStringSetFrom([]string{ClassTick})}
		line := GrobLine{attrs: lineAttrs}
		label := GrobText{text: tick.Label, attrs: []string{`fill="currentColor"`}}
		if a.Orient == Bottom {
			tg.transform = "translate(" + fmtNum(tick.Pos) + ",0)"
			line.y1 = inner
			label.y = spacing
			label.attrs = append(label.attrs, `dy="0.71em"`)
		} else {
			tg.transform = "translate(0," + fmtNum(tick.Pos) + ")"
			line.x1 = inner
			label.x = spacing
			label.attrs = append(label.attrs, `dy="0.32em"`)
		}
		tg.children = []Grob{line, label}
		group.children = append(group.children, tg)
	}
	return group
}
