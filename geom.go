package seasonal

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Project maps the points of series to pixel coordinates.
func (c *Chart) Project(series Series) []Vertex {
	vs := make([]Vertex, len(series))
	for i, p := range series {
		vs[i] = Vertex{X: c.X.Pos(p.Date), Y: c.Y.Pos(p.CO2)}
	}
	return vs
}

// warnOutside logs points of series outside the chart's domains. They are
// drawn anyway, possibly into the margins.
func (c *Chart) warnOutside(series Series, label string) {
	x0, x1 := c.Config.XDomain[0], c.Config.XDomain[1]
	y0, y1 := c.Config.YDomain[0], c.Config.YDomain[1]
	n := 0
	for _, p := range series {
		if p.Date.Before(x0) || p.Date.After(x1) || p.CO2 < y0 || p.CO2 > y1 {
			n++
		}
	}
	if n > 0 {
		c.Warnf("Series %q: %d of %d points outside of chart domain", label, n, len(series))
	}
}

// RenderSeries draws series as one plot line. If the chart has tooltips
// enabled and label is not empty a hidden tooltip showing label is added
// and tied to the path for PointerEnter and PointerLeave.
func (c *Chart) RenderSeries(series Series, label string) *GrobPath {
	c.warnOutside(series, label)
	path := &GrobPath{
		points: c.Project(series),
		class:  NewStringSetFrom([]string{ClassPlotLine}),
		style:  c.Theme.PlotLineStyle,
		label:  label,
	}
	if c.Config.Tooltips && label != "" {
		path.tooltip = c.newTooltip(label)
		c.Append(path.tooltip)
	}
	c.Append(path)
	return path
}

// RenderSubplot draws one plot line per month and raises all tooltips
// above the plot lines.
func (c *Chart) RenderSubplot(months []MonthSeries) []*GrobPath {
	paths := make([]*GrobPath, len(months))
	for i, ms := range months {
		paths[i] = c.RenderSeries(ms.Series, ms.Month)
	}
	c.Raise(ClassTooltip)
	return paths
}

// RenderRawSeries draws the reconstructed full series as the single,
// heavier raw line. An existing raw line is replaced in place.
func (c *Chart) RenderRawSeries(series Series) *GrobPath {
	c.warnOutside(series, "raw")
	path := &GrobPath{
		points: c.Project(series),
		class:  NewStringSetFrom([]string{ClassRawPlot}),
		style:  c.Theme.RawLineStyle,
	}
	for i, g := range c.Grobs {
		if g.Class().Contains(ClassRawPlot) {
			c.Grobs[i] = path
			return path
		}
	}
	c.Append(path)
	return path
}

// PlotLine returns the plot line labeled label or nil.
func (c *Chart) PlotLine(label string) *GrobPath {
	for _, g := range c.Grobs {
		if p, ok := g.(*GrobPath); ok && p.label == label && p.class.Contains(ClassPlotLine) {
			return p
		}
	}
	return nil
}

// PointerEnter highlights p and shows its tooltip at the pointer's
// offset position, shifted left by the configured amount. Paths without
// tooltip do not react; false is returned then.
func (c *Chart) PointerEnter(p *GrobPath, offsetX, offsetY float64) bool {
	if p == nil || p.tooltip == nil {
		return false
	}
	p.hovered = true
	p.class.Add(ClassHighlighted)
	p.tooltip.transform = "translate(" + fmtNum(offsetX-c.Config.TooltipShift) + ", " + fmtNum(offsetY) + ")"
	p.tooltip.visibility = "visible"
	return true
}

// PointerLeave undoes PointerEnter. It is a no-op returning false unless
// the pointer entered p before.
func (c *Chart) PointerLeave(p *GrobPath) bool {
	if p == nil || !p.hovered {
		return false
	}
	p.hovered = false
	p.class.Del(ClassHighlighted)
	p.tooltip.visibility = "hidden"
	return true
}

// newTooltip builds the hidden label group: a text and a background
// rectangle 2px larger than the text's bounding box.
func (c *Chart) newTooltip(label string) *GrobGroup {
	x, y, w, h := TextBounds(label)
	return &GrobGroup{
		id:         c.tooltipIDs.ID("tooltip-", label),
		class:      NewStringSetFrom([]string{ClassTooltip}),
		visibility: "hidden",
		children: []Grob{
			GrobRect{x: x - 2, y: y - 2, w: w + 4, h: h + 2, class: NewStringSetFrom([]string{ClassTextBG})},
			GrobText{text: label},
		},
	}
}

// TextBounds is the bounding box of s drawn at the origin, measured with
// the 7x13 fixed face: y is negative as the box extends above the baseline.
func TextBounds(s string) (x, y, w, h int) {
	face := basicfont.Face7x13
	m := face.Metrics()
	return 0, -m.Ascent.Ceil(), font.MeasureString(face, s).Ceil(), (m.Ascent + m.Descent).Ceil()
}
