package seasonal

import (
	"io"
	"log"
	"strings"
)

// Chart is the state of one drawn chart: the scales and axes derived from
// its Config and the grobs in draw order. A Chart is not safe for
// concurrent use; View serializes access to the chart it owns.
type Chart struct {
	Config Config
	Theme  Theme

	X TimeScale
	Y LinearScale

	XAxis, YAxis Axis

	// Grobs are the chart root's children in draw order.
	Grobs []Grob

	tooltipIDs *StringPool
}

// NewChart sets up scales, axes and the axis grobs for cfg.
func NewChart(cfg Config) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Chart{
		Config:     cfg,
		Theme:      DefaultTheme,
		tooltipIDs: NewStringPool(),
	}
	m := cfg.Margin
	c.X = TimeScale{
		DomainMin: cfg.XDomain[0],
		DomainMax: cfg.XDomain[1],
		RangeMin:  m.Left,
		RangeMax:  cfg.Width - m.Right,
	}
	c.Y = LinearScale{
		DomainMin: cfg.YDomain[0],
		DomainMax: cfg.YDomain[1],
		RangeMin:  cfg.Height - m.Bottom,
		RangeMax:  m.Top,
	}

	layout := cfg.XTickFormat
	if layout == "" {
		layout = "2006"
	}
	var xticks []Tick
	if len(cfg.XTicks) > 0 {
		xticks = c.X.TicksAt(cfg.XTicks, layout)
	} else {
		xticks = c.X.TicksAt(YearTicks(cfg.XDomain[0], cfg.XDomain[1], cfg.XTickCount), layout)
	}

	c.XAxis = Axis{
		Orient:        Bottom,
		Ticks:         xticks,
		RangeMin:      c.X.RangeMin,
		RangeMax:      c.X.RangeMax,
		TickSizeInner: -cfg.InnerHeight(),
		TickSizeOuter: 6,
		TickPadding:   3,
		Offset:        cfg.Height - m.Bottom,
		Style:         c.Theme.GridStyle,
	}
	c.YAxis = Axis{
		Orient:        Left,
		Ticks:         c.Y.Ticks(cfg.YTickCount),
		RangeMin:      c.Y.RangeMin,
		RangeMax:      c.Y.RangeMax,
		TickSizeInner: -cfg.InnerWidth(),
		TickSizeOuter: 6,
		TickPadding:   3,
		Offset:        m.Left,
		Style:         c.Theme.GridStyle,
	}
	c.Grobs = []Grob{c.XAxis.Grob(), c.YAxis.Grob()}
	return c, nil
}

func (c *Chart) Warnf(f string, args ...interface{}) {
	if !strings.HasSuffix(f, "\n") {
		f = f + "\n"
	}
	log.Printf("Warning "+f, args...)
}

// Append adds g on top of the draw order.
func (c *Chart) Append(g Grob) {
	c.Grobs = append(c.Grobs, g)
}

// Select returns the root's children carrying class.
func (c *Chart) Select(class string) []Grob {
	var sel []Grob
	for _, g := range c.Grobs {
		if g.Class().Contains(class) {
			sel = append(sel, g)
		}
	}
	return sel
}

// Count is len(c.Select(class)).
func (c *Chart) Count(class string) int {
	n := 0
	for _, g := range c.Grobs {
		if g.Class().Contains(class) {
			n++
		}
	}
	return n
}

// Remove deletes the root's children carrying class and returns how many
// were removed.
func (c *Chart) Remove(class string) int {
	kept := c.Grobs[:0]
	for _, g := range c.Grobs {
		if g.Class().Contains(class) {
			continue
		}
		kept = append(kept, g)
	}
	n := len(c.Grobs) - len(kept)
	for i := len(kept); i < len(c.Grobs); i++ {
		c.Grobs[i] = nil
	}
	c.Grobs = kept
	return n
}

// Raise moves the children carrying class to the top of the draw order,
// keeping their relative order.
func (c *Chart) Raise(class string) {
	var rest, raised []Grob
	for _, g := range c.Grobs {
		if g.Class().Contains(class) {
			raised = append(raised, g)
		} else {
			rest = append(rest, g)
		}
	}
	c.Grobs = append(rest, raised...)
}

// WriteSVG writes the chart as a standalone SVG document.
func (c *Chart) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	vp := NewViewport(ew, c.Config.Width, c.Config.Height, attr("class", ClassRoot))
	for _, g := range c.Grobs {
		g.Draw(vp)
	}
	vp.End()
	return ew.err
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
