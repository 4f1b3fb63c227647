package export

import (
	"image/color"
	"io"

	"github.com/vdobler/seasonal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func seconds(p seasonal.Point) float64 {
	return float64(p.Date.Unix())
}

func xys(series seasonal.Series) plotter.XYs {
	pts := make(plotter.XYs, len(series))
	for i, p := range series {
		pts[i].X = seconds(p)
		pts[i].Y = p.CO2
	}
	return pts
}

func styledLine(series seasonal.Series, style seasonal.AesMapping) (*plotter.Line, error) {
	line, err := plotter.NewLine(xys(series))
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = style.StrokeColor(color.Black)
	line.LineStyle.Width = vg.Points(style.Size("size", 1))
	return line, nil
}

// Plot builds the gonum plot of s. Tick positions and domains are the
// ones the SVG chart uses.
func (s *Snapshot) Plot() (*plot.Plot, error) {
	cfg := s.Config
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = "Seasonal CO2, subplot " + itoa(s.Subplot)
	p.Y.Label.Text = "CO2 (ppm)"

	p.X.Min = float64(cfg.XDomain[0].Unix())
	p.X.Max = float64(cfg.XDomain[1].Unix())
	p.Y.Min, p.Y.Max = cfg.YDomain[0], cfg.YDomain[1]

	xticks := cfg.XTicks
	if len(xticks) == 0 {
		xticks = seasonal.YearTicks(cfg.XDomain[0], cfg.XDomain[1], cfg.XTickCount)
	}
	layout := cfg.XTickFormat
	if layout == "" {
		layout = "2006"
	}
	var xt plot.ConstantTicks
	for _, t := range xticks {
		xt = append(xt, plot.Tick{Value: float64(t.Unix()), Label: t.Format(layout)})
	}
	p.X.Tick.Marker = xt
	var yt plot.ConstantTicks
	for _, tick := range seasonal.NiceTicks(cfg.YDomain[0], cfg.YDomain[1], cfg.YTickCount) {
		yt = append(yt, plot.Tick{Value: tick, Label: ftoa(tick)})
	}
	p.Y.Tick.Marker = yt

	grid := plotter.NewGrid()
	grid.Vertical.Color = s.Theme.GridStyle.Color("color", color.Gray{0xcc})
	grid.Vertical.Width = vg.Points(s.Theme.GridStyle.Size("size", 0.5))
	grid.Horizontal = grid.Vertical
	p.Add(grid)

	for _, ms := range s.Months {
		line, err := styledLine(ms.Series, s.Theme.PlotLineStyle)
		if err != nil {
			return nil, err
		}
		p.Add(line)
	}
	if len(s.Raw) > 0 {
		raw, err := styledLine(s.Raw, s.Theme.RawLineStyle)
		if err != nil {
			return nil, err
		}
		p.Add(raw)
		p.Legend.Add("raw", raw)
		p.Legend.Top = true
	}
	return p, nil
}

func writeImage(w io.Writer, format string, s *Snapshot) error {
	p, err := s.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Points(s.Config.Width), vg.Points(s.Config.Height), format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
