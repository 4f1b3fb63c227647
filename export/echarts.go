package export

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/vdobler/seasonal"
)

func itoa(i int) string { return strconv.Itoa(i) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func lineData(series seasonal.Series) []opts.LineData {
	items := make([]opts.LineData, len(series))
	for i, p := range series {
		items[i] = opts.LineData{
			Name:  p.Date.Format("2006-01"),
			Value: []interface{}{p.Date.UnixMilli(), p.CO2},
		}
	}
	return items
}

// cssColor formats c as rgba() so the alpha survives.
func cssColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", n.R, n.G, n.B, ftoa(math.Round(float64(n.A)/255*100)/100))
}

func seriesOpts(style seasonal.AesMapping) []charts.SeriesOpts {
	return []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Color: cssColor(style.StrokeColor(color.Black)),
			Width: float32(style.Size("size", 1)),
		}),
	}
}

// writeHTML renders s as a standalone go-echarts page with one line
// series per month and the raw series on top.
func writeHTML(w io.Writer, s *Snapshot) error {
	cfg := s.Config
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Seasonal CO2",
			Width:     ftoa(cfg.Width) + "px",
			Height:    ftoa(cfg.Height) + "px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Seasonal CO2",
			Subtitle: "subplot " + itoa(s.Subplot),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(cfg.Tooltips), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
			Min:  cfg.XDomain[0].UnixMilli(),
			Max:  cfg.XDomain[1].UnixMilli(),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "CO2 (ppm)",
			Min:  cfg.YDomain[0],
			Max:  cfg.YDomain[1],
		}),
	)
	for _, ms := range s.Months {
		line.AddSeries(ms.Month, lineData(ms.Series), seriesOpts(s.Theme.PlotLineStyle)...)
	}
	if len(s.Raw) > 0 {
		line.AddSeries("raw", lineData(s.Raw), seriesOpts(s.Theme.RawLineStyle)...)
	}
	return line.Render(w)
}
