package seasonal

import (
	"image/color"
	"strconv"
)

// Class names of the chart elements. The page's style sheet and scripts
// select on these.
const (
	ClassRoot        = "svgd3"
	ClassPlotLine    = "plotline"
	ClassRawPlot     = "rawplot"
	ClassTooltip     = "tooltip"
	ClassTextBG      = "textbg"
	ClassHighlighted = "highlighted"
	ClassAxis        = "axis"
	ClassTick        = "tick"
)

// AesMapping holds fixed style values like "color", "size" or "fill".
// The zero value means "no style set".
type AesMapping map[string]string

// MergeStyles merges the set values in ams; earlier mappings win.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range ams {
		for k, v := range am {
			if _, ok := merged[k]; !ok && v != "" {
				merged[k] = v
			}
		}
	}
	return merged
}

// Color returns the color stored under aes or def if unset.
func (m AesMapping) Color(aes string, def color.Color) color.Color {
	if s, ok := m[aes]; ok {
		return String2Color(s)
	}
	return def
}

// Size returns the float stored under aes or def if unset.
func (m AesMapping) Size(aes string, def float64) float64 {
	if s, ok := m[aes]; ok {
		return String2Float(s, 0, 100)
	}
	return def
}

// StrokeColor is the "color" with "alpha" applied, def if no color is set.
func (m AesMapping) StrokeColor(def color.Color) color.Color {
	c := m.Color("color", def)
	if _, ok := m["alpha"]; ok && c != nil {
		c = SetAlpha(c, m.Size("alpha", 1))
	}
	return c
}

// strokeAttrs renders the line style as SVG presentation attributes.
func (m AesMapping) strokeAttrs() []string {
	attrs := []string{`fill="none"`}
	if _, ok := m["color"]; ok {
		attrs = append(attrs, `stroke="`+Color2Hex(m.Color("color", color.Black))+`"`)
	}
	if _, ok := m["alpha"]; ok {
		attrs = append(attrs, `stroke-opacity="`+strconv.FormatFloat(String2Float(m["alpha"], 0, 1), 'f', -1, 64)+`"`)
	}
	if _, ok := m["size"]; ok {
		attrs = append(attrs, `stroke-width="`+strconv.FormatFloat(m.Size("size", 1), 'f', -1, 64)+`"`)
	}
	return attrs
}

type Theme struct {
	PlotLineStyle, RawLineStyle, GridStyle AesMapping
}

var DefaultTheme = Theme{
	PlotLineStyle: AesMapping{
		"size":  "1",
		"color": "gray60",
		"alpha": "0.8",
	},
	RawLineStyle: AesMapping{
		"size":  "2.5",
		"color": "royalblue",
	},
	GridStyle: AesMapping{
		"size":  "0.5",
		"color": "gray80",
	},
}
