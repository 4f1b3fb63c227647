package seasonal

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Margins around the plotting area, in pixels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Config describes the geometry and behaviour of a chart.
type Config struct {
	Name string

	// Width and Height of the whole chart (the SVG view box) in pixels.
	Width, Height float64
	Margin        Margins

	XDomain [2]time.Time
	YDomain [2]float64

	// XTicks are fixed x tick positions. If empty XTickCount yearly
	// ticks are generated.
	XTicks      []time.Time
	XTickCount  int
	XTickFormat string // time layout of x tick labels, "2006" if empty
	YTickCount  int

	// Tooltips enables the hover label of each plot line.
	Tooltips bool
	// TooltipShift moves the tooltip this many pixels left of the pointer.
	TooltipShift float64
}

// InnerWidth is the width of the plotting area.
func (c Config) InnerWidth() float64 {
	return c.Width - c.Margin.Left - c.Margin.Right
}

// InnerHeight is the height of the plotting area.
func (c Config) InnerHeight() float64 {
	return c.Height - c.Margin.Top - c.Margin.Bottom
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("preset %q: non-positive size %gx%g", c.Name, c.Width, c.Height)
	case c.InnerWidth() <= 0 || c.InnerHeight() <= 0:
		return fmt.Errorf("preset %q: margins exceed size", c.Name)
	case !c.XDomain[0].Before(c.XDomain[1]):
		return fmt.Errorf("preset %q: empty x domain", c.Name)
	case c.YDomain[0] >= c.YDomain[1]:
		return fmt.Errorf("preset %q: empty y domain", c.Name)
	case len(c.XTicks) == 0 && c.XTickCount <= 0:
		return fmt.Errorf("preset %q: no x ticks", c.Name)
	case c.YTickCount <= 0:
		return fmt.Errorf("preset %q: no y ticks", c.Name)
	}
	return nil
}

var defaultMargins = Margins{Top: 20, Right: 20, Bottom: 50, Left: 40}

// Narrow is the 500x400 chart with fixed four-yearly x ticks and tooltips.
var Narrow = Config{
	Name:   "narrow",
	Width:  500,
	Height: 400,
	Margin: defaultMargins,
	XDomain: [2]time.Time{
		time.Date(1958, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1989, time.March, 31, 0, 0, 0, 0, time.UTC),
	},
	YDomain:      [2]float64{310, 352},
	XTicks:       everyNYears(1960, 4, 8),
	XTickFormat:  "2006",
	YTickCount:   8,
	Tooltips:     true,
	TooltipShift: 50,
}

// Wide is the 640x400 chart with automatic ticks and no tooltips.
var Wide = Config{
	Name:   "wide",
	Width:  640,
	Height: 400,
	Margin: defaultMargins,
	XDomain: [2]time.Time{
		time.Date(1959, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1986, time.December, 31, 0, 0, 0, 0, time.UTC),
	},
	YDomain:      [2]float64{310, 355},
	XTickCount:   10,
	XTickFormat:  "2006",
	YTickCount:   10,
	TooltipShift: 50,
}

func everyNYears(first, n, count int) []time.Time {
	ticks := make([]time.Time, count)
	for i := range ticks {
		ticks[i] = jan1(first + n*i)
	}
	return ticks
}

var (
	presetMu sync.RWMutex
	presets  = map[string]Config{
		Narrow.Name: Narrow,
		Wide.Name:   Wide,
	}
)

// Preset looks up a registered preset by name.
func Preset(name string) (Config, error) {
	presetMu.RLock()
	defer presetMu.RUnlock()
	cfg, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
	}
	return cfg, nil
}

// RegisterPreset adds or replaces the preset cfg.Name.
func RegisterPreset(cfg Config) error {
	if cfg.Name == "" {
		return errors.New("preset without name")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	presetMu.Lock()
	defer presetMu.Unlock()
	presets[cfg.Name] = cfg
	return nil
}

// PresetNames lists the registered presets sorted by name.
func PresetNames() []string {
	presetMu.RLock()
	defer presetMu.RUnlock()
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
