package seasonal

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// presetFile is the YAML layout of a preset file:
//
//	presets:
//	  - name: tall
//	    base: narrow
//	    height: 600
//	    y_domain: [300, 360]
type presetFile struct {
	Presets []presetSpec `yaml:"presets"`
}

type presetSpec struct {
	Name         string    `yaml:"name"`
	Base         string    `yaml:"base"`
	Width        *float64  `yaml:"width"`
	Height       *float64  `yaml:"height"`
	Margin       *Margins  `yaml:"margin"`
	XDomain      []string  `yaml:"x_domain"`
	YDomain      []float64 `yaml:"y_domain"`
	XTicks       []string  `yaml:"x_ticks"`
	XTickCount   *int      `yaml:"x_tick_count"`
	XTickFormat  string    `yaml:"x_tick_format"`
	YTickCount   *int      `yaml:"y_tick_count"`
	Tooltips     *bool     `yaml:"tooltips"`
	TooltipShift *float64  `yaml:"tooltip_shift"`
}

// LoadPresets decodes preset definitions from YAML. A preset may name a
// registered base preset whose values it overrides; otherwise it starts
// from Narrow. The presets are validated but not registered.
func LoadPresets(r io.Reader) ([]Config, error) {
	var pf presetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&pf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("preset file: %w", err)
	}

	configs := make([]Config, 0, len(pf.Presets))
	for _, spec := range pf.Presets {
		cfg, err := spec.config()
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// LoadPresetFile reads the YAML file at path and registers its presets.
func LoadPresetFile(path string) ([]Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	configs, err := LoadPresets(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, cfg := range configs {
		if err := RegisterPreset(cfg); err != nil {
			return nil, err
		}
	}
	return configs, nil
}

func (spec presetSpec) config() (Config, error) {
	base := spec.Base
	if base == "" {
		base = Narrow.Name
	}
	cfg, err := Preset(base)
	if err != nil {
		return Config{}, fmt.Errorf("preset %q: %w", spec.Name, err)
	}
	cfg.Name = spec.Name
	cfg.XTicks = append([]time.Time(nil), cfg.XTicks...)

	if spec.Width != nil {
		cfg.Width = *spec.Width
	}
	if spec.Height != nil {
		cfg.Height = *spec.Height
	}
	if spec.Margin != nil {
		cfg.Margin = *spec.Margin
	}
	if spec.XDomain != nil {
		if len(spec.XDomain) != 2 {
			return Config{}, fmt.Errorf("preset %q: x_domain needs two dates", spec.Name)
		}
		for i, s := range spec.XDomain {
			if cfg.XDomain[i], err = ParseDate(s); err != nil {
				return Config{}, fmt.Errorf("preset %q: %w", spec.Name, err)
			}
		}
	}
	if spec.YDomain != nil {
		if len(spec.YDomain) != 2 {
			return Config{}, fmt.Errorf("preset %q: y_domain needs two values", spec.Name)
		}
		cfg.YDomain = [2]float64{spec.YDomain[0], spec.YDomain[1]}
	}
	if spec.XTicks != nil {
		cfg.XTicks = cfg.XTicks[:0]
		for _, s := range spec.XTicks {
			t, err := ParseDate(s)
			if err != nil {
				return Config{}, fmt.Errorf("preset %q: %w", spec.Name, err)
			}
			cfg.XTicks = append(cfg.XTicks, t)
		}
	}
	if spec.XTickCount != nil {
		cfg.XTickCount = *spec.XTickCount
		if spec.XTicks == nil {
			cfg.XTicks = nil
		}
	}
	if spec.XTickFormat != "" {
		cfg.XTickFormat = spec.XTickFormat
	}
	if spec.YTickCount != nil {
		cfg.YTickCount = *spec.YTickCount
	}
	if spec.Tooltips != nil {
		cfg.Tooltips = *spec.Tooltips
	}
	if spec.TooltipShift != nil {
		cfg.TooltipShift = *spec.TooltipShift
	}
	return cfg, nil
}
