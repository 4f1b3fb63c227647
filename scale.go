package seasonal

import (
	"math"
	"strconv"
	"time"
)

// Tick is one labeled position on an axis, in pixels.
type Tick struct {
	Pos   float64
	Label string
}

// LinearScale maps the continuous domain [DomainMin,DomainMax] linearly
// onto the pixel range [RangeMin,RangeMax]. The range may be inverted,
// as it is for y scales. Values outside the domain are not clamped.
type LinearScale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// Pos maps the domain value x to a pixel position.
func (s LinearScale) Pos(x float64) float64 {
	d := s.DomainMax - s.DomainMin
	if d == 0 {
		return (s.RangeMin + s.RangeMax) / 2
	}
	return s.RangeMin + (x-s.DomainMin)/d*(s.RangeMax-s.RangeMin)
}

// Invert maps a pixel position back to the domain.
func (s LinearScale) Invert(p float64) float64 {
	r := s.RangeMax - s.RangeMin
	if r == 0 {
		return (s.DomainMin + s.DomainMax) / 2
	}
	return s.DomainMin + (p-s.RangeMin)/r*(s.DomainMax-s.DomainMin)
}

// Ticks returns about count nicely rounded ticks within the domain.
func (s LinearScale) Ticks(count int) []Tick {
	values := NiceTicks(s.DomainMin, s.DomainMax, count)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Pos: s.Pos(v), Label: strconv.FormatFloat(v, 'f', -1, 64)}
	}
	return ticks
}

// TimeScale maps the time domain [DomainMin,DomainMax] linearly onto the
// pixel range [RangeMin,RangeMax]. Times are compared in UTC milliseconds.
type TimeScale struct {
	DomainMin, DomainMax time.Time
	RangeMin, RangeMax   float64
}

func millis(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e6
}

func (s TimeScale) linear() LinearScale {
	return LinearScale{
		DomainMin: millis(s.DomainMin),
		DomainMax: millis(s.DomainMax),
		RangeMin:  s.RangeMin,
		RangeMax:  s.RangeMax,
	}
}

// Pos maps t to a pixel position.
func (s TimeScale) Pos(t time.Time) float64 {
	return s.linear().Pos(millis(t))
}

// Invert maps a pixel position back to a time.
func (s TimeScale) Invert(p float64) time.Time {
	ms := s.linear().Invert(p)
	return time.Unix(0, int64(math.Round(ms*1e6))).UTC()
}

// TicksAt places ticks at the given times labeled with layout.
func (s TimeScale) TicksAt(times []time.Time, layout string) []Tick {
	ticks := make([]Tick, len(times))
	for i, t := range times {
		ticks[i] = Tick{Pos: s.Pos(t), Label: t.UTC().Format(layout)}
	}
	return ticks
}

// Ticks returns about count ticks on January 1st of years spaced by a
// nice step of at least one year, labeled by year.
func (s TimeScale) Ticks(count int) []Tick {
	return s.TicksAt(YearTicks(s.DomainMin, s.DomainMax, count), "2006")
}

// YearTicks returns January 1st of about count years between start and
// stop. The spacing is the nice step over fractional years but never
// less than one year.
func YearTicks(start, stop time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	if stop.Before(start) {
		start, stop = stop, start
	}
	start, stop = start.UTC(), stop.UTC()
	step := int(math.Round(NiceStep(fractionalYear(start), fractionalYear(stop), count)))
	if step < 1 {
		step = 1
	}

	year := start.Year()
	if jan1(year).Before(start) {
		year++
	}
	year = int(RoundUp(float64(year), float64(step)))
	var ticks []time.Time
	for ; !jan1(year).After(stop); year += step {
		ticks = append(ticks, jan1(year))
	}
	return ticks
}

func jan1(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func fractionalYear(t time.Time) float64 {
	y := t.Year()
	begin, end := jan1(y), jan1(y+1)
	return float64(y) + float64(t.Sub(begin))/float64(end.Sub(begin))
}
