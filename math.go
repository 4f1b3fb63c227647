package seasonal

import (
	"math"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec determines about count "nice" ticks in [start,stop] with
// start <= stop. Ticks are i*inc for i1 <= i <= i2 if inc > 0 and
// i/-inc if inc < 0; the latter keeps fractional steps exact.
func tickSpec(start, stop float64, count int) (i1, i2, inc float64) {
	step := (stop - start) / float64(count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1, i2 = math.Round(start*inc), math.Round(stop*inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		return i1, i2, -inc
	}
	inc = math.Pow(10, power) * factor
	i1, i2 = math.Round(start/inc), math.Round(stop/inc)
	if i1*inc < start {
		i1++
	}
	if i2*inc > stop {
		i2--
	}
	return i1, i2, inc
}

// NiceTicks returns about count round values between start and stop
// (inclusive) spaced by 1, 2 or 5 times a power of ten.
func NiceTicks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, count)
	if i2 < i1 || math.IsInf(inc, 0) || inc == 0 {
		return nil
	}
	n := int(i2 - i1 + 1)
	ticks := make([]float64, n)
	for i := range ticks {
		if inc < 0 {
			ticks[i] = (i1 + float64(i)) / -inc
		} else {
			ticks[i] = (i1 + float64(i)) * inc
		}
	}
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// NiceStep returns the tick spacing NiceTicks would use.
func NiceStep(start, stop float64, count int) float64 {
	if stop < start {
		start, stop = stop, start
	}
	_, _, inc := tickSpec(start, stop, count)
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}

// RoundUp rounds a up to a multiple of b.
func RoundUp(a, b float64) float64 {
	return math.Ceil(a/b) * b
}
