package seasonal

import (
	"sort"
	"strings"
	"time"
)

// MonthSeries is the series of one month within a subplot.
type MonthSeries struct {
	Month  string
	Series Series
}

// ExtractSubplot returns the month series of subplot idx in the
// subplot's document order.
func ExtractSubplot(ds *Dataset, idx int) ([]MonthSeries, error) {
	sp, err := ds.Subplot(idx)
	if err != nil {
		return nil, err
	}
	out := make([]MonthSeries, len(sp.Months))
	for i, m := range sp.Months {
		out[i] = MonthSeries{Month: m, Series: sp.Series[m]}
	}
	return out, nil
}

// RawSeries reconstructs the chronological series of subplot idx: for
// every position p it appends the p-th point of each month in order.
// A nil order means CalendarOrder of the subplot's months.
//
// All months in order must exist and have the same number of points;
// otherwise a *DataShapeError is returned and nothing is produced.
func RawSeries(ds *Dataset, idx int, order []string) (Series, error) {
	sp, err := ds.Subplot(idx)
	if err != nil {
		return nil, err
	}
	if order == nil {
		order = CalendarOrder(sp.Months)
	}
	if len(order) == 0 {
		return nil, NewDataShapeError(idx, "", "no months to reconstruct from")
	}

	n := -1
	for _, m := range order {
		s, ok := sp.Series[m]
		if !ok {
			return nil, NewDataShapeError(idx, m, "no such month")
		}
		if n == -1 {
			n = len(s)
		} else if len(s) != n {
			return nil, NewDataShapeError(idx, m, "has %d points, %q has %d", len(s), order[0], n)
		}
	}

	raw := make(Series, 0, n*len(order))
	for p := 0; p < n; p++ {
		for _, m := range order {
			raw = append(raw, sp.Series[m][p])
		}
	}
	return raw, nil
}

// CalendarOrder sorts month keys January to December. Full English names
// and three letter abbreviations are recognised, case insensitive. Keys
// which are not month names follow in their original order.
func CalendarOrder(months []string) []string {
	order := make([]string, len(months))
	copy(order, months)
	sort.SliceStable(order, func(i, j int) bool {
		return monthRank(order[i]) < monthRank(order[j])
	})
	return order
}

func monthRank(name string) int {
	n := strings.ToLower(strings.TrimSpace(name))
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if n == full || n == full[:3] {
			return int(m)
		}
	}
	return 13
}
