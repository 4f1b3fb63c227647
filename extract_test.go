package seasonal

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestExtractSubplot(t *testing.T) {
	ds := mustParse(t, scenarioJSON)
	got, err := ExtractSubplot(ds, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	want := []MonthSeries{
		{"January", Series{{Date: date(1960, time.January, 1), CO2: 315.5}}},
		{"February", Series{{Date: date(1960, time.February, 1), CO2: 316.0}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}

	if _, err := ExtractSubplot(ds, 17); err == nil {
		t.Errorf("Missing error for subplot 17")
	}
}

func TestRawSeries(t *testing.T) {
	ds := mustParse(t, `{"1": {
		"February": [{"month":"1960-02-01","co2":316}, {"month":"1961-02-01","co2":317}],
		"January":  [{"month":"1960-01-01","co2":315}, {"month":"1961-01-01","co2":316}]}}`)

	raw, err := RawSeries(ds, 1, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	var got []string
	for _, p := range raw {
		got = append(got, p.Date.Format("2006-01"))
	}
	if want := "1960-01 1960-02 1961-01 1961-02"; strings.Join(got, " ") != want {
		t.Errorf("Got %v, want %s", got, want)
	}

	again, _ := RawSeries(ds, 1, nil)
	if !reflect.DeepEqual(raw, again) {
		t.Errorf("Raw series not deterministic")
	}

	doc, err := RawSeries(ds, 1, []string{"February", "January"})
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if doc[0].Date.Month() != time.February {
		t.Errorf("Got %s first, want February with explicit order", doc[0].Date)
	}
}

func TestRawSeriesShapeErrors(t *testing.T) {
	ds := mustParse(t, `{"1": {
		"January":  [{"month":"1960-01-01","co2":315}, {"month":"1961-01-01","co2":316}],
		"February": [{"month":"1960-02-01","co2":316}]}, "5": {}}`)

	for _, tc := range []struct {
		idx   int
		order []string
		month string
	}{
		{1, nil, "February"},
		{1, []string{"January", "March"}, "March"},
		{1, []string{}, ""},
		{5, nil, ""},
		{3, nil, ""},
	} {
		_, err := RawSeries(ds, tc.idx, tc.order)
		var dse *DataShapeError
		if !errors.As(err, &dse) {
			t.Errorf("%d %v: Got %v, want *DataShapeError", tc.idx, tc.order, err)
			continue
		}
		if dse.Subplot != tc.idx || dse.Month != tc.month {
			t.Errorf("%d %v: Got subplot %d month %q, want %q", tc.idx, tc.order, dse.Subplot, dse.Month, tc.month)
		}
	}
}

func TestCalendarOrder(t *testing.T) {
	in := []string{"Dec", "march", "Smoothed", "January", "FEB", "Trend"}
	got := CalendarOrder(in)
	want := []string{"January", "FEB", "march", "Dec", "Smoothed", "Trend"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
	if in[0] != "Dec" {
		t.Errorf("Input modified: %v", in)
	}
}
