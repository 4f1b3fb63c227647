package seasonal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

const scenarioJSON = `{"1": {"January": [{"month":"1960-01-01","co2":315.5}], "February": [{"month":"1960-02-01","co2":316.0}]}}`

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustParse(t *testing.T, s string) *Dataset {
	t.Helper()
	ds, err := ParseDataset("test", strings.NewReader(s))
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	return ds
}

func TestParseDataset(t *testing.T) {
	ds := mustParse(t, scenarioJSON)
	if len(ds.Indices) != 1 || ds.Indices[0] != 1 {
		t.Fatalf("Got indices %v, want [1]", ds.Indices)
	}
	sp, err := ds.Subplot(1)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if got := strings.Join(sp.Months, ","); got != "January,February" {
		t.Errorf("Got months %s, want January,February", got)
	}
	jan := sp.Series["January"]
	if len(jan) != 1 || !jan[0].Date.Equal(date(1960, time.January, 1)) || jan[0].CO2 != 315.5 {
		t.Errorf("Got January %v", jan)
	}
	feb := sp.Series["February"]
	if len(feb) != 1 || !feb[0].Date.Equal(date(1960, time.February, 1)) || feb[0].CO2 != 316.0 {
		t.Errorf("Got February %v", feb)
	}
}

func TestParseDatasetKeepsDocumentOrder(t *testing.T) {
	ds := mustParse(t, `{"11": {"Mar": [], "Jan": [], "Feb": []}, "1": {"Dec": []}}`)
	if len(ds.Indices) != 2 || ds.Indices[0] != 11 || ds.Indices[1] != 1 {
		t.Errorf("Got indices %v, want [11 1]", ds.Indices)
	}
	sp, _ := ds.Subplot(11)
	if got := strings.Join(sp.Months, " "); got != "Mar Jan Feb" {
		t.Errorf("Got months %q, want \"Mar Jan Feb\"", got)
	}
}

func TestParseDatasetErrors(t *testing.T) {
	for i, body := range []string{
		``,
		`[]`,
		`{"1": {"January": [{"month":"1960-01-01","co2":315.5}]}`,
		`{"one": {}}`,
		`{"1": {}, "1": {}}`,
		`{"1": {"January": [], "January": []}}`,
		`{"1": {"January": [{"month":"1960-01-01"}]}}`,
		`{"1": {"January": [{"month":"1960-01-01","co2":null}]}}`,
		`{"1": {"January": [{"month":"January 1960","co2":315}]}}`,
		`{"1": {"January": [{"month":"1960-01-01","co2":"315"}]}}`,
		`{"1": {}} {}`,
	} {
		_, err := ParseDataset("bad", strings.NewReader(body))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%d: Got %v, want *ParseError", i, err)
			continue
		}
		if pe.Source != "bad" {
			t.Errorf("%d: Got source %q", i, pe.Source)
		}
	}
}

func TestParseDate(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want time.Time
	}{
		{"1960-01-01", date(1960, time.January, 1)},
		{"1975-07-01T00:00:00Z", date(1975, time.July, 1)},
		{"1975-07-01T02:00:00+02:00", date(1975, time.July, 1)},
	} {
		got, err := ParseDate(tc.s)
		if err != nil {
			t.Errorf("%s: Unexpected error %s", tc.s, err)
			continue
		}
		if !got.Equal(tc.want) || got.Location() != time.UTC {
			t.Errorf("%s: Got %s, want %s", tc.s, got, tc.want)
		}
	}
	if _, err := ParseDate("01/01/1960"); err == nil {
		t.Errorf("Missing error for 01/01/1960")
	}
}

func TestMissingSubplot(t *testing.T) {
	ds := mustParse(t, scenarioJSON)
	_, err := ds.Subplot(5)
	var dse *DataShapeError
	if !errors.As(err, &dse) || dse.Subplot != 5 {
		t.Errorf("Got %v, want DataShapeError for subplot 5", err)
	}
}

func TestWriteJSON(t *testing.T) {
	ds := mustParse(t, `{"5": {"Feb": [{"month":"1960-02-01","co2":316}]}, "1": {"Jan": [{"month":"1960-01-01","co2":315.5}]}}`)
	var buf bytes.Buffer
	if err := ds.WriteJSON(&buf); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	want := `{"5":{"Feb":[{"month":"1960-02-01","co2":316}]},"1":{"Jan":[{"month":"1960-01-01","co2":315.5}]}}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Got %s, want %s", got, want)
	}

	again := mustParse(t, buf.String())
	if len(again.Indices) != 2 || again.Indices[0] != 5 {
		t.Errorf("Got indices %v after rewrite", again.Indices)
	}
}
