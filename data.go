package seasonal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Point is one monthly measurement.
type Point struct {
	Date time.Time // UTC
	CO2  float64
}

// jsonPoint is the wire form of a Point.
type jsonPoint struct {
	Month string   `json:"month"`
	CO2   *float64 `json:"co2"`
}

// MarshalJSON encodes p in the wire form {"month": ..., "co2": ...}.
func (p Point) MarshalJSON() ([]byte, error) {
	co2 := p.CO2
	return json.Marshal(jsonPoint{Month: p.Date.Format(dateLayout), CO2: &co2})
}

// Series is an ordered sequence of points drawn as one path.
type Series []Point

// Subplot is the group of month series stored under one subplot index.
type Subplot struct {
	Index int

	// Months lists the month keys in document order.
	Months []string

	Series map[string]Series
}

// Dataset is the parsed input document. It is not modified after loading.
type Dataset struct {
	// Indices lists the subplot indices in document order.
	Indices  []int
	Subplots map[int]*Subplot
}

// Subplot returns the subplot stored under idx.
func (ds *Dataset) Subplot(idx int) (*Subplot, error) {
	if sp, ok := ds.Subplots[idx]; ok {
		return sp, nil
	}
	return nil, NewDataShapeError(idx, "", "no such subplot")
}

// WriteJSON writes ds in its wire format, keeping the document order.
func (ds *Dataset) WriteJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("{")
	for i, idx := range ds.Indices {
		if i > 0 {
			bw.WriteString(",")
		}
		fmt.Fprintf(bw, "%q:{", strconv.Itoa(idx))
		sp := ds.Subplots[idx]
		for j, month := range sp.Months {
			if j > 0 {
				bw.WriteString(",")
			}
			key, _ := json.Marshal(month)
			points, err := json.Marshal(sp.Series[month])
			if err != nil {
				return err
			}
			bw.Write(key)
			bw.WriteString(":")
			bw.Write(points)
		}
		bw.WriteString("}")
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

const dateLayout = "2006-01-02"

// ParseDate parses the ISO dates used in the "month" field. Plain dates
// and RFC 3339 timestamps are accepted; the result is in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q", s)
	}
	return t.UTC(), nil
}

// ParseDataset decodes a dataset from r. Source is used in error messages
// only. Any failure is reported as a *ParseError.
func ParseDataset(source string, r io.Reader) (*Dataset, error) {
	ds, err := parseDataset(json.NewDecoder(r))
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return ds, nil
}

func parseDataset(dec *json.Decoder) (*Dataset, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	ds := &Dataset{Subplots: make(map[int]*Subplot)}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("subplot key %q is not an integer", key)
		}
		if _, dup := ds.Subplots[idx]; dup {
			return nil, fmt.Errorf("duplicate subplot %d", idx)
		}
		sp, err := parseSubplot(dec, idx)
		if err != nil {
			return nil, err
		}
		ds.Indices = append(ds.Indices, idx)
		ds.Subplots[idx] = sp
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after dataset")
	}
	return ds, nil
}

func parseSubplot(dec *json.Decoder, idx int) (*Subplot, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("subplot %d: %w", idx, err)
	}
	sp := &Subplot{Index: idx, Series: make(map[string]Series)}
	for dec.More() {
		month, err := stringToken(dec)
		if err != nil {
			return nil, fmt.Errorf("subplot %d: %w", idx, err)
		}
		if _, dup := sp.Series[month]; dup {
			return nil, fmt.Errorf("subplot %d: duplicate month %q", idx, month)
		}
		var raw []jsonPoint
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("subplot %d, month %q: %w", idx, month, err)
		}
		series := make(Series, len(raw))
		for i, rp := range raw {
			date, err := ParseDate(rp.Month)
			if err != nil {
				return nil, fmt.Errorf("subplot %d, month %q, point %d: %w", idx, month, i, err)
			}
			if rp.CO2 == nil {
				return nil, fmt.Errorf("subplot %d, month %q, point %d: missing co2", idx, month, i)
			}
			series[i] = Point{Date: date, CO2: *rp.CO2}
		}
		sp.Months = append(sp.Months, month)
		sp.Series[month] = series
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("subplot %d: %w", idx, err)
	}
	return sp, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("got %v, want %q", tok, want)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("got %v, want object key", tok)
	}
	return s, nil
}
