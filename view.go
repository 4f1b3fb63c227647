package seasonal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"sync"
)

// State of a View.
type State int

const (
	Uninitialized State = iota
	Loading
	Rendered
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Rendered:
		return "rendered"
	case Failed:
		return "failed"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// SliderTable maps slider positions to subplot indices.
var SliderTable = [...]int{1, 5, 11, 17, 23, 29, 35}

// SubplotAt returns the subplot index selected by slider position pos.
func SubplotAt(pos int) (int, error) {
	if pos < 0 || pos >= len(SliderTable) {
		return 0, fmt.Errorf("%w: %d", ErrSliderPosition, pos)
	}
	return SliderTable[pos], nil
}

// ParseSliderValue parses the value of the slider input and maps it
// through SliderTable.
func ParseSliderValue(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSliderPosition, s)
	}
	return SubplotAt(pos)
}

// View controls one Chart: it draws the raw series and the first subplot
// once the data is loaded and swaps subplots on slider input.
//
// Every request is numbered when it is made and stays pending until it is
// drawn, superseded, abandoned by its context or found to name a missing
// subplot. Once the data is available the newest pending request that can
// be drawn is shown, so a burst of slider changes during loading ends with
// the last valid one.
type View struct {
	Chart *Chart
	Data  *Future

	// RawSubplot is the subplot the raw series is reconstructed from.
	RawSubplot int

	// Report receives every error of a load, raw series or swap.
	// Nil means logging it.
	Report func(error)

	mu       sync.Mutex
	state    State
	current  int
	rawDrawn bool
	seq      uint64
	pending  map[uint64]int // subplot by request number

	ready     chan struct{}
	readyOnce sync.Once
}

// NewView returns an uninitialized view of chart fed by data.
func NewView(chart *Chart, data *Future) *View {
	return &View{Chart: chart, Data: data, RawSubplot: 1, pending: map[uint64]int{}, ready: make(chan struct{})}
}

// Wait blocks until the first draw has completed or failed.
func (v *View) Wait(ctx context.Context) error {
	select {
	case <-v.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (v *View) settle(s State) {
	v.state = s
	v.readyOnce.Do(func() { close(v.ready) })
}

// Start begins loading and draws subplot 1 once the data is there. The
// returned channel delivers the outcome of that first draw.
func (v *View) Start(ctx context.Context) <-chan error {
	return v.request(ctx, SliderTable[0], nil)
}

// Request is the slider input event for position pos. It returns
// immediately; the channel delivers the outcome once the request has
// been applied or superseded.
func (v *View) Request(ctx context.Context, pos int) <-chan error {
	return v.requestPos(ctx, pos, nil)
}

// Input is Request waiting for the outcome.
func (v *View) Input(ctx context.Context, pos int) error {
	return <-v.Request(ctx, pos)
}

// InputSVG is Input followed by writing the chart to w, both under one
// hold of the view's lock: w receives the chart exactly as this request
// left it.
func (v *View) InputSVG(ctx context.Context, pos int, w io.Writer) error {
	return <-v.requestPos(ctx, pos, w)
}

func (v *View) requestPos(ctx context.Context, pos int, w io.Writer) <-chan error {
	idx, err := SubplotAt(pos)
	if err != nil {
		v.report(err)
		ch := make(chan error, 1)
		ch <- err
		close(ch)
		return ch
	}
	return v.request(ctx, idx, w)
}

func (v *View) request(ctx context.Context, idx int, w io.Writer) <-chan error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.pending[seq] = idx
	if v.state == Uninitialized {
		v.state = Loading
	}
	v.mu.Unlock()

	v.Data.Start(context.WithoutCancel(ctx))
	ch := make(chan error, 1)
	go func() {
		ds, err := v.Data.Await(ctx)
		ch <- v.apply(seq, idx, ds, err, w)
		close(ch)
	}()
	return ch
}

func (v *View) apply(seq uint64, idx int, ds *Dataset, err error, w io.Writer) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		delete(v.pending, seq)
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			v.settle(Failed)
			v.report(err)
		}
		return err
	}

	if !v.rawDrawn {
		v.rawDrawn = true
		raw, err := RawSeries(ds, v.RawSubplot, nil)
		if err != nil {
			v.report(err)
		} else {
			v.Chart.RenderRawSeries(raw)
		}
	}

	if _, ok := v.pending[seq]; ok {
		if _, err := ExtractSubplot(ds, idx); err != nil {
			delete(v.pending, seq)
			v.report(err)
			v.drawLatest(ds)
			return err
		}
	}
	v.drawLatest(ds)
	if w != nil {
		return v.Chart.WriteSVG(w)
	}
	return nil
}

// drawLatest draws the newest pending request whose subplot exists in ds
// and drops it together with all older requests. Requests for missing
// subplots are left for their own apply to report. A view that has
// nothing left to draw and never rendered fails.
func (v *View) drawLatest(ds *Dataset) {
	seqs := make([]uint64, 0, len(v.pending))
	for seq := range v.pending {
		seqs = append(seqs, seq)
	}
	slices.Sort(seqs)
	for i := len(seqs) - 1; i >= 0; i-- {
		idx := v.pending[seqs[i]]
		months, err := ExtractSubplot(ds, idx)
		if err != nil {
			continue
		}
		for _, seq := range seqs[:i+1] {
			delete(v.pending, seq)
		}
		v.Chart.Remove(ClassPlotLine)
		v.Chart.Remove(ClassTooltip)
		v.Chart.RenderSubplot(months)
		v.settle(Rendered)
		v.current = idx
		return
	}
	if len(v.pending) == 0 && v.state == Loading {
		v.settle(Failed)
	}
}

func (v *View) report(err error) {
	if v.Report != nil {
		v.Report(err)
		return
	}
	log.Printf("seasonal: %v", err)
}

// State returns the view's state and the subplot on display, 0 if none.
func (v *View) State() (State, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state, v.current
}

// WriteSVG writes a snapshot of the chart.
func (v *View) WriteSVG(w io.Writer) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Chart.WriteSVG(w)
}

// Hover is the pointer entering the plot line of month at the offset
// position (x, y). Plot lines without tooltip give ErrNoTooltip.
func (v *View) Hover(month string, x, y float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	p := v.Chart.PlotLine(month)
	if p == nil {
		return fmt.Errorf("no plot line %q", month)
	}
	if !v.Chart.PointerEnter(p, x, y) {
		return fmt.Errorf("%w: %q", ErrNoTooltip, month)
	}
	return nil
}

// Unhover is the pointer leaving the plot line of month.
func (v *View) Unhover(month string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.Chart.PointerLeave(v.Chart.PlotLine(month))
}

// RawSeries returns the reconstructed series the raw line shows.
func (v *View) RawSeries(ctx context.Context) (Series, error) {
	ds, err := v.Data.Await(ctx)
	if err != nil {
		return nil, err
	}
	return RawSeries(ds, v.RawSubplot, nil)
}

// Dataset waits for and returns the loaded data.
func (v *View) Dataset(ctx context.Context) (*Dataset, error) {
	return v.Data.Await(ctx)
}
