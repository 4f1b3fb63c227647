package seasonal

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoaderFile(t *testing.T) {
	ds, err := Loader{Source: "testdata/small.json"}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if len(ds.Indices) != 3 {
		t.Errorf("Got %d subplots, want 3", len(ds.Indices))
	}
}

func TestLoaderMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	_, err := Loader{Source: missing}.Fetch(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Got %v, want *FetchError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got %v, want it to wrap os.ErrNotExist", err)
	}
}

func TestLoaderHTTP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/assets/seasonal_smoothing.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(scenarioJSON))
	})
	mux.HandleFunc("/broken.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"1": {`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ds, err := Loader{Source: srv.URL + "/" + DefaultSource, Client: srv.Client()}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if sp, _ := ds.Subplot(1); sp == nil || len(sp.Months) != 2 {
		t.Errorf("Got %v", ds.Subplots)
	}

	_, err = Loader{Source: srv.URL + "/missing.json"}.Fetch(context.Background())
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Status != http.StatusNotFound {
		t.Errorf("Got %v, want FetchError with status 404", err)
	}

	_, err = Loader{Source: srv.URL + "/broken.json"}.Fetch(context.Background())
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("Got %v, want *ParseError", err)
	}
}

// countingFetcher counts fetches and blocks each until gate is closed.
type countingFetcher struct {
	calls int32
	gate  chan struct{}
	ds    *Dataset
	err   error
}

func (f *countingFetcher) Fetch(ctx context.Context) (*Dataset, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.gate != nil {
		<-f.gate
	}
	return f.ds, f.err
}

func TestFutureSharesOneFetch(t *testing.T) {
	ds := mustParse(t, scenarioJSON)
	f := &countingFetcher{gate: make(chan struct{}), ds: ds}
	fu := NewFuture(f)

	var wg sync.WaitGroup
	results := make([]*Dataset, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = fu.Await(context.Background())
		}(i)
	}
	close(f.gate)
	wg.Wait()

	if n := atomic.LoadInt32(&f.calls); n != 1 {
		t.Errorf("Got %d fetches, want 1", n)
	}
	for i, got := range results {
		if got != ds {
			t.Errorf("%d: Got a different dataset", i)
		}
	}
}

func TestFutureSharesError(t *testing.T) {
	boom := &FetchError{Source: "x", Err: errors.New("boom")}
	fu := NewFuture(&countingFetcher{err: boom})
	for i := 0; i < 2; i++ {
		if _, err := fu.Await(context.Background()); err != boom {
			t.Errorf("%d: Got %v, want %v", i, err, boom)
		}
	}
}

func TestFutureAwaitGivesUp(t *testing.T) {
	f := &countingFetcher{gate: make(chan struct{})}
	defer close(f.gate)
	fu := NewFuture(f)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := fu.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Got %v, want deadline exceeded", err)
	}
}

func TestResolved(t *testing.T) {
	ds := mustParse(t, scenarioJSON)
	fu := Resolved(ds)
	select {
	case <-fu.Done():
	default:
		t.Fatalf("Resolved future not done")
	}
	fu.Start(context.Background())
	if got, err := fu.Await(context.Background()); got != ds || err != nil {
		t.Errorf("Got %v, %v", got, err)
	}
}
