package seasonal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
)

// DefaultSource is the dataset location relative to the page.
const DefaultSource = "assets/seasonal_smoothing.json"

// Loader reads a dataset from a file or from an http(s) URL.
type Loader struct {
	// Source is a file path or an http:// or https:// URL.
	Source string

	// Client is used for URL sources. Nil means http.DefaultClient.
	Client *http.Client
}

// Fetch reads and parses the dataset. Read failures are reported as
// *FetchError, malformed bodies as *ParseError. There is no retry.
func (l Loader) Fetch(ctx context.Context) (*Dataset, error) {
	source := l.Source
	if source == "" {
		source = DefaultSource
	}
	body, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return ParseDataset(source, body)
}

func (l Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, &FetchError{Source: source, Err: err}
		}
		return f, nil
	}

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	req.Header.Set("accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &FetchError{
			Source: source,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}
	return resp.Body, nil
}

// Fetcher produces a dataset. Loader is the usual implementation.
type Fetcher interface {
	Fetch(ctx context.Context) (*Dataset, error)
}

// Future is the single, shared result of one dataset fetch. The fetch
// starts with the first call to Start or Await; every consumer observes
// the same dataset or the same error.
type Future struct {
	fetcher Fetcher

	once sync.Once
	done chan struct{}
	ds   *Dataset
	err  error
}

// NewFuture returns a future for the dataset produced by f. Nothing is
// fetched until Start or Await is called.
func NewFuture(f Fetcher) *Future {
	return &Future{fetcher: f, done: make(chan struct{})}
}

// Resolved returns an already completed future holding ds.
func Resolved(ds *Dataset) *Future {
	fu := &Future{done: make(chan struct{}), ds: ds}
	fu.once.Do(func() {})
	close(fu.done)
	return fu
}

// Start triggers the fetch in its own goroutine. Calls after the first
// are no-ops; ctx of the first call governs the fetch.
func (fu *Future) Start(ctx context.Context) {
	fu.once.Do(func() {
		go func() {
			fu.ds, fu.err = fu.fetcher.Fetch(ctx)
			close(fu.done)
		}()
	})
}

// Done is closed once the fetch has completed.
func (fu *Future) Done() <-chan struct{} {
	return fu.done
}

// Await starts the fetch if needed and waits for its result or for ctx
// to be done, whichever comes first.
func (fu *Future) Await(ctx context.Context) (*Dataset, error) {
	fu.Start(context.WithoutCancel(ctx))
	select {
	case <-fu.done:
		return fu.ds, fu.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
