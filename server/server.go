// Package server serves the seasonal chart page and its JSON and SVG API.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vdobler/seasonal"
)

type HttpServer struct {
	view   *seasonal.View
	engine *gin.Engine

	indexContent *template.Template
	title        string
}

// New sets up the routes serving view.
func New(view *seasonal.View) (*HttpServer, error) {
	ht := &HttpServer{view: view, title: "Seasonal CO2"}

	var err error
	ht.indexContent = template.New("index")
	if ht.indexContent, err = ht.indexContent.Parse(index_html); err != nil {
		return nil, err
	}

	ht.engine = gin.Default()
	ht.engine.GET("/", ht.index)
	ht.engine.GET("/api/v1/chart", ht.chart)
	ht.engine.GET("/api/v1/subplot", ht.subplot)
	ht.engine.GET("/api/v1/raw", ht.raw)
	ht.engine.GET("/api/v1/state", ht.state)
	ht.engine.GET("/"+seasonal.DefaultSource, ht.dataset)
	return ht, nil
}

// Handler returns the gin engine.
func (ht *HttpServer) Handler() http.Handler {
	return ht.engine
}

// ListenAndServe serves on port until ctx is done.
func (ht *HttpServer) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: ht.engine,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	log.Printf("Listening on port %d", port)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			return err
		}
		if err := <-errc; err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

// statusOf maps view errors to HTTP status codes.
func statusOf(err error) int {
	var (
		fe  *seasonal.FetchError
		pe  *seasonal.ParseError
		dse *seasonal.DataShapeError
	)
	switch {
	case errors.Is(err, seasonal.ErrSliderPosition):
		return http.StatusBadRequest
	case errors.As(err, &dse):
		return http.StatusNotFound
	case errors.As(err, &fe), errors.As(err, &pe):
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
}

func (ht *HttpServer) index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	err := ht.indexContent.Execute(c.Writer, &IndexModel{
		Title:        ht.title,
		Preset:       ht.view.Chart.Config.Name,
		MaxPosition:  len(seasonal.SliderTable) - 1,
		TooltipShift: ht.view.Chart.Config.TooltipShift,
	})
	if err != nil {
		log.Println(err)
	}
}

func (ht *HttpServer) writeSVG(c *gin.Context) {
	c.Header("Content-Type", "image/svg+xml")
	c.Status(http.StatusOK)
	if err := ht.view.WriteSVG(c.Writer); err != nil {
		log.Println(err)
	}
}

// chart returns the chart as it is, after the first draw completed or
// failed.
func (ht *HttpServer) chart(c *gin.Context) {
	if err := ht.view.Wait(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	if s, _ := ht.view.State(); s == seasonal.Failed {
		if _, err := ht.view.Dataset(c.Request.Context()); err != nil {
			fail(c, err)
			return
		}
	}
	ht.writeSVG(c)
}

// subplot is the slider input: ?nsubp is the slider position.
func (ht *HttpServer) subplot(c *gin.Context) {
	pos, err := strconv.Atoi(c.Query("nsubp"))
	if err != nil {
		fail(c, fmt.Errorf("%w: %q", seasonal.ErrSliderPosition, c.Query("nsubp")))
		return
	}
	var buf bytes.Buffer
	if err := ht.view.InputSVG(c.Request.Context(), pos, &buf); err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func (ht *HttpServer) raw(c *gin.Context) {
	series, err := ht.view.RawSeries(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (ht *HttpServer) state(c *gin.Context) {
	s, idx := ht.view.State()
	c.JSON(http.StatusOK, gin.H{"state": s.String(), "subplot": idx})
}

func (ht *HttpServer) dataset(c *gin.Context) {
	ds, err := ht.view.Dataset(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Type", "application/json")
	c.Status(http.StatusOK)
	if err := ds.WriteJSON(c.Writer); err != nil {
		log.Println(err)
	}
}
