package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"github.com/vdobler/seasonal"
	"github.com/vdobler/seasonal/export"
	"github.com/vdobler/seasonal/server"
)

type executor struct {
	rootCmd *cobra.Command

	data        string
	preset      string
	presetsFile string
	debug       bool

	port         int
	pid          string
	log          string
	notdaemonize bool
	daemonWd     string

	nsubp  int
	hover  string
	output string
	format string
}

func (ex *executor) Main() {
	if err := ex.rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func NewExecutor(name string) *executor {
	e := &executor{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart page",
		RunE:  e.serve,
	}
	serveCmd.Flags().IntVar(&e.port, "port", 2999, "Http port")
	serveCmd.Flags().StringVar(&e.log, "log", fmt.Sprintf("%s.log", name), "Log file")
	serveCmd.Flags().StringVar(&e.pid, "pid", fmt.Sprintf("%s.pid", name), "Pid file")
	serveCmd.Flags().BoolVarP(&e.notdaemonize, "not-daemon", "n", false, "Do not go to background")
	serveCmd.Flags().StringVar(&e.daemonWd, "daemon-workdir", "/tmp", "Daemon work dir")

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop daemon",
		RunE:  e.stop,
	}
	stopCmd.Flags().StringVar(&e.pid, "pid", fmt.Sprintf("%s.pid", name), "Pid file")
	stopCmd.Flags().StringVar(&e.daemonWd, "daemon-workdir", "/tmp", "Daemon work dir")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write the chart as SVG",
		RunE:  e.render,
	}
	renderCmd.Flags().IntVar(&e.nsubp, "nsubp", 0, "Slider position 0-6")
	renderCmd.Flags().StringVar(&e.hover, "hover", "", "Hover a plot line, as Month@x,y")
	renderCmd.Flags().StringVarP(&e.output, "output", "o", "-", "Output file, - for stdout")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the chart as image, HTML page or spreadsheet",
		RunE:  e.export,
	}
	exportCmd.Flags().IntVar(&e.nsubp, "nsubp", 0, "Slider position 0-6")
	exportCmd.Flags().StringVarP(&e.output, "output", "o", "", "Output file")
	exportCmd.Flags().StringVar(&e.format, "format", "", "One of "+strings.Join(export.Formats, ", ")+"; default from the output file name")
	exportCmd.MarkFlagRequired("output")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List chart presets",
		RunE:  e.presets,
	}

	e.rootCmd = &cobra.Command{
		Use:          name,
		Short:        "Seasonal CO2 line charts",
		SilenceUsage: true,
	}
	e.rootCmd.AddCommand(serveCmd, stopCmd, renderCmd, exportCmd, presetsCmd)
	e.rootCmd.PersistentFlags().StringVar(&e.data, "data", seasonal.DefaultSource, "Dataset file or URL")
	e.rootCmd.PersistentFlags().StringVar(&e.preset, "preset", seasonal.Narrow.Name, "Chart preset")
	e.rootCmd.PersistentFlags().StringVar(&e.presetsFile, "presets-file", "", "YAML file with additional presets")
	e.rootCmd.PersistentFlags().BoolVarP(&e.debug, "debug", "d", false, "Debug")
	return e
}

func (ex *executor) config() (seasonal.Config, error) {
	if ex.presetsFile != "" {
		if _, err := seasonal.LoadPresetFile(ex.presetsFile); err != nil {
			return seasonal.Config{}, err
		}
	}
	return seasonal.Preset(ex.preset)
}

func (ex *executor) view() (*seasonal.View, error) {
	cfg, err := ex.config()
	if err != nil {
		return nil, err
	}
	chart, err := seasonal.NewChart(cfg)
	if err != nil {
		return nil, err
	}
	return seasonal.NewView(chart, seasonal.NewFuture(seasonal.Loader{Source: ex.data})), nil
}

func (ex *executor) daemonContext() *daemon.Context {
	return &daemon.Context{
		PidFileName: ex.pid,
		PidFilePerm: 0644,
		LogFileName: ex.log,
		LogFilePerm: 0640,
		WorkDir:     ex.daemonWd,
		Umask:       027,
		Args:        os.Args,
	}
}

func (ex *executor) serve(cmd *cobra.Command, args []string) error {
	// The daemon changes its work dir.
	if !strings.Contains(ex.data, "://") {
		abs, err := filepath.Abs(ex.data)
		if err != nil {
			return err
		}
		ex.data = abs
	}
	if ex.presetsFile != "" {
		abs, err := filepath.Abs(ex.presetsFile)
		if err != nil {
			return err
		}
		ex.presetsFile = abs
	}

	if !ex.notdaemonize {
		d, err := ex.daemonContext().Reborn()
		if err != nil {
			return err
		}
		if d != nil {
			log.Printf("Created daemon process %d", d.Pid)
			return nil
		}
	}

	if !ex.debug {
		gin.SetMode(gin.ReleaseMode)
	}
	view, err := ex.view()
	if err != nil {
		return err
	}
	ht, err := server.New(view)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	view.Start(ctx)
	err = ht.ListenAndServe(ctx, ex.port)
	log.Println("Exiting.")
	return err
}

func (ex *executor) stop(cmd *cobra.Command, args []string) error {
	d, err := ex.daemonContext().Search()
	if err != nil {
		return fmt.Errorf("unable to send signal to the daemon: %w", err)
	}
	if d == nil {
		log.Printf("Daemon process already stopped")
		return nil
	}
	return d.Kill()
}

// parseHover splits "Month@x,y".
func parseHover(s string) (month string, x, y float64, err error) {
	month, pos, ok := strings.Cut(s, "@")
	if !ok || month == "" {
		return "", 0, 0, fmt.Errorf("bad hover %q, want Month@x,y", s)
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return "", 0, 0, fmt.Errorf("bad hover %q, want Month@x,y", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return "", 0, 0, fmt.Errorf("bad hover x: %w", err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return "", 0, 0, fmt.Errorf("bad hover y: %w", err)
	}
	return month, x, y, nil
}

func create(path string) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func (ex *executor) render(cmd *cobra.Command, args []string) error {
	view, err := ex.view()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := view.Input(ctx, ex.nsubp); err != nil {
		return err
	}
	if ex.hover != "" {
		month, x, y, err := parseHover(ex.hover)
		if err != nil {
			return err
		}
		if err := view.Hover(month, x, y); err != nil {
			return err
		}
	}

	out, err := create(ex.output)
	if err != nil {
		return err
	}
	if err := view.WriteSVG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (ex *executor) export(cmd *cobra.Command, args []string) error {
	format := ex.format
	if format == "" {
		var err error
		if format, err = export.FormatFromPath(ex.output); err != nil {
			return err
		}
	}
	cfg, err := ex.config()
	if err != nil {
		return err
	}
	idx, err := seasonal.SubplotAt(ex.nsubp)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ds, err := seasonal.Loader{Source: ex.data}.Fetch(ctx)
	if err != nil {
		return err
	}
	snap, err := export.NewSnapshot(ds, cfg, idx, 1)
	if err != nil {
		return err
	}

	out, err := create(ex.output)
	if err != nil {
		return err
	}
	if err := export.Write(out, format, snap); err != nil {
		out.Close()
		return err
	}
	if ex.debug {
		log.Printf("Wrote %s (%s, subplot %d)", ex.output, format, idx)
	}
	return out.Close()
}

func (ex *executor) presets(cmd *cobra.Command, args []string) error {
	if ex.presetsFile != "" {
		if _, err := seasonal.LoadPresetFile(ex.presetsFile); err != nil {
			return err
		}
	}
	w := cmd.OutOrStdout()
	for _, name := range seasonal.PresetNames() {
		cfg, _ := seasonal.Preset(name)
		fmt.Fprintf(w, "%-10s %gx%g  x %s..%s  y %g..%g  tooltips %t\n", name, cfg.Width, cfg.Height,
			cfg.XDomain[0].Format("2006-01-02"), cfg.XDomain[1].Format("2006-01-02"),
			cfg.YDomain[0], cfg.YDomain[1], cfg.Tooltips)
	}
	return nil
}
