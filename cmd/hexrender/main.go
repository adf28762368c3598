// hexrender renders every pattern in a registry dump to an image file and
// prints "id,width,height" for each one written.
//
// Run: GOWORK=off go run ./cmd/hexrender/ -in registry_dump.json -out out/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"charm.land/lipgloss/v2"

	"github.com/wesen/hexrender/internal/batch"
	"github.com/wesen/hexrender/internal/registry"
	"github.com/wesen/hexrender/pkg/export"
	"github.com/wesen/hexrender/pkg/pattern"
)

const (
	exitOK     = 0
	exitSetup  = 1
	exitFailed = 2
)

type options struct {
	in, out    string
	manifest   string
	format     string
	scale      float64
	workers    int
	maxPixels  int
	leadStroke bool
	solid      bool
	dots       float64
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	def := batch.DefaultConfig()

	var o options
	fs := flag.NewFlagSet("hexrender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "registry_dump.json", "registry dump (JSON array of records)")
	fs.StringVar(&o.out, "out", "pattern_images", "output directory, must exist")
	fs.StringVar(&o.manifest, "manifest", "", "also write a JSON manifest to this path")
	fs.StringVar(&o.format, "format", def.Format.String(), "image format: png, bmp or tiff")
	fs.Float64Var(&o.scale, "scale", def.Scale, "pixels per lattice edge")
	fs.IntVar(&o.workers, "workers", def.Workers, "concurrent renders")
	fs.IntVar(&o.maxPixels, "max-pixels", def.MaxPixels, "largest canvas (width×height) a record may use")
	fs.BoolVar(&o.leadStroke, "lead-stroke", false, "step toward the start direction before the first turn")
	fs.BoolVar(&o.solid, "solid", false, "draw without antialiasing")
	fs.Float64Var(&o.dots, "dots", 0, "radius of a dot drawn on every vertex, 0 for none")
	fs.BoolVar(&o.verbose, "v", false, "log every record")
	if err := fs.Parse(args); err != nil {
		return exitSetup
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := o.config(def)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return exitSetup
	}

	records, err := registry.Load(o.in)
	if err != nil {
		log.Error("cannot load registry", "err", err)
		return exitSetup
	}
	log.Debug("loaded registry", "path", o.in, "records", len(records))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum := batch.Run(ctx, cfg, records)
	for _, r := range sum.Results {
		if r.Err != nil {
			log.Warn("skipped record", "id", r.ID, "err", r.Err)
			continue
		}
		log.Debug("wrote image", "id", r.ID, "path", r.Path, "width", r.Width, "height", r.Height)
	}

	if err := batch.WriteReport(stdout, sum.Results); err != nil {
		log.Error("cannot write report", "err", err)
		return exitSetup
	}
	if o.manifest != "" {
		if err := writeManifest(o.manifest, sum.Results); err != nil {
			log.Error("cannot write manifest", "err", err)
			return exitSetup
		}
	}

	fmt.Fprintln(stderr, summaryLine(len(sum.Succeeded()), len(sum.Failed()), cfg.OutputDir))
	if len(sum.Failed()) > 0 {
		return exitFailed
	}
	return exitOK
}

func (o options) config(def batch.Config) (batch.Config, error) {
	cfg := def
	f, err := export.ParseFormat(o.format)
	if err != nil {
		return cfg, err
	}
	cfg.OutputDir = o.out
	cfg.Format = f
	cfg.Scale = o.scale
	cfg.Workers = o.workers
	cfg.MaxPixels = o.maxPixels
	if o.leadStroke {
		cfg.Convention = pattern.LeadStroke
	}
	cfg.Style.Antialias = !o.solid
	cfg.Style.DotRadius = o.dots
	return cfg, cfg.Validate()
}

func writeManifest(path string, results []batch.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := batch.WriteManifest(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func summaryLine(ok, failed int, dir string) string {
	s := okStyle.Render(fmt.Sprintf("%d rendered", ok))
	if failed > 0 {
		s += "  " + failStyle.Render(fmt.Sprintf("%d failed", failed))
	}
	return s + "  " + dimStyle.Render("→ "+dir)
}
