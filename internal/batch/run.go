package batch

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/wesen/hexrender/internal/registry"
	"github.com/wesen/hexrender/pkg/export"
	"github.com/wesen/hexrender/pkg/layout"
	"github.com/wesen/hexrender/pkg/pattern"
	"github.com/wesen/hexrender/pkg/raster"
)

var (
	// ErrEmptyID is returned for a record without an id, which has no file name.
	ErrEmptyID = errors.New("record has no id")

	// ErrCanvasTooLarge is returned for a record whose canvas exceeds
	// Config.MaxPixels.
	ErrCanvasTooLarge = errors.New("canvas too large")
)

// Result is the outcome for one record. Path, Width and Height are set only
// when Err is nil.
type Result struct {
	ID            string
	Path          string
	Width, Height int
	Err           error
}

// Summary holds one Result per input record, in input order.
type Summary struct {
	Results []Result
}

// Failed returns the results that carry an error.
func (s Summary) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Succeeded returns the results that were written.
func (s Summary) Succeeded() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Err == nil {
			out = append(out, r)
		}
	}
	return out
}

// CheckCanvas reports ErrCanvasTooLarge when p would need more than
// cfg.MaxPixels pixels.
func CheckCanvas(p pattern.Pattern, cfg Config) error {
	t := pattern.BuildWith(p, cfg.Convention)
	w, h := layout.Measure(t, cfg.Scale, cfg.Style.Margin())
	if !(w*h <= float64(cfg.MaxPixels)) {
		return fmt.Errorf("%w: %gx%g exceeds %d pixels", ErrCanvasTooLarge, w, h, cfg.MaxPixels)
	}
	return nil
}

// RenderPattern builds, lays out and draws p. It does no I/O and does not
// check the canvas size; see CheckCanvas.
func RenderPattern(p pattern.Pattern, cfg Config) (*image.RGBA, layout.Frame) {
	t := pattern.BuildWith(p, cfg.Convention)
	f := layout.Compute(t, cfg.Scale, cfg.Style.Margin())
	return raster.Draw(f, cfg.Style), f
}

// Path returns where the image for id is written.
func (c Config) Path(id string) string {
	return filepath.Join(c.OutputDir, registry.FileStem(id)+"."+c.Format.Ext())
}

// Run renders every record concurrently, at most cfg.Workers at a time. A
// failing record never stops the others. Once ctx is done no new record is
// started, and every record not yet started gets ctx.Err().
//
// cfg is assumed valid; see Config.Validate.
func Run(ctx context.Context, cfg Config, records []registry.Record) Summary {
	results := make([]Result, len(records))

	var g errgroup.Group
	g.SetLimit(max(cfg.Workers, 1))
	for i, rec := range records {
		results[i].ID = rec.ID
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			results[i] = renderRecord(ctx, cfg, rec)
			return nil
		})
	}
	_ = g.Wait()

	return Summary{Results: results}
}

func renderRecord(ctx context.Context, cfg Config, rec registry.Record) Result {
	res := Result{ID: rec.ID}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	if rec.ID == "" {
		res.Err = ErrEmptyID
		return res
	}
	p, err := rec.Pattern()
	if err != nil {
		res.Err = err
		return res
	}

	if err := CheckCanvas(p, cfg); err != nil {
		res.Err = fmt.Errorf("record %q: %w", rec.ID, err)
		return res
	}

	img, f := RenderPattern(p, cfg)
	path := cfg.Path(rec.ID)
	if err := export.Save(img, path, cfg.Format); err != nil {
		res.Err = fmt.Errorf("record %q: %w", rec.ID, err)
		return res
	}
	res.Path = path
	res.Width, res.Height = f.Width, f.Height
	return res
}
