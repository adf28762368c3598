// Package batch renders a registry dump into one image file per record.
package batch

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/wesen/hexrender/pkg/export"
	"github.com/wesen/hexrender/pkg/pattern"
	"github.com/wesen/hexrender/pkg/raster"
)

// DefaultScale is the length of one lattice edge in pixels.
const DefaultScale = 50

// DefaultMaxPixels caps a single canvas at 16M pixels (64 MiB of RGBA).
const DefaultMaxPixels = 1 << 24

// Config holds everything a batch run needs. Populate it explicitly; no
// field defaults from the environment.
type Config struct {
	OutputDir  string
	Scale      float64
	Format     export.Format
	Style      raster.Style
	Convention pattern.Convention
	Workers    int
	// MaxPixels is the largest canvas, width times height, a record may
	// need. Larger records fail with ErrCanvasTooLarge.
	MaxPixels  int
}

// DefaultConfig renders PNGs at DefaultScale into the current directory,
// one worker per CPU.
func DefaultConfig() Config {
	return Config{
		OutputDir:  ".",
		Scale:      DefaultScale,
		Format:     export.PNG,
		Style:      raster.DefaultStyle(),
		Convention: pattern.DefaultConvention,
		Workers:    runtime.NumCPU(),
		MaxPixels:  DefaultMaxPixels,
	}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var errs []error
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output directory is empty"))
	}
	if !(c.Scale > 0) || math.IsInf(c.Scale, 0) {
		errs = append(errs, fmt.Errorf("scale %v must be positive and finite", c.Scale))
	}
	if _, err := export.ParseFormat(c.Format.String()); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d must be at least 1", c.Workers))
	}
	if c.MaxPixels < 1 {
		errs = append(errs, fmt.Errorf("max pixels %d must be at least 1", c.MaxPixels))
	}
	if err := c.Style.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("style: %w", err))
	}
	return errors.Join(errs...)
}
