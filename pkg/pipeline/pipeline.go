// Package pipeline drives a full render: index the corpus once, lay the
// sample grid once, then walk the grid in order compositing and
// appending one frame per point.
package pipeline

import (
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/michaelmcallister/satlapse/pkg/render"
	"github.com/michaelmcallister/satlapse/pkg/resample"
	"github.com/michaelmcallister/satlapse/pkg/sinks"
	"github.com/michaelmcallister/satlapse/pkg/timeindex"
)

// FPS is the frame rate every output is encoded at.
const FPS = 12

// Options are the validated parameters of one render run.
type Options struct {
	Start    time.Time
	End      time.Time
	Every    time.Duration
	Bounds   image.Rectangle // zero means no crop
	ImageDir string
	Output   string
}

// Run renders the timelapse described by opts. Work is strictly
// sequential and the first failure aborts the run; whatever frames made
// it out are still finalized into a valid container.
func Run(opts Options) error {
	ix, err := timeindex.Build(opts.ImageDir)
	if err != nil {
		return fmt.Errorf("index %s: %w", opts.ImageDir, err)
	}
	grid, err := resample.Grid(opts.Start, opts.End, opts.Every)
	if err != nil {
		return err
	}
	sink, err := sinks.ForFile(opts.Output, render.CanvasWidth, render.CanvasHeight, FPS)
	if err != nil {
		return err
	}
	log.Info("rendering", "stills", ix.Len(), "frames", len(grid), "out", opts.Output)
	started := time.Now()
	if err := Render(ix, grid, render.NewCompositor(opts.Bounds), sink); err != nil {
		return err
	}
	log.Info("render finished", "frames", len(grid), "took", time.Since(started).Round(time.Millisecond))
	return nil
}

// Render streams one composed frame per grid point into sink, in grid
// order. The sink is closed on every path out, success or not.
func Render(ix *timeindex.Index, grid []time.Time, comp *render.Compositor, sink sinks.FrameSink) (err error) {
	defer func() {
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
	}()
	for _, at := range grid {
		still, err := ix.Nearest(at)
		if err != nil {
			return err
		}
		frame, err := comp.Composite(still.Path, at)
		if err != nil {
			return err
		}
		if err := sink.WriteFrame(frame); err != nil {
			return fmt.Errorf("append frame for %s: %w", at.Format(time.RFC3339), err)
		}
		log.Debug("frame", "at", at.Format(time.RFC3339), "still", still.Path)
	}
	return nil
}
