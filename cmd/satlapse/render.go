package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/michaelmcallister/satlapse/pkg/pipeline"
)

var (
	flagStart  string
	flagEnd    string
	flagEvery  string
	flagBounds string
	flagImages string
	flagOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Resample stills onto a regular time grid and encode a timelapse",
	Long: `Render reads every still in the image directory, resamples them onto a
regular time grid between --start and --end, and encodes one labelled
frame per grid point. For every grid point the still closest in time is
used, so gaps in the capture record simply hold the last picture.`,
	Example: `  satlapse render --start 2024-01-01T06:00:00Z --end 2024-01-01T18:00:00Z \
      --every 5m --images ./stills --out day.mp4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := renderOptions()
		if err != nil {
			return err
		}
		return pipeline.Run(opts)
	},
}

func init() {
	renderCmd.Flags().StringVar(&flagStart, "start", "", "first instant to render, ISO 8601 (required)")
	renderCmd.Flags().StringVar(&flagEnd, "end", "", "last instant to render, ISO 8601 (required)")
	renderCmd.Flags().StringVar(&flagEvery, "every", "5m", "grid spacing between frames")
	renderCmd.Flags().StringVar(&flagBounds, "bounds", "", "crop window x0,y0,x1,y1 applied to every still")
	renderCmd.Flags().StringVar(&flagImages, "images", ".", "directory of timestamp-named stills")
	renderCmd.Flags().StringVar(&flagOut, "out", "out.avi", "output video file, extension selects the container")
	renderCmd.MarkFlagRequired("start")
	renderCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(renderCmd)
}

func renderOptions() (pipeline.Options, error) {
	var opts pipeline.Options
	var err error
	if opts.Start, err = parseTime(flagStart); err != nil {
		return opts, err
	}
	if opts.End, err = parseTime(flagEnd); err != nil {
		return opts, err
	}
	if opts.Every, err = parseInterval(flagEvery); err != nil {
		return opts, err
	}
	if flagBounds != "" {
		if opts.Bounds, err = parseBounds(flagBounds); err != nil {
			return opts, err
		}
	}
	opts.ImageDir = flagImages
	opts.Output = flagOut
	return opts, nil
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTime accepts common ISO 8601 spellings. Values without a zone
// are taken as UTC, matching the still filenames.
func parseTime(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q, want ISO 8601 like 2024-01-01T06:00:00Z", s)
}

// parseInterval reads a Go duration, also accepting the "min" suffix
// spelling ("5min").
func parseInterval(s string) (time.Duration, error) {
	v := strings.TrimSpace(s)
	if strings.HasSuffix(v, "min") {
		v = strings.TrimSuffix(v, "min") + "m"
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("bad interval %q, want e.g. 90s, 5m, 1h", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %q", s)
	}
	return d, nil
}

// parseBounds reads a crop window as x0,y0,x1,y1, parens optional.
func parseBounds(s string) (image.Rectangle, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "(")
	v = strings.TrimSuffix(v, ")")
	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("bad bounds %q, want x0,y0,x1,y1", s)
	}
	var n [4]int
	for i, p := range parts {
		var err error
		if n[i], err = strconv.Atoi(strings.TrimSpace(p)); err != nil {
			return image.Rectangle{}, fmt.Errorf("bad bounds %q, want x0,y0,x1,y1", s)
		}
	}
	if n[0] < 0 || n[1] < 0 || n[0] >= n[2] || n[1] >= n[3] {
		return image.Rectangle{}, fmt.Errorf("bounds %q must satisfy 0 <= x0 < x1 and 0 <= y0 < y1", s)
	}
	return image.Rect(n[0], n[1], n[2], n[3]), nil
}
