// Package resample generates the regular time grid a timelapse is
// rendered on. The grid, not the capture times, decides how many frames
// the output has and which instant each frame depicts.
package resample

import (
	"fmt"
	"time"
)

// Grid returns the instants from start to end, step apart. The first
// point is always start, points increase strictly, and no point passes
// end; when the span does not divide evenly the grid simply stops short.
// start equal to end yields a single point.
func Grid(start, end time.Time, step time.Duration) ([]time.Time, error) {
	if step <= 0 {
		return nil, fmt.Errorf("sample interval must be positive, got %s", step)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end %s precedes start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	grid := make([]time.Time, 0, int(end.Sub(start)/step)+1)
	for t := start; !t.After(end); t = t.Add(step) {
		grid = append(grid, t)
	}
	return grid, nil
}
