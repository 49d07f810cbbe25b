package sinks

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// GIF collects dithered, paletted frames and writes an animated GIF when
// closed. The whole animation is held in memory until then, so it suits
// short previews rather than long runs.
type GIF struct {
	path string
	fps  int
	anim gif.GIF
	done bool
}

// NewGIF returns a sink that will write to path on Close.
func NewGIF(path string, fps int) *GIF {
	return &GIF{path: path, fps: fps}
}

// WriteFrame converts m to the Plan 9 palette and queues it.
func (s *GIF) WriteFrame(m image.Image) error {
	b := m.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, m, b.Min)
	s.anim.Image = append(s.anim.Image, p)
	s.anim.Delay = append(s.anim.Delay, 100/s.fps)
	return nil
}

// Close encodes whatever frames were queued. Subsequent calls are no-ops.
func (s *GIF) Close() error {
	if s.done || len(s.anim.Image) == 0 {
		return nil
	}
	s.done = true
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &s.anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
