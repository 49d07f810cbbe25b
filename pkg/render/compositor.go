// Package render composites satellite stills into fixed-size, labelled
// video frames.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Every frame is rendered at this size regardless of the source raster;
// stills are scaled to fill the canvas.
const (
	CanvasWidth  = 1024
	CanvasHeight = 1024
)

const (
	fontSize     = 32.0
	labelHeading = "Datetime"
	labelFormat  = "2006-01-02 15:04 UTC"
	// Distance from the canvas bottom to the last label baseline.
	labelMargin = 56
)

var (
	labelColor  = color.RGBA{R: 0xFF, G: 0x63, B: 0x47, A: 0xFF} // tomato
	borderColor = color.RGBA{A: 0xFF}
)

// ErrCropOutOfBounds means the requested crop window does not fit inside
// the decoded still. The window is never clamped to fit.
var ErrCropOutOfBounds = errors.New("crop window exceeds image bounds")

// Compositor holds the drawing state shared by every frame of a run: the
// label font face, the optional crop window and the output canvas. It is
// not safe for concurrent use, and the frame returned by Composite is
// only valid until the next call.
type Compositor struct {
	face   font.Face
	crop   image.Rectangle
	canvas *image.RGBA
}

// NewCompositor returns a Compositor that crops each still to crop
// before scaling. A zero crop disables cropping.
func NewCompositor(crop image.Rectangle) *Compositor {
	fo, _ := truetype.Parse(gomono.TTF)
	return &Compositor{
		face:   truetype.NewFace(fo, &truetype.Options{Size: fontSize}),
		crop:   crop,
		canvas: image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
	}
}

// Composite renders the still at path as the frame for the instant at:
// decode, crop if configured, scale to fill the canvas and stamp the
// label. The canvas is wiped first so nothing of the previous frame
// survives.
func (c *Compositor) Composite(path string, at time.Time) (*image.RGBA, error) {
	img, err := decode(path)
	if err != nil {
		return nil, err
	}
	if !c.crop.Empty() {
		if img, err = cropTo(img, c.crop); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	draw.Draw(c.canvas, c.canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(c.canvas, c.canvas.Bounds(), img, img.Bounds(), draw.Src, nil)
	c.label(at)
	return c.canvas, nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// cropTo cuts r out of img. The window must lie fully inside the image.
func cropTo(img image.Image, r image.Rectangle) (image.Image, error) {
	if !r.In(img.Bounds()) {
		return nil, fmt.Errorf("%w: %v outside %v", ErrCropOutOfBounds, r, img.Bounds())
	}
	if si, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return si.SubImage(r), nil
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out, nil
}

// label stamps the two-line timestamp caption, centred near the bottom
// of the canvas. Each line is drawn with offset border passes first so
// the text stays readable over cloud and sea alike.
func (c *Compositor) label(at time.Time) {
	d := &font.Drawer{Dst: c.canvas, Face: c.face}
	lineHeight := c.face.Metrics().Height.Ceil()
	lines := []string{labelHeading, at.UTC().Format(labelFormat)}
	baseY := CanvasHeight - labelMargin - lineHeight*(len(lines)-1)
	for i, line := range lines {
		left := (CanvasWidth - d.MeasureString(line).Ceil()) / 2
		y := baseY + i*lineHeight
		d.Src = image.NewUniform(borderColor)
		for dx := -2; dx < 2; dx++ {
			for dy := -2; dy < 2; dy++ {
				d.Dot = fixed.P(left-dx, y-dy)
				d.DrawString(line)
			}
		}
		d.Src = image.NewUniform(labelColor)
		d.Dot = fixed.P(left, y)
		d.DrawString(line)
	}
}
