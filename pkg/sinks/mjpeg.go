package sinks

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// MJPEG appends JPEG-compressed frames to an AVI container. It needs no
// external tooling, so it is the safe default output.
type MJPEG struct {
	aw  mjpeg.AviWriter
	buf bytes.Buffer
}

// NewMJPEG opens an AVI file at path for frames of the given size and
// frame rate.
func NewMJPEG(path string, width, height, fps int) (*MJPEG, error) {
	aw, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, err
	}
	return &MJPEG{aw: aw}, nil
}

// WriteFrame JPEG-encodes m and appends it to the container.
func (s *MJPEG) WriteFrame(m image.Image) error {
	s.buf.Reset()
	if err := jpeg.Encode(&s.buf, m, nil); err != nil {
		return err
	}
	return s.aw.AddFrame(s.buf.Bytes())
}

// Close writes the AVI index and releases the file. Subsequent calls are
// no-ops.
func (s *MJPEG) Close() error {
	if s.aw == nil {
		return nil
	}
	err := s.aw.Close()
	s.aw = nil
	return err
}
