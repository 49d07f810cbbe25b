// Package sinks streams composed frames into video containers.
package sinks

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFileFormat is returned when the output extension maps to
// no known container.
var ErrUnsupportedFileFormat = errors.New("unsupported file format")

// FrameSink is an append-only video output. WriteFrame adds exactly one
// frame after those already written; frames are never reordered or
// dropped. Close finalizes the container and may be called more than
// once. A sink that failed mid-write must still be closed, leaving
// whatever was flushed so far.
type FrameSink interface {
	WriteFrame(m image.Image) error
	Close() error
}

// ForFile selects a sink from the output file's extension.
func ForFile(path string, width, height, fps int) (FrameSink, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".avi", ".mjpeg":
		return NewMJPEG(path, width, height, fps)
	case ".mp4", ".mkv", ".mov":
		return NewFFmpeg(path, fps)
	case ".gif":
		return NewGIF(path, fps), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, ext)
	}
}
