package sinks

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// FFmpeg pipes frames into an ffmpeg child process that encodes H.264.
// Frames travel over stdin as a PNG stream, so nothing is staged on
// disk. Requires the ffmpeg binary on PATH.
type FFmpeg struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	closed bool
}

// NewFFmpeg starts an encoder writing to path at the given frame rate.
func NewFFmpeg(path string, fps int) (*FFmpeg, error) {
	bin, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}
	args := []string{
		"-y",
		"-f", "image2pipe",
		"-framerate", strconv.Itoa(fps),
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov":
		args = append(args, "-movflags", "+faststart")
	}
	args = append(args, path)

	s := &FFmpeg{cmd: exec.Command(bin, args...)}
	s.cmd.Stderr = &s.stderr
	if s.stdin, err = s.cmd.StdinPipe(); err != nil {
		return nil, err
	}
	if err := s.cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}
	return s, nil
}

// WriteFrame sends m down the encoder's stdin. A write failure usually
// means the encoder died; Close surfaces its stderr.
func (s *FFmpeg) WriteFrame(m image.Image) error {
	if err := png.Encode(s.stdin, m); err != nil {
		return fmt.Errorf("pipe frame to ffmpeg: %w", err)
	}
	return nil
}

// Close signals end of input and waits for the encoder to finish the
// container. Subsequent calls are no-ops.
func (s *FFmpeg) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	closeErr := s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, strings.TrimSpace(s.stderr.String()))
	}
	return closeErr
}
