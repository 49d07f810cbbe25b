package main

import (
	"errors"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type stubCapturer struct {
	img image.Image
	err error
}

func (s *stubCapturer) Capture() (image.Image, error) { return s.img, s.err }

func TestSaveStill(t *testing.T) {
	dir := t.TempDir()
	stub := &stubCapturer{img: image.NewRGBA(image.Rect(0, 0, 8, 8))}
	at := time.Date(2024, time.January, 1, 8, 30, 0, 0, time.UTC)

	name, err := saveStill(stub, dir, at)
	if err != nil {
		t.Fatalf("saveStill: %v", err)
	}
	if name != "202401010830.jpg" {
		t.Errorf("name = %q, want 202401010830.jpg", name)
	}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("still not written: %v", err)
	}
	defer f.Close()
	if _, err := jpeg.Decode(f); err != nil {
		t.Errorf("stored still is not a JPEG: %v", err)
	}

	if target, err := os.Readlink(filepath.Join(dir, "latest")); err != nil || target != name {
		t.Errorf("latest -> (%q, %v), want %q", target, err, name)
	}

	// The next capture repoints the symlink.
	name2, err := saveStill(stub, dir, at.Add(time.Minute))
	if err != nil {
		t.Fatalf("second saveStill: %v", err)
	}
	if target, err := os.Readlink(filepath.Join(dir, "latest")); err != nil || target != name2 {
		t.Errorf("latest -> (%q, %v), want %q", target, err, name2)
	}
}

func TestSaveStillCaptureFailure(t *testing.T) {
	stub := &stubCapturer{err: errors.New("device gone")}
	if _, err := saveStill(stub, t.TempDir(), time.Now()); err == nil {
		t.Fatal("capture failure must propagate")
	}
}
