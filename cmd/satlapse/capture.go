package main

import (
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/michaelmcallister/satlapse/pkg/capturers/gocvcapture"
	"github.com/michaelmcallister/satlapse/pkg/timeindex"
)

var (
	deviceID        int
	captureInterval time.Duration
	captureDir      string
)

// ImageCapturer defines the contract for capturing an image from a video device.
type ImageCapturer interface {
	Capture() (image.Image, error)
}

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture stills from a video device into an image directory",
	Long: `Capture grabs a frame from the device every interval and stores it
named after the capture minute, ready for render to index. Runs until
interrupted; the first capture failure stops it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCapture(gocvcapture.New(deviceID))
	},
}

func init() {
	captureCmd.Flags().IntVar(&deviceID, "device", 0, "0 based index of the capture device to use")
	captureCmd.Flags().DurationVar(&captureInterval, "interval", time.Minute, "how often to capture a still")
	captureCmd.Flags().StringVar(&captureDir, "images", ".", "directory to store stills in")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(capturer ImageCapturer) error {
	ticker := time.NewTicker(captureInterval)
	defer ticker.Stop()
	for range ticker.C {
		name, err := saveStill(capturer, captureDir, time.Now())
		if err != nil {
			return err
		}
		log.Info("captured", "still", name)
	}
	return nil
}

// saveStill grabs one frame and stores it under the minute stamp, then
// repoints the latest symlink at it. The symlink is extensionless so the
// corpus scan never picks it up.
func saveStill(capturer ImageCapturer, dir string, at time.Time) (string, error) {
	img, err := capturer.Capture()
	if err != nil {
		return "", err
	}
	name := timeindex.Stamp(at) + timeindex.Ext
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := jpeg.Encode(f, img, nil); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	latest := filepath.Join(dir, "latest")
	// Remove existing symlink if there.
	if _, err := os.Lstat(latest); err == nil {
		os.Remove(latest)
	}
	return name, os.Symlink(name, latest)
}
