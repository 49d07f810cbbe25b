// Command satlapse turns a directory of timestamp-named satellite
// stills into a timelapse video.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "satlapse",
	Short:         "Render timestamp-named satellite stills into a timelapse",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every frame as it is written")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("run failed", "error", err)
		os.Exit(1)
	}
}
