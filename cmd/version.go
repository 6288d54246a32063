package cmd

import (
	"fmt"

	"github.com/lmstream/lmstream/internal/bass"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print lmstream and BASS library versions",
	Args:  cobra.MaximumNArgs(0),
	Run:   printVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(_ *cobra.Command, _ []string) {
	fmt.Printf("lmstream %s\n", appVersion)
	fmt.Printf("BASS %s\n", bass.Version())
}
