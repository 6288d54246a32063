package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lmstream/lmstream/internal/bass"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Show which codec plugins are available",
	Args:  cobra.MaximumNArgs(0),
	Run:   showPlugins,
}

func init() {
	rootCmd.AddCommand(pluginsCmd)
}

func showPlugins(_ *cobra.Command, _ []string) {
	dir := viper.GetString("plugins.dir")
	if dir == "" {
		fmt.Printf("no plugin directory configured. set plugins.dir in %s\n", ConfigFile)
		return
	}

	for _, lib := range bass.CodecLibraries() {
		path := filepath.Join(dir, lib)
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("%s: not found\n", path)
			continue
		}
		fmt.Printf("%s: present\n", path)
	}
}
