// Package cmd contains the CLI setup and commands exposed to the user
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/lmstream/lmstream/configs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const appVersion = "0.1.0"

var ConfigFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lmstream",
	Short: "Play network audio streams through the BASS library",
	Long: `lmstream plays audio through the BASS library, either by pushing a
network stream's data into a push-mode stream or by letting BASS decode a
local file or URL itself. FLAC and Opus support is provided by the bassflac
and bassopus plugins, loaded dynamically from the configured directory.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// deferring this allows user to override config path with cli option
	cobra.OnInitialize(func() {
		log.Printf("using config file: %s", ConfigFile)
		configs.InitConfig(ConfigFile)
	})

	configDir := configs.GetConfigDir()
	defaultConfigFilePath := fmt.Sprintf("%s/lmstream.toml", configDir)
	rootCmd.PersistentFlags().StringVar(&ConfigFile, "config", defaultConfigFilePath, "config file")

	rootCmd.PersistentFlags().Int("device", -1, "output device (-1 for system default)")
	rootCmd.PersistentFlags().String("plugins", "", "directory containing codec plugins")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debugging information")

	// expose to application via viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("output.device", rootCmd.PersistentFlags().Lookup("device"))
	_ = viper.BindPFlag("plugins.dir", rootCmd.PersistentFlags().Lookup("plugins"))
}
