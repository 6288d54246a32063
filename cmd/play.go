package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmstream/lmstream/configs"
	"github.com/lmstream/lmstream/internal/bass"
	"github.com/lmstream/lmstream/internal/player"
	"github.com/lmstream/lmstream/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var playCmd = &cobra.Command{
	Use:   "play <url|file>",
	Short: "Play an audio stream or file",
	Long: `Play a stream URL or a local file. URLs are fetched by lmstream and
pushed into BASS as PCM; with --direct the URL is handed to BASS to download
and decode itself, which enables the FLAC/Opus plugins for encoded streams.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if rate := viper.GetInt("output.sample-rate"); rate < 8000 || rate > 192000 {
			return fmt.Errorf("sample rate %d out of range", rate)
		}
		if chans := viper.GetInt("output.channels"); chans != 1 && chans != 2 {
			return fmt.Errorf("channel count must be 1 or 2")
		}
		return nil
	},
	Run: playStream,
}

func init() {
	playCmd.Flags().Bool("direct", false, "let BASS download and decode the URL itself")
	playCmd.Flags().Int("rate", 44100, "sample rate of the pushed PCM data")
	playCmd.Flags().Int("channels", 2, "channel count of the pushed PCM data")
	playCmd.Flags().Bool("save-device", false, "persist the chosen output device to the config file")

	_ = viper.BindPFlag("stream.direct", playCmd.Flags().Lookup("direct"))
	_ = viper.BindPFlag("output.sample-rate", playCmd.Flags().Lookup("rate"))
	_ = viper.BindPFlag("output.channels", playCmd.Flags().Lookup("channels"))

	rootCmd.AddCommand(playCmd)
}

func playStream(cmd *cobra.Command, args []string) {
	target := args[0]
	device, rate, pluginDir := viper.GetInt("output.device"),
		viper.GetInt("output.sample-rate"),
		viper.GetString("plugins.dir")

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bass.Init(device, rate, 0); err != nil {
		fmt.Println(err)
		return
	}
	defer func() {
		if err := bass.Free(); err != nil {
			log.Printf("error freeing BASS: %v", err)
		}
	}()

	if pluginDir != "" {
		plugins := bass.LoadCodecs(pluginDir)
		defer func() {
			for _, p := range plugins {
				if err := p.Free(); err != nil {
					log.Printf("error freeing plugin %s: %v", p.Path, err)
				}
			}
		}()
	}

	if saveDevice, _ := cmd.Flags().GetBool("save-device"); saveDevice {
		if err := configs.PersistDeviceToConfig(ConfigFile, device); err != nil {
			log.Printf("could not persist device to config: %v", err)
		}
	}

	isURL := strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
	var err error
	if isURL && !viper.GetBool("stream.direct") {
		err = playPush(ctx, target)
	} else {
		err = playDirect(ctx, target, isURL)
	}
	if err != nil {
		fmt.Println(err)
	}
}

// outputVolume reads the configured volume, defaulting to full rather than
// silence when the key is absent from an older config file.
func outputVolume() float64 {
	vol := viper.GetFloat64("output.volume")
	if vol <= 0 || vol > 1 {
		return 1
	}
	return vol
}

// playPush fetches the target and feeds its data into a push-mode stream.
// The body must be raw PCM matching the configured rate and channel count;
// LMS does the transcoding server-side.
func playPush(ctx context.Context, target string) error {
	body, contentType, err := source.Open(ctx, target)
	if err != nil {
		return err
	}
	defer body.Close()
	if contentType != "" {
		log.Printf("stream content type: %s", contentType)
	}

	stream, err := bass.StreamCreatePush(
		viper.GetInt("output.sample-rate"),
		viper.GetInt("output.channels"),
		0,
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := stream.Free(); err != nil {
			log.Printf("error freeing stream: %v", err)
		}
	}()

	if err := stream.SetVolume(outputVolume()); err != nil {
		log.Printf("error setting volume: %v", err)
	}

	cfg := player.DefaultConfig()
	if kb := viper.GetInt("stream.prebuffer-kb"); kb > 0 {
		cfg.Prebuffer = kb << 10
	}
	return player.New(stream, cfg).Run(ctx, body)
}

// playDirect lets BASS open the target itself, pulling data as it decodes.
// Plugin codecs apply here: a FLAC or Opus file needs bassflac/bassopus
// loaded.
func playDirect(ctx context.Context, target string, isURL bool) error {
	var (
		stream *bass.Stream
		err    error
	)
	if isURL {
		stream, err = bass.StreamCreateURL(target, bass.StreamBlock)
	} else {
		stream, err = bass.StreamCreateFile(target, 0)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := stream.Free(); err != nil {
			log.Printf("error freeing stream: %v", err)
		}
	}()

	if err := stream.SetVolume(outputVolume()); err != nil {
		log.Printf("error setting volume: %v", err)
	}
	if err := stream.Play(false); err != nil {
		return err
	}

	debug := viper.GetBool("debug")
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return stream.Stop()
		case <-ticker.C:
			status := stream.Status()
			if status == bass.ChannelStatusStopped {
				return nil
			}
			if debug {
				if pos, err := stream.Position(); err == nil {
					log.Printf("position %.1fs (%s)", pos, status)
				}
			}
		}
	}
}
