// Package main provides the entry point for the banglaghori CLI application.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/banglaghori/banglaghori/internal/audio"
	"github.com/banglaghori/banglaghori/internal/clock"
	"github.com/banglaghori/banglaghori/internal/speech"
	"github.com/banglaghori/banglaghori/internal/speech/espeak"
	"github.com/banglaghori/banglaghori/internal/speech/mock"
	"github.com/banglaghori/banglaghori/ui"
	"github.com/banglaghori/banglaghori/utils"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	configFile string
	voiceName  string
	rate       float64
	engineName string

	rootCmd = &cobra.Command{
		Use:   "banglaghori",
		Short: "A talking Bengali clock for your terminal",
		Long: paragraph(
			fmt.Sprintf("\nShow the current time and date in Bengali, %s.", keyword("spoken out loud")),
		),
		SilenceErrors: false,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOptions(cmd)
		},
		RunE: func(*cobra.Command, []string) error {
			return runTUI()
		},
	}
)

func validateOptions(cmd *cobra.Command) error {
	// grab config values from Viper
	voiceName = viper.GetString("voice")
	rate = viper.GetFloat64("rate")
	engineName = viper.GetString("engine")

	if rate < 0.1 || rate > 3.0 {
		return fmt.Errorf("rate must be between 0.1 and 3.0, got %.2f", rate)
	}

	switch engineName {
	case "espeak", "mock":
	default:
		return fmt.Errorf("unknown speech engine %q (supported: espeak, mock)", engineName)
	}

	if wpm := viper.GetInt("espeak.words_per_minute"); wpm != 0 && (wpm < 80 || wpm > 450) {
		return fmt.Errorf("espeak words_per_minute must be between 80 and 450, got %d", wpm)
	}
	return nil
}

// buildAnnouncer assembles the configured engine, its audio output and the
// announcer that drives them.
func buildAnnouncer() (*speech.Announcer, error) {
	var engine speech.Engine

	switch engineName {
	case "mock":
		eng := mock.New()
		eng.SetAutoComplete(2 * time.Second)
		engine = eng

	default:
		player, err := audio.NewPlayer(audio.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("unable to open audio output: %w", err)
		}
		engine, err = espeak.New(espeak.Config{
			Binary:         utils.ExpandPath(viper.GetString("espeak.binary")),
			DataDir:        utils.ExpandPath(viper.GetString("espeak.data_dir")),
			WordsPerMinute: viper.GetInt("espeak.words_per_minute"),
		}, player)
		if err != nil {
			_ = player.Close()
			return nil, err
		}
	}

	opts := []speech.Option{speech.WithRate(rate)}
	if voiceName != "" {
		opts = append(opts, speech.WithPreferredVoice(voiceName))
	}
	return speech.New(engine, clock.System{}, opts...), nil
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("standard output is not a terminal (try `banglaghori say`)")
	}

	// Read environment to get debugging stuff
	cfg, err := env.ParseAs[ui.Config]()
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}
	cfg.Voice = voiceName
	cfg.Rate = rate
	cfg.Engine = engineName

	announcer, err := buildAnnouncer()
	if err != nil {
		return err
	}
	holder := clock.NewHolder(clock.System{}, time.Second)

	// Run Bubble Tea program
	if _, err := ui.NewProgram(cfg, announcer, holder).Run(); err != nil {
		holder.Stop()
		_ = announcer.Close()
		return fmt.Errorf("unable to run tui program: %w", err)
	}
	return nil
}

func main() {
	closer, err := setupLog()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		_ = closer()
		os.Exit(1)
	}
	_ = closer()
}

func init() {
	tryLoadConfigFromDefaultPlaces()
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default %s)", viper.GetViper().ConfigFileUsed()))
	rootCmd.PersistentFlags().StringVarP(&voiceName, "voice", "v", "", "preferred voice name (fuzzy-matched against the inventory)")
	rootCmd.PersistentFlags().Float64VarP(&rate, "rate", "r", speech.DefaultRate, "speech rate multiplier")
	rootCmd.PersistentFlags().StringVarP(&engineName, "engine", "e", "espeak", "speech engine (espeak or mock)")

	// Config bindings
	_ = viper.BindPFlag("voice", rootCmd.PersistentFlags().Lookup("voice"))
	_ = viper.BindPFlag("rate", rootCmd.PersistentFlags().Lookup("rate"))
	_ = viper.BindPFlag("engine", rootCmd.PersistentFlags().Lookup("engine"))

	viper.SetDefault("voice", "")
	viper.SetDefault("rate", speech.DefaultRate)
	viper.SetDefault("engine", "espeak")
	viper.SetDefault("espeak.binary", "")
	viper.SetDefault("espeak.data_dir", "")
	viper.SetDefault("espeak.words_per_minute", 0)

	rootCmd.AddCommand(sayCmd, configCmd, manCmd)
}

func tryLoadConfigFromDefaultPlaces() {
	scope := gap.NewScope(gap.User, "banglaghori")
	dirs, err := scope.ConfigDirs()
	if err != nil {
		fmt.Println("Could not load find configuration directory.")
		os.Exit(1)
	}

	if c := os.Getenv("XDG_CONFIG_HOME"); c != "" {
		dirs = append([]string{filepath.Join(c, "banglaghori")}, dirs...)
	}

	if c := os.Getenv("BANGLAGHORI_CONFIG_HOME"); c != "" {
		dirs = append([]string{c}, dirs...)
	}

	for _, v := range dirs {
		viper.AddConfigPath(v)
	}

	viper.SetConfigName("banglaghori")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("banglaghori")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warn("Could not parse configuration file", "err", err)
		}
	}

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
		viper.WatchConfig()
		return
	}

	if viper.ConfigFileUsed() == "" {
		configFile = filepath.Join(dirs[0], "banglaghori.yml")
	}
	if err := ensureConfigFile(); err != nil {
		log.Error("Could not create default configuration", "error", err)
	}
}
