// Package cmd contains all CLI commands for the phonics tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/phonics/internal/cmudict"
	"github.com/f3rmion/phonics/internal/config"
	"github.com/f3rmion/phonics/internal/phonics"
	"github.com/f3rmion/phonics/internal/tui"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "phonics",
	Short: "English word pronunciation and syllable analyzer",
	Long: `phonics decomposes English words into pronunciation-consistent
syllables with IPA transcriptions, plus a phonics-level "natural reading"
breakdown of graphemes.

Pronunciations come from the CMU pronouncing dictionary; syllable
boundaries come from a layered rule engine (affix recognition, consonant
clusters, vowel intervals) that always reconstructs the original spelling.

Running 'phonics' without arguments launches the interactive lookup.`,
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/phonics)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "phonics"))
	}

	viper.SetEnvPrefix("PHONICS")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// newLogger builds the CLI logger; --verbose raises the level to debug.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadService loads config, dictionary, and special cases, and builds the
// analysis service. A missing dictionary is fatal: nothing can be served
// without it.
func loadService(log zerolog.Logger) (*phonics.Service, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, err
	}

	dict := cmudict.New()
	loaded := false
	for _, path := range dictionaryPaths(cfg) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := dict.LoadFile(path); err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Int("words", dict.Size()).Msg("dictionary loaded")
		loaded = true
		break
	}
	if !loaded {
		return nil, fmt.Errorf("no pronunciation dictionary found; run 'phonics compile' or set 'dictionary' in %s/config.yaml", getConfigDir())
	}

	special := phonics.NewRegistry()
	if cfg.SpecialCases != "" {
		if err := special.LoadFile(cfg.SpecialCases); err != nil {
			return nil, err
		}
	}

	return phonics.NewService(dict, special, log), nil
}

// dictionaryPaths lists candidate dictionary locations, configured path
// first.
func dictionaryPaths(cfg *config.Config) []string {
	var paths []string
	if cfg.Dictionary != "" {
		paths = append(paths, cfg.Dictionary)
	}
	paths = append(paths,
		filepath.Join(getConfigDir(), "cmudict.db"),
		filepath.Join(getConfigDir(), "cmudict.dict"),
		"data/cmudict.db",
		"data/cmudict.dict",
	)
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), "data", "cmudict.dict"))
	}
	return paths
}

// serverListen returns the configured listen address, overridable by flag.
func serverListen(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return "", err
	}
	return cfg.Listen, nil
}

// runInteractive launches the interactive lookup TUI.
func runInteractive(cmd *cobra.Command, args []string) error {
	log := newLogger().Level(zerolog.Disabled) // the TUI owns the terminal
	svc, err := loadService(log)
	if err != nil {
		return err
	}
	return tui.Run(svc)
}
