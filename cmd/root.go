// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vidembed/internal/config"
	"vidembed/internal/ui"
	"vidembed/internal/video"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagJSON    bool
	flagDebug   bool
	flagNoColor bool
	flagSplitID bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

// codec is built from cfg once it is loaded.
var codec *video.Codec

var rootCmd = &cobra.Command{
	Use:   "vidembed",
	Short: "Detect, parse and build video embed URLs",
	Long: `vidembed classifies video URLs and page elements by hosting provider
(YouTube, Vimeo, SproutVideo or a plain video file), extracts ids and
playback flags, and rebuilds canonical embed URLs.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagSplitID, "split-ids", false, "Read SproutVideo ids from the last two path segments")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(traitsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vidembed", Version)
	},
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	if flagSplitID {
		cfg.SplitSproutVideoIDs = true
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetPrefix("[vidembed] ")
	} else {
		log.SetFlags(0)
	}

	codec = cfg.Codec()
	debugf("providers: %v", codec.Providers())
	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// styles returns colored styles only when stdout is a terminal and color is
// enabled.
func styles() ui.Styles {
	if cfg.Color && isTerminal(os.Stdout) {
		return ui.DefaultStyles()
	}
	return ui.PlainStyles()
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
