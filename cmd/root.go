package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/steamworkshop/config"
	"github.com/s0up4200/steamworkshop/workshop"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  workshop.API

	// Global flag overrides
	apiKey   string
	proxyURL string
	logLevel string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "workshop",
	Short: "Query the Steam Workshop from the command line",
	Long: `workshop is a CLI for the Steam Web API's Workshop endpoints. It can search
published files, fetch file and collection details, and resolve player summaries.

An API key is required for search and player lookups. Searches can optionally be
routed through a relay that holds the key on your behalf.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Steam Web API key (overrides steam.api_key)")
	rootCmd.PersistentFlags().StringVar(&proxyURL, "proxy-url", "", "search relay URL (overrides steam.proxy_url)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// initializeApp loads the configuration and creates the Workshop client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("api-key") {
		cfg.Steam.APIKey = apiKey
	}
	if cmd.Flags().Changed("proxy-url") {
		cfg.Steam.ProxyURL = proxyURL
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	logger = setupLogger(cfg.Logging)
	c := newWorkshopClient(cfg, logger)
	client = c

	logger.Debug().
		Str("base_url", c.BaseURL()).
		Bool("api_key", cfg.Steam.APIKey != "").
		Bool("proxy", cfg.Steam.ProxyURL != "").
		Dur("timeout", cfg.HTTP.Timeout).
		Msg("Workshop client ready")

	return nil
}

func newWorkshopClient(cfg *config.Config, logger zerolog.Logger) *workshop.Client {
	opts := []workshop.Option{
		workshop.WithLogger(logger.With().Str("component", "workshop").Logger()),
		workshop.WithBaseURL(cfg.Steam.BaseURL),
	}
	if cfg.Steam.APIKey != "" {
		opts = append(opts, workshop.WithAPIKey(cfg.Steam.APIKey))
	}
	if cfg.Steam.ProxyURL != "" {
		opts = append(opts, workshop.WithProxyURL(cfg.Steam.ProxyURL))
	}

	return workshop.NewClient(&http.Client{Timeout: cfg.HTTP.Timeout}, opts...)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only when stderr is a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// skipConfig replaces initializeApp for commands that never talk to Steam.
func skipConfig(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
	return nil
}
