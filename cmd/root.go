package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/gamejolt/config"
	"github.com/s0up4200/gamejolt/filter"
	"github.com/s0up4200/gamejolt/gamejolt"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *gamejolt.Client
	filters  *filter.Manager
	appVer   = "dev"
	appBuilt = "unknown"

	// Persistent flags
	outputFormat string
	usernameFlag string
	tokenFlag    string
)

// skipInit marks commands that run without configuration
const skipInit = "skip-init"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gjctl",
	Short: "Talk to the Game Jolt game API from the command line",
	Long: `gjctl signs and sends requests to the Game Jolt game API for one game.

It covers users, sessions, trophies, the data store, scores, friends and
server time. The game ID and private key come from config.yaml or the
GJCTL_ environment, the player from user.username/user.token or --username/--token.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information for the version and update commands
func SetVersion(version, buildTime string) {
	appVer = version
	appBuilt = buildTime
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
	rootCmd.PersistentFlags().StringVar(&usernameFlag, "username", "", "player username (overrides user.username)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "player game token (overrides user.token)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table/json)")
}

// initializeApp loads the configuration and builds the logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipInit] == "true" {
		return nil
	}

	if outputFormat != "table" && outputFormat != "json" {
		return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging, os.Stderr)

	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create Game Jolt client: %w", err)
	}

	filters = filter.NewManager()
	for name, expr := range cfg.Filter.Presets {
		if err := filters.RegisterPreset(name, expr); err != nil {
			return err
		}
	}

	logger.Debug().
		Str("game_id", cfg.GameJolt.GameID).
		Str("api_version", cfg.GameJolt.APIVersion).
		Msg("Game Jolt client ready")

	return nil
}

// newClient builds a client from the configuration
func newClient(cfg *config.Config, logger zerolog.Logger) (*gamejolt.Client, error) {
	return gamejolt.NewClient(cfg.GameJolt.GameID, cfg.GameJolt.PrivateKey, logger,
		gamejolt.WithBaseURL(cfg.GameJolt.BaseURL),
		gamejolt.WithVersion(cfg.GameJolt.APIVersion),
		gamejolt.WithFormat(cfg.GameJolt.Format),
		gamejolt.WithTimeout(cfg.HTTP.Timeout),
		gamejolt.WithMaxRetries(cfg.HTTP.MaxRetries),
		gamejolt.WithRateLimit(cfg.HTTP.RateLimit),
		gamejolt.WithUserAgent(cfg.HTTP.UserAgent+"/"+appVer),
	)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// isTerminal reports whether out is an interactive terminal
func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// currentUser returns the configured player, with flags taking precedence
func currentUser() *gamejolt.User {
	username, token := cfg.User.Username, cfg.User.Token
	if usernameFlag != "" {
		username = usernameFlag
	}
	if tokenFlag != "" {
		token = tokenFlag
	}
	if username == "" && token == "" {
		return nil
	}
	return gamejolt.NewUser(username, token)
}

// requireUser returns the configured player or explains how to set one
func requireUser() (*gamejolt.User, error) {
	user := currentUser()
	if user == nil || user.Username == "" || !user.HasToken() {
		return nil, fmt.Errorf("this command needs a player: set user.username and user.token or pass --username and --token")
	}
	return user, nil
}
