// Package cli defines the command-line interface for rpnctl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpnkit/rpnctl/internal/config"
	"github.com/rpnkit/rpnctl/internal/logging"
	"github.com/rpnkit/rpnctl/internal/postfix"
)

const (
	// defaultConfigPath is the default path to the rpnctl configuration file.
	defaultConfigPath = "rpnctl.yaml"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	Capacity   int
	LogLevel   logging.Level
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		ConfigPath: defaultConfigPath,
		Capacity:   postfix.DefaultCapacity,
		LogLevel:   logging.LevelInfo,
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rpnctl",
		Short: "rpnctl converts infix arithmetic expressions to postfix notation",
		Long: "rpnctl converts arithmetic expressions from infix to postfix (reverse-Polish) " +
			"notation. Operands are single lowercase letters, operators are + - * /, and " +
			"round brackets group subexpressions.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			levelValue := cmd.Flag("log-level").Value.String()
			if !cmd.Flags().Changed("log-level") {
				var envDefaults baseEnv
				if err := parseEnv(&envDefaults); err != nil {
					return err
				}
				if envDefaults.LogLevel != "" {
					levelValue = envDefaults.LogLevel
				}
			}
			level := logging.ParseLevel(levelValue)
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", defaultConfigPath, "Path to rpnctl.yaml configuration file")
	cmd.PersistentFlags().IntVar(&opts.Capacity, "capacity", postfix.DefaultCapacity, "Operator stack capacity for conversions")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newConvertCommand(opts),
		newBatchCommand(opts),
	)

	return cmd
}

// resolveConfig merges the config file, RPNCTL_* env vars, and flags into the
// effective configuration. Flags win over env vars, env vars over the file.
func resolveConfig(cmd *cobra.Command, opts *Options) (config.Config, error) {
	var envDefaults baseEnv
	if err := parseEnv(&envDefaults); err != nil {
		return config.Config{}, err
	}

	path := opts.ConfigPath
	if !cmd.Flags().Changed("config") && envDefaults.ConfigPath != "" {
		path = envDefaults.ConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if envDefaults.Capacity > 0 {
		cfg.Capacity = envDefaults.Capacity
	}
	if envDefaults.LogLevel != "" {
		cfg.LogLevel = envDefaults.LogLevel
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Capacity = opts.Capacity
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = postfix.DefaultCapacity
	}
	return cfg, nil
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
