package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/malusev998/fx-monitor/fetchers"
)

const envPrefix = "FX_MONITOR"

// usageError marks invalid flags or configuration, as opposed to a failed run.
type usageError struct {
	err error
}

func (u usageError) Error() string {
	return u.err.Error()
}

func (u usageError) Unwrap() error {
	return u.err
}

// ExitCode maps the result of Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var usage usageError
	if errors.As(err, &usage) {
		return 2
	}

	return 1
}

func NewRootCommand(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fx-monitor",
		Short:         "ECB reference rate exporter",
		Long:          "Fetches ECB daily reference rates and writes one JSON file per currency pair plus a manifest.",
		Version:       "v1.2.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleFetch(cmd.Context(), v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("output-dir", "site/public/data", "Directory where JSON files are written")
	flags.String("start-period", "2015-01-01", "ECB startPeriod in YYYY-MM-DD format")
	flags.String("log-level", "INFO", "Log level (DEBUG, INFO, WARNING, ERROR)")
	flags.String("config", "", "Path to an optional YAML config file")

	cobra.CheckErr(v.BindPFlags(flags))

	v.SetDefault("source", "ecb")
	v.SetDefault("storage", "json")
	v.SetDefault("ecb.url", fetchers.ECBURL)
	v.SetDefault("ecb.timeout", fetchers.DefaultTimeout)
	v.SetDefault("ecb.max-retries", fetchers.DefaultMaxRetries)
	v.SetDefault("ecb.backoff", fetchers.DefaultBackoff)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})

	rootCmd.AddCommand(fetch(v))

	return rootCmd
}

// Execute runs the command line with os.Args and logs the error that ended the run, if any.
func Execute(ctx context.Context) error {
	err := NewRootCommand(viper.New()).ExecuteContext(ctx)

	if err != nil {
		log.Error().Err(err).Msg("Run failed")
	}

	return err
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err: err}
	}

	return nil
}

func initConfig(v *viper.Viper) error {
	if configFile := v.GetString("config"); configFile != "" {
		absolutePath, err := filepath.Abs(configFile)
		if err != nil {
			return usageError{err: err}
		}

		v.SetConfigFile(absolutePath)

		if err := v.ReadInConfig(); err != nil {
			return usageError{err: err}
		}
	}

	level, err := parseLogLevel(v.GetString("log-level"))
	if err != nil {
		return usageError{err: err}
	}

	setLogLevel(level)

	return nil
}
