package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/malusev998/fx-monitor/fetchers"
	"github.com/malusev998/fx-monitor/services"
	"github.com/malusev998/fx-monitor/storage"
)

func handleFetch(ctx context.Context, v *viper.Viper) error {
	config, err := getConfig(v)
	if err != nil {
		return err
	}

	fetcher, err := fetchers.NewSeriesFetcher(config.Source, config.ECB)
	if err != nil {
		return err
	}

	st, err := storage.NewStorage(config.Storage, storage.JSONConfig{
		BaseConfig: storage.BaseConfig{Dir: config.OutputDir},
	})
	if err != nil {
		return err
	}

	log.Debug().
		Str("output_dir", config.OutputDir).
		Str("url", config.ECB.URL).
		Int("pairs", len(config.Pairs)).
		Msg("Configuration loaded")

	service := services.Service{
		Fetcher:     fetcher,
		Storage:     st,
		Pairs:       config.Pairs,
		StartPeriod: config.StartPeriod,
	}

	_, err = service.Run(ctx)

	return err
}

func fetch(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch every configured pair and write the data files and manifest",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleFetch(cmd.Context(), v)
		},
	}
}
