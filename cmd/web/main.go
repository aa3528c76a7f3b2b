package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	comparehandlers "github.com/amaranz/budget-atlas/pkg/handlers/compare"
	"github.com/amaranz/budget-atlas/pkg/server"
	"github.com/amaranz/budget-atlas/pkg/services/compare"
	"github.com/amaranz/budget-atlas/pkg/services/config"
	storevtex "github.com/amaranz/budget-atlas/pkg/store/vtex"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the budget comparison web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (environment variables take precedence)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	controller := buildController(cfg, logger)

	api := server.NewWebAPI(server.Config{
		Addr: cfg.Addr,
		Dependencies: server.Dependencies{
			Compare: controller,
			Logger:  logger,
		},
	})

	return api.Start()
}

func buildController(cfg *config.Config, logger zerolog.Logger) comparehandlers.Service {
	settings := settingsFromConfig(cfg)

	if cfg.UseMockData {
		logger.Warn().Msg("mock data enabled, serving canned documents")
		return compare.NewController(
			storevtex.MockCheckoutStore{},
			storevtex.MockBudgetStore{},
			storevtex.MockCatalogStore{},
			settings,
		)
	}

	client := storevtex.NewClient(cfg.VTEX)
	return compare.NewController(
		storevtex.NewCheckoutClient(client),
		storevtex.NewBudgetClient(client, cfg.VTEX.MasterDataEntity),
		storevtex.NewCatalogClient(client),
		settings,
	)
}

func settingsFromConfig(cfg *config.Config) compare.Settings {
	settings := compare.DefaultSettings()
	if cfg.Thresholds.PercentagePct > 0 {
		settings.PercentageThreshold = cfg.Thresholds.PercentagePct
	}
	if cfg.Thresholds.Absolute > 0 {
		settings.AbsoluteThreshold = cfg.Thresholds.Absolute
	}
	if len(cfg.WatchTags) > 0 {
		settings.WatchTags = cfg.WatchTags
	}
	return settings
}
