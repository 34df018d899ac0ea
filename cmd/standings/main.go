package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"f1-standings-service/internal/adapters/repositories"
	"f1-standings-service/internal/adapters/static"
	"f1-standings-service/internal/app"
	"f1-standings-service/internal/config"
	"f1-standings-service/internal/platform/obs"
	"f1-standings-service/internal/services"
	"f1-standings-service/internal/view"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errLoadFailed = errors.New("standings: load failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errLoadFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		source   string
		apiURL   string
		champion bool
		noColor  bool
		seedPath string
		timeout  time.Duration
	)

	root := &cobra.Command{
		Use:           "standings",
		Short:         "Print the drivers' championship standings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Load the standings and print them as a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := obs.SetupLogging(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}

			if cmd.Flags().Changed("source") {
				cfg.DataSource = source
			}
			if cmd.Flags().Changed("api-url") {
				cfg.APIURL = apiURL
			}
			if cmd.Flags().Changed("champion") {
				cfg.ChampionEnabled = champion
			}
			color.NoColor = color.NoColor || noColor

			loader, closeFn, err := buildLoader(cfg, seedPath)
			if err != nil {
				return err
			}
			defer closeFn()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			var st view.State
			standings, err := loader.Load(ctx)
			if err != nil {
				logrus.WithError(err).Debug("load failed")
				st.Err = err.Error()
			} else {
				st.Standings = standings
			}

			if err := view.WriteText(cmd.OutOrStdout(), st); err != nil {
				return err
			}
			if st.Err != "" {
				// already printed as the error state
				return errLoadFailed
			}
			return nil
		},
	}

	show.Flags().StringVar(&source, "source", config.SourceStatic, "data source: static, sql or remote")
	show.Flags().StringVar(&apiURL, "api-url", config.DefaultAPIURL, "classification API base URL (remote source)")
	show.Flags().BoolVar(&champion, "champion", false, "enable the RUBINHO_CAMPEAO champion flag")
	show.Flags().BoolVar(&noColor, "no-color", false, "disable tier colors")
	show.Flags().StringVar(&seedPath, "seed", "", "print standings from a .json/.yaml seed file instead of --source")
	show.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "load timeout")

	root.AddCommand(show)
	return root
}

// buildLoader serves a seed file from memory when one is given, otherwise the configured source.
func buildLoader(cfg *config.Config, seedPath string) (*services.Classification, func(), error) {
	if seedPath == "" {
		return app.BuildClassification(cfg)
	}

	rows, err := repositories.LoadSeedFile(seedPath)
	if err != nil {
		return nil, nil, err
	}

	return &services.Classification{
		Source:          static.NewFixedSource(rows),
		SourceName:      config.SourceStatic,
		ApplyFlag:       true,
		ChampionEnabled: cfg.ChampionEnabled,
	}, func() {}, nil
}
