package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/infrastructure/bootstrap"
	"tripboard-service/internal/infrastructure/config"
	"tripboard-service/pkg/logger"

	"github.com/spf13/cobra"
)

// withApp loads config, wires the services and runs fn with them
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	app, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close(context.Background())

	return fn(ctx, app)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func statsCmd() *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "print user and trip statistics",
		Example: `tripctl stats --full`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				if full {
					dashboard, err := app.Dashboard.GetDashboard(ctx)
					if err != nil {
						return err
					}
					return printJSON(dashboard)
				}
				stats, err := app.Dashboard.ComputeUserAndTripStats(ctx)
				if err != nil {
					return err
				}
				return printJSON(stats)
			})
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print every dashboard panel")
	return cmd
}

func generateCmd() *cobra.Command {
	var req entity.TripRequest
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "generate and store a trip",
		Example: `tripctl generate --country Japan --days 5 --style Luxury --interest "Food & Culinary" --budget Premium --group Couple --user 6650f0c2a1b2c3d4e5f60718`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				id, err := app.Generator.GenerateTrip(ctx, &req)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, id)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&req.Country, "country", "", "destination country")
	cmd.Flags().IntVar(&req.NumberOfDays, "days", 0, "trip length in days (1-30)")
	cmd.Flags().StringVar(&req.TravelStyle, "style", "", "travel style")
	cmd.Flags().StringVar(&req.Interest, "interest", "", "main interest")
	cmd.Flags().StringVar(&req.Budget, "budget", "", "budget level")
	cmd.Flags().StringVar(&req.GroupType, "group", "", "group type")
	cmd.Flags().StringVar(&req.UserID, "user", "", "id of the requesting user")
	return cmd
}

func countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "print the country reference list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				countries, live := app.Countries.Countries(ctx)
				if !live {
					fmt.Fprintln(os.Stderr, "warning: using offline country list")
				}
				return printJSON(countries)
			})
		},
	}
}
