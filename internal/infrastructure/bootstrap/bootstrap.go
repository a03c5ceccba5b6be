package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"tripboard-service/internal/domain/repository"
	"tripboard-service/internal/infrastructure/config"
	"tripboard-service/internal/infrastructure/oauth"
	"tripboard-service/internal/infrastructure/persistence"
	"tripboard-service/internal/infrastructure/session"
	"tripboard-service/internal/interface/google"
	"tripboard-service/internal/interface/handler"
	repo "tripboard-service/internal/interface/repository"
	"tripboard-service/internal/usecase"
	"tripboard-service/pkg/clock"
	"tripboard-service/pkg/logger"
	"tripboard-service/pkg/metrics"
	"tripboard-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
)

// App holds the wired services of the process
type App struct {
	Generator *usecase.TripGenerator
	Trips     *usecase.TripService
	Users     *usecase.UserService
	Dashboard *usecase.DashboardService
	Countries *usecase.CountryService
	Auth      *usecase.AuthService
	Handler   *handler.Handler
	Metrics   *metrics.Metrics

	closers []func(context.Context) error
}

type stores struct {
	trips repository.TripRepository
	users repository.UserRepository
}

// Build connects storage and wires every service from cfg
func Build(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{
		Metrics: metrics.NewMetrics("tripboard", prometheus.DefaultRegisterer),
	}

	st, err := app.openStores(ctx, cfg, log)
	if err != nil {
		return nil, app.abort(ctx, err)
	}

	var textGen repository.TextGenerationRepository
	if cfg.TextGenerationConfigured() {
		textGen, err = repo.NewGeminiRepository(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL, log.With("component", "gemini"))
		if err != nil {
			return nil, app.abort(ctx, err)
		}
	} else {
		log.Warn("GEMINI_API_KEY is not configured; trip generation will fail")
	}
	images := repo.NewUnsplashRepository(cfg.UnsplashBaseURL, cfg.UnsplashAccessKey, log.With("component", "unsplash"))
	countrySource := repo.NewRestCountriesRepository(cfg.CountriesAPIURL, log.With("component", "restcountries"))

	clk := clock.System{}
	parser := utils.NewTripParser(log.With("component", "trip-parser"))

	app.Generator = usecase.NewTripGenerator(st.trips, textGen, images, app.Metrics, log.With("component", "trip-generator"),
		usecase.WithModel(cfg.GeminiModel),
		usecase.WithRetryPolicy(usecase.RetryPolicy{
			MaxRetries: uint64(max(cfg.GenerationMaxRetries, 0)),
			BaseDelay:  cfg.GenerationRetryDelay,
		}),
	)
	app.Trips = usecase.NewTripService(st.trips, parser, log.With("component", "trips"))
	app.Users = usecase.NewUserService(st.users, st.trips, clk, log.With("component", "users"))
	app.Dashboard = usecase.NewDashboardService(st.users, st.trips, app.Trips, app.Users, parser, clk, log.With("component", "dashboard"))
	app.Countries = usecase.NewCountryService(countrySource, app.Metrics, log.With("component", "countries"))

	googleOAuth := oauth.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, log.With("component", "oauth"))
	app.Auth = usecase.NewAuthService(
		map[string]repository.IdentityRepository{
			"google": google.NewIdentityRepository(googleOAuth, log.With("component", "google-identity")),
		},
		session.NewManager(cfg.SessionSecret, cfg.SessionTTL),
		app.Users,
		cfg.CORSAllowedOrigins,
		log.With("component", "auth"),
	)

	app.Handler = handler.New(handler.Deps{
		Generator: app.Generator,
		Trips:     app.Trips,
		Dashboard: app.Dashboard,
		Users:     app.Users,
		Countries: app.Countries,
		Auth:      app.Auth,
		Cookie: handler.CookieConfig{
			Name:   cfg.SessionCookie,
			Secure: cfg.SecureCookies,
			TTL:    cfg.SessionTTL,
		},
		SignInURL: cfg.SignInURL,
		Logger:    log.With("component", "http"),
	})

	return app, nil
}

func (a *App) openStores(ctx context.Context, cfg *config.Config, log logger.Logger) (*stores, error) {
	switch cfg.StorageBackend {
	case config.StorageMongo:
		log.Info("Connecting to MongoDB", "database", cfg.MongoDB)
		client, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)

		db := persistence.GetDatabase(client, cfg.MongoDB)
		return &stores{
			trips: repo.NewMongoTripRepository(db, cfg.TripsCollection),
			users: repo.NewMongoUserRepository(db, cfg.UsersCollection),
		}, nil

	case config.StoragePostgres:
		log.Info("Connecting to PostgreSQL")
		db, err := persistence.NewPostgresDB(cfg.PostgresURI)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return persistence.ClosePostgresDB(db) })

		if err := repo.MigrateGorm(db); err != nil {
			return nil, fmt.Errorf("failed to migrate PostgreSQL schema: %w", err)
		}
		return &stores{
			trips: repo.NewGormTripRepository(db),
			users: repo.NewGormUserRepository(db),
		}, nil

	case config.StorageMemory:
		log.Warn("Using in-memory storage; data is lost on restart")
		return &stores{
			trips: repo.NewMemoryTripRepository(),
			users: repo.NewMemoryUserRepository(),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// abort releases whatever was opened before a failed Build and returns err
func (a *App) abort(ctx context.Context, err error) error {
	if closeErr := a.Close(ctx); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

// Close releases storage connections
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
