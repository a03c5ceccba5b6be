package handler

import (
	"context"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/usecase"
	"tripboard-service/pkg/logger"
)

// TripGenerator creates trips from requests
type TripGenerator interface {
	GenerateTrip(ctx context.Context, req *entity.TripRequest) (string, error)
}

// TripReader reads stored trips
type TripReader interface {
	ListTrips(ctx context.Context, limit, offset int) (*usecase.TripPage, error)
	GetTripDetail(ctx context.Context, id string) (*usecase.TripDetail, error)
}

// DashboardReader builds the admin dashboard
type DashboardReader interface {
	GetDashboard(ctx context.Context) (*usecase.Dashboard, error)
}

// UserLister lists users with their trip counts
type UserLister interface {
	ListUsersWithTripCounts(ctx context.Context, limit, offset int) (*usecase.UserPage, error)
}

// CountryProvider serves the cached country list
type CountryProvider interface {
	Countries(ctx context.Context) ([]entity.Country, bool)
	Invalidate()
}

// Authenticator runs sign-in and resolves sessions
type Authenticator interface {
	CreateOAuthSession(provider, successURL, failureURL string) (string, error)
	CompleteOAuthSession(ctx context.Context, provider, state, code string) (*usecase.OAuthResult, error)
	GetCurrentUser(ctx context.Context, token string) (*entity.User, error)
}

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// Deps are the collaborators of Handler
type Deps struct {
	Generator  TripGenerator
	Trips      TripReader
	Dashboard  DashboardReader
	Users      UserLister
	Countries  CountryProvider
	Auth       Authenticator
	Cookie     CookieConfig
	SignInURL  string
	SuccessURL string
	Logger     logger.Logger
}

// Handler serves the dashboard API
type Handler struct {
	generator  TripGenerator
	trips      TripReader
	dashboard  DashboardReader
	users      UserLister
	countries  CountryProvider
	auth       Authenticator
	cookie     CookieConfig
	signInURL  string
	successURL string
	logger     logger.Logger
}

// New creates a Handler
func New(deps Deps) *Handler {
	h := &Handler{
		generator:  deps.Generator,
		trips:      deps.Trips,
		dashboard:  deps.Dashboard,
		users:      deps.Users,
		countries:  deps.Countries,
		auth:       deps.Auth,
		cookie:     deps.Cookie,
		signInURL:  deps.SignInURL,
		successURL: deps.SuccessURL,
		logger:     deps.Logger,
	}
	if h.cookie.Name == "" {
		h.cookie.Name = "tripboard_session"
	}
	if h.signInURL == "" {
		h.signInURL = "/sign-in"
	}
	if h.successURL == "" {
		h.successURL = "/dashboard"
	}
	return h
}
