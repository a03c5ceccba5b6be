package usecase

import (
	"context"
	"net/url"
	"strings"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	"tripboard-service/pkg/logger"
)

// SessionManager issues and verifies signed session and OAuth state tokens
type SessionManager interface {
	IssueSession(accountID string) (string, error)
	ParseSession(token string) (string, error)
	IssueState(state entity.OAuthState) (string, error)
	ParseState(token string) (*entity.OAuthState, error)
}

// OAuthResult tells the callback where to redirect and which session to set.
// SessionToken is empty when sign-in failed.
type OAuthResult struct {
	RedirectURL  string
	SessionToken string
}

// AuthService runs the OAuth sign-in flow and resolves sessions to users
type AuthService struct {
	providers map[string]repository.IdentityRepository
	sessions  SessionManager
	users     *UserService
	origins   map[string]struct{}
	logger    logger.Logger
}

// NewAuthService creates a new auth service. providers is keyed by provider name, e.g. "google".
// Post sign-in redirects must be relative paths or URLs on one of allowedOrigins.
func NewAuthService(
	providers map[string]repository.IdentityRepository,
	sessions SessionManager,
	users *UserService,
	allowedOrigins []string,
	logger logger.Logger,
) *AuthService {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[strings.TrimRight(o, "/")] = struct{}{}
	}
	return &AuthService{
		providers: providers,
		sessions:  sessions,
		users:     users,
		origins:   origins,
		logger:    logger,
	}
}

// CreateOAuthSession returns the provider consent URL. The success and failure
// URLs travel in the signed state parameter.
func (s *AuthService) CreateOAuthSession(provider, successURL, failureURL string) (string, error) {
	idp, ok := s.providers[provider]
	if !ok {
		return "", validationError("Unsupported OAuth provider: " + provider)
	}
	if successURL == "" || failureURL == "" {
		return "", validationError("success and failure URLs are required")
	}
	if !s.allowedRedirect(successURL) || !s.allowedRedirect(failureURL) {
		return "", validationError("Redirect URL is not allowed")
	}

	state, err := s.sessions.IssueState(entity.OAuthState{
		Provider:   provider,
		SuccessURL: successURL,
		FailureURL: failureURL,
	})
	if err != nil {
		return "", err
	}
	return idp.AuthCodeURL(state), nil
}

// CompleteOAuthSession finishes sign-in for the provider callback. Once the state is
// verified the result always carries a redirect target, even when err is non-nil.
func (s *AuthService) CompleteOAuthSession(ctx context.Context, provider, stateToken, code string) (*OAuthResult, error) {
	state, err := s.sessions.ParseState(stateToken)
	if err != nil || state.Provider != provider {
		return nil, authorizationError(CodeUnauthenticated, "Invalid OAuth state")
	}
	idp, ok := s.providers[provider]
	if !ok {
		return nil, validationError("Unsupported OAuth provider: " + provider)
	}

	failed := &OAuthResult{RedirectURL: state.FailureURL}
	if code == "" {
		return failed, authorizationError(CodeUnauthenticated, "Sign-in was cancelled")
	}

	identity, err := idp.FetchIdentity(ctx, code)
	if err != nil {
		s.logger.Error("Failed to fetch identity", "provider", provider, "error", err)
		return failed, err
	}

	user, err := s.users.EnsureUser(ctx, identity)
	if err != nil {
		s.logger.Error("Failed to store user", "accountId", identity.AccountID, "error", err)
		return failed, err
	}

	token, err := s.sessions.IssueSession(user.AccountID)
	if err != nil {
		return failed, err
	}

	s.logger.Info("User signed in", "userId", user.ID, "provider", provider)
	return &OAuthResult{RedirectURL: state.SuccessURL, SessionToken: token}, nil
}

// GetCurrentUser resolves a session token to its user
func (s *AuthService) GetCurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, authorizationError(CodeUnauthenticated, "No active session")
	}
	accountID, err := s.sessions.ParseSession(token)
	if err != nil {
		return nil, authorizationError(CodeUnauthenticated, "Session is invalid or expired")
	}

	user, err := s.users.GetByAccountID(ctx, accountID)
	if err != nil {
		if IsKind(err, KindNotFound) {
			return nil, authorizationError(CodeUnauthenticated, "Session user no longer exists")
		}
		return nil, err
	}
	return user, nil
}

// allowedRedirect accepts a path on this host or an absolute http(s) URL on an allowed origin
func (s *AuthService) allowedRedirect(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.User != nil {
		return false
	}
	if u.Scheme == "" && u.Host == "" {
		return strings.HasPrefix(u.Path, "/") && !strings.HasPrefix(raw, "//") && !strings.HasPrefix(raw, "/\\")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	_, ok := s.origins[u.Scheme+"://"+u.Host]
	return ok
}

// AuthorizeAdmin fails unless user is signed in with the admin status
func AuthorizeAdmin(user *entity.User) error {
	if user == nil {
		return authorizationError(CodeUnauthenticated, "Sign in required")
	}
	if !user.IsAdmin() {
		return authorizationError(CodeForbidden, "Admin access required")
	}
	return nil
}
