package session

import (
	"errors"
	"fmt"
	"time"

	"tripboard-service/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionAudience = "tripboard-session"
	stateAudience   = "tripboard-oauth-state"
	stateTTL        = 10 * time.Minute
)

// ErrInvalidToken is returned for tokens that fail verification
var ErrInvalidToken = errors.New("invalid token")

type stateClaims struct {
	Provider   string `json:"provider"`
	SuccessURL string `json:"success"`
	FailureURL string `json:"failure"`
	jwt.RegisteredClaims
}

// Manager signs sessions and OAuth state with HS256
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a session manager
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueSession returns a signed token whose subject is the account id
func (m *Manager) IssueSession(accountID string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		Audience:  jwt.ClaimStrings{sessionAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		ID:        uuid.NewString(),
	}
	return m.sign(claims)
}

// ParseSession verifies a session token and returns its account id
func (m *Manager) ParseSession(token string) (string, error) {
	var claims jwt.RegisteredClaims
	if err := m.parse(token, &claims, sessionAudience); err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// IssueState signs the OAuth state parameter
func (m *Manager) IssueState(state entity.OAuthState) (string, error) {
	now := m.now()
	claims := stateClaims{
		Provider:   state.Provider,
		SuccessURL: state.SuccessURL,
		FailureURL: state.FailureURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{stateAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
			ID:        uuid.NewString(),
		},
	}
	return m.sign(claims)
}

// ParseState verifies an OAuth state parameter
func (m *Manager) ParseState(token string) (*entity.OAuthState, error) {
	var claims stateClaims
	if err := m.parse(token, &claims, stateAudience); err != nil {
		return nil, err
	}
	return &entity.OAuthState{
		Provider:   claims.Provider,
		SuccessURL: claims.SuccessURL,
		FailureURL: claims.FailureURL,
	}, nil
}

func (m *Manager) sign(claims jwt.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) parse(token string, claims jwt.Claims, audience string) error {
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}
