package oauth

import (
	"context"
	"fmt"

	"tripboard-service/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/people/v1"
)

// GoogleOAuth handles the Google sign-in authorization code flow
type GoogleOAuth struct {
	config *oauth2.Config
	logger logger.Logger
}

// NewGoogleOAuth creates a new Google OAuth handler requesting profile and email access
func NewGoogleOAuth(clientID, clientSecret, redirectURL string, logger logger.Logger) *GoogleOAuth {
	return NewGoogleOAuthWithEndpoint(clientID, clientSecret, redirectURL, google.Endpoint, logger)
}

// NewGoogleOAuthWithEndpoint is NewGoogleOAuth against a custom authorization server
func NewGoogleOAuthWithEndpoint(clientID, clientSecret, redirectURL string, endpoint oauth2.Endpoint, logger logger.Logger) *GoogleOAuth {
	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     endpoint,
		Scopes: []string{
			"openid",
			people.UserinfoEmailScope,
			people.UserinfoProfileScope,
		},
	}

	return &GoogleOAuth{
		config: config,
		logger: logger,
	}
}

// AuthCodeURL builds the consent page URL carrying state
func (o *GoogleOAuth) AuthCodeURL(state string) string {
	return o.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// ExchangeCode exchanges an authorization code for a token
func (o *GoogleOAuth) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := o.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	o.logger.Debug("OAuth code exchanged", "expiry", token.Expiry)
	return token, nil
}

// TokenSource returns a token source for calling Google APIs on behalf of the user
func (o *GoogleOAuth) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	return o.config.TokenSource(ctx, token)
}
