package google

import (
	"context"
	"fmt"
	"strings"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"
	"tripboard-service/internal/infrastructure/oauth"
	"tripboard-service/pkg/logger"

	"google.golang.org/api/option"
	"google.golang.org/api/people/v1"
)

const personFields = "names,emailAddresses,photos"

// IdentityRepository signs users in with Google and reads their profile from the People API
type IdentityRepository struct {
	oauth      *oauth.GoogleOAuth
	peopleOpts []option.ClientOption
	logger     logger.Logger
}

// NewIdentityRepository creates a Google identity repository. peopleOpts are appended
// to the People API client options.
func NewIdentityRepository(googleOAuth *oauth.GoogleOAuth, logger logger.Logger, peopleOpts ...option.ClientOption) repository.IdentityRepository {
	return &IdentityRepository{
		oauth:      googleOAuth,
		peopleOpts: peopleOpts,
		logger:     logger,
	}
}

// AuthCodeURL returns the Google consent URL
func (r *IdentityRepository) AuthCodeURL(state string) string {
	return r.oauth.AuthCodeURL(state)
}

// FetchIdentity exchanges the code and loads the signed-in profile
func (r *IdentityRepository) FetchIdentity(ctx context.Context, code string) (*entity.Identity, error) {
	token, err := r.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	opts := append([]option.ClientOption{option.WithTokenSource(r.oauth.TokenSource(ctx, token))}, r.peopleOpts...)
	service, err := people.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create people service: %w", err)
	}

	person, err := service.People.Get("people/me").PersonFields(personFields).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	identity := &entity.Identity{
		AccountID: strings.TrimPrefix(person.ResourceName, "people/"),
	}
	if identity.AccountID == "" {
		return nil, fmt.Errorf("profile has no resource name")
	}

	for _, name := range person.Names {
		if identity.Name == "" || isPrimary(name.Metadata) {
			identity.Name = name.DisplayName
		}
	}
	for _, email := range person.EmailAddresses {
		if identity.Email == "" || isPrimary(email.Metadata) {
			identity.Email = email.Value
		}
	}
	for _, photo := range person.Photos {
		if identity.ImageURL == "" || isPrimary(photo.Metadata) {
			identity.ImageURL = photo.Url
		}
	}

	r.logger.Debug("Fetched Google profile", "accountId", identity.AccountID)
	return identity, nil
}

func isPrimary(m *people.FieldMetadata) bool {
	return m != nil && m.Primary
}
