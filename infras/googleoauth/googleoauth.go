package googleoauth

//go:generate go run go.uber.org/mock/mockgen -source=./googleoauth.go -destination=./mocks/googleoauth_mock.go -package=mocks

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendarapi "google.golang.org/api/calendar/v3"

	"profmeet/config"
)

// TokenAuthority is the boundary to Google's OAuth2 endpoints: consent
// URLs, code exchange and refresh-token grants. It is an interface so the
// credential manager can be tested against a fake authority.
type TokenAuthority interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

type authorityImpl struct {
	oauth *oauth2.Config
}

// NewConfig builds the oauth2 client configuration from the service config.
// Offline access is requested so the authority returns a refresh token.
func NewConfig(cfg *config.Config) *oauth2.Config {
	scopes := cfg.Google.Scopes
	if len(scopes) == 0 {
		scopes = []string{
			calendarapi.CalendarEventsScope,
			calendarapi.CalendarReadonlyScope,
		}
	}

	return &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
}

// New creates a TokenAuthority backed by the real Google endpoints.
func New(oauth *oauth2.Config) TokenAuthority {
	return &authorityImpl{
		oauth: oauth,
	}
}

func (a *authorityImpl) AuthCodeURL(state string) string {
	return a.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (a *authorityImpl) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return token, nil
}

func (a *authorityImpl) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	source := a.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh access token: %w", err)
	}

	return token, nil
}
