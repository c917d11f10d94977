package credential

//go:generate go run go.uber.org/mock/mockgen -source=./credential.go -destination=../mocks/credential_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"

	"profmeet/infras/googleoauth"
	"profmeet/infras/otel"
	"profmeet/internal/domains/calendar/model"
	"profmeet/internal/domains/calendar/repository"
	"profmeet/shared/constant"
	"profmeet/shared/timezone"
)

// State describes the outcome of resolving a stored credential into a
// usable one.
type State string

const (
	StateUnlinked      State = "UNLINKED"
	StateLinkedValid   State = "LINKED_VALID"
	StateRefreshed     State = "LINKED_REFRESHED"
	StateRefreshFailed State = "REFRESH_FAILED"
)

// RefreshWindow is how close to expiry a token may get before a refresh
// is attempted.
const RefreshWindow = 60 * time.Second

// ErrNotLinked is returned when no credential is stored for the email.
var ErrNotLinked = errors.New("calendar not linked")

// Clock abstracts time so expiry decisions are testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

// NewClock returns the wall clock in the application timezone.
func NewClock() Clock {
	return systemClock{}
}

// Manager resolves a stored credential into a non-expired bearer token,
// refreshing lazily on demand. There is no background refresh; every
// calendar operation pays this check.
type Manager interface {
	// AuthorizedToken returns a usable token for the email, or
	// ErrNotLinked. When the refresh grant fails the stale token is
	// returned together with StateRefreshFailed; calls made with it will
	// likely be rejected upstream.
	AuthorizedToken(ctx context.Context, email string) (*oauth2.Token, State, error)
}

type managerImpl struct {
	store     repository.CredentialStore
	authority googleoauth.TokenAuthority
	clock     Clock
	otel      otel.Otel
	group     singleflight.Group
}

func New(store repository.CredentialStore, authority googleoauth.TokenAuthority, clock Clock, otel otel.Otel) Manager {
	return &managerImpl{
		store:     store,
		authority: authority,
		clock:     clock,
		otel:      otel,
	}
}

type refreshResult struct {
	token *oauth2.Token
	state State
}

func (m *managerImpl) AuthorizedToken(ctx context.Context, email string) (token *oauth2.Token, state State, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelCredentialScopeName, constant.OtelCredentialScopeName+".AuthorizedToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, err := m.store.Get(ctx, email)
	if err != nil {
		return nil, StateUnlinked, fmt.Errorf("failed to load credential: %w", err)
	}

	if stored.Email == constant.Empty {
		return nil, StateUnlinked, ErrNotLinked
	}

	expiry := time.UnixMilli(stored.ExpiryMillis)
	if expiry.Sub(m.clock.Now()) > RefreshWindow {
		scope.SetAttribute("credential.state", string(StateLinkedValid))

		return tokenFromCredential(stored), StateLinkedValid, nil
	}

	// Concurrent callers for the same email share one refresh-then-persist
	// round trip to the token authority. The flight runs detached from the
	// first caller's context so its cancellation cannot fail the waiters.
	value, err, _ := m.group.Do(email, func() (any, error) {
		return m.refresh(context.WithoutCancel(ctx), stored), nil
	})
	if err != nil {
		return nil, StateRefreshFailed, fmt.Errorf("failed to refresh credential: %w", err)
	}

	result, _ := value.(refreshResult)
	scope.SetAttribute("credential.state", string(result.state))

	return result.token, result.state, nil
}

func (m *managerImpl) refresh(ctx context.Context, stored model.Credential) refreshResult {
	log.Info().Str("email", stored.Email).Msg("access token about to expire, refreshing")

	refreshed, err := m.authority.Refresh(ctx, stored.RefreshToken)
	if err != nil {
		log.Error().Err(err).Str("email", stored.Email).Msg("token refresh failed, returning stale credential")

		return refreshResult{token: tokenFromCredential(stored), state: StateRefreshFailed}
	}

	stored.AccessToken = refreshed.AccessToken
	stored.ExpiryMillis = refreshed.Expiry.UnixMilli()

	if refreshed.RefreshToken != constant.Empty {
		stored.RefreshToken = refreshed.RefreshToken
	}

	if err := m.store.Upsert(ctx, stored); err != nil {
		log.Error().Err(err).Str("email", stored.Email).Msg("failed to persist refreshed credential")
	}

	log.Info().Str("email", stored.Email).Time("expiry", refreshed.Expiry).Msg("access token refreshed")

	return refreshResult{token: tokenFromCredential(stored), state: StateRefreshed}
}

func tokenFromCredential(credential model.Credential) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  credential.AccessToken,
		RefreshToken: credential.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.UnixMilli(credential.ExpiryMillis),
	}
}
