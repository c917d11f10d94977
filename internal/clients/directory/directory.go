package directory

//go:generate go run go.uber.org/mock/mockgen -source=./directory.go -destination=./mocks/directory_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"profmeet/config"
	"profmeet/infras/otel"
	"profmeet/shared/constant"
)

// Resolver looks up a display name for an email address. Resolution is
// best effort: callers treat an error or an empty name as "unknown" and
// carry on.
type Resolver interface {
	Resolve(ctx context.Context, email string) (string, error)
}

// userEnvelope covers both directory response shapes; either service may
// answer with a single name or a first/last pair.
type userEnvelope struct {
	User struct {
		Name      string `json:"name"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"user"`
}

// displayName prefers the single name field, else composes first and
// last names. Unknown shapes decode to the zero value and yield "".
func (e userEnvelope) displayName() string {
	if name := strings.TrimSpace(e.User.Name); name != constant.Empty {
		return name
	}

	return strings.TrimSpace(strings.TrimSpace(e.User.FirstName) + " " + strings.TrimSpace(e.User.LastName))
}

type resolverImpl struct {
	client      *http.Client
	primaryURL  string
	fallbackURL string
	otel        otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Resolver {
	return &resolverImpl{
		client:      &http.Client{Timeout: time.Duration(cfg.External.TimeoutSeconds) * time.Second},
		primaryURL:  cfg.External.Directory.PrimaryURL,
		fallbackURL: cfg.External.Directory.FallbackURL,
		otel:        otel,
	}
}

// Resolve tries the profile directory first, then falls back to the
// account directory. It returns an error only when both lookups failed.
func (r *resolverImpl) Resolve(ctx context.Context, email string) (name string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".directory.Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	var primary userEnvelope

	primaryErr := r.fetch(ctx, r.primaryURL+"/profiles/by-email", email, &primary)
	if primaryErr == nil {
		if name := primary.displayName(); name != constant.Empty {
			return name, nil
		}
	} else {
		log.Warn().Err(primaryErr).Str("email", email).Msg("profile directory lookup failed, trying account directory")
	}

	var fallback userEnvelope

	fallbackErr := r.fetch(ctx, r.fallbackURL+"/users/by-email", email, &fallback)
	if fallbackErr != nil {
		if primaryErr != nil {
			return constant.Empty, fmt.Errorf("failed to resolve name for %s: %w", email, fallbackErr)
		}

		return constant.Empty, nil
	}

	return fallback.displayName(), nil
}

func (r *resolverImpl) fetch(ctx context.Context, endpoint, email string, out any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?email="+url.QueryEscape(email), nil)
	if err != nil {
		return fmt.Errorf("failed to build directory request: %w", err)
	}

	response, err := r.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to call directory: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("directory returned status %d", response.StatusCode)
	}

	if err = json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode directory response: %w", err)
	}

	return nil
}
