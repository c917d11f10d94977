package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"profmeet/config"
	"profmeet/infras/googleoauth"
	"profmeet/infras/otel"
	"profmeet/internal/domains/calendar/credential"
	"profmeet/internal/domains/calendar/model/dto"
	"profmeet/internal/domains/calendar/repository"
	"profmeet/shared/constant"
	"profmeet/shared/failure"
)

const (
	primaryCalendarID = "primary"

	// Events are listed from an epoch-like floor so past and future
	// events are both visible.
	eventsFloor = "2000-01-01T00:00:00Z"

	defaultEventSummary = "Meeting"
)

// ServiceFactory builds a provider API client from an access token. The
// token source is static: refresh is owned by the credential manager,
// not by the API client.
type ServiceFactory func(ctx context.Context, token *oauth2.Token) (*calendarapi.Service, error)

// NewDefaultFactory exposes the default factory as a provider.
func NewDefaultFactory() ServiceFactory {
	return DefaultServiceFactory
}

func DefaultServiceFactory(ctx context.Context, token *oauth2.Token) (*calendarapi.Service, error) {
	service, err := calendarapi.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return service, nil
}

// Calendar performs event operations against a user's primary calendar
// using credentials resolved by the credential manager.
type Calendar interface {
	IsLinked(ctx context.Context, email string) (bool, error)
	AuthURL(ctx context.Context, email string) (string, error)
	HandleCallback(ctx context.Context, code, state string) error
	ListEvents(ctx context.Context, email string, max int64) ([]dto.EventProjection, error)
	CreateEvent(ctx context.Context, email string, req dto.CreateEventRequest) (dto.CreatedEventResponse, error)
	DeleteEvent(ctx context.Context, email, eventID string) (bool, error)
}

type serviceImpl struct {
	store      repository.CredentialStore
	manager    credential.Manager
	authority  googleoauth.TokenAuthority
	newService ServiceFactory
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	store repository.CredentialStore,
	manager credential.Manager,
	authority googleoauth.TokenAuthority,
	newService ServiceFactory,
	cfg *config.Config,
	otel otel.Otel,
) Calendar {
	return &serviceImpl{
		store:      store,
		manager:    manager,
		authority:  authority,
		newService: newService,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) IsLinked(ctx context.Context, email string) (linked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.IsLinked")
	defer scope.End()
	defer scope.TraceIfError(err)

	linked, err = s.store.Exist(ctx, email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check calendar link status")

		return false, fmt.Errorf("failed to check calendar link status: %w", err)
	}

	return linked, nil
}

func (s *serviceImpl) AuthURL(ctx context.Context, email string) (string, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.AuthURL")
	defer scope.End()

	if email == constant.Empty {
		return constant.Empty, failure.BadRequestFromString("email is required") //nolint:wrapcheck
	}

	// The consent flow round-trips the email through the OAuth state
	// parameter so the callback knows which account to bind.
	return s.authority.AuthCodeURL(email), nil
}

func (s *serviceImpl) HandleCallback(ctx context.Context, code, state string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.HandleCallback")
	defer scope.End()
	defer scope.TraceIfError(err)

	email := state
	if email == constant.Empty || code == constant.Empty {
		return failure.BadRequestFromString("code and state are required") //nolint:wrapcheck
	}

	token, err := s.authority.Exchange(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to exchange authorization code")

		return failure.Upstream(fmt.Errorf("failed to exchange authorization code: %w", err)) //nolint:wrapcheck
	}

	stored, err := s.store.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to load existing credential: %w", err)
	}

	stored.Email = email
	stored.AccessToken = token.AccessToken
	stored.ExpiryMillis = token.Expiry.UnixMilli()

	// The authority omits the refresh token on re-consent; keep the one
	// already on file in that case.
	if token.RefreshToken != constant.Empty {
		stored.RefreshToken = token.RefreshToken
	}

	if err = s.store.Upsert(ctx, stored); err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to persist calendar credential")

		return fmt.Errorf("failed to persist calendar credential: %w", err)
	}

	log.Info().Str("email", email).Msg("calendar linked")
	scope.AddEvent("Calendar credential stored for " + email)

	return nil
}

func (s *serviceImpl) ListEvents(ctx context.Context, email string, max int64) (events []dto.EventProjection, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.ListEvents")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.authorizedService(ctx, email)
	if err != nil {
		return nil, err
	}

	if max <= 0 {
		max = constant.DefaultValueMaxEvents
	}

	listed, err := service.Events.List(primaryCalendarID).
		MaxResults(max).
		OrderBy("startTime").
		SingleEvents(true).
		TimeMin(eventsFloor).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to list calendar events")

		return nil, failure.Upstream(fmt.Errorf("failed to list calendar events: %w", err)) //nolint:wrapcheck
	}

	events = make([]dto.EventProjection, 0, len(listed.Items))

	for _, item := range listed.Items {
		projection := dto.EventProjection{}
		if !projection.FromProviderEvent(item) {
			log.Warn().Str("eventId", item.Id).Msg("skipping event without start time")

			continue
		}

		events = append(events, projection)
	}

	scope.SetAttribute("calendar.events", len(events))

	return events, nil
}

func (s *serviceImpl) CreateEvent(ctx context.Context, email string, req dto.CreateEventRequest) (res dto.CreatedEventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.CreateEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.ParseTimes()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid event timestamps: %v", err)) //nolint:wrapcheck
	}

	service, err := s.authorizedService(ctx, email)
	if err != nil {
		return res, err
	}

	summary := req.Summary
	if summary == constant.Empty {
		summary = defaultEventSummary
	}

	event := &calendarapi.Event{
		Summary:     summary,
		Description: req.Description,
		Location:    req.Location,
		Start:       &calendarapi.EventDateTime{DateTime: start.Format(constant.DateFormat)},
		End:         &calendarapi.EventDateTime{DateTime: end.Format(constant.DateFormat)},
	}

	created, err := service.Events.Insert(primaryCalendarID, event).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to insert calendar event")

		return res, failure.Upstream(fmt.Errorf("failed to insert calendar event: %w", err)) //nolint:wrapcheck
	}

	log.Info().Str("email", email).Str("eventId", created.Id).Msg("calendar event created")
	scope.AddEvent("Calendar event created " + created.Id)

	res.ID = created.Id
	res.HTMLLink = created.HtmlLink

	return res, nil
}

func (s *serviceImpl) DeleteEvent(ctx context.Context, email, eventID string) (deleted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.DeleteEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.authorizedService(ctx, email)
	if err != nil {
		return false, err
	}

	err = service.Events.Delete(primaryCalendarID, eventID).Context(ctx).Do()
	if err != nil {
		// An already-deleted or unknown event is not fatal.
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
			log.Warn().Str("email", email).Str("eventId", eventID).Msg("calendar event already gone")

			return false, nil
		}

		log.Error().Err(err).Str("email", email).Str("eventId", eventID).Msg("failed to delete calendar event")

		return false, failure.Upstream(fmt.Errorf("failed to delete calendar event: %w", err)) //nolint:wrapcheck
	}

	log.Info().Str("email", email).Str("eventId", eventID).Msg("calendar event deleted")

	return true, nil
}

func (s *serviceImpl) authorizedService(ctx context.Context, email string) (*calendarapi.Service, error) {
	token, state, err := s.manager.AuthorizedToken(ctx, email)
	if err != nil {
		if errors.Is(err, credential.ErrNotLinked) {
			return nil, failure.CalendarNotLinkedError
		}

		return nil, fmt.Errorf("failed to authorize calendar access: %w", err)
	}

	if state == credential.StateRefreshFailed {
		log.Warn().Str("email", email).Msg("proceeding with stale credential after failed refresh")
	}

	service, err := s.newService(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client: %w", err)
	}

	return service, nil
}
