package calendarclient

//go:generate go run go.uber.org/mock/mockgen -source=./calendarclient.go -destination=./mocks/calendarclient_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"profmeet/config"
	"profmeet/infras/otel"
	"profmeet/internal/domains/booking/model"
	calendardto "profmeet/internal/domains/calendar/model/dto"
	"profmeet/shared"
	"profmeet/shared/constant"
)

const (
	defaultProfessorTitle = "Meeting"
	defaultStudentTitle   = "Meeting with Professor"

	// eventsPath must match the route the calendar handler registers.
	eventsPath = "/v1/calendar/events"
)

// Client mirrors a booking into the participants' calendars through the
// calendar API. Event creation returns the provider event id; an empty
// id with a nil error never happens.
type Client interface {
	CreateProfessorEvent(ctx context.Context, booking model.Booking) (string, error)
	CreateStudentEvent(ctx context.Context, booking model.Booking) (string, error)
	DeleteEvent(ctx context.Context, ownerEmail, eventID, reason, studentEmail string) error
}

type clientImpl struct {
	client  *http.Client
	baseURL string
	apiKey  string
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	return &clientImpl{
		client:  &http.Client{Timeout: time.Duration(cfg.External.TimeoutSeconds) * time.Second},
		baseURL: cfg.External.Calendar.URL,
		apiKey:  cfg.App.APIKey,
		otel:    otel,
	}
}

func (c *clientImpl) CreateProfessorEvent(ctx context.Context, booking model.Booking) (eventID string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".calendar.CreateProfessorEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	request := calendardto.CreateEventRequest{
		Summary:     shared.FirstNonEmpty(booking.Title, defaultProfessorTitle),
		Description: decorate(booking.Description, "Student", booking.StudentName, booking.StudentEmail),
		Start:       booking.StartISO,
		End:         booking.EndISO,
		Location:    booking.Location,
	}

	return c.createEvent(ctx, booking.ProfessorEmail, request)
}

func (c *clientImpl) CreateStudentEvent(ctx context.Context, booking model.Booking) (eventID string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".calendar.CreateStudentEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	request := calendardto.CreateEventRequest{
		Summary:     shared.FirstNonEmpty(booking.Title, defaultStudentTitle),
		Description: decorate(booking.Description, "Professor", booking.ProfessorName, booking.ProfessorEmail),
		Start:       booking.StartISO,
		End:         booking.EndISO,
		Location:    booking.Location,
	}

	return c.createEvent(ctx, booking.StudentEmail, request)
}

func (c *clientImpl) DeleteEvent(ctx context.Context, ownerEmail, eventID, reason, studentEmail string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".calendar.DeleteEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := url.Values{}
	params.Set(constant.RequestParamEmail, ownerEmail)

	if reason != constant.Empty {
		params.Set(constant.RequestParamReason, reason)
	}

	if studentEmail != constant.Empty {
		params.Set(constant.RequestParamStudentEmail, studentEmail)
	}

	endpoint := c.baseURL + eventsPath + "/" + url.PathEscape(eventID) + "?" + params.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build calendar delete request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)

	response, err := c.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to call calendar API: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("calendar API returned status %d", response.StatusCode)
	}

	return nil
}

type createdEnvelope struct {
	Data calendardto.CreatedEventResponse `json:"data"`
}

func (c *clientImpl) createEvent(ctx context.Context, ownerEmail string, event calendardto.CreateEventRequest) (string, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to encode calendar event: %w", err)
	}

	endpoint := c.baseURL + eventsPath + "?" + constant.RequestParamEmail + "=" + url.QueryEscape(ownerEmail)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to build calendar create request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	request.Header.Set(constant.RequestHeaderAPIKey, c.apiKey)

	response, err := c.client.Do(request)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to call calendar API: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusMultipleChoices {
		return constant.Empty, fmt.Errorf("calendar API returned status %d", response.StatusCode)
	}

	var created createdEnvelope
	if err = json.NewDecoder(response.Body).Decode(&created); err != nil {
		return constant.Empty, fmt.Errorf("failed to decode calendar response: %w", err)
	}

	if created.Data.ID == constant.Empty {
		return constant.Empty, fmt.Errorf("calendar API returned no event id")
	}

	return created.Data.ID, nil
}

// decorate appends a counterpart block to the event description so the
// owner can see who the meeting is with.
func decorate(description, role, name, email string) string {
	who := email
	if shared.HasText(name) {
		who = name + " (" + email + ")"
	}

	block := role + ": " + who

	if !shared.HasText(description) {
		return block
	}

	return description + "\n\n" + block
}
