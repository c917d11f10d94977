package calendar

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"profmeet/config"
	"profmeet/infras/otel"
	"profmeet/internal/domains/calendar/model/dto"
	"profmeet/internal/domains/calendar/service"
	"profmeet/shared/constant"
	"profmeet/shared/validator"
	"profmeet/transport/http/response"
)

type Handler struct {
	service service.Calendar
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Calendar, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/status", handler.GetStatus)
		routerGroup.Get("/auth/url", handler.GetAuthURL)
		routerGroup.Get("/auth/callback", handler.HandleCallback)
		routerGroup.Get("/events", handler.ListEvents)
		routerGroup.Post("/events", handler.CreateEvent)
		routerGroup.Delete("/events/{eventId}", handler.DeleteEvent)
	})
}

// GetStatus reports whether a calendar is linked for the email.
// @Summary Get calendar link status
// @Description Check whether the given email has a stored calendar credential.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} response.Data[dto.StatusResponse] "Link status"
// @Failure 500 {object} response.Error
// @Router /v1/calendar/status [get]
func (handler *Handler) GetStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatus")
	defer scope.End()

	email := request.URL.Query().Get(constant.RequestParamEmail)

	linked, err := handler.service.IsLinked(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.StatusResponse{Connected: linked})
}

// GetAuthURL starts the calendar consent flow.
// @Summary Get the OAuth consent URL
// @Description Build the provider consent URL for the given email. The email rides along in the OAuth state parameter.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param email query string true "Account email"
// @Success 200 {object} response.Data[dto.AuthURLResponse] "Consent URL"
// @Failure 400 {object} response.Error
// @Router /v1/calendar/auth/url [get]
func (handler *Handler) GetAuthURL(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuthURL")
	defer scope.End()

	email := request.URL.Query().Get(constant.RequestParamEmail)

	url, err := handler.service.AuthURL(ctx, email)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build auth URL")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.AuthURLResponse{URL: url})
}

// HandleCallback completes the calendar consent flow.
// @Summary OAuth callback
// @Description Exchange the authorization code, store the credential and redirect the browser to the frontend.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "OAuth state (account email)"
// @Success 302 {string} string "Redirect to frontend"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/calendar/auth/callback [get]
func (handler *Handler) HandleCallback(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleCallback")
	defer scope.End()

	code := request.URL.Query().Get(constant.RequestParamCode)
	state := request.URL.Query().Get(constant.RequestParamState)

	if err := handler.service.HandleCallback(ctx, code, state); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to handle OAuth callback")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Calendar linked for " + state)

	response.WithRedirect(writer, request, handler.cfg.App.FrontendURL)
}

// ListEvents lists upcoming and past events from the linked calendar.
// @Summary List calendar events
// @Description List events from the account's primary calendar, expanded and ordered by start time.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param email query string true "Account email"
// @Param max query int false "Maximum number of events (default 50)"
// @Success 200 {object} response.Data[[]dto.EventProjection] "Events"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/calendar/events [get]
func (handler *Handler) ListEvents(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListEvents")
	defer scope.End()

	email := request.URL.Query().Get(constant.RequestParamEmail)

	max, err := strconv.ParseInt(request.URL.Query().Get(constant.RequestParamMax), 10, 64)
	if err != nil {
		max = constant.DefaultValueMaxEvents
	}

	events, err := handler.service.ListEvents(ctx, email, max)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list calendar events")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, events)
}

// CreateEvent inserts an event into the linked calendar.
// @Summary Create a calendar event
// @Description Insert an event into the account's primary calendar.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param email query string true "Account email"
// @Param request body dto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} response.Data[dto.CreatedEventResponse] "Created event"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/calendar/events [post]
func (handler *Handler) CreateEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	email := request.URL.Query().Get(constant.RequestParamEmail)

	req := dto.CreateEventRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	created, err := handler.service.CreateEvent(ctx, email, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create calendar event")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Calendar event created " + created.ID)

	response.WithJSON(writer, http.StatusCreated, created)
}

// DeleteEvent removes an event from the linked calendar.
// @Summary Delete a calendar event
// @Description Delete an event from the account's primary calendar. Deleting an event that is already gone still succeeds.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param eventId path string true "Provider event id"
// @Param email query string true "Account email"
// @Param reason query string false "Cancellation reason, recorded in the log"
// @Param studentEmail query string false "Student email when a professor cancels on the student's behalf"
// @Success 200 {object} response.Message "Event deleted"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/calendar/events/{eventId} [delete]
func (handler *Handler) DeleteEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	email := request.URL.Query().Get(constant.RequestParamEmail)
	eventID := chi.URLParam(request, constant.RequestParamEventID)
	reason := request.URL.Query().Get(constant.RequestParamReason)
	studentEmail := request.URL.Query().Get(constant.RequestParamStudentEmail)

	deleted, err := handler.service.DeleteEvent(ctx, email, eventID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete calendar event")

		response.WithError(writer, err)

		return
	}

	log.Info().
		Str("email", email).
		Str("eventId", eventID).
		Str("reason", reason).
		Str("studentEmail", studentEmail).
		Bool("deleted", deleted).
		Msg("calendar event delete handled")

	response.WithMessage(writer, http.StatusOK, "Event deleted")
}
