package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"profmeet/config"
	"profmeet/infras/otel"
	"profmeet/internal/clients/calendarclient"
	"profmeet/internal/clients/directory"
	"profmeet/internal/clients/notification"
	"profmeet/internal/domains/booking/model"
	"profmeet/internal/domains/booking/model/dto"
	"profmeet/internal/domains/booking/repository"
	"profmeet/shared"
	"profmeet/shared/cache"
	"profmeet/shared/constant"
	"profmeet/shared/failure"
)

const (
	cacheKeyGet           = "booking:get"
	cacheKeyStudentList   = "booking:list:student"
	cacheKeyProfessorList = "booking:list:professor"
)

// Booking coordinates the booking saga. Only the booking-store write can
// fail a request; every downstream action (name resolution, email
// notification, calendar mirroring) is best effort and its outcome is
// reported back as a step.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	ListByStudent(ctx context.Context, email string) ([]dto.BookingResponse, error)
	ListByProfessor(ctx context.Context, email string) ([]dto.BookingResponse, error)
	Cancel(ctx context.Context, id, reason string) (dto.CancelBookingResponse, error)
}

type serviceImpl struct {
	repo     repository.BookingRepository
	resolver directory.Resolver
	notifier notification.Sender
	calendar calendarclient.Client
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.BookingRepository,
	resolver directory.Resolver,
	notifier notification.Sender,
	calendar calendarclient.Client,
	redisCache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		resolver: resolver,
		notifier: notifier,
		calendar: calendar,
		cache:    redisCache,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !shared.HasText(req.ProfessorEmail) || !shared.HasText(req.StudentEmail) {
		return res, failure.BadRequestFromString("professorEmail and studentEmail are required") //nolint:wrapcheck
	}

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		return res, fmt.Errorf("failed to persist booking: %w", err)
	}

	steps := []dto.SagaStep{dto.StepSuccess(dto.StepPersistBooking, booking.ID)}

	steps = append(steps, s.resolveNames(ctx, &booking)...)
	steps = append(steps, s.notifyBooking(ctx, booking))
	steps = append(steps, s.mirrorToCalendars(ctx, &booking)...)

	s.invalidateCaches(ctx, booking.ID)

	log.Info().
		Str("bookingId", booking.ID).
		Str("professorEmail", booking.ProfessorEmail).
		Str("studentEmail", booking.StudentEmail).
		Msg("booking created")
	scope.AddEvent("Booking created " + booking.ID)

	res.FromModel(booking)
	res.Steps = steps

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheKeyGet, id)
	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache booking")
	}

	return res, nil
}

func (s *serviceImpl) ListByStudent(ctx context.Context, email string) ([]dto.BookingResponse, error) {
	return s.list(ctx, cacheKeyStudentList, email, s.repo.ListByStudentEmail, "ListByStudent")
}

func (s *serviceImpl) ListByProfessor(ctx context.Context, email string) ([]dto.BookingResponse, error) {
	return s.list(ctx, cacheKeyProfessorList, email, s.repo.ListByProfessorEmail, "ListByProfessor")
}

func (s *serviceImpl) Cancel(ctx context.Context, id, reason string) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	// The status write comes first and is the only step that can fail the
	// request. Cancelling an already cancelled booking runs the side
	// effects again; they are all tolerant of repeats.
	booking.Status = model.StatusCancelled

	if err = s.repo.Update(ctx, booking); err != nil {
		return res, fmt.Errorf("failed to persist cancellation: %w", err)
	}

	steps := []dto.SagaStep{dto.StepSuccess(dto.StepPersistCancellation, booking.ID)}

	steps = append(steps, s.notifyCancellation(ctx, booking, reason))
	steps = append(steps, s.deleteCalendarEvents(ctx, booking, reason)...)

	s.invalidateCaches(ctx, booking.ID)

	log.Info().Str("bookingId", booking.ID).Msg("booking cancelled")
	scope.AddEvent("Booking cancelled " + booking.ID)

	res.ID = booking.ID
	res.Status = booking.Status
	res.Steps = steps

	return res, nil
}

func (s *serviceImpl) list(
	ctx context.Context,
	cachePrefix, email string,
	query func(context.Context, string) ([]model.Booking, error),
	operation string,
) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking."+operation)
	defer scope.End()
	defer scope.TraceIfError(err)

	if !shared.HasText(email) {
		return nil, failure.BadRequestFromString("email is required") //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cachePrefix, email)
	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	bookings, err := query(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	res = make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache booking list")
	}

	return res, nil
}

// resolveNames fills in missing display names from the directory. A
// failed or empty lookup leaves the name blank and the booking stands.
func (s *serviceImpl) resolveNames(ctx context.Context, booking *model.Booking) []dto.SagaStep {
	steps := make([]dto.SagaStep, 0, 2)
	changed := false

	resolve := func(stepName, email, current string) (string, dto.SagaStep) {
		if shared.HasText(current) {
			return current, dto.StepSkipped(stepName)
		}

		name, err := s.resolver.Resolve(ctx, email)
		if err != nil {
			log.Warn().Err(err).Str("email", email).Msg("name resolution failed")

			return current, dto.StepFailed(stepName, err)
		}

		if !shared.HasText(name) {
			return current, dto.StepFailed(stepName, fmt.Errorf("no name on record for %s", email))
		}

		changed = true

		return name, dto.StepSuccess(stepName, name)
	}

	var step dto.SagaStep

	booking.ProfessorName, step = resolve(dto.StepResolveProfessorName, booking.ProfessorEmail, booking.ProfessorName)
	steps = append(steps, step)

	booking.StudentName, step = resolve(dto.StepResolveStudentName, booking.StudentEmail, booking.StudentName)
	steps = append(steps, step)

	if changed {
		if err := s.repo.Update(ctx, *booking); err != nil {
			log.Warn().Err(err).Str("bookingId", booking.ID).Msg("failed to persist resolved names")
		}
	}

	return steps
}

func (s *serviceImpl) notifyBooking(ctx context.Context, booking model.Booking) dto.SagaStep {
	message := notification.BookingMessage{
		ProfessorEmail: booking.ProfessorEmail,
		ProfessorName:  booking.ProfessorName,
		StudentEmail:   booking.StudentEmail,
		StudentName:    booking.StudentName,
		MeetingTitle:   booking.Title,
		Description:    booking.Description,
		Location:       booking.Location,
		StartTime:      booking.StartISO,
		EndTime:        booking.EndISO,
	}

	if err := s.notifier.SendBooking(ctx, message); err != nil {
		log.Warn().Err(err).Str("bookingId", booking.ID).Msg("booking notification failed")

		return dto.StepFailed(dto.StepNotify, err)
	}

	return dto.StepSuccess(dto.StepNotify, constant.Empty)
}

func (s *serviceImpl) notifyCancellation(ctx context.Context, booking model.Booking, reason string) dto.SagaStep {
	message := notification.CancellationMessage{
		ProfessorEmail: booking.ProfessorEmail,
		ProfessorName:  booking.ProfessorName,
		StudentEmail:   booking.StudentEmail,
		StudentName:    booking.StudentName,
		MeetingTitle:   booking.Title,
		StartTime:      booking.StartISO,
		Reason:         reason,
	}

	if err := s.notifier.SendCancellation(ctx, message); err != nil {
		log.Warn().Err(err).Str("bookingId", booking.ID).Msg("cancellation notification failed")

		return dto.StepFailed(dto.StepNotifyCancellation, err)
	}

	return dto.StepSuccess(dto.StepNotifyCancellation, constant.Empty)
}

// mirrorToCalendars creates one event per participant. The two calls are
// independent: a failure on one side never rolls back the other.
func (s *serviceImpl) mirrorToCalendars(ctx context.Context, booking *model.Booking) []dto.SagaStep {
	steps := make([]dto.SagaStep, 0, 2)
	changed := false

	if eventID, err := s.calendar.CreateProfessorEvent(ctx, *booking); err != nil {
		log.Warn().Err(err).Str("bookingId", booking.ID).Msg("professor calendar event creation failed")

		steps = append(steps, dto.StepFailed(dto.StepProfessorCalendar, err))
	} else {
		booking.ProfessorCalendarEventID = &eventID
		changed = true

		steps = append(steps, dto.StepSuccess(dto.StepProfessorCalendar, eventID))
	}

	if eventID, err := s.calendar.CreateStudentEvent(ctx, *booking); err != nil {
		log.Warn().Err(err).Str("bookingId", booking.ID).Msg("student calendar event creation failed")

		steps = append(steps, dto.StepFailed(dto.StepStudentCalendar, err))
	} else {
		booking.StudentCalendarEventID = &eventID
		changed = true

		steps = append(steps, dto.StepSuccess(dto.StepStudentCalendar, eventID))
	}

	if changed {
		if err := s.repo.Update(ctx, *booking); err != nil {
			log.Warn().Err(err).Str("bookingId", booking.ID).Msg("failed to persist calendar event ids")
		}
	}

	return steps
}

// deleteCalendarEvents removes whichever provider events were recorded
// at creation time. Missing ids are reported as skipped.
func (s *serviceImpl) deleteCalendarEvents(ctx context.Context, booking model.Booking, reason string) []dto.SagaStep {
	steps := make([]dto.SagaStep, 0, 2)

	if booking.HasProfessorEvent() {
		eventID := *booking.ProfessorCalendarEventID
		if err := s.calendar.DeleteEvent(ctx, booking.ProfessorEmail, eventID, reason, booking.StudentEmail); err != nil {
			log.Warn().Err(err).Str("bookingId", booking.ID).Msg("professor calendar event deletion failed")

			steps = append(steps, dto.StepFailed(dto.StepDeleteProfessorEvent, err))
		} else {
			steps = append(steps, dto.StepSuccess(dto.StepDeleteProfessorEvent, eventID))
		}
	} else {
		steps = append(steps, dto.StepSkipped(dto.StepDeleteProfessorEvent))
	}

	if booking.HasStudentEvent() {
		eventID := *booking.StudentCalendarEventID
		if err := s.calendar.DeleteEvent(ctx, booking.StudentEmail, eventID, reason, constant.Empty); err != nil {
			log.Warn().Err(err).Str("bookingId", booking.ID).Msg("student calendar event deletion failed")

			steps = append(steps, dto.StepFailed(dto.StepDeleteStudentEvent, err))
		} else {
			steps = append(steps, dto.StepSuccess(dto.StepDeleteStudentEvent, eventID))
		}
	} else {
		steps = append(steps, dto.StepSkipped(dto.StepDeleteStudentEvent))
	}

	return steps
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	go func() {
		detached := context.WithoutCancel(ctx)

		if err := s.cache.Delete(detached, shared.BuildCacheKey(cacheKeyGet, id)); err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to invalidate booking cache")
		}

		shared.InvalidateCaches(detached, s.cache, cacheKeyStudentList)
		shared.InvalidateCaches(detached, s.cache, cacheKeyProfessorList)
	}()
}
