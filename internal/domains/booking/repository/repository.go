package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"profmeet/infras/otel"
	"profmeet/infras/postgres"
	"profmeet/internal/domains/booking/model"
	"profmeet/shared/constant"
	"profmeet/shared/logger"
	"profmeet/shared/timezone"
)

// BookingRepository persists meeting bookings. Get returns the zero
// value when no row matches; callers check the ID.
type BookingRepository interface {
	Insert(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, error)
	Update(ctx context.Context, booking model.Booking) error
	ListByStudentEmail(ctx context.Context, email string) ([]model.Booking, error)
	ListByProfessorEmail(ctx context.Context, email string) ([]model.Booking, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BookingRepository {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Insert")
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s
		(id, professor_email, professor_name, student_email, student_name, title, description, location,
		start_iso, end_iso, professor_calendar_event_id, student_calendar_event_id, status, created_at, updated_at)
		VALUES (:id, :professor_email, :professor_name, :student_email, :student_name, :title, :description, :location,
		:start_iso, :end_iso, :professor_calendar_event_id, :student_calendar_event_id, :status, :created_at, :updated_at)`,
		model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, booking)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Get")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var booking model.Booking

	err := repo.db.Read.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return booking, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to get %s: %w", model.EntityName, err)
	}

	return booking, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, booking model.Booking) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Update")
	defer scope.End()

	booking.UpdatedAt = timezone.Now()

	query := fmt.Sprintf(`UPDATE %s SET
		professor_name = :professor_name,
		student_name = :student_name,
		professor_calendar_event_id = :professor_calendar_event_id,
		student_calendar_event_id = :student_calendar_event_id,
		status = :status,
		updated_at = :updated_at
		WHERE id = :id`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, booking)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) ListByStudentEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return repo.listByField(ctx, model.FieldStudentEmail, email, "ListByStudentEmail")
}

func (repo *repositoryImpl) ListByProfessorEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return repo.listByField(ctx, model.FieldProfessorEmail, email, "ListByProfessorEmail")
}

func (repo *repositoryImpl) listByField(ctx context.Context, field, value, operation string) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking."+operation)
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 ORDER BY %s DESC", model.TableName, field, model.FieldStartISO)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bookings := make([]model.Booking, 0)

	err := repo.db.Read.SelectContext(ctx, &bookings, query, value)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list %s: %w", model.EntityName, err)
	}

	return bookings, nil
}
