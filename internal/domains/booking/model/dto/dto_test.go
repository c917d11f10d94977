package dto_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profmeet/internal/domains/booking/model"
	"profmeet/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		ProfessorEmail: "prof@uni.edu",
		StudentEmail:   "student@uni.edu",
		Title:          "Thesis sync",
		StartISO:       "2026-09-01T10:00:00Z",
		EndISO:         "2026-09-01T10:30:00Z",
	}

	booking := req.ToModel()

	_, err := uuid.Parse(booking.ID)
	require.NoError(t, err)

	assert.Equal(t, model.StatusBooked, booking.Status)
	assert.Equal(t, "prof@uni.edu", booking.ProfessorEmail)
	assert.Equal(t, "student@uni.edu", booking.StudentEmail)
	assert.Nil(t, booking.ProfessorCalendarEventID)
	assert.Nil(t, booking.StudentCalendarEventID)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)
}

func TestSagaSteps(t *testing.T) {
	success := dto.StepSuccess(dto.StepProfessorCalendar, "ev-1")
	assert.Equal(t, dto.StepStatusSuccess, success.Status)
	assert.Equal(t, "ev-1", success.Ref)
	assert.Empty(t, success.Error)

	skipped := dto.StepSkipped(dto.StepDeleteStudentEvent)
	assert.Equal(t, dto.StepStatusSkipped, skipped.Status)

	failed := dto.StepFailed(dto.StepNotify, errors.New("smtp down"))
	assert.Equal(t, dto.StepStatusFailed, failed.Status)
	assert.Equal(t, "smtp down", failed.Error)
}

func TestBookingResponse_FromModel(t *testing.T) {
	eventID := "ev-prof"

	booking := model.Booking{
		ID:                       "booking-1",
		ProfessorEmail:           "prof@uni.edu",
		StudentEmail:             "student@uni.edu",
		StartISO:                 "2026-09-01T10:00:00Z",
		EndISO:                   "2026-09-01T10:30:00Z",
		ProfessorCalendarEventID: &eventID,
		Status:                   model.StatusBooked,
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, model.StatusBooked, res.Status)
	require.NotNil(t, res.ProfessorCalendarEventID)
	assert.Equal(t, "ev-prof", *res.ProfessorCalendarEventID)
	assert.Nil(t, res.StudentCalendarEventID)
	assert.Empty(t, res.Steps)
}
