package dto

import (
	"github.com/google/uuid"

	"profmeet/internal/domains/booking/model"
	"profmeet/shared/dto"
	"profmeet/shared/timezone"
)

// Step names reported in booking responses, in execution order.
const (
	StepPersistBooking       = "persistBooking"
	StepResolveProfessorName = "resolveProfessorName"
	StepResolveStudentName   = "resolveStudentName"
	StepNotify               = "notify"
	StepProfessorCalendar    = "professorCalendar"
	StepStudentCalendar      = "studentCalendar"

	StepPersistCancellation  = "persistCancellation"
	StepNotifyCancellation   = "notifyCancellation"
	StepDeleteProfessorEvent = "deleteProfessorEvent"
	StepDeleteStudentEvent   = "deleteStudentEvent"
)

const (
	StepStatusSuccess = "success"
	StepStatusSkipped = "skipped"
	StepStatusFailed  = "failed"
)

// SagaStep records the outcome of one side effect of a booking
// operation. Failed steps do not fail the request; they are surfaced
// here so callers can tell which downstream actions actually happened.
type SagaStep struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Ref    string `json:"ref,omitempty"`
	Error  string `json:"error,omitempty"`
}

func StepSuccess(name, ref string) SagaStep {
	return SagaStep{Name: name, Status: StepStatusSuccess, Ref: ref}
}

func StepSkipped(name string) SagaStep {
	return SagaStep{Name: name, Status: StepStatusSkipped}
}

func StepFailed(name string, err error) SagaStep {
	step := SagaStep{Name: name, Status: StepStatusFailed}
	if err != nil {
		step.Error = err.Error()
	}

	return step
}

type CreateBookingRequest struct {
	ProfessorEmail string `json:"professorEmail" validate:"required,max=255"`
	StudentEmail   string `json:"studentEmail"   validate:"required,max=255"`
	ProfessorName  string `json:"professorName"  validate:"omitempty,max=255"`
	StudentName    string `json:"studentName"    validate:"omitempty,max=255"`
	Title          string `json:"title"          validate:"omitempty,max=500"`
	Description    string `json:"description"    validate:"omitempty"`
	Location       string `json:"location"       validate:"omitempty,max=500"`
	StartISO       string `json:"startIso"       validate:"required"`
	EndISO         string `json:"endIso"         validate:"required"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	now := timezone.Now()

	booking := model.Booking{
		ID:             uuid.NewString(),
		ProfessorEmail: c.ProfessorEmail,
		ProfessorName:  c.ProfessorName,
		StudentEmail:   c.StudentEmail,
		StudentName:    c.StudentName,
		Title:          c.Title,
		Description:    c.Description,
		Location:       c.Location,
		StartISO:       c.StartISO,
		EndISO:         c.EndISO,
		Status:         model.StatusBooked,
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now

	return booking
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

type BookingResponse struct {
	ID                       string       `json:"id"`
	ProfessorEmail           string       `json:"professorEmail"`
	ProfessorName            string       `json:"professorName,omitempty"`
	StudentEmail             string       `json:"studentEmail"`
	StudentName              string       `json:"studentName,omitempty"`
	Title                    string       `json:"title,omitempty"`
	Description              string       `json:"description,omitempty"`
	Location                 string       `json:"location,omitempty"`
	StartISO                 string       `json:"startIso"`
	EndISO                   string       `json:"endIso"`
	ProfessorCalendarEventID *string      `json:"professorCalendarEventId"`
	StudentCalendarEventID   *string      `json:"studentCalendarEventId"`
	Status                   string       `json:"status"`
	Steps                    []SagaStep   `json:"steps,omitempty"`
	Metadata                 dto.Metadata `json:"metadata"`
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.ID = booking.ID
	b.ProfessorEmail = booking.ProfessorEmail
	b.ProfessorName = booking.ProfessorName
	b.StudentEmail = booking.StudentEmail
	b.StudentName = booking.StudentName
	b.Title = booking.Title
	b.Description = booking.Description
	b.Location = booking.Location
	b.StartISO = booking.StartISO
	b.EndISO = booking.EndISO
	b.ProfessorCalendarEventID = booking.ProfessorCalendarEventID
	b.StudentCalendarEventID = booking.StudentCalendarEventID
	b.Status = booking.Status
	b.Metadata.FromModel(booking.Metadata)
}

type CancelBookingResponse struct {
	ID     string     `json:"id"`
	Status string     `json:"status"`
	Steps  []SagaStep `json:"steps,omitempty"`
}
