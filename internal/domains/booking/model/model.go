package model

import (
	"profmeet/shared/model"
)

const (
	TableName  = "meeting_bookings"
	EntityName = "booking"

	FieldID                       = "id"
	FieldProfessorEmail           = "professor_email"
	FieldProfessorName            = "professor_name"
	FieldStudentEmail             = "student_email"
	FieldStudentName              = "student_name"
	FieldTitle                    = "title"
	FieldDescription              = "description"
	FieldLocation                 = "location"
	FieldStartISO                 = "start_iso"
	FieldEndISO                   = "end_iso"
	FieldProfessorCalendarEventID = "professor_calendar_event_id"
	FieldStudentCalendarEventID   = "student_calendar_event_id"
	FieldStatus                   = "status"
)

const (
	StatusBooked    = "BOOKED"
	StatusCancelled = "CANCELLED"
)

// Booking is a student/professor meeting. Rows are never deleted, only
// transitioned to CANCELLED. The calendar event id fields are set only
// when the corresponding provider call returned an id.
type Booking struct {
	ID                       string  `db:"id"`
	ProfessorEmail           string  `db:"professor_email"`
	ProfessorName            string  `db:"professor_name"`
	StudentEmail             string  `db:"student_email"`
	StudentName              string  `db:"student_name"`
	Title                    string  `db:"title"`
	Description              string  `db:"description"`
	Location                 string  `db:"location"`
	StartISO                 string  `db:"start_iso"`
	EndISO                   string  `db:"end_iso"`
	ProfessorCalendarEventID *string `db:"professor_calendar_event_id"`
	StudentCalendarEventID   *string `db:"student_calendar_event_id"`
	Status                   string  `db:"status"`
	model.Metadata
}

// HasProfessorEvent reports whether a provider event id is stored for
// the professor's calendar.
func (b *Booking) HasProfessorEvent() bool {
	return b.ProfessorCalendarEventID != nil && *b.ProfessorCalendarEventID != ""
}

// HasStudentEvent reports whether a provider event id is stored for the
// student's calendar.
func (b *Booking) HasStudentEvent() bool {
	return b.StudentCalendarEventID != nil && *b.StudentCalendarEventID != ""
}
