package dto

import (
	"time"

	calendarapi "google.golang.org/api/calendar/v3"

	"profmeet/shared/constant"
)

// EventProjection is the flattened view of a provider event exposed by
// the calendar API. AllDay is true iff the event carries a date-only
// start.
type EventProjection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	AllDay      bool   `json:"allDay"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// FromProviderEvent projects a provider event. It returns false when the
// event has no start representation at all; such events are skipped.
func (p *EventProjection) FromProviderEvent(event *calendarapi.Event) bool {
	start, allDay := eventTime(event.Start)
	if start == constant.Empty {
		return false
	}

	end, _ := eventTime(event.End)
	if end == constant.Empty {
		end = start
	}

	title := event.Summary
	if title == constant.Empty {
		title = "(No Title)"
	}

	p.ID = event.Id
	p.Title = title
	p.Start = start
	p.End = end
	p.AllDay = allDay
	p.Description = event.Description
	p.Location = event.Location

	return true
}

func eventTime(moment *calendarapi.EventDateTime) (value string, dateOnly bool) {
	if moment == nil {
		return constant.Empty, false
	}

	if moment.DateTime != constant.Empty {
		return moment.DateTime, false
	}

	return moment.Date, moment.Date != constant.Empty
}

type CreateEventRequest struct {
	Summary     string `json:"summary"     validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty"`
	Start       string `json:"start"       validate:"required"`
	End         string `json:"end"         validate:"required"`
	Location    string `json:"location"    validate:"omitempty,max=200"`
}

// ParseTimes validates that both bounds are RFC3339 timestamps.
func (c *CreateEventRequest) ParseTimes() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, c.Start)
	if err != nil {
		return start, end, err
	}

	end, err = time.Parse(time.RFC3339, c.End)

	return start, end, err
}

type CreatedEventResponse struct {
	ID       string `json:"id"`
	HTMLLink string `json:"htmlLink,omitempty"`
}

type StatusResponse struct {
	Connected bool `json:"connected"`
}

type AuthURLResponse struct {
	URL string `json:"url"`
}
