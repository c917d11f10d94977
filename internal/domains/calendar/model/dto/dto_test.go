package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendarapi "google.golang.org/api/calendar/v3"

	"profmeet/internal/domains/calendar/model/dto"
)

func TestEventProjection_FromProviderEvent(t *testing.T) {
	tests := []struct {
		name       string
		event      *calendarapi.Event
		wantOk     bool
		wantTitle  string
		wantStart  string
		wantEnd    string
		wantAllDay bool
	}{
		{
			name: "timed event",
			event: &calendarapi.Event{
				Id:      "ev-1",
				Summary: "Office hours",
				Start:   &calendarapi.EventDateTime{DateTime: "2026-09-01T10:00:00Z"},
				End:     &calendarapi.EventDateTime{DateTime: "2026-09-01T11:00:00Z"},
			},
			wantOk:    true,
			wantTitle: "Office hours",
			wantStart: "2026-09-01T10:00:00Z",
			wantEnd:   "2026-09-01T11:00:00Z",
		},
		{
			name: "all day event without title",
			event: &calendarapi.Event{
				Id:    "ev-2",
				Start: &calendarapi.EventDateTime{Date: "2026-09-02"},
				End:   &calendarapi.EventDateTime{Date: "2026-09-03"},
			},
			wantOk:     true,
			wantTitle:  "(No Title)",
			wantStart:  "2026-09-02",
			wantEnd:    "2026-09-03",
			wantAllDay: true,
		},
		{
			name: "missing end falls back to start",
			event: &calendarapi.Event{
				Id:      "ev-3",
				Summary: "Open ended",
				Start:   &calendarapi.EventDateTime{DateTime: "2026-09-01T10:00:00Z"},
			},
			wantOk:    true,
			wantTitle: "Open ended",
			wantStart: "2026-09-01T10:00:00Z",
			wantEnd:   "2026-09-01T10:00:00Z",
		},
		{
			name:   "event without start is dropped",
			event:  &calendarapi.Event{Id: "ev-4", Summary: "Ghost"},
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var projection dto.EventProjection

			ok := projection.FromProviderEvent(tt.event)

			require.Equal(t, tt.wantOk, ok)

			if !tt.wantOk {
				return
			}

			assert.Equal(t, tt.wantTitle, projection.Title)
			assert.Equal(t, tt.wantStart, projection.Start)
			assert.Equal(t, tt.wantEnd, projection.End)
			assert.Equal(t, tt.wantAllDay, projection.AllDay)
		})
	}
}

func TestCreateEventRequest_ParseTimes(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		req := dto.CreateEventRequest{
			Start: "2026-09-01T10:00:00Z",
			End:   "2026-09-01T10:30:00Z",
		}

		start, end, err := req.ParseTimes()

		require.NoError(t, err)
		assert.True(t, end.After(start))
	})

	t.Run("invalid start", func(t *testing.T) {
		req := dto.CreateEventRequest{
			Start: "next tuesday",
			End:   "2026-09-01T10:30:00Z",
		}

		_, _, err := req.ParseTimes()

		assert.Error(t, err)
	})
}
