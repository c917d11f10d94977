package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profmeet/config"
	"profmeet/infras/otel/mocks"
	"profmeet/internal/clients/notification"
)

func newSender(baseURL string) notification.Sender {
	cfg := &config.Config{}
	cfg.External.Notification.URL = baseURL
	cfg.External.TimeoutSeconds = 5

	return notification.New(cfg, mocks.NewOtel())
}

func TestSender_SendBooking(t *testing.T) {
	t.Run("posts the booking payload", func(t *testing.T) {
		var received notification.BookingMessage

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "/notifications/booking", request.URL.Path)
			require.NoError(t, json.NewDecoder(request.Body).Decode(&received))

			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		sender := newSender(server.URL)

		err := sender.SendBooking(context.Background(), notification.BookingMessage{
			ProfessorEmail: "prof@uni.edu",
			StudentEmail:   "student@uni.edu",
			MeetingTitle:   "Thesis sync",
			StartTime:      "2026-09-01T10:00:00Z",
			EndTime:        "2026-09-01T10:30:00Z",
		})

		require.NoError(t, err)
		assert.Equal(t, "prof@uni.edu", received.ProfessorEmail)
		assert.Equal(t, "Thesis sync", received.MeetingTitle)
	})

	t.Run("server errors surface", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			http.Error(writer, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		sender := newSender(server.URL)

		err := sender.SendBooking(context.Background(), notification.BookingMessage{})

		assert.Error(t, err)
	})
}

func TestSender_SendCancellation(t *testing.T) {
	var received notification.CancellationMessage

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/notifications/cancellation", request.URL.Path)
		require.NoError(t, json.NewDecoder(request.Body).Decode(&received))

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := newSender(server.URL)

	err := sender.SendCancellation(context.Background(), notification.CancellationMessage{
		ProfessorEmail: "prof@uni.edu",
		StudentEmail:   "student@uni.edu",
		Reason:         "sick",
	})

	require.NoError(t, err)
	assert.Equal(t, "sick", received.Reason)
}
