package calendarclient_test

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
	"profmeet/internal/clients/calendarclient"
	"profmeet/internal/domains/booking/model"
	calendardto "profmeet/internal/domains/calendar/model/dto"
)

func newClient(baseURL string) calendarclient.Client {
	cfg := &config.Config{}
	cfg.External.Calendar.URL = baseURL
	cfg.External.TimeoutSeconds = 5
	cfg.App.APIKey = "internal-key"

	return calendarclient.New(cfg, mocks.NewOtel())
}

func testBooking() model.Booking {
	return model.Booking{
		ID:             "booking-1",
		ProfessorEmail: "prof@uni.edu",
		ProfessorName:  "Ada Lovelace",
		StudentEmail:   "student@uni.edu",
		StudentName:    "Carl Gauss",
		StartISO:       "2026-09-01T10:00:00Z",
		EndISO:         "2026-09-01T10:30:00Z",
	}
}

func TestClient_CreateProfessorEvent(t *testing.T) {
	var received calendardto.CreateEventRequest

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/v1/calendar/events", request.URL.Path)
		assert.Equal(t, "prof@uni.edu", request.URL.Query().Get("email"))
		assert.Equal(t, "internal-key", request.Header.Get("X-API-Key"))
		require.NoError(t, json.NewDecoder(request.Body).Decode(&received))

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"data":{"id":"ev-prof"}}`))
	}))
	defer server.Close()

	client := newClient(server.URL)

	eventID, err := client.CreateProfessorEvent(context.Background(), testBooking())

	require.NoError(t, err)
	assert.Equal(t, "ev-prof", eventID)
	assert.Equal(t, "Meeting", received.Summary)
	assert.Contains(t, received.Description, "Student: Carl Gauss (student@uni.edu)")
}

func TestClient_CreateStudentEvent(t *testing.T) {
	var received calendardto.CreateEventRequest

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "student@uni.edu", request.URL.Query().Get("email"))
		require.NoError(t, json.NewDecoder(request.Body).Decode(&received))

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"data":{"id":"ev-stud"}}`))
	}))
	defer server.Close()

	client := newClient(server.URL)

	booking := testBooking()
	booking.Description = "Bring the draft"

	eventID, err := client.CreateStudentEvent(context.Background(), booking)

	require.NoError(t, err)
	assert.Equal(t, "ev-stud", eventID)
	assert.Equal(t, "Meeting with Professor", received.Summary)
	assert.Contains(t, received.Description, "Bring the draft")
	assert.Contains(t, received.Description, "Professor: Ada Lovelace (prof@uni.edu)")
}

func TestClient_CreateEvent_Failures(t *testing.T) {
	t.Run("missing event id is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"data":{}}`))
		}))
		defer server.Close()

		client := newClient(server.URL)

		_, err := client.CreateProfessorEvent(context.Background(), testBooking())

		assert.Error(t, err)
	})

	t.Run("upstream errors surface", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			http.Error(writer, "boom", http.StatusBadGateway)
		}))
		defer server.Close()

		client := newClient(server.URL)

		_, err := client.CreateStudentEvent(context.Background(), testBooking())

		assert.Error(t, err)
	})
}

func TestClient_DeleteEvent(t *testing.T) {
	t.Run("passes reason and student email through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodDelete, request.Method)
			assert.Equal(t, "/v1/calendar/events/ev-prof", request.URL.Path)
			assert.Equal(t, "prof@uni.edu", request.URL.Query().Get("email"))
			assert.Equal(t, "sick", request.URL.Query().Get("reason"))
			assert.Equal(t, "student@uni.edu", request.URL.Query().Get("studentEmail"))
			assert.Equal(t, "internal-key", request.Header.Get("X-API-Key"))

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newClient(server.URL)

		err := client.DeleteEvent(context.Background(), "prof@uni.edu", "ev-prof", "sick", "student@uni.edu")

		assert.NoError(t, err)
	})

	t.Run("upstream errors surface", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			http.Error(writer, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newClient(server.URL)

		err := client.DeleteEvent(context.Background(), "prof@uni.edu", "ev-prof", "", "")

		assert.Error(t, err)
	})
}
