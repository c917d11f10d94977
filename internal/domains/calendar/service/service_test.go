package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"profmeet/config"
	authorityMocks "profmeet/infras/googleoauth/mocks"
	"profmeet/infras/otel/mocks"
	"profmeet/internal/domains/calendar/credential"
	calendarMocks "profmeet/internal/domains/calendar/mocks"
	"profmeet/internal/domains/calendar/model"
	"profmeet/internal/domains/calendar/model/dto"
	"profmeet/internal/domains/calendar/service"
	"profmeet/shared/failure"
)

func testFactory(server *httptest.Server) service.ServiceFactory {
	return func(ctx context.Context, _ *oauth2.Token) (*calendarapi.Service, error) {
		return calendarapi.NewService(ctx, option.WithoutAuthentication(), option.WithEndpoint(server.URL))
	}
}

func validToken() *oauth2.Token {
	return &oauth2.Token{AccessToken: "access", TokenType: "Bearer"}
}

func TestCalendarService_IsLinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := calendarMocks.NewMockCredentialStore(ctrl)
	mockManager := calendarMocks.NewMockManager(ctrl)
	mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

	svc := service.New(mockStore, mockManager, mockAuthority, service.DefaultServiceFactory, &config.Config{}, mocks.NewOtel())

	mockStore.EXPECT().Exist(gomock.Any(), "prof@uni.edu").Return(true, nil)

	linked, err := svc.IsLinked(context.Background(), "prof@uni.edu")

	require.NoError(t, err)
	assert.True(t, linked)
}

func TestCalendarService_AuthURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := calendarMocks.NewMockCredentialStore(ctrl)
	mockManager := calendarMocks.NewMockManager(ctrl)
	mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

	svc := service.New(mockStore, mockManager, mockAuthority, service.DefaultServiceFactory, &config.Config{}, mocks.NewOtel())

	t.Run("email rides in the state parameter", func(t *testing.T) {
		mockAuthority.EXPECT().AuthCodeURL("prof@uni.edu").Return("https://accounts.example.com/consent?state=prof%40uni.edu")

		url, err := svc.AuthURL(context.Background(), "prof@uni.edu")

		require.NoError(t, err)
		assert.Contains(t, url, "state=prof")
	})

	t.Run("email is required", func(t *testing.T) {
		_, err := svc.AuthURL(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestCalendarService_HandleCallback(t *testing.T) {
	t.Run("re-consent keeps the stored refresh token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockManager := calendarMocks.NewMockManager(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

		svc := service.New(mockStore, mockManager, mockAuthority, service.DefaultServiceFactory, &config.Config{}, mocks.NewOtel())

		mockAuthority.EXPECT().Exchange(gomock.Any(), "auth-code").Return(&oauth2.Token{AccessToken: "fresh-access"}, nil)
		mockStore.EXPECT().Get(gomock.Any(), "prof@uni.edu").Return(model.Credential{
			Email:        "prof@uni.edu",
			RefreshToken: "keep-me",
		}, nil)
		mockStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, persisted model.Credential) error {
				assert.Equal(t, "fresh-access", persisted.AccessToken)
				assert.Equal(t, "keep-me", persisted.RefreshToken)

				return nil
			})

		err := svc.HandleCallback(context.Background(), "auth-code", "prof@uni.edu")

		assert.NoError(t, err)
	})

	t.Run("missing code or state is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockManager := calendarMocks.NewMockManager(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

		svc := service.New(mockStore, mockManager, mockAuthority, service.DefaultServiceFactory, &config.Config{}, mocks.NewOtel())

		err := svc.HandleCallback(context.Background(), "", "prof@uni.edu")

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestCalendarService_ListEvents(t *testing.T) {
	t.Run("projects events and skips startless ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, "startTime", request.URL.Query().Get("orderBy"))
			assert.Equal(t, "true", request.URL.Query().Get("singleEvents"))

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(calendarapi.Events{
				Items: []*calendarapi.Event{
					{
						Id:      "ev-1",
						Summary: "Office hours",
						Start:   &calendarapi.EventDateTime{DateTime: "2026-09-01T10:00:00Z"},
						End:     &calendarapi.EventDateTime{DateTime: "2026-09-01T11:00:00Z"},
					},
					{
						Id:    "ev-2",
						Start: &calendarapi.EventDateTime{Date: "2026-09-02"},
					},
					{
						Id:      "ev-3",
						Summary: "No start, dropped",
					},
				},
			})
		}))
		defer server.Close()

		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockManager := calendarMocks.NewMockManager(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

		svc := service.New(mockStore, mockManager, mockAuthority, testFactory(server), &config.Config{}, mocks.NewOtel())

		mockManager.EXPECT().AuthorizedToken(gomock.Any(), "prof@uni.edu").Return(validToken(), credential.StateLinkedValid, nil)

		events, err := svc.ListEvents(context.Background(), "prof@uni.edu", 10)

		require.NoError(t, err)
		require.Len(t, events, 2)

		assert.Equal(t, "Office hours", events[0].Title)
		assert.False(t, events[0].AllDay)

		assert.Equal(t, "(No Title)", events[1].Title)
		assert.True(t, events[1].AllDay)
		assert.Equal(t, events[1].Start, events[1].End)
	})

	t.Run("unlinked calendar maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockManager := calendarMocks.NewMockManager(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

		svc := service.New(mockStore, mockManager, mockAuthority, service.DefaultServiceFactory, &config.Config{}, mocks.NewOtel())

		mockManager.EXPECT().AuthorizedToken(gomock.Any(), "nobody@uni.edu").Return(nil, credential.StateUnlinked, credential.ErrNotLinked)

		_, err := svc.ListEvents(context.Background(), "nobody@uni.edu", 10)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCalendarService_CreateEvent(t *testing.T) {
	t.Run("empty summary falls back to the default title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var received calendarapi.Event

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			require.NoError(t, json.NewDecoder(request.Body).Decode(&received))

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(calendarapi.Event{Id: "ev-created", HtmlLink: "https://calendar.example.com/ev-created"})
		}))
		defer server.Close()

		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockManager := calendarMocks.NewMockManager(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

		svc := service.New(mockStore, mockManager, mockAuthority, testFactory(server), &config.Config{}, mocks.NewOtel())

		mockManager.EXPECT().AuthorizedToken(gomock.Any(), "prof@uni.edu").Return(validToken(), credential.StateLinkedValid, nil)

		res, err := svc.CreateEvent(context.Background(), "prof@uni.edu", dto.CreateEventRequest{
			Start: "2026-09-01T10:00:00Z",
			End:   "2026-09-01T10:30:00Z",
		})

		require.NoError(t, err)
		assert.Equal(t, "ev-created", res.ID)
		assert.Equal(t, "Meeting", received.Summary)
	})

	t.Run("unparseable timestamps are a bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockManager := calendarMocks.NewMockManager(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

		svc := service.New(mockStore, mockManager, mockAuthority, service.DefaultServiceFactory, &config.Config{}, mocks.NewOtel())

		_, err := svc.CreateEvent(context.Background(), "prof@uni.edu", dto.CreateEventRequest{
			Start: "tomorrow at ten",
			End:   "2026-09-01T10:30:00Z",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestCalendarService_DeleteEvent(t *testing.T) {
	t.Run("deletes an existing event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodDelete, request.Method)
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockManager := calendarMocks.NewMockManager(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

		svc := service.New(mockStore, mockManager, mockAuthority, testFactory(server), &config.Config{}, mocks.NewOtel())

		mockManager.EXPECT().AuthorizedToken(gomock.Any(), "prof@uni.edu").Return(validToken(), credential.StateLinkedValid, nil)

		deleted, err := svc.DeleteEvent(context.Background(), "prof@uni.edu", "ev-1")

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("an already gone event is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			http.Error(writer, `{"error":{"code":404,"message":"Not Found"}}`, http.StatusNotFound)
		}))
		defer server.Close()

		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockManager := calendarMocks.NewMockManager(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)

		svc := service.New(mockStore, mockManager, mockAuthority, testFactory(server), &config.Config{}, mocks.NewOtel())

		mockManager.EXPECT().AuthorizedToken(gomock.Any(), "prof@uni.edu").Return(validToken(), credential.StateLinkedValid, nil)

		deleted, err := svc.DeleteEvent(context.Background(), "prof@uni.edu", "ev-gone")

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
