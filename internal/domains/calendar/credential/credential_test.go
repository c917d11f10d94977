package credential_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

	authorityMocks "profmeet/infras/googleoauth/mocks"
	"profmeet/infras/otel/mocks"
	"profmeet/internal/domains/calendar/credential"
	calendarMocks "profmeet/internal/domains/calendar/mocks"
	"profmeet/internal/domains/calendar/model"
)

func TestCredentialManager_AuthorizedToken(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	storedCredential := func(expiry time.Time) model.Credential {
		return model.Credential{
			Email:        "prof@uni.edu",
			AccessToken:  "stale-access",
			RefreshToken: "refresh-1",
			ExpiryMillis: expiry.UnixMilli(),
		}
	}

	newManager := func(ctrl *gomock.Controller) (credential.Manager, *calendarMocks.MockCredentialStore, *authorityMocks.MockTokenAuthority) {
		mockStore := calendarMocks.NewMockCredentialStore(ctrl)
		mockAuthority := authorityMocks.NewMockTokenAuthority(ctrl)
		mockClock := calendarMocks.NewMockClock(ctrl)
		mockClock.EXPECT().Now().Return(now).AnyTimes()

		return credential.New(mockStore, mockAuthority, mockClock, mocks.NewOtel()), mockStore, mockAuthority
	}

	t.Run("unlinked email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		manager, mockStore, _ := newManager(ctrl)

		mockStore.EXPECT().Get(gomock.Any(), "nobody@uni.edu").Return(model.Credential{}, nil)

		_, state, err := manager.AuthorizedToken(context.Background(), "nobody@uni.edu")

		require.ErrorIs(t, err, credential.ErrNotLinked)
		assert.Equal(t, credential.StateUnlinked, state)
	})

	t.Run("token far from expiry is returned untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		manager, mockStore, _ := newManager(ctrl)

		mockStore.EXPECT().Get(gomock.Any(), "prof@uni.edu").Return(storedCredential(now.Add(10*time.Minute)), nil)

		token, state, err := manager.AuthorizedToken(context.Background(), "prof@uni.edu")

		require.NoError(t, err)
		assert.Equal(t, credential.StateLinkedValid, state)
		assert.Equal(t, "stale-access", token.AccessToken)
	})

	t.Run("token inside the refresh window is refreshed and persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		manager, mockStore, mockAuthority := newManager(ctrl)

		oldExpiry := now.Add(30 * time.Second)
		newExpiry := now.Add(time.Hour)

		mockStore.EXPECT().Get(gomock.Any(), "prof@uni.edu").Return(storedCredential(oldExpiry), nil)
		mockAuthority.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(&oauth2.Token{
			AccessToken: "fresh-access",
			Expiry:      newExpiry,
		}, nil)
		mockStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, persisted model.Credential) error {
				assert.Equal(t, "fresh-access", persisted.AccessToken)
				assert.Greater(t, persisted.ExpiryMillis, oldExpiry.UnixMilli())
				assert.Equal(t, "refresh-1", persisted.RefreshToken)

				return nil
			})

		token, state, err := manager.AuthorizedToken(context.Background(), "prof@uni.edu")

		require.NoError(t, err)
		assert.Equal(t, credential.StateRefreshed, state)
		assert.Equal(t, "fresh-access", token.AccessToken)
		assert.True(t, token.Expiry.After(oldExpiry))
		assert.NotEqual(t, "stale-access", token.AccessToken)
	})

	t.Run("rotated refresh token replaces the stored one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		manager, mockStore, mockAuthority := newManager(ctrl)

		mockStore.EXPECT().Get(gomock.Any(), "prof@uni.edu").Return(storedCredential(now.Add(-time.Minute)), nil)
		mockAuthority.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(&oauth2.Token{
			AccessToken:  "fresh-access",
			RefreshToken: "refresh-2",
			Expiry:       now.Add(time.Hour),
		}, nil)
		mockStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, persisted model.Credential) error {
				assert.Equal(t, "refresh-2", persisted.RefreshToken)

				return nil
			})

		_, state, err := manager.AuthorizedToken(context.Background(), "prof@uni.edu")

		require.NoError(t, err)
		assert.Equal(t, credential.StateRefreshed, state)
	})

	t.Run("cancelled caller does not fail the shared refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		manager, mockStore, mockAuthority := newManager(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		mockStore.EXPECT().Get(gomock.Any(), "prof@uni.edu").Return(storedCredential(now.Add(30*time.Second)), nil)
		mockAuthority.EXPECT().Refresh(gomock.Any(), "refresh-1").DoAndReturn(
			func(refreshCtx context.Context, _ string) (*oauth2.Token, error) {
				assert.NoError(t, refreshCtx.Err())

				return &oauth2.Token{AccessToken: "fresh-access", Expiry: now.Add(time.Hour)}, nil
			})
		mockStore.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

		token, state, err := manager.AuthorizedToken(ctx, "prof@uni.edu")

		require.NoError(t, err)
		assert.Equal(t, credential.StateRefreshed, state)
		assert.Equal(t, "fresh-access", token.AccessToken)
	})

	t.Run("failed refresh returns the stale token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		manager, mockStore, mockAuthority := newManager(ctrl)

		mockStore.EXPECT().Get(gomock.Any(), "prof@uni.edu").Return(storedCredential(now.Add(-time.Hour)), nil)
		mockAuthority.EXPECT().Refresh(gomock.Any(), "refresh-1").Return(nil, errors.New("invalid_grant"))

		token, state, err := manager.AuthorizedToken(context.Background(), "prof@uni.edu")

		require.NoError(t, err)
		assert.Equal(t, credential.StateRefreshFailed, state)
		assert.Equal(t, "stale-access", token.AccessToken)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		manager, mockStore, _ := newManager(ctrl)

		mockStore.EXPECT().Get(gomock.Any(), "prof@uni.edu").Return(model.Credential{}, errors.New("database error"))

		_, _, err := manager.AuthorizedToken(context.Background(), "prof@uni.edu")

		assert.Error(t, err)
	})
}
