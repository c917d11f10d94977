package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"profmeet/infras/otel"
	"profmeet/infras/postgres"
	"profmeet/internal/domains/calendar/model"
	"profmeet/shared/constant"
	"profmeet/shared/logger"
	"profmeet/shared/timezone"
)

// CredentialStore is the durable mapping from user email to OAuth2
// credential. The credential manager is the only writer.
type CredentialStore interface {
	Get(ctx context.Context, email string) (model.Credential, error)
	Upsert(ctx context.Context, credential model.Credential) error
	Exist(ctx context.Context, email string) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CredentialStore {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Get(ctx context.Context, email string) (model.Credential, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".credential.Get")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.TableName, model.FieldEmail)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var credential model.Credential

	err := repo.db.Read.GetContext(ctx, &credential, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return credential, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return credential, fmt.Errorf("failed to get %s: %w", model.EntityName, err)
	}

	return credential, nil
}

func (repo *repositoryImpl) Upsert(ctx context.Context, credential model.Credential) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".credential.Upsert")
	defer scope.End()

	now := timezone.Now()
	credential.UpdatedAt = now

	if credential.CreatedAt.IsZero() {
		credential.CreatedAt = now
	}

	query := fmt.Sprintf(`INSERT INTO %s (email, access_token, refresh_token, expiry_millis, created_at, updated_at)
		VALUES (:email, :access_token, :refresh_token, :expiry_millis, :created_at, :updated_at)
		ON CONFLICT (email) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expiry_millis = EXCLUDED.expiry_millis,
			updated_at = EXCLUDED.updated_at`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, credential)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert %s: %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, email string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".credential.Exist")
	defer scope.End()

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)", model.TableName, model.FieldEmail)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	err := repo.db.Read.GetContext(ctx, &exist, query, email)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist %s: %w", model.EntityName, err)
	}

	return exist, nil
}
