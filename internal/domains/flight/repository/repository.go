package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"flightapi/infras/otel"
	"flightapi/infras/postgres"
	"flightapi/internal/domains/flight/model"
	"flightapi/shared/constant"
	gDto "flightapi/shared/dto"
	"flightapi/shared/logger"
	gRepo "flightapi/shared/repository"
)

type Flight interface {
	Insert(ctx context.Context, model model.Flight) (model.Flight, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Flight, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Flight, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
	ReplaceAll(ctx context.Context, models []model.Flight) (deleted, imported int64, err error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Flight]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Flight {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Flight](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert stores a flight and reads the generated row back in one round trip.
func (repo *repositoryImpl) Insert(ctx context.Context, mod model.Flight) (model.Flight, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Insert")
	defer scope.End()

	placeholders := []string{}
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var created model.Flight

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return created, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &created, mod)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return created, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return created, nil
}

// ReplaceAll deletes every flight and inserts the given batch in input order,
// all inside a single transaction. A failure at any point rolls back both the
// delete and the inserts.
func (repo *repositoryImpl) ReplaceAll(ctx context.Context, models []model.Flight) (deleted, imported int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".ReplaceAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	sqltx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, 0, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := sqltx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback flight replacement")
			}
		}
	}()

	result, err := sqltx.ExecContext(ctx, "DELETE FROM "+model.TableName)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, 0, fmt.Errorf("failed to clear table (%s): %w", model.EntityName, err)
	}

	deleted, err = result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, 0, fmt.Errorf("failed to read deleted rows (%s): %w", model.EntityName, err)
	}

	if len(models) > 0 {
		if err = repo.InsertBulkTx(ctx, sqltx, models); err != nil {
			return 0, 0, err
		}
	}

	if err = sqltx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, 0, fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return deleted, int64(len(models)), nil
}
