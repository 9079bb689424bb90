package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"daawat/infras/otel"
	"daawat/infras/postgres"
	"daawat/internal/domains/special/model"
	gDto "daawat/shared/dto"
	gRepo "daawat/shared/repository"
)

type ChefSpecial interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ChefSpecial, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ChefSpecial]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ChefSpecial {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ChefSpecial](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
