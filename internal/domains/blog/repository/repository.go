package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"daawat/infras/otel"
	"daawat/infras/postgres"
	"daawat/internal/domains/blog/model"
	gDto "daawat/shared/dto"
	gRepo "daawat/shared/repository"
)

type Blog interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlogPost, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BlogPost]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Blog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlogPost](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
