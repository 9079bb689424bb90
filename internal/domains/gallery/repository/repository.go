package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"daawat/infras/otel"
	"daawat/infras/postgres"
	"daawat/internal/domains/gallery/model"
	gDto "daawat/shared/dto"
	gRepo "daawat/shared/repository"
)

type Gallery interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GalleryPhoto, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.GalleryPhoto]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Gallery {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GalleryPhoto](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
