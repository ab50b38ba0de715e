package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// UpdateCollectionInput defines an edit of the collection identified by Name.
type UpdateCollectionInput struct {
	Name    string
	Changes entity.CollectionChanges
}

// CollectionUsecase defines the interface for collection operations.
type CollectionUsecase interface {
	// Create returns the caller's draft collection, creating one when there is none.
	Create(ctx context.Context, address string) (*entity.Collection, error)
	Read(ctx context.Context, name string) (*entity.Collection, error)
	Update(ctx context.Context, input UpdateCollectionInput) (*entity.Collection, error)
	Delete(ctx context.Context, name string) error
	ListAll(ctx context.Context) ([]*entity.Collection, error)
}
