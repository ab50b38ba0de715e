package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

var (
	// ErrCollectionNotFound is returned when no collection exists under a name.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrDuplicateCollection is returned when a collection name is already taken.
	ErrDuplicateCollection = errors.New("collection already exists")
	// ErrCollectionInUse is returned when a collection still holds NFTs at delete time.
	ErrCollectionInUse = errors.New("collection still referenced")
)

// CollectionRepository defines the persistence operations for collections.
type CollectionRepository interface {
	// NextID reserves the next collection id from the table sequence.
	NextID(ctx context.Context) (int64, error)

	// Create inserts a collection. A zero ID lets the database assign one.
	Create(ctx context.Context, collection *entity.Collection) error

	// FindByName returns the bare collection row.
	FindByName(ctx context.Context, name string) (*entity.Collection, error)

	// FindDetailedByName returns the collection with its owner, NFTs and their reviews.
	FindDetailedByName(ctx context.Context, name string) (*entity.Collection, error)

	// FindAllDetailed returns every collection with its owner, NFTs and their reviews.
	FindAllDetailed(ctx context.Context) ([]*entity.Collection, error)

	// FindDraftByOwner returns the oldest empty, never renamed collection of an owner.
	FindDraftByOwner(ctx context.Context, ownerAddress string) (*entity.Collection, error)

	// CountNFTs returns the number of NFTs in a collection.
	CountNFTs(ctx context.Context, collectionID int64) (int64, error)

	// Update persists name, image, description and the modified flag.
	Update(ctx context.Context, collection *entity.Collection) error

	// Delete removes a collection by id.
	Delete(ctx context.Context, collectionID int64) error
}
