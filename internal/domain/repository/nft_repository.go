package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

var (
	// ErrNFTNotFound is returned when no NFT exists for a token id.
	ErrNFTNotFound = errors.New("nft not found")
	// ErrDuplicateNFT is returned when a token id or item id is already minted.
	ErrDuplicateNFT = errors.New("nft already exists")
	// ErrInvalidReference is returned when an owner, creator or collection reference does not exist.
	ErrInvalidReference = errors.New("invalid reference")
)

// NFTRepository defines the persistence operations for NFTs.
type NFTRepository interface {
	// Create inserts a new NFT row.
	Create(ctx context.Context, nft *entity.NFT) error

	// FindByTokenID returns the full projection: owner, creator, collection and reviews.
	FindByTokenID(ctx context.Context, tokenID int64) (*entity.NFT, error)

	// FindByTokenIDForUpdate returns the bare row and locks it until the transaction ends.
	FindByTokenIDForUpdate(ctx context.Context, tokenID int64) (*entity.NFT, error)

	// FindByTokenIDs returns the full projections of the existing tokens, keyed by token id.
	FindByTokenIDs(ctx context.Context, tokenIDs []int64) (map[int64]*entity.NFT, error)

	// FindAll returns the full projection of every NFT.
	FindAll(ctx context.Context) ([]*entity.NFT, error)

	// UpdateMarketState writes only the market state columns.
	UpdateMarketState(ctx context.Context, tokenID int64, state entity.MarketState) error

	// UpdateListingDetails writes only the listing detail columns.
	UpdateListingDetails(ctx context.Context, tokenID int64, details entity.ListingDetails) error

	// UpdateMetadata writes the editable metadata, the freeze flag and the collection of an NFT.
	UpdateMetadata(ctx context.Context, nft *entity.NFT) error

	// UpdateOwner moves the NFT to a new owner and writes the given market state.
	UpdateOwner(ctx context.Context, tokenID int64, ownerAddress string, state entity.MarketState) error

	// AddLikes adjusts the like counter by delta.
	AddLikes(ctx context.Context, tokenID int64, delta int) error

	// Delete removes the NFT. Reviews are removed by the foreign key cascade.
	Delete(ctx context.Context, tokenID int64) error
}
