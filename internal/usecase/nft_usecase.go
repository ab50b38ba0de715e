package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// CreateNFTInput defines the data required to mint a single NFT record.
type CreateNFTInput struct {
	Address        string
	Collection     string
	BlockchainType string
	ErcType        string
	TokenID        int64
	ItemID         int64
	Name           string
	Image          string
	AnimationURL   *string
}

// CreateNFTsInput defines a batch of NFTs sharing owner, collection and chain.
// The per-token slices are parallel and must have the same length.
type CreateNFTsInput struct {
	Address        string
	Collection     string
	BlockchainType string
	ErcType        string
	TokenIDs       []int64
	ItemIDs        []int64
	Names          []string
	Images         []string
	AnimationURLs  []*string
}

// Len returns the batch size, or -1 when the slices disagree.
func (in CreateNFTsInput) Len() int {
	n := len(in.Names)
	if len(in.TokenIDs) != n || len(in.ItemIDs) != n || len(in.Images) != n || len(in.AnimationURLs) != n {
		return -1
	}

	return n
}

// At returns the single-token input at index i.
func (in CreateNFTsInput) At(i int) CreateNFTInput {
	return CreateNFTInput{
		Address:        in.Address,
		Collection:     in.Collection,
		BlockchainType: in.BlockchainType,
		ErcType:        in.ErcType,
		TokenID:        in.TokenIDs[i],
		ItemID:         in.ItemIDs[i],
		Name:           in.Names[i],
		Image:          in.Images[i],
		AnimationURL:   in.AnimationURLs[i],
	}
}

// PutOnMarketInput defines a listing: the new market state plus listing details.
type PutOnMarketInput struct {
	TokenID int64
	Market  entity.MarketState
	Listing entity.ListingDetails
}

// EditNFTInput defines a metadata rewrite and the collection the NFT moves to.
type EditNFTInput struct {
	TokenID    int64
	Collection string
	Edit       entity.MetadataEdit
}

// TransferNFTInput defines a change of owner.
type TransferNFTInput struct {
	TokenID int64
	Address string
}

// NFTUsecase defines the interface for NFT listing operations.
type NFTUsecase interface {
	Create(ctx context.Context, input CreateNFTInput) (*entity.NFT, error)
	CreateMany(ctx context.Context, input CreateNFTsInput) ([]*entity.NFT, error)
	PutOnMarket(ctx context.Context, input PutOnMarketInput) (*entity.NFT, error)
	TakeOffMarket(ctx context.Context, tokenID int64) (*entity.NFT, error)
	Edit(ctx context.Context, input EditNFTInput) (*entity.NFT, error)
	Transfer(ctx context.Context, input TransferNFTInput) (*entity.NFT, error)
	Delete(ctx context.Context, tokenID int64) error
	FetchOne(ctx context.Context, tokenID int64) (*entity.NFT, error)
	FetchAll(ctx context.Context) ([]*entity.NFT, error)
	// FetchMultiple returns one entry per encoded id, in order, nil where the token does not exist.
	FetchMultiple(ctx context.Context, encodedIDs string) ([]*entity.NFT, error)
}
