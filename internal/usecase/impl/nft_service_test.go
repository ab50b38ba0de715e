package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCollection = "collection-3"

// nftServiceFixtures holds all test dependencies for NFT service tests.
type nftServiceFixtures struct {
	service usecase.NFTUsecase
	repoMocks
}

func createTestNFTService(t *testing.T) nftServiceFixtures {
	return createTestNFTServiceWithBatch(t, 0)
}

func createTestNFTServiceWithBatch(t *testing.T, maxBatchSize int) nftServiceFixtures {
	mocks := newRepoMocks(t)
	service := NewNFTService(NFTServiceParams{
		TxManager: mocks.txManager,
		NFTRepo:   mocks.nftRepo,
		Publisher: mocks.publisher,
		Config:    newTestConfig(maxBatchSize),
		Logger:    newDiscardLogger(),
	})

	return nftServiceFixtures{
		service:   service,
		repoMocks: mocks,
	}
}

func (fx nftServiceFixtures) expectOwnerAndCollection(ctx context.Context) {
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, testCollection).Return(&entity.Collection{ID: 3, Name: testCollection}, nil)
}

func newCreateInput(tokenID int64) usecase.CreateNFTInput {
	return usecase.CreateNFTInput{
		Address:        testAddress,
		Collection:     testCollection,
		BlockchainType: "ethereum",
		ErcType:        "ERC721",
		TokenID:        tokenID,
		ItemID:         tokenID + 100,
		Name:           "token",
		Image:          "https://cdn.example.com/token.png",
	}
}

func TestNFTService_Create_Success(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.expectOwnerAndCollection(ctx)
	fx.nftRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(nft *entity.NFT) bool {
			return nft.TokenID == testTokenID &&
				nft.OwnerAddress == testAddress &&
				nft.CreatorAddress == testAddress &&
				nft.CollectionID == 3 &&
				!nft.IsListed() &&
				nft.PropertiesKey != nil &&
				nft.LevelsValueDen != nil &&
				nft.Descriptions != nil
		})).
		Return(nil)
	fx.expectEvent(service.EventNFTCreated)

	nft, err := fx.service.Create(ctx, newCreateInput(testTokenID))
	require.NoError(t, err)
	assert.Equal(t, testTokenID, nft.TokenID)
	assert.Equal(t, int64(107), nft.ItemID)
	assert.Equal(t, 0, nft.Likes)
	assert.False(t, nft.IsMetadataFrozen)
}

func TestNFTService_Create_InvalidURLs(t *testing.T) {
	badAnimation := "::not-a-url"

	tests := []struct {
		name    string
		mutate  func(*usecase.CreateNFTInput)
		message string
	}{
		{
			name:    "image",
			mutate:  func(in *usecase.CreateNFTInput) { in.Image = "not a url" },
			message: "Invalid image",
		},
		{
			name:    "animation url",
			mutate:  func(in *usecase.CreateNFTInput) { in.AnimationURL = &badAnimation },
			message: "Invalid animationUrl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNFTService(t)

			input := newCreateInput(testTokenID)
			tt.mutate(&input)

			_, err := fx.service.Create(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidURL)
			assert.EqualError(t, err, tt.message)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestNFTService_Create_EmptyImageAllowed(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	input := newCreateInput(testTokenID)
	input.Image = ""

	fx.expectTransaction()
	fx.expectOwnerAndCollection(ctx)
	fx.nftRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.expectEvent(service.EventNFTCreated)

	nft, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, nft.Image)
	assert.Nil(t, nft.AnimationURL)
}

func TestNFTService_Create_OwnerMissing(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Create(ctx, newCreateInput(testTokenID))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestNFTService_Create_CollectionMissing(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, testCollection).Return(nil, repository.ErrCollectionNotFound)

	_, err := fx.service.Create(ctx, newCreateInput(testTokenID))
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)
}

func TestNFTService_Create_Duplicate(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.expectOwnerAndCollection(ctx)
	fx.nftRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateNFT)

	_, err := fx.service.Create(ctx, newCreateInput(testTokenID))
	assert.ErrorIs(t, err, domainerrors.ErrNFTAlreadyExists)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func newBatchInput(tokenIDs ...int64) usecase.CreateNFTsInput {
	input := usecase.CreateNFTsInput{
		Address:        testAddress,
		Collection:     testCollection,
		BlockchainType: "ethereum",
		ErcType:        "ERC721",
	}
	for _, id := range tokenIDs {
		input.TokenIDs = append(input.TokenIDs, id)
		input.ItemIDs = append(input.ItemIDs, id+100)
		input.Names = append(input.Names, "token")
		input.Images = append(input.Images, "")
		input.AnimationURLs = append(input.AnimationURLs, nil)
	}

	return input
}

func TestNFTService_CreateMany_Success(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.expectOwnerAndCollection(ctx)
	fx.nftRepo.EXPECT().Create(ctx, mock.MatchedBy(func(nft *entity.NFT) bool { return nft.TokenID == 1 })).Return(nil).Once()
	fx.nftRepo.EXPECT().Create(ctx, mock.MatchedBy(func(nft *entity.NFT) bool { return nft.TokenID == 2 })).Return(nil).Once()
	fx.expectEvent(service.EventNFTCreated)

	nfts, err := fx.service.CreateMany(ctx, newBatchInput(1, 2))
	require.NoError(t, err)
	require.Len(t, nfts, 2)
	assert.Equal(t, int64(1), nfts[0].TokenID)
	assert.Equal(t, int64(2), nfts[1].TokenID)
}

func TestNFTService_CreateMany_LengthMismatch(t *testing.T) {
	fx := createTestNFTService(t)

	input := newBatchInput(1, 2)
	input.Names = input.Names[:1]

	_, err := fx.service.CreateMany(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrBatchLengthMismatch)
	assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestNFTService_CreateMany_SizeLimits(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateNFTsInput
	}{
		{name: "empty", input: newBatchInput()},
		{name: "oversized", input: newBatchInput(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNFTServiceWithBatch(t, 2)

			_, err := fx.service.CreateMany(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestNFTService_CreateMany_InvalidURLRejectsWholeBatch(t *testing.T) {
	fx := createTestNFTService(t)

	input := newBatchInput(1, 2)
	input.Images[0] = "not a url"

	_, err := fx.service.CreateMany(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidURL)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	fx.nftRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNFTService_CreateMany_FailureStopsBatch(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.expectOwnerAndCollection(ctx)
	fx.nftRepo.EXPECT().Create(ctx, mock.MatchedBy(func(nft *entity.NFT) bool { return nft.TokenID == 1 })).Return(nil).Once()
	fx.nftRepo.EXPECT().Create(ctx, mock.MatchedBy(func(nft *entity.NFT) bool { return nft.TokenID == 2 })).Return(repository.ErrDuplicateNFT).Once()

	nfts, err := fx.service.CreateMany(ctx, newBatchInput(1, 2, 3))
	assert.Nil(t, nfts)
	assert.ErrorIs(t, err, domainerrors.ErrNFTAlreadyExists)
	assert.Contains(t, err.Error(), "token 2")
	fx.publisher.AssertNotCalled(t, "PublishMarketplaceEvent", mock.Anything, mock.Anything)
}

func newListingInput() usecase.PutOnMarketInput {
	return usecase.PutOnMarketInput{
		TokenID: testTokenID,
		Market:  entity.MarketState{Price: 500, IsOnSale: true},
		Listing: entity.ListingDetails{
			SaleType:     "fixed",
			Descriptions: []string{"rare"},
			Images:       []string{"https://cdn.example.com/a.png"},
			YoutubeURL:   "https://youtube.com/watch?v=1",
		},
	}
}

func TestNFTService_PutOnMarket_Mutable(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	input := newListingInput()

	reloaded := &entity.NFT{TokenID: testTokenID, MarketState: input.Market}

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID}, nil)
	fx.nftRepo.EXPECT().UpdateMarketState(ctx, testTokenID, input.Market).Return(nil)
	fx.nftRepo.EXPECT().UpdateListingDetails(ctx, testTokenID, input.Listing).Return(nil)
	fx.nftRepo.EXPECT().FindByTokenID(ctx, testTokenID).Return(reloaded, nil)
	fx.expectEvent(service.EventNFTListed)

	nft, err := fx.service.PutOnMarket(ctx, input)
	require.NoError(t, err)
	assert.Same(t, reloaded, nft)
	assert.True(t, nft.IsOnSale)
}

func TestNFTService_PutOnMarket_FrozenKeepsMetadata(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	input := newListingInput()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, IsMetadataFrozen: true}, nil)
	fx.nftRepo.EXPECT().UpdateMarketState(ctx, testTokenID, input.Market).Return(nil)
	fx.nftRepo.EXPECT().FindByTokenID(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, IsMetadataFrozen: true}, nil)
	fx.expectEvent(service.EventNFTListed)

	_, err := fx.service.PutOnMarket(ctx, input)
	require.NoError(t, err)
	fx.nftRepo.AssertNotCalled(t, "UpdateListingDetails", mock.Anything, mock.Anything, mock.Anything)
}

func TestNFTService_PutOnMarket_NotFound(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(nil, repository.ErrNFTNotFound)

	_, err := fx.service.PutOnMarket(ctx, newListingInput())
	assert.ErrorIs(t, err, domainerrors.ErrNFTNotFound)
}

func TestNFTService_PutOnMarket_InvalidYoutubeURL(t *testing.T) {
	fx := createTestNFTService(t)

	input := newListingInput()
	input.Listing.YoutubeURL = "youtube"

	_, err := fx.service.PutOnMarket(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidURL)
	assert.EqualError(t, err, "Invalid youtubeUrl")
}

func TestNFTService_TakeOffMarket(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().UpdateMarketState(ctx, testTokenID, entity.UnlistedMarketState()).Return(nil)
	fx.nftRepo.EXPECT().FindByTokenID(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID}, nil)
	fx.expectEvent(service.EventNFTDelisted)

	nft, err := fx.service.TakeOffMarket(ctx, testTokenID)
	require.NoError(t, err)
	assert.False(t, nft.IsListed())
}

func TestNFTService_TakeOffMarket_NotFound(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().UpdateMarketState(ctx, testTokenID, entity.UnlistedMarketState()).Return(repository.ErrNFTNotFound)

	_, err := fx.service.TakeOffMarket(ctx, testTokenID)
	assert.ErrorIs(t, err, domainerrors.ErrNFTNotFound)
}

func newEditInput() usecase.EditNFTInput {
	return usecase.EditNFTInput{
		TokenID:    testTokenID,
		Collection: "collection-9",
		Edit: entity.MetadataEdit{
			Name:             "renamed",
			Image:            "https://cdn.example.com/new.png",
			IsMetadataFrozen: true,
		},
	}
}

func TestNFTService_Edit_Success(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	current := &entity.NFT{
		TokenID:      testTokenID,
		Likes:        4,
		OwnerAddress: testAddress,
		CollectionID: 3,
		MarketState:  entity.MarketState{Price: 10, IsOnSale: true},
	}

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(current, nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-9").Return(&entity.Collection{ID: 9, Name: "collection-9"}, nil)
	fx.nftRepo.EXPECT().
		UpdateMetadata(ctx, mock.MatchedBy(func(nft *entity.NFT) bool {
			return nft.Name == "renamed" &&
				nft.IsMetadataFrozen &&
				nft.CollectionID == 9 &&
				nft.Likes == 4 &&
				nft.OwnerAddress == testAddress &&
				nft.IsOnSale
		})).
		Return(nil)
	fx.nftRepo.EXPECT().FindByTokenID(ctx, testTokenID).Return(current, nil)
	fx.expectEvent(service.EventNFTEdited)

	nft, err := fx.service.Edit(ctx, newEditInput())
	require.NoError(t, err)
	assert.Equal(t, "renamed", nft.Name)
	assert.Equal(t, int64(9), nft.CollectionID)
}

func TestNFTService_Edit_Frozen(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, IsMetadataFrozen: true}, nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-9").Return(&entity.Collection{ID: 9}, nil)

	_, err := fx.service.Edit(ctx, newEditInput())
	assert.ErrorIs(t, err, domainerrors.ErrMetadataFrozen)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	fx.nftRepo.AssertNotCalled(t, "UpdateMetadata", mock.Anything, mock.Anything)
}

func TestNFTService_Edit_CollectionMissing(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID}, nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-9").Return(nil, repository.ErrCollectionNotFound)

	_, err := fx.service.Edit(ctx, newEditInput())
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)
	assert.EqualError(t, err, "Collection with name collection-9 does not exist")
}

func TestNFTService_Transfer_Success(t *testing.T) {
	fx := createTestNFTService(t)
	logs := &bytes.Buffer{}
	ctx := deliverycontext.WithScope(context.Background(), deliverycontext.Scope{
		Logger: slog.New(slog.NewTextHandler(logs, nil)),
	})

	const newOwner = "0x2222222222222222222222222222222222222222"

	start := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	listed := &entity.NFT{
		TokenID:      testTokenID,
		OwnerAddress: testAddress,
		Likes:        3,
		MarketState:  entity.MarketState{Price: 500, IsOnAuction: true, StartSaleDate: &start},
		Metadata:     entity.Metadata{Name: "token", Image: "https://cdn.example.com/token.png"},
	}

	var (
		gotOwner string
		gotState entity.MarketState
	)

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(listed, nil)
	fx.userRepo.EXPECT().FindByAddress(ctx, newOwner).Return(&entity.User{Address: newOwner}, nil)
	fx.nftRepo.EXPECT().
		UpdateOwner(ctx, testTokenID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ int64, owner string, state entity.MarketState) error {
			gotOwner = owner
			gotState = state

			return nil
		})
	fx.nftRepo.EXPECT().
		FindByTokenID(ctx, testTokenID).
		RunAndReturn(func(context.Context, int64) (*entity.NFT, error) {
			reloaded := *listed
			reloaded.OwnerAddress = gotOwner
			reloaded.MarketState = gotState

			return &reloaded, nil
		})
	fx.expectEvent(service.EventNFTTransferred)

	nft, err := fx.service.Transfer(ctx, usecase.TransferNFTInput{TokenID: testTokenID, Address: newOwner})
	require.NoError(t, err)

	assert.Equal(t, newOwner, gotOwner)
	assert.Equal(t, entity.UnlistedMarketState(), gotState)
	assert.Nil(t, gotState.StartSaleDate)
	assert.Zero(t, gotState.Price)

	assert.Equal(t, newOwner, nft.OwnerAddress)
	assert.False(t, nft.IsListed())
	assert.Equal(t, listed.Metadata, nft.Metadata)
	assert.Equal(t, 3, nft.Likes)
	assert.Contains(t, logs.String(), "delisted=true")
}

func TestNFTService_Transfer_UserMissing(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID}, nil)
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Transfer(ctx, usecase.TransferNFTInput{TokenID: testTokenID, Address: testAddress})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	fx.nftRepo.AssertNotCalled(t, "UpdateOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNFTService_Delete(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.nftRepo.EXPECT().Delete(ctx, testTokenID).Return(nil)
	fx.expectEvent(service.EventNFTDeleted)

	require.NoError(t, fx.service.Delete(ctx, testTokenID))
}

func TestNFTService_Delete_NotFound(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.nftRepo.EXPECT().Delete(ctx, testTokenID).Return(repository.ErrNFTNotFound)

	err := fx.service.Delete(ctx, testTokenID)
	assert.ErrorIs(t, err, domainerrors.ErrNFTNotFound)
}

func TestNFTService_FetchOne_NotFound(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.nftRepo.EXPECT().FindByTokenID(ctx, testTokenID).Return(nil, repository.ErrNFTNotFound)

	nft, err := fx.service.FetchOne(ctx, testTokenID)
	assert.Nil(t, nft)
	assert.EqualError(t, err, "NFT with tokenId 7 does not exist")
}

func TestNFTService_FetchAll(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	all := []*entity.NFT{{TokenID: 1}, {TokenID: 2}}
	fx.nftRepo.EXPECT().FindAll(ctx).Return(all, nil)

	nfts, err := fx.service.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, nfts)
}

func TestNFTService_FetchMultiple_KeepsOrderWithGaps(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	nft5 := &entity.NFT{TokenID: 5}
	nft7 := &entity.NFT{TokenID: 7}
	fx.nftRepo.EXPECT().
		FindByTokenIDs(ctx, []int64{5, 7, 9999}).
		Return(map[int64]*entity.NFT{5: nft5, 7: nft7}, nil)

	nfts, err := fx.service.FetchMultiple(ctx, "7-9999-5-7")
	require.NoError(t, err)
	require.Len(t, nfts, 4)
	assert.Same(t, nft7, nfts[0])
	assert.Nil(t, nfts[1])
	assert.Same(t, nft5, nfts[2])
	assert.Same(t, nft7, nfts[3])
}

func TestNFTService_FetchMultiple_Malformed(t *testing.T) {
	fx := createTestNFTService(t)

	_, err := fx.service.FetchMultiple(context.Background(), "5-abc")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
}
