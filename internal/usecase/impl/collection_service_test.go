package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// collectionServiceFixtures holds all test dependencies for collection service tests.
type collectionServiceFixtures struct {
	service usecase.CollectionUsecase
	repoMocks
}

func createTestCollectionService(t *testing.T) collectionServiceFixtures {
	mocks := newRepoMocks(t)
	service := NewCollectionService(CollectionServiceParams{
		TxManager:      mocks.txManager,
		CollectionRepo: mocks.collectionRepo,
		Publisher:      mocks.publisher,
		Logger:         newDiscardLogger(),
	})

	return collectionServiceFixtures{
		service:   service,
		repoMocks: mocks,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestCollectionService_Create_EmptyAddress(t *testing.T) {
	fx := createTestCollectionService(t)

	_, err := fx.service.Create(context.Background(), entity.EmptyAddress)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyAddress)
	assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCollectionService_Create_UserMissing(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Create(ctx, testAddress)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.EqualError(t, err, "Cannot find the user: "+testAddress)
}

func TestCollectionService_Create_ReusesDraft(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	draft := &entity.Collection{ID: 4, Name: "collection-4", OwnerAddress: testAddress}

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.collectionRepo.EXPECT().FindDraftByOwner(ctx, testAddress).Return(draft, nil)
	fx.collectionRepo.EXPECT().CountNFTs(ctx, int64(4)).Return(int64(0), nil)

	collection, err := fx.service.Create(ctx, testAddress)
	require.NoError(t, err)
	assert.Same(t, draft, collection)
	fx.collectionRepo.AssertNotCalled(t, "NextID", mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishMarketplaceEvent", mock.Anything, mock.Anything)
}

func TestCollectionService_Create_SkipsDraftThatGainedNFTs(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	stale := &entity.Collection{ID: 4, Name: "collection-4", OwnerAddress: testAddress}

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.collectionRepo.EXPECT().FindDraftByOwner(ctx, testAddress).Return(stale, nil)
	fx.collectionRepo.EXPECT().CountNFTs(ctx, int64(4)).Return(int64(1), nil)
	fx.collectionRepo.EXPECT().NextID(ctx).Return(int64(12), nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-12").Return(nil, repository.ErrCollectionNotFound)
	fx.collectionRepo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Collection) bool { return c.Name == "collection-12" })).Return(nil)
	fx.expectEvent(service.EventCollectionCreated)

	collection, err := fx.service.Create(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, "collection-12", collection.Name)
}

func TestCollectionService_Create_IsIdempotent(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	var stored *entity.Collection

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.collectionRepo.EXPECT().
		FindDraftByOwner(ctx, testAddress).
		RunAndReturn(func(context.Context, string) (*entity.Collection, error) {
			if stored == nil {
				return nil, repository.ErrCollectionNotFound
			}

			return stored, nil
		})
	fx.collectionRepo.EXPECT().CountNFTs(ctx, int64(12)).Return(int64(0), nil).Once()
	fx.collectionRepo.EXPECT().NextID(ctx).Return(int64(12), nil).Once()
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-12").Return(nil, repository.ErrCollectionNotFound).Once()
	fx.collectionRepo.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, collection *entity.Collection) error {
			stored = collection

			return nil
		}).
		Once()
	fx.expectEvent(service.EventCollectionCreated)

	first, err := fx.service.Create(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, "collection-12", first.Name)
	assert.Equal(t, int64(12), first.ID)
	assert.Equal(t, testAddress, first.OwnerAddress)
	assert.False(t, first.IsNameModified)

	second, err := fx.service.Create(ctx, testAddress)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestCollectionService_Create_RetriesOnCollision(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.collectionRepo.EXPECT().FindDraftByOwner(ctx, testAddress).Return(nil, repository.ErrCollectionNotFound)
	fx.collectionRepo.EXPECT().NextID(ctx).Return(int64(12), nil).Once()
	fx.collectionRepo.EXPECT().NextID(ctx).Return(int64(13), nil).Once()
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-12").Return(nil, repository.ErrCollectionNotFound)
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-13").Return(nil, repository.ErrCollectionNotFound)
	fx.collectionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Collection) bool { return c.Name == "collection-12" })).
		Return(repository.ErrDuplicateCollection)
	fx.collectionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Collection) bool { return c.Name == "collection-13" })).
		Return(nil)
	fx.expectEvent(service.EventCollectionCreated)

	collection, err := fx.service.Create(ctx, testAddress)
	require.NoError(t, err)
	assert.Equal(t, "collection-13", collection.Name)
}

func TestCollectionService_Create_CollisionsExhausted(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	const otherOwner = "0x3333333333333333333333333333333333333333"

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.collectionRepo.EXPECT().FindDraftByOwner(ctx, testAddress).Return(nil, repository.ErrCollectionNotFound)
	fx.collectionRepo.EXPECT().NextID(ctx).Return(int64(12), nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-12").Return(&entity.Collection{ID: 99, Name: "collection-12", OwnerAddress: otherOwner}, nil)

	_, err := fx.service.Create(ctx, testAddress)
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNameTaken)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	fx.collectionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.txManager.AssertNumberOfCalls(t, "Execute", collectionCreateAttempts)
}

func TestCollectionService_Create_ExistingNameOfSameOwner(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	existing := &entity.Collection{ID: 12, Name: "collection-12", OwnerAddress: testAddress, IsNameModified: true}

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.collectionRepo.EXPECT().FindDraftByOwner(ctx, testAddress).Return(nil, repository.ErrCollectionNotFound)
	fx.collectionRepo.EXPECT().NextID(ctx).Return(int64(12), nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, "collection-12").Return(existing, nil)

	collection, err := fx.service.Create(ctx, testAddress)
	require.NoError(t, err)
	assert.Same(t, existing, collection)
}

func TestCollectionService_Read_NotFound(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	fx.collectionRepo.EXPECT().FindDetailedByName(ctx, "missing").Return(nil, repository.ErrCollectionNotFound)

	_, err := fx.service.Read(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)
	assert.EqualError(t, err, "Collection with name missing does not exist")
}

func TestCollectionService_Update_InvalidImage(t *testing.T) {
	fx := createTestCollectionService(t)

	_, err := fx.service.Update(context.Background(), usecase.UpdateCollectionInput{
		Name:    testCollection,
		Changes: entity.CollectionChanges{NewName: "art", Image: strPtr("nope")},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidURL)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCollectionService_Update_MissingNewName(t *testing.T) {
	fx := createTestCollectionService(t)

	_, err := fx.service.Update(context.Background(), usecase.UpdateCollectionInput{
		Name:    testCollection,
		Changes: entity.CollectionChanges{},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCollectionService_Update_RenameTaken(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.collectionRepo.EXPECT().FindByName(ctx, testCollection).Return(&entity.Collection{ID: 3, Name: testCollection}, nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, "art").Return(&entity.Collection{ID: 8, Name: "art"}, nil)

	_, err := fx.service.Update(ctx, usecase.UpdateCollectionInput{
		Name:    testCollection,
		Changes: entity.CollectionChanges{NewName: "art"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNameTaken)
	fx.collectionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCollectionService_Update_Rename(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	reloaded := &entity.Collection{ID: 3, Name: "art", IsNameModified: true}

	fx.expectTransaction()
	fx.collectionRepo.EXPECT().FindByName(ctx, testCollection).Return(&entity.Collection{ID: 3, Name: testCollection}, nil)
	fx.collectionRepo.EXPECT().FindByName(ctx, "art").Return(nil, repository.ErrCollectionNotFound)
	fx.collectionRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Collection) bool {
			return c.Name == "art" && c.IsNameModified && *c.Description == "paintings"
		})).
		Return(nil)
	fx.collectionRepo.EXPECT().FindDetailedByName(ctx, "art").Return(reloaded, nil)
	fx.expectEvent(service.EventCollectionUpdated)

	collection, err := fx.service.Update(ctx, usecase.UpdateCollectionInput{
		Name:    testCollection,
		Changes: entity.CollectionChanges{NewName: "art", Description: strPtr("paintings")},
	})
	require.NoError(t, err)
	assert.Same(t, reloaded, collection)
}

func TestCollectionService_Update_SameNameMarksModified(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.collectionRepo.EXPECT().FindByName(ctx, testCollection).Return(&entity.Collection{ID: 3, Name: testCollection}, nil)
	fx.collectionRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(c *entity.Collection) bool {
			return c.Name == testCollection && c.IsNameModified && c.Image != nil
		})).
		Return(nil)
	fx.collectionRepo.EXPECT().FindDetailedByName(ctx, testCollection).Return(&entity.Collection{ID: 3, Name: testCollection, IsNameModified: true}, nil)
	fx.expectEvent(service.EventCollectionUpdated)

	collection, err := fx.service.Update(ctx, usecase.UpdateCollectionInput{
		Name: testCollection,
		Changes: entity.CollectionChanges{
			NewName:    "ignored",
			Image:      strPtr("https://cdn.example.com/cover.png"),
			IsSameName: true,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, testCollection, collection.Name)
	assert.True(t, collection.IsNameModified)
}

func TestCollectionService_Delete_NotEmpty(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.collectionRepo.EXPECT().FindByName(ctx, testCollection).Return(&entity.Collection{ID: 3, Name: testCollection}, nil)
	fx.collectionRepo.EXPECT().CountNFTs(ctx, int64(3)).Return(int64(2), nil)

	err := fx.service.Delete(ctx, testCollection)
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotEmpty)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	fx.collectionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCollectionService_Delete_Empty(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.collectionRepo.EXPECT().FindByName(ctx, testCollection).Return(&entity.Collection{ID: 3, Name: testCollection}, nil)
	fx.collectionRepo.EXPECT().CountNFTs(ctx, int64(3)).Return(int64(0), nil)
	fx.collectionRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)
	fx.expectEvent(service.EventCollectionDeleted)

	require.NoError(t, fx.service.Delete(ctx, testCollection))
}

func TestCollectionService_Delete_NotFound(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.collectionRepo.EXPECT().FindByName(ctx, "missing").Return(nil, repository.ErrCollectionNotFound)

	err := fx.service.Delete(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrCollectionNotFound)
}

func TestCollectionService_ListAll(t *testing.T) {
	fx := createTestCollectionService(t)
	ctx := context.Background()

	all := []*entity.Collection{{ID: 1, Name: "collection-1"}}
	fx.collectionRepo.EXPECT().FindAllDetailed(ctx).Return(all, nil)

	collections, err := fx.service.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, collections)
}
