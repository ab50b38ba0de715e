package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testAddress = "0x1111111111111111111111111111111111111111"
	testTokenID = int64(7)
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service usecase.UserUsecase
	repoMocks
}

func createTestUserService(t *testing.T) userServiceFixtures {
	mocks := newRepoMocks(t)
	service := NewUserService(UserServiceParams{
		TxManager: mocks.txManager,
		UserRepo:  mocks.userRepo,
		NFTRepo:   mocks.nftRepo,
		Publisher: mocks.publisher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		repoMocks: mocks,
	}
}

func TestUserService_FetchByAddress_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{Address: testAddress, LikedNFTs: []int64{}}
	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(user, nil)

	got, err := fx.service.FetchByAddress(ctx, testAddress)
	require.NoError(t, err)
	assert.Same(t, user, got)
}

func TestUserService_FetchByAddress_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByAddress(ctx, testAddress).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.FetchByAddress(ctx, testAddress)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	assert.Contains(t, err.Error(), testAddress)
}

func TestUserService_Like_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, Likes: 2}, nil)
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(&entity.User{Address: testAddress, LikedNFTs: []int64{3}}, nil)
	fx.nftRepo.EXPECT().AddLikes(ctx, testTokenID, 1).Return(nil)
	fx.userRepo.EXPECT().UpdateLikedNFTs(ctx, testAddress, []int64{3, testTokenID}).Return(nil)
	fx.expectEvent(service.EventNFTLiked)

	out, err := fx.service.Like(ctx, testTokenID, testAddress)
	require.NoError(t, err)
	assert.Equal(t, 3, out.NFT.Likes)
	assert.Equal(t, []int64{3, testTokenID}, out.User.LikedNFTs)
}

func TestUserService_Like_AlreadyLiked(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, Likes: 1}, nil)
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(&entity.User{Address: testAddress, LikedNFTs: []int64{testTokenID}}, nil)

	out, err := fx.service.Like(ctx, testTokenID, testAddress)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyLiked)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	fx.nftRepo.AssertNotCalled(t, "AddLikes", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Like_NFTNotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(nil, repository.ErrNFTNotFound)

	_, err := fx.service.Like(ctx, testTokenID, testAddress)
	assert.ErrorIs(t, err, domainerrors.ErrNFTNotFound)
	assert.Contains(t, err.Error(), "NFT with tokenId 7 does not exist")
}

func TestUserService_Like_UserNotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID}, nil)
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Like(ctx, testTokenID, testAddress)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Like_WriteFailureIsServerError(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID}, nil)
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.nftRepo.EXPECT().AddLikes(ctx, testTokenID, 1).Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to update NFT likes"))

	_, err := fx.service.Like(ctx, testTokenID, testAddress)
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindServerError, domainerrors.KindOf(err))
	fx.userRepo.AssertNotCalled(t, "UpdateLikedNFTs", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Like_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID}, nil)
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.nftRepo.EXPECT().AddLikes(ctx, testTokenID, 1).Return(nil)
	fx.userRepo.EXPECT().UpdateLikedNFTs(ctx, testAddress, []int64{testTokenID}).Return(nil)
	fx.publisher.EXPECT().PublishMarketplaceEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.Like(ctx, testTokenID, testAddress)
	require.NoError(t, err)
	assert.Equal(t, 1, out.NFT.Likes)
}

func TestUserService_Unlike_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, Likes: 1}, nil)
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(&entity.User{Address: testAddress, LikedNFTs: []int64{testTokenID, 9}}, nil)
	fx.nftRepo.EXPECT().AddLikes(ctx, testTokenID, -1).Return(nil)
	fx.userRepo.EXPECT().UpdateLikedNFTs(ctx, testAddress, []int64{9}).Return(nil)
	fx.expectEvent(service.EventNFTUnliked)

	out, err := fx.service.Unlike(ctx, testTokenID, testAddress)
	require.NoError(t, err)
	assert.Equal(t, 0, out.NFT.Likes)
	assert.Equal(t, []int64{9}, out.User.LikedNFTs)
}

func TestUserService_Unlike_AtZeroLikes(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, Likes: 0}, nil)

	_, err := fx.service.Unlike(ctx, testTokenID, testAddress)
	assert.ErrorIs(t, err, domainerrors.ErrNoLikes)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	fx.nftRepo.AssertNotCalled(t, "AddLikes", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Unlike_NotLikedByUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.nftRepo.EXPECT().FindByTokenIDForUpdate(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, Likes: 4}, nil)
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(&entity.User{Address: testAddress, LikedNFTs: []int64{1}}, nil)

	_, err := fx.service.Unlike(ctx, testTokenID, testAddress)
	assert.ErrorIs(t, err, domainerrors.ErrNotLiked)
}

func TestUserService_FetchLikes(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.nftRepo.EXPECT().FindByTokenID(ctx, testTokenID).Return(&entity.NFT{TokenID: testTokenID, Likes: 12}, nil)

	likes, err := fx.service.FetchLikes(ctx, testTokenID)
	require.NoError(t, err)
	assert.Equal(t, 12, likes)
}

func TestUserService_FetchLikes_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.nftRepo.EXPECT().FindByTokenID(ctx, testTokenID).Return(nil, repository.ErrNFTNotFound)

	_, err := fx.service.FetchLikes(ctx, testTokenID)
	assert.ErrorIs(t, err, domainerrors.ErrNFTNotFound)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userName := "alice"
	profile := entity.UserProfile{
		UserName:    &userName,
		Description: "collector",
		TwitterLink: "https://twitter.com/alice",
	}

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(&entity.User{Address: testAddress, Verified: true}, nil)
	fx.userRepo.EXPECT().
		UpdateProfile(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Address == testAddress && u.UserName != nil && *u.UserName == "alice" && u.Verified
		})).
		Return(nil)

	user, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{Address: testAddress, Profile: profile})
	require.NoError(t, err)
	assert.Equal(t, "collector", user.Description)
	assert.Equal(t, "https://twitter.com/alice", user.TwitterLink)
}

func TestUserService_UpdateProfile_InvalidLink(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	profile := entity.UserProfile{MainLink: "not a url"}

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{Address: testAddress, Profile: profile})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidURL)
	assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	assert.EqualError(t, err, "Invalid mainLink")
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_Taken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.userRepo.EXPECT().FindByAddressForUpdate(ctx, testAddress).Return(&entity.User{Address: testAddress}, nil)
	fx.userRepo.EXPECT().UpdateProfile(ctx, mock.Anything).Return(repository.ErrUserProfileTaken)

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{Address: testAddress})
	assert.ErrorIs(t, err, domainerrors.ErrUserProfileTaken)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}
