// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	nftRepo   repository.NFTRepository
	urls      *urlRules
	events    eventEmitter
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	NFTRepo   repository.NFTRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		nftRepo:   params.NFTRepo,
		urls:      newURLRules(),
		events:    eventEmitter{publisher: params.Publisher},
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// FetchByAddress returns the full projection of a user.
func (srv *userService) FetchByAddress(ctx context.Context, address string) (*entity.User, error) {
	user, err := srv.userRepo.FindByAddress(ctx, address)
	if err != nil {
		return nil, userLookupError(err, address, "failed to find user")
	}

	return user, nil
}

// UpdateProfile rewrites the editable profile of a user.
func (srv *userService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	if err := srv.validateProfile(input.Profile); err != nil {
		srv.log(ctx).Warn("Rejected profile update", slog.String("address", input.Address), slog.Any("error", err))

		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByAddressForUpdate(ctx, input.Address)
		if err != nil {
			return userLookupError(err, input.Address, "failed to lock user")
		}

		user.ApplyProfile(input.Profile)

		if err := userRepo.UpdateProfile(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserProfileTaken) {
				return domainerrors.ErrUserProfileTaken.WithMessagef("Email or user name of %s is already taken", input.Address)
			}

			return errors.Wrap(err, "failed to update user profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User profile updated", slog.String("address", input.Address))

	return updated, nil
}

func (srv *userService) validateProfile(profile entity.UserProfile) error {
	links := []struct {
		field string
		value string
	}{
		{"facebookLink", profile.FacebookLink},
		{"instagramLink", profile.InstagramLink},
		{"linkedInLink", profile.LinkedInLink},
		{"mainLink", profile.MainLink},
		{"twitterLink", profile.TwitterLink},
		{"image", profile.Image},
	}

	for _, link := range links {
		if err := srv.urls.optional(link.field, link.value); err != nil {
			return err
		}
	}

	return nil
}

// Like increments the NFT counter and records the token in the user's liked list.
// Both rows are locked so concurrent likes cannot lose an update.
func (srv *userService) Like(ctx context.Context, tokenID int64, address string) (*usecase.LikeOutput, error) {
	var output *usecase.LikeOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NFTRepo()
		userRepo := repoFactory.UserRepo()

		nft, err := nftRepo.FindByTokenIDForUpdate(ctx, tokenID)
		if err != nil {
			return nftLookupError(err, tokenID, "failed to lock NFT")
		}

		user, err := userRepo.FindByAddressForUpdate(ctx, address)
		if err != nil {
			return userLookupError(err, address, "failed to lock user")
		}

		if user.HasLiked(tokenID) {
			return domainerrors.ErrAlreadyLiked.WithMessagef("User has already liked the NFT with tokenId %d", tokenID)
		}

		if err := nftRepo.AddLikes(ctx, tokenID, 1); err != nil {
			return errors.Wrap(err, "failed to increment likes")
		}

		liked := user.WithLike(tokenID)
		if err := userRepo.UpdateLikedNFTs(ctx, address, liked); err != nil {
			return errors.Wrap(err, "failed to update liked NFTs")
		}

		nft.Likes++
		user.LikedNFTs = liked
		output = &usecase.LikeOutput{NFT: nft, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Like rejected", slog.Int64("tokenId", tokenID), slog.String("address", address), slog.Any("error", err))

		return nil, err
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventNFTLiked, func(event *service.MarketplaceEvent) {
		event.TokenIDs = []int64{tokenID}
		event.Address = address
	})

	return output, nil
}

// Unlike decrements the NFT counter and removes the token from the user's liked list.
func (srv *userService) Unlike(ctx context.Context, tokenID int64, address string) (*usecase.LikeOutput, error) {
	var output *usecase.LikeOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NFTRepo()
		userRepo := repoFactory.UserRepo()

		nft, err := nftRepo.FindByTokenIDForUpdate(ctx, tokenID)
		if err != nil {
			return nftLookupError(err, tokenID, "failed to lock NFT")
		}

		if !nft.CanUnlike() {
			return domainerrors.ErrNoLikes.WithMessagef("NFT with tokenId %d has 0 or less likes", tokenID)
		}

		user, err := userRepo.FindByAddressForUpdate(ctx, address)
		if err != nil {
			return userLookupError(err, address, "failed to lock user")
		}

		if !user.HasLiked(tokenID) {
			return domainerrors.ErrNotLiked.WithMessagef("tokenId %d not part of user's liked NFTs", tokenID)
		}

		if err := nftRepo.AddLikes(ctx, tokenID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement likes")
		}

		liked := user.WithoutLike(tokenID)
		if err := userRepo.UpdateLikedNFTs(ctx, address, liked); err != nil {
			return errors.Wrap(err, "failed to update liked NFTs")
		}

		nft.Likes--
		user.LikedNFTs = liked
		output = &usecase.LikeOutput{NFT: nft, User: user}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Unlike rejected", slog.Int64("tokenId", tokenID), slog.String("address", address), slog.Any("error", err))

		return nil, err
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventNFTUnliked, func(event *service.MarketplaceEvent) {
		event.TokenIDs = []int64{tokenID}
		event.Address = address
	})

	return output, nil
}

// FetchLikes returns the like counter of an NFT.
func (srv *userService) FetchLikes(ctx context.Context, tokenID int64) (int, error) {
	nft, err := srv.nftRepo.FindByTokenID(ctx, tokenID)
	if err != nil {
		return 0, nftLookupError(err, tokenID, "failed to find NFT")
	}

	return nft.Likes, nil
}
