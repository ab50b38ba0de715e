package impl

import (
	"context"
	"log/slog"
	"slices"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// nftService implements the NFTUsecase interface.
type nftService struct {
	txManager    repository.TransactionManager
	nftRepo      repository.NFTRepository
	urls         *urlRules
	events       eventEmitter
	maxBatchSize int
	logger       *slog.Logger
}

// NFTServiceParams holds dependencies for NFTService, injected by Fx.
type NFTServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	NFTRepo   repository.NFTRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewNFTService is the constructor for nftService.
func NewNFTService(params NFTServiceParams) usecase.NFTUsecase {
	maxBatchSize := constants.DefaultMaxBatchSize
	if params.Config != nil && params.Config.Marketplace != nil && params.Config.Marketplace.MaxBatchSize > 0 {
		maxBatchSize = params.Config.Marketplace.MaxBatchSize
	}

	return &nftService{
		txManager:    params.TxManager,
		nftRepo:      params.NFTRepo,
		urls:         newURLRules(),
		events:       eventEmitter{publisher: params.Publisher},
		maxBatchSize: maxBatchSize,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *nftService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Create mints a single NFT record owned and created by input.Address.
func (srv *nftService) Create(ctx context.Context, input usecase.CreateNFTInput) (*entity.NFT, error) {
	if err := srv.urls.optional("image", input.Image); err != nil {
		return nil, err
	}
	if err := srv.urls.optionalPtr("animationUrl", input.AnimationURL); err != nil {
		return nil, err
	}

	var created *entity.NFT
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, collection, err := srv.resolveOwnerAndCollection(ctx, repoFactory, input.Address, input.Collection)
		if err != nil {
			return err
		}

		created, err = srv.createOne(ctx, repoFactory.NFTRepo(), input, owner, collection)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create NFT", slog.Int64("tokenId", input.TokenID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("NFT created", slog.Int64("tokenId", created.TokenID), slog.String("collection", input.Collection))
	srv.events.emit(ctx, srv.log(ctx), service.EventNFTCreated, func(event *service.MarketplaceEvent) {
		event.TokenIDs = []int64{created.TokenID}
		event.Address = input.Address
		event.Collection = input.Collection
	})

	return created, nil
}

// CreateMany mints a batch of NFTs in one transaction. Either every token is created or none is.
func (srv *nftService) CreateMany(ctx context.Context, input usecase.CreateNFTsInput) ([]*entity.NFT, error) {
	n := input.Len()
	switch {
	case n < 0:
		return nil, domainerrors.ErrBatchLengthMismatch
	case n == 0:
		return nil, domainerrors.ErrInvalidInput.WithMessagef("At least one token is required")
	case n > srv.maxBatchSize:
		return nil, domainerrors.ErrInvalidInput.WithMessagef("A batch holds at most %d tokens, got %d", srv.maxBatchSize, n)
	}

	if err := srv.urls.optionalList("images", input.Images); err != nil {
		return nil, err
	}
	for _, animationURL := range input.AnimationURLs {
		if err := srv.urls.optionalPtr("animationUrls", animationURL); err != nil {
			return nil, err
		}
	}

	created := make([]*entity.NFT, 0, n)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, collection, err := srv.resolveOwnerAndCollection(ctx, repoFactory, input.Address, input.Collection)
		if err != nil {
			return err
		}

		nftRepo := repoFactory.NFTRepo()
		for i := range n {
			nft, err := srv.createOne(ctx, nftRepo, input.At(i), owner, collection)
			if err != nil {
				return err
			}
			created = append(created, nft)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create NFT batch", slog.Int("size", n), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("NFT batch created", slog.Int("size", n), slog.String("collection", input.Collection))
	srv.events.emit(ctx, srv.log(ctx), service.EventNFTCreated, func(event *service.MarketplaceEvent) {
		event.TokenIDs = slices.Clone(input.TokenIDs)
		event.Address = input.Address
		event.Collection = input.Collection
	})

	return created, nil
}

func (srv *nftService) resolveOwnerAndCollection(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	address string,
	collectionName string,
) (*entity.User, *entity.Collection, error) {
	owner, err := repoFactory.UserRepo().FindByAddress(ctx, address)
	if err != nil {
		return nil, nil, userLookupError(err, address, "failed to find owner")
	}

	collection, err := repoFactory.CollectionRepo().FindByName(ctx, collectionName)
	if err != nil {
		return nil, nil, collectionLookupError(err, collectionName, "failed to find collection")
	}

	return owner, collection, nil
}

func (srv *nftService) createOne(
	ctx context.Context,
	nftRepo repository.NFTRepository,
	input usecase.CreateNFTInput,
	owner *entity.User,
	collection *entity.Collection,
) (*entity.NFT, error) {
	metadata := entity.EmptyMetadataArrays()
	metadata.Name = input.Name
	metadata.Image = input.Image
	metadata.AnimationURL = input.AnimationURL

	nft := &entity.NFT{
		TokenID:        input.TokenID,
		ItemID:         input.ItemID,
		BlockchainType: input.BlockchainType,
		ErcType:        input.ErcType,
		MarketState:    entity.UnlistedMarketState(),
		Metadata:       metadata,
		OwnerAddress:   owner.Address,
		CreatorAddress: owner.Address,
		CollectionID:   collection.ID,
	}

	if err := nftRepo.Create(ctx, nft); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateNFT):
			return nil, domainerrors.ErrNFTAlreadyExists.WithMessagef("Error while creating the token %d: tokenId or itemId already exists", input.TokenID)
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, domainerrors.ErrInvalidInput.WithMessagef("Error while creating the token %d: invalid owner or collection", input.TokenID)
		default:
			return nil, errors.Wrapf(err, "failed to create NFT %d", input.TokenID)
		}
	}

	return nft, nil
}

// PutOnMarket writes the market state. Listing details are only written while the metadata is mutable.
func (srv *nftService) PutOnMarket(ctx context.Context, input usecase.PutOnMarketInput) (*entity.NFT, error) {
	if err := srv.urls.listing(input.Listing); err != nil {
		return nil, err
	}

	var listed *entity.NFT
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NFTRepo()

		current, err := nftRepo.FindByTokenIDForUpdate(ctx, input.TokenID)
		if err != nil {
			return nftLookupError(err, input.TokenID, "failed to lock NFT")
		}

		if err := nftRepo.UpdateMarketState(ctx, input.TokenID, input.Market); err != nil {
			return errors.Wrap(err, "failed to update market state")
		}

		if current.IsMetadataFrozen {
			srv.log(ctx).Debug("Metadata frozen, listing details ignored", slog.Int64("tokenId", input.TokenID))
		} else if err := nftRepo.UpdateListingDetails(ctx, input.TokenID, input.Listing); err != nil {
			return errors.Wrap(err, "failed to update listing details")
		}

		listed, err = nftRepo.FindByTokenID(ctx, input.TokenID)
		if err != nil {
			return nftLookupError(err, input.TokenID, "failed to reload NFT")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventNFTListed, func(event *service.MarketplaceEvent) {
		event.TokenIDs = []int64{input.TokenID}
	})

	return listed, nil
}

// TakeOffMarket resets the market state to the unlisted defaults.
func (srv *nftService) TakeOffMarket(ctx context.Context, tokenID int64) (*entity.NFT, error) {
	var delisted *entity.NFT
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NFTRepo()

		if err := nftRepo.UpdateMarketState(ctx, tokenID, entity.UnlistedMarketState()); err != nil {
			return nftLookupError(err, tokenID, "failed to reset market state")
		}

		var err error
		delisted, err = nftRepo.FindByTokenID(ctx, tokenID)
		if err != nil {
			return nftLookupError(err, tokenID, "failed to reload NFT")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventNFTDelisted, func(event *service.MarketplaceEvent) {
		event.TokenIDs = []int64{tokenID}
	})

	return delisted, nil
}

// Edit rewrites the metadata of a mutable NFT in place and may move it to another collection.
// Identity, ownership, likes, reviews and market state are left untouched.
func (srv *nftService) Edit(ctx context.Context, input usecase.EditNFTInput) (*entity.NFT, error) {
	if err := srv.urls.optional("image", input.Edit.Image); err != nil {
		return nil, err
	}
	if err := srv.urls.optionalPtr("animationUrl", input.Edit.AnimationURL); err != nil {
		return nil, err
	}
	if err := srv.urls.listing(input.Edit.Listing); err != nil {
		return nil, err
	}

	var edited *entity.NFT
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NFTRepo()

		nft, err := nftRepo.FindByTokenIDForUpdate(ctx, input.TokenID)
		if err != nil {
			return nftLookupError(err, input.TokenID, "failed to lock NFT")
		}

		collection, err := repoFactory.CollectionRepo().FindByName(ctx, input.Collection)
		if err != nil {
			return collectionLookupError(err, input.Collection, "failed to find collection")
		}

		if nft.IsMetadataFrozen {
			return domainerrors.ErrMetadataFrozen.WithMessagef("NFT with tokenId %d has its metadata frozen", input.TokenID)
		}

		nft.ApplyEdit(input.Edit)
		nft.CollectionID = collection.ID

		if err := nftRepo.UpdateMetadata(ctx, nft); err != nil {
			return errors.Wrap(err, "failed to update NFT metadata")
		}

		edited, err = nftRepo.FindByTokenID(ctx, input.TokenID)
		if err != nil {
			return nftLookupError(err, input.TokenID, "failed to reload NFT")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to edit NFT", slog.Int64("tokenId", input.TokenID), slog.Any("error", err))

		return nil, err
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventNFTEdited, func(event *service.MarketplaceEvent) {
		event.TokenIDs = []int64{input.TokenID}
		event.Collection = input.Collection
	})

	return edited, nil
}

// Transfer moves the NFT to a new owner and takes it off the market.
func (srv *nftService) Transfer(ctx context.Context, input usecase.TransferNFTInput) (*entity.NFT, error) {
	var (
		transferred *entity.NFT
		wasListed   bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NFTRepo()

		current, err := nftRepo.FindByTokenIDForUpdate(ctx, input.TokenID)
		if err != nil {
			return nftLookupError(err, input.TokenID, "failed to lock NFT")
		}
		wasListed = current.IsListed()

		if _, err := repoFactory.UserRepo().FindByAddress(ctx, input.Address); err != nil {
			return userLookupError(err, input.Address, "failed to find new owner")
		}

		if err := nftRepo.UpdateOwner(ctx, input.TokenID, input.Address, entity.UnlistedMarketState()); err != nil {
			return errors.Wrap(err, "failed to transfer NFT")
		}

		transferred, err = nftRepo.FindByTokenID(ctx, input.TokenID)
		if err != nil {
			return nftLookupError(err, input.TokenID, "failed to reload NFT")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to transfer NFT", slog.Int64("tokenId", input.TokenID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("NFT transferred",
		slog.Int64("tokenId", input.TokenID),
		slog.String("to", input.Address),
		slog.Bool("delisted", wasListed),
	)
	srv.events.emit(ctx, srv.log(ctx), service.EventNFTTransferred, func(event *service.MarketplaceEvent) {
		event.TokenIDs = []int64{input.TokenID}
		event.Address = input.Address
	})

	return transferred, nil
}

// Delete removes an NFT together with its reviews.
func (srv *nftService) Delete(ctx context.Context, tokenID int64) error {
	if err := srv.nftRepo.Delete(ctx, tokenID); err != nil {
		return nftLookupError(err, tokenID, "failed to delete NFT")
	}

	srv.log(ctx).Info("NFT deleted", slog.Int64("tokenId", tokenID))
	srv.events.emit(ctx, srv.log(ctx), service.EventNFTDeleted, func(event *service.MarketplaceEvent) {
		event.TokenIDs = []int64{tokenID}
	})

	return nil
}

// FetchOne returns the full projection of an NFT.
func (srv *nftService) FetchOne(ctx context.Context, tokenID int64) (*entity.NFT, error) {
	nft, err := srv.nftRepo.FindByTokenID(ctx, tokenID)
	if err != nil {
		return nil, nftLookupError(err, tokenID, "failed to find NFT")
	}

	return nft, nil
}

// FetchAll returns the full projection of every NFT.
func (srv *nftService) FetchAll(ctx context.Context) ([]*entity.NFT, error) {
	nfts, err := srv.nftRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch NFTs")
	}

	return nfts, nil
}

// FetchMultiple decodes the id list and returns one entry per id, nil for tokens that do not exist.
func (srv *nftService) FetchMultiple(ctx context.Context, encodedIDs string) ([]*entity.NFT, error) {
	tokenIDs, err := util.DecodeTokenIDs(encodedIDs)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithMessagef("Invalid token id list: %s", encodedIDs)
	}

	unique := slices.Clone(tokenIDs)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	found, err := srv.nftRepo.FindByTokenIDs(ctx, unique)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch NFTs")
	}

	nfts := make([]*entity.NFT, len(tokenIDs))
	for i, tokenID := range tokenIDs {
		nfts[i] = found[tokenID]
	}

	return nfts, nil
}
