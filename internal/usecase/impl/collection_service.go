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

// collectionCreateAttempts bounds the id allocation retries when a generated name collides.
const collectionCreateAttempts = 2

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	txManager      repository.TransactionManager
	collectionRepo repository.CollectionRepository
	urls           *urlRules
	events         eventEmitter
	logger         *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CollectionRepo repository.CollectionRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		txManager:      params.TxManager,
		collectionRepo: params.CollectionRepo,
		urls:           newURLRules(),
		events:         eventEmitter{publisher: params.Publisher},
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Create returns the draft collection of address, allocating a new one from the id sequence when there is none.
// Each attempt runs in its own transaction because a unique violation aborts the surrounding one.
func (srv *collectionService) Create(ctx context.Context, address string) (*entity.Collection, error) {
	if address == entity.EmptyAddress {
		return nil, domainerrors.ErrEmptyAddress.WithMessagef("User address is empty")
	}

	for attempt := 1; attempt <= collectionCreateAttempts; attempt++ {
		collection, created, err := srv.createOrReuse(ctx, address)
		if errors.Is(err, repository.ErrDuplicateCollection) {
			srv.log(ctx).Warn("Generated collection name collided, retrying",
				slog.String("address", address),
				slog.Int("attempt", attempt),
			)

			continue
		}
		if err != nil {
			return nil, err
		}

		if created {
			srv.log(ctx).Info("Collection created", slog.String("name", collection.Name), slog.String("address", address))
			srv.events.emit(ctx, srv.log(ctx), service.EventCollectionCreated, func(event *service.MarketplaceEvent) {
				event.Collection = collection.Name
				event.Address = address
			})
		}

		return collection, nil
	}

	return nil, domainerrors.ErrCollectionNameTaken.WithMessagef("Could not allocate a collection name for %s", address)
}

func (srv *collectionService) createOrReuse(ctx context.Context, address string) (*entity.Collection, bool, error) {
	var (
		collection *entity.Collection
		created    bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		if _, err := repoFactory.UserRepo().FindByAddress(ctx, address); err != nil {
			return userLookupError(err, address, "failed to find collection owner")
		}

		draft, err := collectionRepo.FindDraftByOwner(ctx, address)
		switch {
		case err == nil:
			nftCount, err := collectionRepo.CountNFTs(ctx, draft.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count draft collection NFTs")
			}
			if draft.IsDraft(nftCount) {
				collection = draft

				return nil
			}
			srv.log(ctx).Debug("Draft collection no longer reusable", slog.String("collection", draft.Name))
		case !errors.Is(err, repository.ErrCollectionNotFound):
			return errors.Wrap(err, "failed to find draft collection")
		}

		id, err := collectionRepo.NextID(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to allocate collection id")
		}

		name := entity.DefaultCollectionName(id)
		existing, err := collectionRepo.FindByName(ctx, name)
		switch {
		case err == nil && existing.OwnerAddress == address:
			collection = existing

			return nil
		case err == nil:
			return repository.ErrDuplicateCollection
		case !errors.Is(err, repository.ErrCollectionNotFound):
			return errors.Wrap(err, "failed to check collection name")
		}

		candidate := &entity.Collection{
			ID:           id,
			Name:         name,
			OwnerAddress: address,
		}
		if err := collectionRepo.Create(ctx, candidate); err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return domainerrors.ErrUserNotFound.WithMessagef("Cannot find the user: %s", address)
			}

			return err
		}

		collection = candidate
		created = true

		return nil
	})

	return collection, created, err
}

// Read returns the full projection of a collection.
func (srv *collectionService) Read(ctx context.Context, name string) (*entity.Collection, error) {
	collection, err := srv.collectionRepo.FindDetailedByName(ctx, name)
	if err != nil {
		return nil, collectionLookupError(err, name, "failed to find collection")
	}

	return collection, nil
}

// Update edits name, image and description. Any edit marks the name as modified for good.
func (srv *collectionService) Update(ctx context.Context, input usecase.UpdateCollectionInput) (*entity.Collection, error) {
	changes := input.Changes
	if err := srv.urls.optionalPtr("image", changes.Image); err != nil {
		return nil, err
	}
	if !changes.IsSameName && changes.NewName == "" {
		return nil, domainerrors.ErrInvalidInput.WithMessagef("newName is required when isSameName is false")
	}

	var updated *entity.Collection
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		collection, err := collectionRepo.FindByName(ctx, input.Name)
		if err != nil {
			return collectionLookupError(err, input.Name, "failed to find collection")
		}

		if !changes.IsSameName && changes.NewName != collection.Name {
			_, err := collectionRepo.FindByName(ctx, changes.NewName)
			if err == nil {
				return domainerrors.ErrCollectionNameTaken.WithMessagef("Collection with name %s already exists", changes.NewName)
			}
			if !errors.Is(err, repository.ErrCollectionNotFound) {
				return errors.Wrap(err, "failed to check collection name")
			}
		}

		collection.Apply(changes)

		if err := collectionRepo.Update(ctx, collection); err != nil {
			if errors.Is(err, repository.ErrDuplicateCollection) {
				return domainerrors.ErrCollectionNameTaken.WithMessagef("Collection with name %s already exists", changes.NewName)
			}

			return errors.Wrap(err, "failed to update collection")
		}

		updated, err = collectionRepo.FindDetailedByName(ctx, collection.Name)
		if err != nil {
			return collectionLookupError(err, collection.Name, "failed to reload collection")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update collection", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.events.emit(ctx, srv.log(ctx), service.EventCollectionUpdated, func(event *service.MarketplaceEvent) {
		event.Collection = updated.Name
	})

	return updated, nil
}

// Delete removes an empty collection.
func (srv *collectionService) Delete(ctx context.Context, name string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.CollectionRepo()

		collection, err := collectionRepo.FindByName(ctx, name)
		if err != nil {
			return collectionLookupError(err, name, "failed to find collection")
		}

		count, err := collectionRepo.CountNFTs(ctx, collection.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count collection NFTs")
		}
		if count > 0 {
			return domainerrors.ErrCollectionNotEmpty.WithMessagef("Collection %s contains one or more NFTs", name)
		}

		if err := collectionRepo.Delete(ctx, collection.ID); err != nil {
			if errors.Is(err, repository.ErrCollectionInUse) {
				return domainerrors.ErrCollectionNotEmpty.WithMessagef("Collection %s contains one or more NFTs", name)
			}

			return collectionLookupError(err, name, "failed to delete collection")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Collection deleted", slog.String("name", name))
	srv.events.emit(ctx, srv.log(ctx), service.EventCollectionDeleted, func(event *service.MarketplaceEvent) {
		event.Collection = name
	})

	return nil
}

// ListAll returns the full projection of every collection.
func (srv *collectionService) ListAll(ctx context.Context) ([]*entity.Collection, error) {
	collections, err := srv.collectionRepo.FindAllDetailed(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch collections")
	}

	return collections, nil
}
