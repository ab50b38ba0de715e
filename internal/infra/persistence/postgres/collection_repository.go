package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRepository implements the repository.CollectionRepository interface using GORM.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository is the constructor for collectionRepository.
func NewCollectionRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{
		db: db,
	}
}

// withProjection preloads the owner and every NFT together with its reviews.
func (repo *collectionRepository) withProjection(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("User").
		Preload("NFTs", func(db *gorm.DB) *gorm.DB {
			return db.Order("token_id ASC")
		}).
		Preload("NFTs.Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
}

// NextID reserves the next value of the collections id sequence.
func (repo *collectionRepository) NextID(ctx context.Context) (int64, error) {
	var id int64

	if err := repo.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('collections', 'id'))").
		Scan(&id).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to reserve collection id")
	}

	return id, nil
}

// Create persists a new collection and writes the generated values back to the entity.
func (repo *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	if collection.UUID == uuid.Nil {
		collection.UUID = uuid.New()
	}
	collectionM := fromCollectionDomain(collection)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(collectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCollection
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create collection")
	}

	collection.ID = collectionM.ID
	collection.CreatedAt = collectionM.CreatedAt

	return nil
}

// FindByName retrieves the bare collection row by its unique name.
func (repo *collectionRepository) FindByName(ctx context.Context, name string) (*entity.Collection, error) {
	var collectionM model.CollectionModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&collectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find collection by name")
	}

	return toCollectionDomain(&collectionM), nil
}

// FindDetailedByName retrieves a collection with its owner, NFTs and reviews.
func (repo *collectionRepository) FindDetailedByName(ctx context.Context, name string) (*entity.Collection, error) {
	var collectionM model.CollectionModel

	if err := repo.withProjection(ctx).
		Where("name = ?", name).
		First(&collectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find detailed collection by name")
	}

	return toCollectionDomain(&collectionM), nil
}

// FindAllDetailed retrieves every collection with its owner, NFTs and reviews.
func (repo *collectionRepository) FindAllDetailed(ctx context.Context) ([]*entity.Collection, error) {
	var collectionModels []*model.CollectionModel

	if err := repo.withProjection(ctx).
		Order("id ASC").
		Find(&collectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find collections")
	}

	collections := make([]*entity.Collection, 0, len(collectionModels))
	for _, collectionM := range collectionModels {
		collections = append(collections, toCollectionDomain(collectionM))
	}

	return collections, nil
}

// FindDraftByOwner retrieves the oldest collection of an owner that still carries its generated name and holds no NFTs.
func (repo *collectionRepository) FindDraftByOwner(ctx context.Context, ownerAddress string) (*entity.Collection, error) {
	var collectionM model.CollectionModel

	if err := repo.db.WithContext(ctx).
		Where("user_address = ? AND is_name_modified = ?", ownerAddress, false).
		Where("name LIKE ?", entity.DefaultCollectionPrefix+"%").
		Where("NOT EXISTS (SELECT 1 FROM nfts WHERE nfts.collection_id = collections.id)").
		Order("id ASC").
		First(&collectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCollectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find draft collection")
	}

	return toCollectionDomain(&collectionM), nil
}

// CountNFTs counts the NFTs that reference a collection.
func (repo *collectionRepository) CountNFTs(ctx context.Context, collectionID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NFTModel{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count collection NFTs")
	}

	return count, nil
}

// Update persists the editable collection fields.
func (repo *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CollectionModel{}).
		Where("id = ?", collection.ID).
		Updates(map[string]any{
			"name":             collection.Name,
			"image":            collection.Image,
			"description":      collection.Description,
			"is_name_modified": collection.IsNameModified,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCollection
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update collection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// Delete removes a collection. The foreign key from nfts rejects deleting a non-empty collection.
func (repo *collectionRepository) Delete(ctx context.Context, collectionID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", collectionID).
		Delete(&model.CollectionModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCollectionInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete collection")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCollectionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCollectionDomain converts a GORM CollectionModel and its loaded associations to a domain Collection entity.
func toCollectionDomain(data *model.CollectionModel) *entity.Collection {
	if data == nil {
		return nil
	}

	collection := &entity.Collection{
		ID:             data.ID,
		UUID:           data.UUID,
		Name:           data.Name,
		Image:          data.Image,
		Description:    data.Description,
		IsNameModified: data.IsNameModified,
		OwnerAddress:   data.UserAddress,
		CreatedAt:      data.CreatedAt,
		Owner:          toUserDomain(data.User),
	}

	if data.NFTs != nil {
		collection.NFTs = make([]*entity.NFT, 0, len(data.NFTs))
		for _, nftM := range data.NFTs {
			collection.NFTs = append(collection.NFTs, toNFTDomain(nftM))
		}
	}

	return collection
}

// fromCollectionDomain converts a domain Collection entity to a GORM CollectionModel without associations.
func fromCollectionDomain(data *entity.Collection) *model.CollectionModel {
	if data == nil {
		return nil
	}

	return &model.CollectionModel{
		ID:             data.ID,
		UUID:           data.UUID,
		Name:           data.Name,
		Image:          data.Image,
		Description:    data.Description,
		IsNameModified: data.IsNameModified,
		UserAddress:    data.OwnerAddress,
		CreatedAt:      data.CreatedAt,
	}
}
