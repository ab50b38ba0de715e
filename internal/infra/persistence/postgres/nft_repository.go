package postgres

import (
	"context"
	"encoding/json"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nftRepository implements the repository.NFTRepository interface using GORM.
type nftRepository struct {
	db *gorm.DB
}

// NewNFTRepository is the constructor for nftRepository.
func NewNFTRepository(db *gorm.DB) repository.NFTRepository {
	return &nftRepository{
		db: db,
	}
}

// withProjection preloads owner, creator, collection and reviews.
func (repo *nftRepository) withProjection(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("User").
		Preload("Creator").
		Preload("Collection").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
}

// Create persists a new NFT. Associations are never written through this call.
func (repo *nftRepository) Create(ctx context.Context, nft *entity.NFT) error {
	nftM := fromNFTDomain(nft)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(nftM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNFT
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create NFT")
	}

	nft.CreatedAt = nftM.CreatedAt

	return nil
}

// FindByTokenID retrieves the full projection of a single NFT.
func (repo *nftRepository) FindByTokenID(ctx context.Context, tokenID int64) (*entity.NFT, error) {
	var nftM model.NFTModel

	if err := repo.withProjection(ctx).
		Where("token_id = ?", tokenID).
		First(&nftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNFTNotFound
		}

		return nil, errors.Wrap(err, "failed to find NFT by token id")
	}

	return toNFTDomain(&nftM), nil
}

// FindByTokenIDForUpdate retrieves the bare NFT row with a row lock held until the transaction ends.
func (repo *nftRepository) FindByTokenIDForUpdate(ctx context.Context, tokenID int64) (*entity.NFT, error) {
	var nftM model.NFTModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token_id = ?", tokenID).
		First(&nftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNFTNotFound
		}

		return nil, errors.Wrap(err, "failed to lock NFT by token id")
	}

	return toNFTDomain(&nftM), nil
}

// FindByTokenIDs retrieves the projections of every existing token in tokenIDs.
// Missing tokens are simply absent from the map.
func (repo *nftRepository) FindByTokenIDs(ctx context.Context, tokenIDs []int64) (map[int64]*entity.NFT, error) {
	nfts := make(map[int64]*entity.NFT, len(tokenIDs))
	if len(tokenIDs) == 0 {
		return nfts, nil
	}

	var nftModels []*model.NFTModel
	if err := repo.withProjection(ctx).
		Where("token_id IN ?", tokenIDs).
		Find(&nftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find NFTs by token ids")
	}

	for _, nftM := range nftModels {
		nfts[nftM.TokenID] = toNFTDomain(nftM)
	}

	return nfts, nil
}

// FindAll retrieves the projection of every NFT ordered by token id.
func (repo *nftRepository) FindAll(ctx context.Context) ([]*entity.NFT, error) {
	var nftModels []*model.NFTModel

	if err := repo.withProjection(ctx).
		Order("token_id ASC").
		Find(&nftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find NFTs")
	}

	nfts := make([]*entity.NFT, 0, len(nftModels))
	for _, nftM := range nftModels {
		nfts = append(nfts, toNFTDomain(nftM))
	}

	return nfts, nil
}

// UpdateMarketState writes the sale, lease and auction columns of an NFT.
func (repo *nftRepository) UpdateMarketState(ctx context.Context, tokenID int64, state entity.MarketState) error {
	return repo.updateColumns(ctx, tokenID, marketStateColumns(state), "failed to update NFT market state")
}

// UpdateListingDetails writes the listing detail columns of an NFT.
func (repo *nftRepository) UpdateListingDetails(ctx context.Context, tokenID int64, details entity.ListingDetails) error {
	return repo.updateColumns(ctx, tokenID, listingDetailsColumns(details), "failed to update NFT listing details")
}

// UpdateMetadata writes the editable metadata, the freeze flag and the collection of an NFT.
func (repo *nftRepository) UpdateMetadata(ctx context.Context, nft *entity.NFT) error {
	columns := listingDetailsColumns(nft.ListingDetails)
	columns["name"] = nft.Name
	columns["image"] = nft.Image
	columns["animation_url"] = nft.AnimationURL
	columns["is_metadata_frozen"] = nft.IsMetadataFrozen
	columns["collection_id"] = nft.CollectionID

	return repo.updateColumns(ctx, nft.TokenID, columns, "failed to update NFT metadata")
}

// UpdateOwner moves an NFT to a new owner and writes its market state.
func (repo *nftRepository) UpdateOwner(ctx context.Context, tokenID int64, ownerAddress string, state entity.MarketState) error {
	columns := marketStateColumns(state)
	columns["user_address"] = ownerAddress

	return repo.updateColumns(ctx, tokenID, columns, "failed to transfer NFT")
}

// AddLikes adjusts the like counter. The check constraint rejects a negative result.
func (repo *nftRepository) AddLikes(ctx context.Context, tokenID int64, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NFTModel{}).
		Where("token_id = ?", tokenID).
		Update("likes", gorm.Expr("likes + ?", delta))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrNoLikes
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update NFT likes")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNFTNotFound
	}

	return nil
}

// Delete removes an NFT. Its reviews go with it through ON DELETE CASCADE.
func (repo *nftRepository) Delete(ctx context.Context, tokenID int64) error {
	result := repo.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		Delete(&model.NFTModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete NFT")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNFTNotFound
	}

	return nil
}

func (repo *nftRepository) updateColumns(ctx context.Context, tokenID int64, columns map[string]any, details string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NFTModel{}).
		Where("token_id = ?", tokenID).
		Updates(columns)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrInvalidReference
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, details)
	}

	if result.RowsAffected == 0 {
		return repository.ErrNFTNotFound
	}

	return nil
}

func marketStateColumns(state entity.MarketState) map[string]any {
	return map[string]any{
		"price":           state.Price,
		"is_on_sale":      state.IsOnSale,
		"is_on_lease":     state.IsOnLease,
		"is_on_auction":   state.IsOnAuction,
		"start_sale_date": state.StartSaleDate,
		"end_sale_date":   state.EndSaleDate,
	}
}

func listingDetailsColumns(details entity.ListingDetails) map[string]any {
	return map[string]any{
		"sale_type":                          details.SaleType,
		"collectible_category":               details.CollectibleCategory,
		"product_key_access_token_category":  details.ProductKeyAccessTokenCategory,
		"product_key_virtual_asset_category": details.ProductKeyVirtualAssetCategory,
		"is_sensitive_content":               details.IsSensitiveContent,
		"descriptions":                       nonNilStrings(details.Descriptions),
		"images":                             nonNilStrings(details.Images),
		"external_url":                       details.ExternalURL,
		"youtube_url":                        details.YoutubeURL,
		"description":                        details.Description,
		"attributes":                         toJSON(details.Attributes),
	}
}

// --- Mapper Functions ---

// toNFTDomain converts a GORM NFTModel and its loaded associations to a domain NFT entity.
func toNFTDomain(data *model.NFTModel) *entity.NFT {
	if data == nil {
		return nil
	}

	nft := &entity.NFT{
		TokenID:        data.TokenID,
		ItemID:         data.ItemID,
		BlockchainType: data.BlockchainType,
		ErcType:        data.ErcType,
		MarketState: entity.MarketState{
			Price:         data.Price,
			IsOnSale:      data.IsOnSale,
			IsOnLease:     data.IsOnLease,
			IsOnAuction:   data.IsOnAuction,
			StartSaleDate: data.StartSaleDate,
			EndSaleDate:   data.EndSaleDate,
		},
		Metadata: entity.Metadata{
			Name:            data.Name,
			Image:           data.Image,
			AnimationURL:    data.AnimationURL,
			PropertiesKey:   stringsOrEmpty(data.PropertiesKey),
			PropertiesValue: stringsOrEmpty(data.PropertiesValue),
			ImagesKey:       stringsOrEmpty(data.ImagesKey),
			ImagesValue:     stringsOrEmpty(data.ImagesValue),
			LevelsKey:       stringsOrEmpty(data.LevelsKey),
			LevelsValueNum:  int64sOrEmpty(data.LevelsValueNum),
			LevelsValueDen:  int64sOrEmpty(data.LevelsValueDen),
			ListingDetails: entity.ListingDetails{
				SaleType:                       data.SaleType,
				CollectibleCategory:            data.CollectibleCategory,
				ProductKeyAccessTokenCategory:  data.ProductKeyAccessTokenCategory,
				ProductKeyVirtualAssetCategory: data.ProductKeyVirtualAssetCategory,
				IsSensitiveContent:             data.IsSensitiveContent,
				Descriptions:                   stringsOrEmpty(data.Descriptions),
				Images:                         stringsOrEmpty(data.Images),
				ExternalURL:                    data.ExternalURL,
				YoutubeURL:                     data.YoutubeURL,
				Description:                    data.Description,
				Attributes:                     json.RawMessage(data.Attributes),
			},
		},
		IsMetadataFrozen: data.IsMetadataFrozen,
		Likes:            data.Likes,
		CreatedAt:        data.CreatedAt,
		OwnerAddress:     data.UserAddress,
		CreatorAddress:   data.CreatorAddress,
		CollectionID:     data.CollectionID,
		Owner:            toUserDomain(data.User),
		Creator:          toUserDomain(data.Creator),
		Collection:       toCollectionDomain(data.Collection),
	}

	if data.Reviews != nil {
		nft.Reviews = make([]*entity.Review, 0, len(data.Reviews))
		for _, reviewM := range data.Reviews {
			nft.Reviews = append(nft.Reviews, toReviewDomain(reviewM))
		}
	}

	return nft
}

// fromNFTDomain converts a domain NFT entity to a GORM NFTModel without associations.
func fromNFTDomain(data *entity.NFT) *model.NFTModel {
	if data == nil {
		return nil
	}

	return &model.NFTModel{
		TokenID:                        data.TokenID,
		ItemID:                         data.ItemID,
		BlockchainType:                 data.BlockchainType,
		ErcType:                        data.ErcType,
		Price:                          data.Price,
		IsOnSale:                       data.IsOnSale,
		IsOnLease:                      data.IsOnLease,
		IsOnAuction:                    data.IsOnAuction,
		StartSaleDate:                  data.StartSaleDate,
		EndSaleDate:                    data.EndSaleDate,
		Name:                           data.Name,
		Image:                          data.Image,
		AnimationURL:                   data.AnimationURL,
		PropertiesKey:                  nonNilStrings(data.PropertiesKey),
		PropertiesValue:                nonNilStrings(data.PropertiesValue),
		ImagesKey:                      nonNilStrings(data.ImagesKey),
		ImagesValue:                    nonNilStrings(data.ImagesValue),
		LevelsKey:                      nonNilStrings(data.LevelsKey),
		LevelsValueNum:                 nonNilInt64s(data.LevelsValueNum),
		LevelsValueDen:                 nonNilInt64s(data.LevelsValueDen),
		SaleType:                       data.SaleType,
		CollectibleCategory:            data.CollectibleCategory,
		ProductKeyAccessTokenCategory:  data.ProductKeyAccessTokenCategory,
		ProductKeyVirtualAssetCategory: data.ProductKeyVirtualAssetCategory,
		IsSensitiveContent:             data.IsSensitiveContent,
		Descriptions:                   nonNilStrings(data.Descriptions),
		Images:                         nonNilStrings(data.Images),
		ExternalURL:                    data.ExternalURL,
		YoutubeURL:                     data.YoutubeURL,
		Description:                    data.Description,
		Attributes:                     toJSON(data.Attributes),
		IsMetadataFrozen:               data.IsMetadataFrozen,
		Likes:                          data.Likes,
		UserAddress:                    data.OwnerAddress,
		CreatorAddress:                 data.CreatorAddress,
		CollectionID:                   data.CollectionID,
		CreatedAt:                      data.CreatedAt,
	}
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		NFTTokenID: data.NFTTokenID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		Title:      data.Title,
		CreatedAt:  data.CreatedAt,
	}
}

func toJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}

	return datatypes.JSON(raw)
}

func nonNilStrings(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}

	return pq.StringArray(values)
}

func nonNilInt64s(values []int64) pq.Int64Array {
	if values == nil {
		return pq.Int64Array{}
	}

	return pq.Int64Array(values)
}
