package handler

import (
	"encoding/json"
	"strconv"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/pkg/errors"
)

// FlexInt64 accepts an integer written either as a JSON number or as a numeric string.
type FlexInt64 int64

// UnmarshalJSON implements json.Unmarshaler.
func (v *FlexInt64) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return errors.Wrap(err, "expected an integer")
	}

	parsed, err := number.Int64()
	if err != nil {
		return errors.Wrapf(err, "expected an integer, got %s", number)
	}
	*v = FlexInt64(parsed)

	return nil
}

func int64s(values []FlexInt64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}

	return out
}

func parseTokenID(raw string) (int64, error) {
	tokenID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || tokenID < 0 {
		return 0, errors.Errorf("invalid tokenId %q", raw)
	}

	return tokenID, nil
}

// AddressRequest carries the wallet address acting on a resource.
type AddressRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
}

// UpdateProfileRequest represents the request body for editing a user profile
type UpdateProfileRequest struct {
	Email         *string `json:"email" validate:"omitempty,email"`
	UserName      *string `json:"userName" validate:"omitempty,max=64"`
	CompanyName   string  `json:"companyName"`
	Description   string  `json:"description"`
	FacebookLink  string  `json:"facebookLink"`
	InstagramLink string  `json:"instagramLink"`
	LinkedInLink  string  `json:"linkedInLink"`
	MainLink      string  `json:"mainLink"`
	TwitterLink   string  `json:"twitterLink"`
	Image         string  `json:"image"`
}

func (r UpdateProfileRequest) toProfile() entity.UserProfile {
	return entity.UserProfile{
		Email:         r.Email,
		UserName:      r.UserName,
		CompanyName:   r.CompanyName,
		Description:   r.Description,
		FacebookLink:  r.FacebookLink,
		InstagramLink: r.InstagramLink,
		LinkedInLink:  r.LinkedInLink,
		MainLink:      r.MainLink,
		TwitterLink:   r.TwitterLink,
		Image:         r.Image,
	}
}

// CreateNFTRequest represents the request body for minting one NFT
type CreateNFTRequest struct {
	Address        string    `json:"address" validate:"required,eth_addr"`
	Collection     string    `json:"collection" validate:"required"`
	BlockchainType string    `json:"blockchainType" validate:"required"`
	ErcType        string    `json:"ercType" validate:"required"`
	TokenID        FlexInt64 `json:"tokenId" validate:"gte=0"`
	ItemID         FlexInt64 `json:"itemId" validate:"gte=0"`
	Name           string    `json:"name" validate:"required"`
	Image          string    `json:"image"`
	AnimationURL   *string   `json:"animationUrl"`
}

// CreateNFTsRequest represents the request body for minting a batch of NFTs
type CreateNFTsRequest struct {
	Address        string      `json:"address" validate:"required,eth_addr"`
	Collection     string      `json:"collection" validate:"required"`
	BlockchainType string      `json:"blockchainType" validate:"required"`
	ErcType        string      `json:"ercType" validate:"required"`
	TokenIDs       []FlexInt64 `json:"tokenIds" validate:"dive,gte=0"`
	ItemIDs        []FlexInt64 `json:"itemIds" validate:"dive,gte=0"`
	Names          []string    `json:"names"`
	Images         []string    `json:"images"`
	AnimationURLs  []*string   `json:"animationUrls"`
}

// listingFields are the listing details shared by the on-market and edit payloads.
type listingFields struct {
	SaleType                       string          `json:"saleType"`
	CollectibleCategory            string          `json:"collectibleCategory"`
	ProductKeyAccessTokenCategory  string          `json:"productKeyAccessTokenCategory"`
	ProductKeyVirtualAssetCategory string          `json:"productKeyVirtualAssetCategory"`
	IsSensitiveContent             bool            `json:"isSensitiveContent"`
	Descriptions                   []string        `json:"descriptions"`
	Images                         []string        `json:"images"`
	ExternalURL                    string          `json:"externalUrl"`
	YoutubeURL                     string          `json:"youtubeUrl"`
	Description                    string          `json:"description"`
	Attributes                     json.RawMessage `json:"attributes"`
}

func (f listingFields) toListing() entity.ListingDetails {
	descriptions := f.Descriptions
	if descriptions == nil {
		descriptions = []string{}
	}
	images := f.Images
	if images == nil {
		images = []string{}
	}

	return entity.ListingDetails{
		SaleType:                       f.SaleType,
		CollectibleCategory:            f.CollectibleCategory,
		ProductKeyAccessTokenCategory:  f.ProductKeyAccessTokenCategory,
		ProductKeyVirtualAssetCategory: f.ProductKeyVirtualAssetCategory,
		IsSensitiveContent:             f.IsSensitiveContent,
		Descriptions:                   descriptions,
		Images:                         images,
		ExternalURL:                    f.ExternalURL,
		YoutubeURL:                     f.YoutubeURL,
		Description:                    f.Description,
		Attributes:                     f.Attributes,
	}
}

// PutOnMarketRequest represents the request body for listing an NFT
type PutOnMarketRequest struct {
	Price         FlexInt64  `json:"price" validate:"gte=0"`
	IsOnSale      bool       `json:"isOnSale"`
	IsOnLease     bool       `json:"isOnLease"`
	IsOnAuction   bool       `json:"isOnAuction"`
	StartSaleDate *time.Time `json:"startSaleDate"`
	EndSaleDate   *time.Time `json:"endSaleDate"`
	listingFields
}

func (r PutOnMarketRequest) toMarketState() entity.MarketState {
	return entity.MarketState{
		Price:         int64(r.Price),
		IsOnSale:      r.IsOnSale,
		IsOnLease:     r.IsOnLease,
		IsOnAuction:   r.IsOnAuction,
		StartSaleDate: r.StartSaleDate,
		EndSaleDate:   r.EndSaleDate,
	}
}

// EditNFTRequest represents the request body for rewriting NFT metadata
type EditNFTRequest struct {
	Name             string  `json:"name" validate:"required"`
	Image            string  `json:"image"`
	AnimationURL     *string `json:"animationUrl"`
	IsMetadataFrozen bool    `json:"isMetadataFrozen"`
	Collection       string  `json:"collection" validate:"required"`
	listingFields
}

func (r EditNFTRequest) toEdit() entity.MetadataEdit {
	return entity.MetadataEdit{
		Name:             r.Name,
		Image:            r.Image,
		AnimationURL:     r.AnimationURL,
		IsMetadataFrozen: r.IsMetadataFrozen,
		Listing:          r.toListing(),
	}
}

// UpdateCollectionRequest represents the request body for editing a collection
type UpdateCollectionRequest struct {
	NewName     string  `json:"newName" validate:"omitempty,max=128"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	IsSameName  bool    `json:"isSameName"`
}
