package entity

import (
	"encoding/json"
	"time"
)

// NFT is a token listed on the marketplace. TokenID is the primary key.
type NFT struct {
	TokenID        int64  `json:"tokenId"`        // On-chain token id.
	ItemID         int64  `json:"itemId"`         // Marketplace item id, unique.
	BlockchainType string `json:"blockchainType"` // Chain the token lives on.
	ErcType        string `json:"ercType"`        // Token standard, e.g. ERC721.

	MarketState
	Metadata

	IsMetadataFrozen bool      `json:"isMetadataFrozen"` // Once set it is never cleared.
	Likes            int       `json:"likes"`            // Denormalized like counter, never negative.
	CreatedAt        time.Time `json:"createdAt"`

	OwnerAddress   string `json:"-"`
	CreatorAddress string `json:"-"`
	CollectionID   int64  `json:"-"`

	Owner      *User       `json:"user,omitempty"`
	Creator    *User       `json:"creator,omitempty"`
	Collection *Collection `json:"collection,omitempty"`
	Reviews    []*Review   `json:"reviews,omitzero"` // Nil when reviews were not loaded; loaded and empty encodes as [].
}

// MarketState is the mutable sale/lease/auction status of an NFT.
// It can change at any time, including after the metadata is frozen.
type MarketState struct {
	Price         int64      `json:"price"`
	IsOnSale      bool       `json:"isOnSale"`
	IsOnLease     bool       `json:"isOnLease"`
	IsOnAuction   bool       `json:"isOnAuction"`
	StartSaleDate *time.Time `json:"startSaleDate"`
	EndSaleDate   *time.Time `json:"endSaleDate"`
}

// UnlistedMarketState returns the market state of an NFT that is not offered in any way.
func UnlistedMarketState() MarketState {
	return MarketState{}
}

// IsListed reports whether any of the sale, lease or auction flags is set.
func (s MarketState) IsListed() bool {
	return s.IsOnSale || s.IsOnLease || s.IsOnAuction
}

// ListingDetails is the descriptive metadata a seller may adjust when putting an NFT on the market.
type ListingDetails struct {
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

// Metadata is every descriptive field of an NFT. It is immutable once the NFT is frozen.
type Metadata struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`        // Empty when the token has no image.
	AnimationURL *string `json:"animationUrl"` // Nil when the token has no animation.

	PropertiesKey   []string `json:"propertiesKey"`
	PropertiesValue []string `json:"propertiesValue"`
	ImagesKey       []string `json:"imagesKey"`
	ImagesValue     []string `json:"imagesValue"`
	LevelsKey       []string `json:"levelsKey"`
	LevelsValueNum  []int64  `json:"levelsValueNum"`
	LevelsValueDen  []int64  `json:"levelsValueDen"`

	ListingDetails
}

// EmptyMetadataArrays returns metadata with every array initialized to an empty slice,
// so freshly minted tokens serialize as [] instead of null.
func EmptyMetadataArrays() Metadata {
	return Metadata{
		PropertiesKey:   []string{},
		PropertiesValue: []string{},
		ImagesKey:       []string{},
		ImagesValue:     []string{},
		LevelsKey:       []string{},
		LevelsValueNum:  []int64{},
		LevelsValueDen:  []int64{},
		ListingDetails: ListingDetails{
			Descriptions: []string{},
			Images:       []string{},
		},
	}
}

// MetadataEdit is the set of metadata fields an owner may rewrite before freezing.
type MetadataEdit struct {
	Name             string
	Image            string
	AnimationURL     *string
	IsMetadataFrozen bool
	Listing          ListingDetails
}

// ApplyEdit rewrites the editable metadata in place. The caller must check IsMetadataFrozen first.
// Freezing is one-way: an edit can set the flag but never clear it.
func (n *NFT) ApplyEdit(edit MetadataEdit) {
	n.Name = edit.Name
	n.Image = edit.Image
	n.AnimationURL = edit.AnimationURL
	n.ListingDetails = edit.Listing
	n.IsMetadataFrozen = n.IsMetadataFrozen || edit.IsMetadataFrozen
}

// CanUnlike reports whether the counter can be decremented.
func (n *NFT) CanUnlike() bool {
	return n.Likes > 0
}
