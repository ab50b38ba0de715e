package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// NFTModel mirrors the 'nfts' table. TokenID is assigned on chain, never by the database.
type NFTModel struct {
	TokenID        int64  `gorm:"primaryKey;autoIncrement:false"`
	ItemID         int64  `gorm:"not null;unique"`
	BlockchainType string `gorm:"type:varchar(64);not null;default:''"`
	ErcType        string `gorm:"type:varchar(32);not null;default:''"`

	Price         int64 `gorm:"not null;default:0"`
	IsOnSale      bool  `gorm:"not null;default:false"`
	IsOnLease     bool  `gorm:"not null;default:false"`
	IsOnAuction   bool  `gorm:"not null;default:false"`
	StartSaleDate *time.Time
	EndSaleDate   *time.Time

	Name            string         `gorm:"type:varchar(255);not null;default:''"`
	Image           string         `gorm:"type:text;not null;default:''"`
	AnimationURL    *string        `gorm:"column:animation_url;type:text"`
	PropertiesKey   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	PropertiesValue pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	ImagesKey       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	ImagesValue     pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	LevelsKey       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	LevelsValueNum  pq.Int64Array  `gorm:"type:bigint[];not null;default:'{}'"`
	LevelsValueDen  pq.Int64Array  `gorm:"type:bigint[];not null;default:'{}'"`

	SaleType                       string         `gorm:"type:varchar(64);not null;default:''"`
	CollectibleCategory            string         `gorm:"type:varchar(64);not null;default:''"`
	ProductKeyAccessTokenCategory  string         `gorm:"type:varchar(64);not null;default:''"`
	ProductKeyVirtualAssetCategory string         `gorm:"type:varchar(64);not null;default:''"`
	IsSensitiveContent             bool           `gorm:"not null;default:false"`
	Descriptions                   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Images                         pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	ExternalURL                    string         `gorm:"column:external_url;type:text;not null;default:''"`
	YoutubeURL                     string         `gorm:"column:youtube_url;type:text;not null;default:''"`
	Description                    string         `gorm:"type:text;not null;default:''"`
	Attributes                     datatypes.JSON `gorm:"type:jsonb"`

	IsMetadataFrozen bool `gorm:"not null;default:false"`
	Likes            int  `gorm:"not null;default:0;check:likes >= 0"`

	UserAddress    string `gorm:"type:varchar(64);not null;index"`
	CreatorAddress string `gorm:"type:varchar(64);not null;index"`
	CollectionID   int64  `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	User       *UserModel       `gorm:"foreignKey:UserAddress;references:Address"`
	Creator    *UserModel       `gorm:"foreignKey:CreatorAddress;references:Address"`
	Collection *CollectionModel `gorm:"foreignKey:CollectionID"`
	Reviews    []*ReviewModel   `gorm:"foreignKey:NFTTokenID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (NFTModel) TableName() string {
	return "nfts"
}
