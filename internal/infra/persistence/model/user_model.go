package model

import (
	"time"

	"github.com/lib/pq"
)

// UserModel mirrors the 'users' table. Rows are keyed by wallet address.
type UserModel struct {
	Address          string         `gorm:"type:varchar(64);primaryKey"`
	Email            *string        `gorm:"type:varchar(255);unique"`
	UserName         *string        `gorm:"type:varchar(100);unique"`
	CompanyName      string         `gorm:"type:varchar(255);not null;default:''"`
	Description      string         `gorm:"type:text;not null;default:''"`
	FacebookLink     string         `gorm:"type:text;not null;default:''"`
	InstagramLink    string         `gorm:"type:text;not null;default:''"`
	LinkedInLink     string         `gorm:"column:linked_in_link;type:text;not null;default:''"`
	MainLink         string         `gorm:"type:text;not null;default:''"`
	TwitterLink      string         `gorm:"type:text;not null;default:''"`
	Image            string         `gorm:"type:text;not null;default:''"`
	Verified         bool           `gorm:"not null;default:false"`
	VerificationDate *time.Time     `gorm:"type:timestamptz"`
	Role             string         `gorm:"type:varchar(32);not null;default:'USER'"`
	LikedNFTs        pq.Int64Array  `gorm:"column:liked_nfts;type:bigint[];not null;default:'{}'"`
	CartNFTs         pq.Int64Array  `gorm:"column:cart_nfts;type:bigint[];not null;default:'{}'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
