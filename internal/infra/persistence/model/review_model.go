package model

import "time"

// ReviewModel mirrors the 'reviews' table. Rows are removed with their NFT (ON DELETE CASCADE).
type ReviewModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	NFTTokenID int64  `gorm:"column:nft_token_id;not null;index"`
	Rating     int    `gorm:"not null"`
	Comment    string `gorm:"type:text;not null;default:''"`
	Title      string `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}
