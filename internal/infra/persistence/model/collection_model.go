package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectionModel mirrors the 'collections' table. ID comes from the collections_id_seq sequence.
type CollectionModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	UUID           uuid.UUID `gorm:"column:uuid;type:uuid;not null;unique;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null;unique"`
	Image          *string   `gorm:"type:text"`
	Description    *string   `gorm:"type:text"`
	IsNameModified bool      `gorm:"not null;default:false"`
	UserAddress    string    `gorm:"type:varchar(64);not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User *UserModel  `gorm:"foreignKey:UserAddress;references:Address"`
	NFTs []*NFTModel `gorm:"foreignKey:CollectionID"`
}

// TableName explicitly sets the table name for GORM.
func (CollectionModel) TableName() string {
	return "collections"
}
