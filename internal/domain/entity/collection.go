package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCollectionPrefix prefixes auto-generated collection names.
const DefaultCollectionPrefix = "collection-"

// Collection groups NFTs minted by a single user.
type Collection struct {
	ID             int64     `json:"-"`
	UUID           uuid.UUID `json:"uuid"`
	Name           string    `json:"name"`
	Image          *string   `json:"image"`
	Description    *string   `json:"description"`
	IsNameModified bool      `json:"isNameModified"` // Sticky: set on the first edit and never reset.
	OwnerAddress   string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`

	Owner *User  `json:"user,omitempty"`
	NFTs  []*NFT `json:"nfts,omitzero"` // Nil when NFTs were not loaded; loaded and empty encodes as [].
}

// DefaultCollectionName derives the auto-generated name for a collection id.
func DefaultCollectionName(id int64) string {
	return fmt.Sprintf("%s%d", DefaultCollectionPrefix, id)
}

// IsDraft reports whether the collection still carries its generated name and holds no NFTs.
// nftCount is passed in because NFTs is only populated by detailed projections.
func (c *Collection) IsDraft(nftCount int64) bool {
	return !c.IsNameModified && strings.HasPrefix(c.Name, DefaultCollectionPrefix) && nftCount == 0
}

// CollectionChanges is an edit of the collection info.
type CollectionChanges struct {
	NewName     string
	Image       *string
	Description *string
	IsSameName  bool
}

// Apply writes the changes and marks the collection as modified.
func (c *Collection) Apply(changes CollectionChanges) {
	if !changes.IsSameName {
		c.Name = changes.NewName
	}
	c.Image = changes.Image
	c.Description = changes.Description
	c.IsNameModified = true
}
