package service

import (
	"context"
	"time"
)

// EventType names a marketplace change.
type EventType string

const (
	EventNFTCreated        EventType = "nft.created"
	EventNFTListed         EventType = "nft.listed"
	EventNFTDelisted       EventType = "nft.delisted"
	EventNFTEdited         EventType = "nft.edited"
	EventNFTTransferred    EventType = "nft.transferred"
	EventNFTDeleted        EventType = "nft.deleted"
	EventNFTLiked          EventType = "nft.liked"
	EventNFTUnliked        EventType = "nft.unliked"
	EventCollectionCreated EventType = "collection.created"
	EventCollectionUpdated EventType = "collection.updated"
	EventCollectionDeleted EventType = "collection.deleted"
)

// MarketplaceEvent is published after a mutation has been committed.
type MarketplaceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       EventType `json:"type"`
	TokenIDs   []int64   `json:"token_ids,omitempty"`
	Collection string    `json:"collection,omitempty"`
	Address    string    `json:"address,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketplaceEvent publishes a committed marketplace change
	PublishMarketplaceEvent(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
