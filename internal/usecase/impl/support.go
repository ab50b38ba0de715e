package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// urlRules checks the optional URL fields of user, NFT and collection payloads.
type urlRules struct {
	validate *validator.Validate
}

func newURLRules() *urlRules {
	return &urlRules{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// optional accepts "" as absent; anything else must be a URL.
func (r *urlRules) optional(field, value string) error {
	if value == "" {
		return nil
	}

	if err := r.validate.Var(value, "url"); err != nil {
		return domainerrors.ErrInvalidURL.WithMessagef("Invalid %s", field)
	}

	return nil
}

// optionalPtr accepts nil as absent; a present value must be a URL.
func (r *urlRules) optionalPtr(field string, value *string) error {
	if value == nil {
		return nil
	}

	if err := r.validate.Var(*value, "url"); err != nil {
		return domainerrors.ErrInvalidURL.WithMessagef("Invalid %s", field)
	}

	return nil
}

// optionalList checks every entry of a list with optional.
func (r *urlRules) optionalList(field string, values []string) error {
	for _, value := range values {
		if err := r.optional(field, value); err != nil {
			return err
		}
	}

	return nil
}

// listing checks the URL fields of listing details.
func (r *urlRules) listing(details entity.ListingDetails) error {
	if err := r.optionalList("images", details.Images); err != nil {
		return err
	}
	if err := r.optional("externalUrl", details.ExternalURL); err != nil {
		return err
	}

	return r.optional("youtubeUrl", details.YoutubeURL)
}

// eventEmitter publishes committed changes. Failures are logged and never returned.
type eventEmitter struct {
	publisher service.EventPublisher
}

func (e eventEmitter) emit(ctx context.Context, logger *slog.Logger, eventType service.EventType, fill func(*service.MarketplaceEvent)) {
	if e.publisher == nil {
		return
	}

	event := &service.MarketplaceEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		EventID:    uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
	if fill != nil {
		fill(event)
	}

	if err := e.publisher.PublishMarketplaceEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish marketplace event",
			slog.String("event_type", string(eventType)),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}
