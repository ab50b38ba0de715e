package impl

import (
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
)

// nftLookupError translates a repository miss into the NotFound error naming the token.
func nftLookupError(err error, tokenID int64, action string) error {
	if errors.Is(err, repository.ErrNFTNotFound) {
		return domainerrors.ErrNFTNotFound.WithMessagef("NFT with tokenId %d does not exist", tokenID)
	}

	return errors.Wrap(err, action)
}

// userLookupError translates a repository miss into the NotFound error naming the address.
func userLookupError(err error, address string, action string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WithMessagef("Cannot find the user: %s", address)
	}

	return errors.Wrap(err, action)
}

// collectionLookupError translates a repository miss into the NotFound error naming the collection.
func collectionLookupError(err error, name string, action string) error {
	if errors.Is(err, repository.ErrCollectionNotFound) {
		return domainerrors.ErrCollectionNotFound.WithMessagef("Collection with name %s does not exist", name)
	}

	return errors.Wrap(err, action)
}
