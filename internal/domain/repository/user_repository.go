// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user is registered under an address.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserProfileTaken is returned when an email or user name is already used by another user.
	ErrUserProfileTaken = errors.New("user profile field already taken")
)

// UserRepository defines the persistence operations for users.
// Users are created by the wallet registration flow, so there is no Create.
type UserRepository interface {
	// FindByAddress retrieves a user by wallet address.
	FindByAddress(ctx context.Context, address string) (*entity.User, error)

	// FindByAddressForUpdate retrieves a user and locks the row until the transaction ends.
	FindByAddressForUpdate(ctx context.Context, address string) (*entity.User, error)

	// UpdateLikedNFTs replaces the liked token list of a user.
	UpdateLikedNFTs(ctx context.Context, address string, likedNFTs []int64) error

	// UpdateProfile persists the editable profile fields of a user.
	UpdateProfile(ctx context.Context, user *entity.User) error
}
