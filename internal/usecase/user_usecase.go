// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// --- Input DTOs ---

// UpdateProfileInput defines the profile edit of a user.
type UpdateProfileInput struct {
	Address string
	Profile entity.UserProfile
}

// --- Output DTOs ---

// LikeOutput returns both rows touched by a like or unlike.
type LikeOutput struct {
	NFT  *entity.NFT
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	FetchByAddress(ctx context.Context, address string) (*entity.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)
	Like(ctx context.Context, tokenID int64, address string) (*LikeOutput, error)
	Unlike(ctx context.Context, tokenID int64, address string) (*LikeOutput, error)
	FetchLikes(ctx context.Context, tokenID int64) (int, error)
}
