package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"
	"marketplace/internal/infra/persistence/postgres/query"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using the generated gorm/gen query.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByAddress retrieves a single user by wallet address.
func (repo *userRepository) FindByAddress(ctx context.Context, address string) (*entity.User, error) {
	u := repo.q.UserModel

	userM, err := u.WithContext(ctx).
		Where(u.Address.Eq(address)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by address")
	}

	return toUserDomain(userM), nil
}

// FindByAddressForUpdate retrieves a user with a row lock held until the surrounding transaction ends.
func (repo *userRepository) FindByAddressForUpdate(ctx context.Context, address string) (*entity.User, error) {
	u := repo.q.UserModel

	userM, err := u.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(u.Address.Eq(address)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to lock user by address")
	}

	return toUserDomain(userM), nil
}

// UpdateLikedNFTs replaces the liked token list of a user.
func (repo *userRepository) UpdateLikedNFTs(ctx context.Context, address string, likedNFTs []int64) error {
	if likedNFTs == nil {
		likedNFTs = []int64{}
	}

	u := repo.q.UserModel

	result, err := u.WithContext(ctx).
		Where(u.Address.Eq(address)).
		Update(u.LikedNFTs, pq.Int64Array(likedNFTs))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update liked NFTs")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateProfile persists the editable profile fields of a user.
func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	u := repo.q.UserModel

	result, err := u.WithContext(ctx).
		Where(u.Address.Eq(user.Address)).
		Updates(map[string]any{
			"email":          user.Email,
			"user_name":      user.UserName,
			"company_name":   user.CompanyName,
			"description":    user.Description,
			"facebook_link":  user.FacebookLink,
			"instagram_link": user.InstagramLink,
			"linked_in_link": user.LinkedInLink,
			"main_link":      user.MainLink,
			"twitter_link":   user.TwitterLink,
			"image":          user.Image,
		})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserProfileTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		Address:          data.Address,
		Email:            data.Email,
		UserName:         data.UserName,
		CompanyName:      data.CompanyName,
		Description:      data.Description,
		FacebookLink:     data.FacebookLink,
		InstagramLink:    data.InstagramLink,
		LinkedInLink:     data.LinkedInLink,
		MainLink:         data.MainLink,
		TwitterLink:      data.TwitterLink,
		Image:            data.Image,
		Verified:         data.Verified,
		VerificationDate: data.VerificationDate,
		Role:             entity.Role(data.Role),
		LikedNFTs:        int64sOrEmpty(data.LikedNFTs),
		CartNFTs:         int64sOrEmpty(data.CartNFTs),
		CreatedAt:        data.CreatedAt,
	}
}

func int64sOrEmpty(values pq.Int64Array) []int64 {
	if values == nil {
		return []int64{}
	}

	return []int64(values)
}

func stringsOrEmpty(values pq.StringArray) []string {
	if values == nil {
		return []string{}
	}

	return []string(values)
}
