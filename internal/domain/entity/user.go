// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// EmptyAddress is the placeholder wallet address sent by clients that are not connected yet.
const EmptyAddress = "0x0000000000000000000000000000000000000000"

// User is a wallet holder. Users are registered outside this service and are keyed by wallet address.
type User struct {
	Address          string     `json:"address"`          // Wallet address, primary key.
	Email            *string    `json:"email"`            // Unique contact email, optional.
	UserName         *string    `json:"userName"`         // Unique display handle, optional.
	CompanyName      string     `json:"companyName"`      // Company or studio name.
	Description      string     `json:"description"`      // Free-form bio.
	FacebookLink     string     `json:"facebookLink"`     // Profile links.
	InstagramLink    string     `json:"instagramLink"`    //
	LinkedInLink     string     `json:"linkedInLink"`     //
	MainLink         string     `json:"mainLink"`         //
	TwitterLink      string     `json:"twitterLink"`      //
	Image            string     `json:"image"`            // Avatar URL.
	Verified         bool       `json:"verified"`         // Set by the verification workflow.
	VerificationDate *time.Time `json:"verificationDate"` // When the user was verified.
	Role             Role       `json:"role"`             // Authorization role.
	LikedNFTs        []int64    `json:"likedNfts"`        // Token ids the user liked, in like order.
	CartNFTs         []int64    `json:"cartNfts"`         // Token ids in the user's cart.
	CreatedAt        time.Time  `json:"createdAt"`        // Timestamp of registration.
}

// HasLiked reports whether the user already liked the given token.
func (u *User) HasLiked(tokenID int64) bool {
	return slices.Contains(u.LikedNFTs, tokenID)
}

// WithLike returns the liked list with tokenID appended. The receiver is not modified.
func (u *User) WithLike(tokenID int64) []int64 {
	liked := make([]int64, 0, len(u.LikedNFTs)+1)
	liked = append(liked, u.LikedNFTs...)

	return append(liked, tokenID)
}

// WithoutLike returns the liked list with every occurrence of tokenID removed.
func (u *User) WithoutLike(tokenID int64) []int64 {
	liked := make([]int64, 0, len(u.LikedNFTs))
	for _, id := range u.LikedNFTs {
		if id != tokenID {
			liked = append(liked, id)
		}
	}

	return liked
}

// UserProfile holds the editable part of a user.
type UserProfile struct {
	Email         *string
	UserName      *string
	CompanyName   string
	Description   string
	FacebookLink  string
	InstagramLink string
	LinkedInLink  string
	MainLink      string
	TwitterLink   string
	Image         string
}

// ApplyProfile overwrites the editable profile fields.
func (u *User) ApplyProfile(p UserProfile) {
	u.Email = p.Email
	u.UserName = p.UserName
	u.CompanyName = p.CompanyName
	u.Description = p.Description
	u.FacebookLink = p.FacebookLink
	u.InstagramLink = p.InstagramLink
	u.LinkedInLink = p.LinkedInLink
	u.MainLink = p.MainLink
	u.TwitterLink = p.TwitterLink
	u.Image = p.Image
}
