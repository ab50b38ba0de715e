package entity

import "time"

// Review is a rating left on an NFT. Reviews are removed together with their NFT.
type Review struct {
	ID         int64     `json:"-"`
	NFTTokenID int64     `json:"-"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"-"`
}
