package store

import "carmarket/pkg/domain"

// Store defines persistence operations for listings and per-user language
// preferences. All writes are single-row; no operation needs a multi-row
// transaction.
type Store interface {
	// listings
	InsertListing(l domain.Listing) (int64, error)
	ListingsUnderPrice(ceiling int64, limit int) ([]domain.Listing, error)
	ListingsByOwner(ownerID int64, limit int) ([]domain.Listing, error)
	GetListing(id int64) (domain.Listing, bool, error)
	DeleteByOwner(id, ownerID int64) (bool, error)
	CountUnderPrice(ceiling int64) (int64, error)

	// user preferences
	Language(userID int64) (string, error)
	SetLanguage(userID int64, code string) error
}
