package store

import (
	"time"

	"carmarket/pkg/domain"
)

// GORM models used for persistence.
type ListingModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID   int64  `gorm:"not null;index"`
	OwnerName string `gorm:"not null"`
	Model     string `gorm:"not null"`
	Year      int    `gorm:"not null"`
	Price     int64  `gorm:"not null;index"`
	Mileage   int64  `gorm:"not null;default:0"`
	Location  string
	Condition int
	Phone     string
	PhotoKey  string
	CreatedAt time.Time `gorm:"not null;index"`
}

func (ListingModel) TableName() string { return "listings" }

type UserPrefModel struct {
	UserID   int64  `gorm:"primaryKey"`
	Language string `gorm:"not null"`
}

func (UserPrefModel) TableName() string { return "user_prefs" }

func listingToModel(l domain.Listing) ListingModel {
	return ListingModel{
		ID:        l.ID,
		OwnerID:   l.OwnerID,
		OwnerName: l.OwnerName,
		Model:     l.Model,
		Year:      l.Year,
		Price:     l.Price,
		Mileage:   l.Mileage,
		Location:  l.Location,
		Condition: l.Condition,
		Phone:     l.Phone,
		PhotoKey:  l.PhotoKey,
		CreatedAt: l.CreatedAt,
	}
}

func listingFromModel(m ListingModel) domain.Listing {
	return domain.Listing{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		OwnerName: m.OwnerName,
		Model:     m.Model,
		Year:      m.Year,
		Price:     m.Price,
		Mileage:   m.Mileage,
		Location:  m.Location,
		Condition: m.Condition,
		Phone:     m.Phone,
		PhotoKey:  m.PhotoKey,
		CreatedAt: m.CreatedAt,
	}
}
