package store

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carmarket/pkg/domain"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&ListingModel{}, &UserPrefModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// InsertListing persists a complete listing and returns the assigned id.
func (s *GormStore) InsertListing(l domain.Listing) (int64, error) {
	model := listingToModel(l)
	model.ID = 0
	model.CreatedAt = time.Now().UTC()
	if err := s.db.Create(&model).Error; err != nil {
		return 0, fmt.Errorf("insert listing: %w", err)
	}
	return model.ID, nil
}

// ListingsUnderPrice returns listings with price <= ceiling, newest first,
// capped at limit.
func (s *GormStore) ListingsUnderPrice(ceiling int64, limit int) ([]domain.Listing, error) {
	return s.listListings(limit, "price <= ?", ceiling)
}

// ListingsByOwner returns the owner's listings, newest first.
func (s *GormStore) ListingsByOwner(ownerID int64, limit int) ([]domain.Listing, error) {
	return s.listListings(limit, "owner_id = ?", ownerID)
}

func (s *GormStore) listListings(limit int, cond string, args ...any) ([]domain.Listing, error) {
	var models []ListingModel
	tx := s.db.Where(cond, args...).Order("created_at DESC, id DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Listing, 0, len(models))
	for _, m := range models {
		res = append(res, listingFromModel(m))
	}
	return res, nil
}

// GetListing retrieves a listing by id.
func (s *GormStore) GetListing(id int64) (domain.Listing, bool, error) {
	var model ListingModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Listing{}, false, nil
		}
		return domain.Listing{}, false, err
	}
	return listingFromModel(model), true, nil
}

// DeleteByOwner removes a listing only when it belongs to ownerID. The
// returned bool reports whether a row was actually deleted; a missing row and
// a foreign owner are indistinguishable to the caller.
func (s *GormStore) DeleteByOwner(id, ownerID int64) (bool, error) {
	tx := s.db.Delete(&ListingModel{}, "id = ? AND owner_id = ?", id, ownerID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// CountUnderPrice counts listings with price <= ceiling.
func (s *GormStore) CountUnderPrice(ceiling int64) (int64, error) {
	var count int64
	if err := s.db.Model(&ListingModel{}).Where("price <= ?", ceiling).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Language returns the stored language code, or "" when unset.
func (s *GormStore) Language(userID int64) (string, error) {
	var model UserPrefModel
	if err := s.db.First(&model, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return model.Language, nil
}

// SetLanguage upserts the user's language preference.
func (s *GormStore) SetLanguage(userID int64, code string) error {
	model := UserPrefModel{UserID: userID, Language: code}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"language"}),
	}).Create(&model).Error
}
