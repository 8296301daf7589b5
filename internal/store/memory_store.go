package store

import (
	"sort"
	"sync"
	"time"

	"carmarket/pkg/domain"
)

// MemoryStore is an in-process Store used by tests and local runs without a
// database. It mirrors GormStore semantics, including ordering and the
// ownership check on delete.
type MemoryStore struct {
	mu       sync.RWMutex
	listings []domain.Listing
	nextID   int64
	prefs    map[int64]string
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		prefs:  make(map[int64]string),
	}
}

// InsertListing assigns an id and timestamp and appends the row.
func (m *MemoryStore) InsertListing(l domain.Listing) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l.ID = m.nextID
	m.nextID++
	l.CreatedAt = time.Now().UTC()
	m.listings = append(m.listings, l)
	return l.ID, nil
}

// ListingsUnderPrice returns listings with price <= ceiling, newest first,
// capped at limit.
func (m *MemoryStore) ListingsUnderPrice(ceiling int64, limit int) ([]domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(limit, func(l domain.Listing) bool { return l.Price <= ceiling }), nil
}

// ListingsByOwner returns the owner's listings, newest first.
func (m *MemoryStore) ListingsByOwner(ownerID int64, limit int) ([]domain.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(limit, func(l domain.Listing) bool { return l.OwnerID == ownerID }), nil
}

func (m *MemoryStore) collect(limit int, keep func(domain.Listing) bool) []domain.Listing {
	res := make([]domain.Listing, 0)
	for _, l := range m.listings {
		if keep(l) {
			res = append(res, l)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID > res[j].ID
		}
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}

// GetListing retrieves a listing by id.
func (m *MemoryStore) GetListing(id int64) (domain.Listing, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.listings {
		if l.ID == id {
			return l, true, nil
		}
	}
	return domain.Listing{}, false, nil
}

// DeleteByOwner removes a listing only when it belongs to ownerID.
func (m *MemoryStore) DeleteByOwner(id, ownerID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, l := range m.listings {
		if l.ID == id && l.OwnerID == ownerID {
			m.listings = append(m.listings[:i], m.listings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// CountUnderPrice counts listings with price <= ceiling.
func (m *MemoryStore) CountUnderPrice(ceiling int64) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, l := range m.listings {
		if l.Price <= ceiling {
			count++
		}
	}
	return count, nil
}

// Language returns the stored language code, or "" when unset.
func (m *MemoryStore) Language(userID int64) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs[userID], nil
}

// SetLanguage upserts the user's language preference.
func (m *MemoryStore) SetLanguage(userID int64, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[userID] = code
	return nil
}
