package store

import (
	"testing"

	"carmarket/pkg/domain"
)

func sample(owner int64, price int64) domain.Listing {
	return domain.Listing{
		OwnerID:   owner,
		OwnerName: "seller",
		Model:     "Toyota Corolla",
		Year:      2020,
		Price:     price,
		Mileage:   42000,
		Location:  "Baku",
		Condition: 8,
		Phone:     "+994551234567",
		PhotoKey:  "abc.jpg",
	}
}

func TestInsertGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	in := sample(7, 9500)
	id, err := s.InsertListing(in)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want positive", id)
	}
	got, ok, err := s.GetListing(id)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("createdAt not assigned")
	}
	in.ID = id
	in.CreatedAt = got.CreatedAt
	if got != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, in)
	}
}

func TestListingsUnderPriceFilterOrderAndCap(t *testing.T) {
	s := NewMemoryStore()
	var ids []int64
	for _, price := range []int64{50, 80, 200, 99, 100} {
		id, err := s.InsertListing(sample(1, price))
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		ids = append(ids, id)
	}

	res, err := s.ListingsUnderPrice(100, 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(res) != 4 {
		t.Fatalf("len = %d, want 4", len(res))
	}
	for i, l := range res {
		if l.Price > 100 {
			t.Fatalf("row %d has price %d above ceiling", i, l.Price)
		}
		if i > 0 && res[i-1].CreatedAt.Before(l.CreatedAt) {
			t.Fatalf("rows not ordered newest first")
		}
	}
	// equal timestamps fall back to id descending, so the newest insert leads
	if res[0].ID != ids[4] {
		t.Fatalf("first row id = %d, want %d", res[0].ID, ids[4])
	}

	capped, err := s.ListingsUnderPrice(100, 2)
	if err != nil {
		t.Fatalf("query capped: %v", err)
	}
	if len(capped) != 2 {
		t.Fatalf("capped len = %d, want 2", len(capped))
	}
}

func TestDeleteByOwnerNeverRemovesForeignRows(t *testing.T) {
	s := NewMemoryStore()
	id, err := s.InsertListing(sample(1, 500))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	deleted, err := s.DeleteByOwner(id, 2)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Fatalf("foreign owner deleted row")
	}
	if _, ok, _ := s.GetListing(id); !ok {
		t.Fatalf("row vanished after denied delete")
	}

	deleted, err = s.DeleteByOwner(id, 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatalf("owner could not delete own row")
	}
	if _, ok, _ := s.GetListing(id); ok {
		t.Fatalf("row still present after owner delete")
	}

	// missing row reports false, not an error
	deleted, err = s.DeleteByOwner(id, 1)
	if err != nil || deleted {
		t.Fatalf("delete missing: deleted=%v err=%v", deleted, err)
	}
}

func TestCountUnderPrice(t *testing.T) {
	s := NewMemoryStore()
	for _, price := range []int64{9_000, 15_000, 25_000, 40_000} {
		if _, err := s.InsertListing(sample(1, price)); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	count, err := s.CountUnderPrice(20_000)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}

func TestLanguageDefaultsToEmptyWhenUnset(t *testing.T) {
	s := NewMemoryStore()
	lang, err := s.Language(9)
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if lang != "" {
		t.Fatalf("lang = %q, want empty", lang)
	}
	if err := s.SetLanguage(9, "fr"); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if err := s.SetLanguage(9, "ar"); err != nil {
		t.Fatalf("set language again: %v", err)
	}
	lang, err = s.Language(9)
	if err != nil {
		t.Fatalf("language: %v", err)
	}
	if lang != "ar" {
		t.Fatalf("lang = %q, want ar", lang)
	}
}
