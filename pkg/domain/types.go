package domain

import "time"

// Listing is one car-for-sale record. Rows are owned by OwnerID; only the
// owner may delete them. ID and CreatedAt are assigned by the store.
type Listing struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	OwnerName string    `json:"ownerName"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Price     int64     `json:"price"`
	Mileage   int64     `json:"mileage"`
	Location  string    `json:"location"`
	Condition int       `json:"condition"`
	Phone     string    `json:"phone"`
	PhotoKey  string    `json:"photoKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Draft holds the fields collected so far by an in-progress intake flow.
// Mileage, Location and Condition keep their zero values when the reduced
// field set is configured.
type Draft struct {
	Model     string `json:"model"`
	Year      int    `json:"year"`
	Price     int64  `json:"price"`
	Mileage   int64  `json:"mileage"`
	Location  string `json:"location"`
	Condition int    `json:"condition"`
	Phone     string `json:"phone"`
}

// Tier is a named price ceiling used for browse filtering.
type Tier string

const (
	TierUnder10K Tier = "under_10k"
	TierUnder20K Tier = "under_20k"
	TierUnder30K Tier = "under_30k"
	TierAll      Tier = "all"
)

// Tiers lists the browse filters in display order.
var Tiers = []Tier{TierUnder10K, TierUnder20K, TierUnder30K, TierAll}

// Ceiling maps a tier to its inclusive price ceiling. TierAll uses a ceiling
// high enough to cover any realistic listing rather than a separate unbounded
// query path.
func (t Tier) Ceiling() int64 {
	switch t {
	case TierUnder10K:
		return 10_000
	case TierUnder20K:
		return 20_000
	case TierUnder30K:
		return 30_000
	default:
		return 1_000_000
	}
}

// Stats is the market summary shown by the stats command.
type Stats struct {
	Total    int64 `json:"total"`
	Under10K int64 `json:"under10k"`
	Under20K int64 `json:"under20k"`
	Under30K int64 `json:"under30k"`
}
