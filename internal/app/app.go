package app

import (
	"context"
	"log/slog"
	"strconv"

	"carmarket/internal/i18n"
	"carmarket/internal/intake"
	"carmarket/internal/ratelimit"
	"carmarket/internal/storage"
	"carmarket/internal/store"
	"carmarket/pkg/domain"
)

const (
	defaultBrowseLimit = 30
	defaultOwnedLimit  = 50
)

// Config tunes result caps for the browse and my-listings views.
type Config struct {
	BrowseLimit int
	OwnedLimit  int
}

// App is the use-case layer between the chat transport and the stores. It owns
// the intake flow, the browse/delete/stats queries and per-user language
// preferences.
type App struct {
	store       store.Store
	flow        *intake.Flow
	photos      storage.PhotoStore
	limiter     *ratelimit.FixedWindowLimiter
	log         *slog.Logger
	browseLimit int
	ownedLimit  int
}

// New wires the service layer. limiter may be nil, which disables intake
// throttling.
func New(st store.Store, flow *intake.Flow, photos storage.PhotoStore, limiter *ratelimit.FixedWindowLimiter, cfg Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	if cfg.BrowseLimit <= 0 {
		cfg.BrowseLimit = defaultBrowseLimit
	}
	if cfg.OwnedLimit <= 0 {
		cfg.OwnedLimit = defaultOwnedLimit
	}
	return &App{
		store:       st,
		flow:        flow,
		photos:      photos,
		limiter:     limiter,
		log:         log,
		browseLimit: cfg.BrowseLimit,
		ownedLimit:  cfg.OwnedLimit,
	}
}

// StartIntake begins a new listing conversation for the user, subject to the
// per-user rate limit.
func (a *App) StartIntake(userID int64) (intake.Outcome, error) {
	if a.limiter != nil && !a.limiter.Allow(strconv.FormatInt(userID, 10)) {
		a.log.Info("intake start throttled", "user_id", userID)
		return intake.Outcome{PromptKey: "rate_limited"}, nil
	}
	return a.flow.Start(userID)
}

// IntakeActive reports whether the user is mid-conversation.
func (a *App) IntakeActive(userID int64) bool {
	return a.flow.Active(userID)
}

// HandleIntakeText forwards a text answer to the flow.
func (a *App) HandleIntakeText(userID int64, text string) (intake.Outcome, error) {
	return a.flow.HandleText(userID, text)
}

// HandleIntakePhoto forwards the final photo to the flow.
func (a *App) HandleIntakePhoto(ctx context.Context, userID int64, ownerName string, p intake.Photo) (intake.Outcome, error) {
	return a.flow.HandlePhoto(ctx, userID, ownerName, p)
}

// CancelIntake discards any in-progress conversation.
func (a *App) CancelIntake(userID int64) (intake.Outcome, error) {
	return a.flow.Cancel(userID)
}

// Browse returns listings at or under the tier's ceiling, newest first, capped
// at the configured browse limit.
func (a *App) Browse(tier domain.Tier) ([]domain.Listing, error) {
	return a.store.ListingsUnderPrice(tier.Ceiling(), a.browseLimit)
}

// MyListings returns the user's own listings, newest first.
func (a *App) MyListings(ownerID int64) ([]domain.Listing, error) {
	return a.store.ListingsByOwner(ownerID, a.ownedLimit)
}

// GetListing fetches one listing by id.
func (a *App) GetListing(id int64) (domain.Listing, bool, error) {
	return a.store.GetListing(id)
}

// ConfirmDelete removes a listing when the requester owns it. A false result
// covers both "not found" and "not yours"; callers cannot tell them apart. The
// stored photo is cleaned up best-effort once the row is gone.
func (a *App) ConfirmDelete(ctx context.Context, id, requesterID int64) (bool, error) {
	listing, found, err := a.store.GetListing(id)
	if err != nil {
		return false, err
	}
	deleted, err := a.store.DeleteByOwner(id, requesterID)
	if err != nil || !deleted {
		return deleted, err
	}
	if found && listing.PhotoKey != "" && a.photos != nil {
		if err := a.photos.Delete(ctx, listing.PhotoKey); err != nil {
			a.log.Warn("photo cleanup failed", "listing_id", id, "key", listing.PhotoKey, "err", err)
		}
	}
	a.log.Info("listing deleted", "listing_id", id, "owner_id", requesterID)
	return true, nil
}

// MarketStats counts listings per price tier.
func (a *App) MarketStats() (domain.Stats, error) {
	var stats domain.Stats
	var err error
	if stats.Total, err = a.store.CountUnderPrice(domain.TierAll.Ceiling()); err != nil {
		return domain.Stats{}, err
	}
	if stats.Under10K, err = a.store.CountUnderPrice(domain.TierUnder10K.Ceiling()); err != nil {
		return domain.Stats{}, err
	}
	if stats.Under20K, err = a.store.CountUnderPrice(domain.TierUnder20K.Ceiling()); err != nil {
		return domain.Stats{}, err
	}
	if stats.Under30K, err = a.store.CountUnderPrice(domain.TierUnder30K.Ceiling()); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}

// Language returns the user's stored language, defaulting when unset or when
// the stored code is no longer supported.
func (a *App) Language(userID int64) string {
	code, err := a.store.Language(userID)
	if err != nil {
		a.log.Warn("language lookup failed", "user_id", userID, "err", err)
		return i18n.Default
	}
	if !i18n.Supported(code) {
		return i18n.Default
	}
	return code
}

// SetLanguage stores the user's language preference.
func (a *App) SetLanguage(userID int64, code string) error {
	if !i18n.Supported(code) {
		return domain.ErrUnsupportedLanguage
	}
	return a.store.SetLanguage(userID, code)
}
