package intake

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"carmarket/internal/session"
	"carmarket/internal/storage"
	"carmarket/internal/store"
	"carmarket/pkg/domain"
)

// Step identifies one prompt of the guided listing intake.
type Step string

const (
	StepModel     Step = "model"
	StepYear      Step = "year"
	StepPrice     Step = "price"
	StepMileage   Step = "mileage"
	StepLocation  Step = "location"
	StepCondition Step = "condition"
	StepPhone     Step = "phone"
	StepPhoto     Step = "photo"
)

// ErrNoSession is returned when input arrives for a user with no intake in
// progress.
var ErrNoSession = errors.New("no intake session")

// Config selects the field set collected by the flow. The reduced set skips
// from price straight to phone; mileage, location and condition keep their
// defaults.
type Config struct {
	ExtendedFields bool
}

func (c Config) steps() []Step {
	if c.ExtendedFields {
		return []Step{StepModel, StepYear, StepPrice, StepMileage, StepLocation, StepCondition, StepPhone, StepPhoto}
	}
	return []Step{StepModel, StepYear, StepPrice, StepPhone, StepPhoto}
}

// Outcome tells the presentation layer what to render next. PromptKey plus
// Args address a localized template; Done and Cancelled mark the terminal
// states, after which the session is gone.
type Outcome struct {
	PromptKey string
	Args      []any
	Done      bool
	Cancelled bool
	Listing   domain.Listing
}

// Photo is an incoming photo attachment at the final step.
type Photo struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// Flow drives the ordered intake conversation for creating one listing. It is
// a strict linear machine: each step validates before advancing, so a listing
// is persisted exactly once, complete and valid, at the photo step.
type Flow struct {
	sessions session.Store
	store    store.Store
	photos   storage.PhotoStore
	cfg      Config
	log      *slog.Logger
}

// New builds a flow controller over the given stores.
func New(sessions session.Store, st store.Store, photos storage.PhotoStore, cfg Config, log *slog.Logger) *Flow {
	if log == nil {
		log = slog.Default()
	}
	return &Flow{
		sessions: sessions,
		store:    st,
		photos:   photos,
		cfg:      cfg,
		log:      log,
	}
}

// Start begins a fresh intake, replacing any previous session for this user.
func (f *Flow) Start(userID int64) (Outcome, error) {
	first := f.cfg.steps()[0]
	if err := f.sessions.Put(userID, session.Session{Step: string(first)}); err != nil {
		return Outcome{}, err
	}
	return Outcome{PromptKey: promptKey(first)}, nil
}

// Active reports whether the user has an intake in progress.
func (f *Flow) Active(userID int64) bool {
	_, ok, err := f.sessions.Get(userID)
	return err == nil && ok
}

// Cancel discards the session and returns to idle.
func (f *Flow) Cancel(userID int64) (Outcome, error) {
	if err := f.sessions.Delete(userID); err != nil {
		return Outcome{}, err
	}
	return Outcome{Cancelled: true, PromptKey: "cancelled"}, nil
}

// HandleText feeds one text input into the current step. Validation failures
// re-prompt the same step and leave the session untouched.
func (f *Flow) HandleText(userID int64, text string) (Outcome, error) {
	sess, ok, err := f.sessions.Get(userID)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return Outcome{}, ErrNoSession
	}
	text = strings.TrimSpace(text)
	if isCancel(text) {
		return f.Cancel(userID)
	}

	step := Step(sess.Step)
	if step == StepPhoto {
		// only a photo attachment completes the flow
		return Outcome{PromptKey: "invalid_photo"}, nil
	}
	if verr := applyField(&sess.Draft, step, text); verr != nil {
		return Outcome{PromptKey: errorKey(verr)}, nil
	}

	next := f.next(step)
	sess.Step = string(next)
	if err := f.sessions.Put(userID, sess); err != nil {
		return Outcome{}, err
	}
	return Outcome{PromptKey: promptKey(next)}, nil
}

// HandlePhoto completes the flow: it stores the photo, persists the bundled
// listing, and clears the session. On photo or store failure the session is
// preserved so the user can retry the same step.
func (f *Flow) HandlePhoto(ctx context.Context, userID int64, ownerName string, p Photo) (Outcome, error) {
	sess, ok, err := f.sessions.Get(userID)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return Outcome{}, ErrNoSession
	}
	if Step(sess.Step) != StepPhoto {
		return Outcome{PromptKey: promptKey(Step(sess.Step))}, nil
	}

	key := uuid.NewString() + ".jpg"
	if err := f.photos.Save(ctx, key, p.Reader, p.Size, p.ContentType); err != nil {
		f.log.Error("photo store failed", "user_id", userID, "err", err)
		return Outcome{PromptKey: "photo_failed"}, nil
	}

	listing := domain.Listing{
		OwnerID:   userID,
		OwnerName: ownerName,
		Model:     sess.Draft.Model,
		Year:      sess.Draft.Year,
		Price:     sess.Draft.Price,
		Mileage:   sess.Draft.Mileage,
		Location:  sess.Draft.Location,
		Condition: sess.Draft.Condition,
		Phone:     sess.Draft.Phone,
		PhotoKey:  key,
	}
	id, err := f.store.InsertListing(listing)
	if err != nil {
		f.log.Error("listing insert failed", "user_id", userID, "err", err)
		return Outcome{PromptKey: "storage_error"}, nil
	}
	if err := f.sessions.Delete(userID); err != nil {
		f.log.Warn("session cleanup failed", "user_id", userID, "err", err)
	}
	listing.ID = id

	return Outcome{
		Done:      true,
		Listing:   listing,
		PromptKey: "add_success",
		Args: []any{
			"id", id,
			"model", listing.Model,
			"year", listing.Year,
			"price", listing.Price,
			"mileage", listing.Mileage,
			"location", listing.Location,
			"condition", listing.Condition,
			"phone", listing.Phone,
		},
	}, nil
}

func (f *Flow) next(step Step) Step {
	steps := f.cfg.steps()
	for i, s := range steps {
		if s == step && i+1 < len(steps) {
			return steps[i+1]
		}
	}
	return StepPhoto
}

func applyField(draft *domain.Draft, step Step, text string) error {
	switch step {
	case StepModel:
		v, err := ParseModel(text)
		if err != nil {
			return err
		}
		draft.Model = v
	case StepYear:
		v, err := ParseYear(text)
		if err != nil {
			return err
		}
		draft.Year = v
	case StepPrice:
		v, err := ParsePrice(text)
		if err != nil {
			return err
		}
		draft.Price = v
	case StepMileage:
		v, err := ParseMileage(text)
		if err != nil {
			return err
		}
		draft.Mileage = v
	case StepLocation:
		draft.Location = ParseLocation(text)
	case StepCondition:
		v, err := ParseCondition(text)
		if err != nil {
			return err
		}
		draft.Condition = v
	case StepPhone:
		draft.Phone = NormalizePhone(text)
	}
	return nil
}

func isCancel(text string) bool {
	return strings.HasPrefix(text, "❌") ||
		strings.HasPrefix(text, "🏠") ||
		strings.EqualFold(text, "/cancel")
}

func promptKey(step Step) string {
	return "ask_" + string(step)
}

func errorKey(err error) string {
	switch {
	case errors.Is(err, ErrModelEmpty):
		return "invalid_model"
	case errors.Is(err, ErrYearFormat):
		return "invalid_year_format"
	case errors.Is(err, ErrYearRange):
		return "invalid_year_range"
	case errors.Is(err, ErrPriceInvalid):
		return "invalid_price"
	case errors.Is(err, ErrMileageInvalid):
		return "invalid_mileage"
	case errors.Is(err, ErrConditionInvalid):
		return "invalid_condition"
	default:
		return "invalid_input"
	}
}
