package intake

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"carmarket/internal/session"
	"carmarket/internal/store"
	"carmarket/pkg/domain"
)

type fakePhotoStore struct {
	saved map[string][]byte
	fail  bool
}

func newFakePhotoStore() *fakePhotoStore {
	return &fakePhotoStore{saved: make(map[string][]byte)}
}

func (f *fakePhotoStore) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if f.fail {
		return errors.New("photo backend down")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.saved[key] = data
	return nil
}

func (f *fakePhotoStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.saved[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (f *fakePhotoStore) Delete(_ context.Context, key string) error {
	delete(f.saved, key)
	return nil
}

type failingInsertStore struct {
	*store.MemoryStore
}

func (failingInsertStore) InsertListing(domain.Listing) (int64, error) {
	return 0, errors.New("db unavailable")
}

func newTestFlow(cfg Config) (*Flow, *store.MemoryStore, *fakePhotoStore, *session.MemoryStore) {
	sessions := session.NewMemoryStore()
	st := store.NewMemoryStore()
	photos := newFakePhotoStore()
	return New(sessions, st, photos, cfg, nil), st, photos, sessions
}

func mustText(t *testing.T, f *Flow, userID int64, text string) Outcome {
	t.Helper()
	out, err := f.HandleText(userID, text)
	if err != nil {
		t.Fatalf("HandleText(%q): %v", text, err)
	}
	return out
}

func photoInput() Photo {
	return Photo{Reader: strings.NewReader("jpegbytes"), Size: 9, ContentType: "image/jpeg"}
}

func TestFlowHappyPathReducedFields(t *testing.T) {
	f, st, photos, _ := newTestFlow(Config{})
	const userID = int64(10)

	out, err := f.Start(userID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if out.PromptKey != "ask_model" {
		t.Fatalf("prompt = %q, want ask_model", out.PromptKey)
	}

	if out := mustText(t, f, userID, "Toyota Corolla"); out.PromptKey != "ask_year" {
		t.Fatalf("after model prompt = %q, want ask_year", out.PromptKey)
	}
	if out := mustText(t, f, userID, "2020"); out.PromptKey != "ask_price" {
		t.Fatalf("after year prompt = %q, want ask_price", out.PromptKey)
	}
	if out := mustText(t, f, userID, "45"); out.PromptKey != "ask_phone" {
		t.Fatalf("after price prompt = %q, want ask_phone (reduced set)", out.PromptKey)
	}
	if out := mustText(t, f, userID, "0555123456"); out.PromptKey != "ask_photo" {
		t.Fatalf("after phone prompt = %q, want ask_photo", out.PromptKey)
	}

	out, err = f.HandlePhoto(context.Background(), userID, "seller", photoInput())
	if err != nil {
		t.Fatalf("photo: %v", err)
	}
	if !out.Done || out.PromptKey != "add_success" {
		t.Fatalf("outcome = %+v, want done add_success", out)
	}
	if out.Listing.ID == 0 {
		t.Fatalf("listing id not assigned")
	}

	got, ok, err := st.GetListing(out.Listing.ID)
	if err != nil || !ok {
		t.Fatalf("persisted listing missing: ok=%v err=%v", ok, err)
	}
	if got.Model != "Toyota Corolla" || got.Year != 2020 || got.Price != 45 || got.Phone != "0555123456" {
		t.Fatalf("persisted fields wrong: %+v", got)
	}
	if got.OwnerID != userID || got.OwnerName != "seller" {
		t.Fatalf("owner identity wrong: %+v", got)
	}
	if _, stored := photos.saved[got.PhotoKey]; !stored {
		t.Fatalf("photo key %q not in photo store", got.PhotoKey)
	}
	if f.Active(userID) {
		t.Fatalf("session should be discarded after completion")
	}
}

func TestFlowExtendedFieldOrder(t *testing.T) {
	f, _, _, _ := newTestFlow(Config{ExtendedFields: true})
	const userID = int64(11)

	if _, err := f.Start(userID); err != nil {
		t.Fatalf("start: %v", err)
	}
	wantPrompts := []struct{ in, next string }{
		{"Kia Rio", "ask_year"},
		{"2015", "ask_price"},
		{"8000", "ask_mileage"},
		{"90000", "ask_location"},
		{"Ganja", "ask_condition"},
		{"7", "ask_phone"},
		{"+994501112233", "ask_photo"},
	}
	for _, step := range wantPrompts {
		if out := mustText(t, f, userID, step.in); out.PromptKey != step.next {
			t.Fatalf("after %q prompt = %q, want %q", step.in, out.PromptKey, step.next)
		}
	}

	out, err := f.HandlePhoto(context.Background(), userID, "seller", photoInput())
	if err != nil {
		t.Fatalf("photo: %v", err)
	}
	if out.Listing.Mileage != 90000 || out.Listing.Location != "Ganja" || out.Listing.Condition != 7 {
		t.Fatalf("extended fields not collected: %+v", out.Listing)
	}
}

func TestFlowInvalidYearRepromptsWithoutAdvancing(t *testing.T) {
	f, _, _, sessions := newTestFlow(Config{})
	const userID = int64(12)

	if _, err := f.Start(userID); err != nil {
		t.Fatalf("start: %v", err)
	}
	mustText(t, f, userID, "Lada Niva")

	out := mustText(t, f, userID, "abcd")
	if out.PromptKey != "invalid_year_format" {
		t.Fatalf("prompt = %q, want invalid_year_format", out.PromptKey)
	}
	out = mustText(t, f, userID, "1903")
	if out.PromptKey != "invalid_year_range" {
		t.Fatalf("prompt = %q, want invalid_year_range", out.PromptKey)
	}

	sess, ok, _ := sessions.Get(userID)
	if !ok || sess.Step != string(StepYear) {
		t.Fatalf("state = %+v, want still awaiting year", sess)
	}
	if sess.Draft.Year != 0 {
		t.Fatalf("rejected year leaked into draft: %+v", sess.Draft)
	}

	// a valid year still advances afterwards
	if out := mustText(t, f, userID, "1995"); out.PromptKey != "ask_price" {
		t.Fatalf("prompt = %q, want ask_price", out.PromptKey)
	}
}

func TestFlowCancelAtPriceStepDiscardsEverything(t *testing.T) {
	f, st, _, _ := newTestFlow(Config{})
	const userID = int64(13)

	if _, err := f.Start(userID); err != nil {
		t.Fatalf("start: %v", err)
	}
	mustText(t, f, userID, "Opel Astra")
	mustText(t, f, userID, "2012")

	out := mustText(t, f, userID, "❌ Cancel")
	if !out.Cancelled || out.PromptKey != "cancelled" {
		t.Fatalf("outcome = %+v, want cancelled", out)
	}
	if f.Active(userID) {
		t.Fatalf("session survived cancel")
	}
	if listings, _ := st.ListingsUnderPrice(1_000_000, 0); len(listings) != 0 {
		t.Fatalf("cancel persisted %d listings", len(listings))
	}

	// restart yields a fresh session with no residue
	if _, err := f.Start(userID); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if out := mustText(t, f, userID, "Honda Civic"); out.PromptKey != "ask_year" {
		t.Fatalf("restarted flow prompt = %q, want ask_year", out.PromptKey)
	}
}

func TestFlowStartReplacesPreviousSession(t *testing.T) {
	f, _, _, sessions := newTestFlow(Config{})
	const userID = int64(14)

	if _, err := f.Start(userID); err != nil {
		t.Fatalf("start: %v", err)
	}
	mustText(t, f, userID, "Old Draft")
	mustText(t, f, userID, "2001")

	if _, err := f.Start(userID); err != nil {
		t.Fatalf("restart: %v", err)
	}
	sess, ok, _ := sessions.Get(userID)
	if !ok || sess.Step != string(StepModel) {
		t.Fatalf("state = %+v, want fresh model step", sess)
	}
	if sess.Draft != (domain.Draft{}) {
		t.Fatalf("draft residue after restart: %+v", sess.Draft)
	}
}

func TestFlowTextAtPhotoStepReprompts(t *testing.T) {
	f, _, _, _ := newTestFlow(Config{})
	const userID = int64(15)

	if _, err := f.Start(userID); err != nil {
		t.Fatalf("start: %v", err)
	}
	mustText(t, f, userID, "Fiat Punto")
	mustText(t, f, userID, "2009")
	mustText(t, f, userID, "3000")
	mustText(t, f, userID, "0501234567")

	if out := mustText(t, f, userID, "here is my car"); out.PromptKey != "invalid_photo" {
		t.Fatalf("prompt = %q, want invalid_photo", out.PromptKey)
	}
	if !f.Active(userID) {
		t.Fatalf("session lost on non-photo input")
	}
}

func TestFlowPhotoFailurePreservesSession(t *testing.T) {
	f, st, photos, _ := newTestFlow(Config{})
	const userID = int64(16)

	if _, err := f.Start(userID); err != nil {
		t.Fatalf("start: %v", err)
	}
	mustText(t, f, userID, "Mazda 3")
	mustText(t, f, userID, "2018")
	mustText(t, f, userID, "15000")
	mustText(t, f, userID, "0559876543")

	photos.fail = true
	out, err := f.HandlePhoto(context.Background(), userID, "seller", photoInput())
	if err != nil {
		t.Fatalf("photo: %v", err)
	}
	if out.Done || out.PromptKey != "photo_failed" {
		t.Fatalf("outcome = %+v, want photo_failed", out)
	}
	if !f.Active(userID) {
		t.Fatalf("session lost on photo failure")
	}
	if count, _ := st.CountUnderPrice(1_000_000); count != 0 {
		t.Fatalf("partial listing persisted")
	}

	// retry succeeds once the backend recovers
	photos.fail = false
	out, err = f.HandlePhoto(context.Background(), userID, "seller", photoInput())
	if err != nil {
		t.Fatalf("retry photo: %v", err)
	}
	if !out.Done {
		t.Fatalf("retry outcome = %+v, want done", out)
	}
}

func TestFlowInsertFailurePreservesSession(t *testing.T) {
	sessions := session.NewMemoryStore()
	st := failingInsertStore{store.NewMemoryStore()}
	f := New(sessions, st, newFakePhotoStore(), Config{}, nil)
	const userID = int64(17)

	if _, err := f.Start(userID); err != nil {
		t.Fatalf("start: %v", err)
	}
	mustText(t, f, userID, "VW Golf")
	mustText(t, f, userID, "2016")
	mustText(t, f, userID, "12000")
	mustText(t, f, userID, "0551111111")

	out, err := f.HandlePhoto(context.Background(), userID, "seller", photoInput())
	if err != nil {
		t.Fatalf("photo: %v", err)
	}
	if out.Done || out.PromptKey != "storage_error" {
		t.Fatalf("outcome = %+v, want storage_error", out)
	}
	if !f.Active(userID) {
		t.Fatalf("session lost on insert failure")
	}
}

func TestFlowHandleTextWithoutSession(t *testing.T) {
	f, _, _, _ := newTestFlow(Config{})
	if _, err := f.HandleText(99, "hello"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}
