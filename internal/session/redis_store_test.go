package session

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"carmarket/pkg/domain"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t, 0)

	if _, ok, err := store.Get(42); ok || err != nil {
		t.Fatalf("get before put: ok=%v err=%v", ok, err)
	}

	sess := Session{
		Step:  "price",
		Draft: domain.Draft{Model: "Toyota Corolla", Year: 2020},
	}
	if err := store.Put(42, sess); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := store.Get(42)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != sess {
		t.Fatalf("session mismatch: got %+v want %+v", got, sess)
	}

	if err := store.Delete(42); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(42); ok {
		t.Fatalf("session still present after delete")
	}
}

func TestRedisStoreSessionsAreIndependentPerUser(t *testing.T) {
	store, _ := newTestRedisStore(t, 0)
	if err := store.Put(1, Session{Step: "year"}); err != nil {
		t.Fatalf("put user 1: %v", err)
	}
	if err := store.Put(2, Session{Step: "phone"}); err != nil {
		t.Fatalf("put user 2: %v", err)
	}
	if err := store.Delete(1); err != nil {
		t.Fatalf("delete user 1: %v", err)
	}
	got, ok, err := store.Get(2)
	if err != nil || !ok {
		t.Fatalf("get user 2: ok=%v err=%v", ok, err)
	}
	if got.Step != "phone" {
		t.Fatalf("step = %q, want phone", got.Step)
	}
}

func TestRedisStoreExpiresAbandonedSessions(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	if err := store.Put(7, Session{Step: "model"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, ok, _ := store.Get(7); ok {
		t.Fatalf("session survived past TTL")
	}
}
