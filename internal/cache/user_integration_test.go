package cache

import (
	"context"
	"testing"
	"time"

	"github.com/skillfolio/skillfolio/internal/model"
	"github.com/skillfolio/skillfolio/internal/testutil"
)

// newTestCache connects to the test Redis and flushes it. Skipped
// unless TEST_REDIS_URL is set.
func newTestCache(t *testing.T) (*Cache, context.Context) {
	t.Helper()

	redisURL := testutil.RequireEnv(t, "TEST_REDIS_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	c, err := New(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("failed to close cache: %v", err)
		}
	})

	if err := testutil.FlushRedis(ctx, c.client); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}

	return c, ctx
}

func TestUserCache_RoundTrip(t *testing.T) {
	c, ctx := newTestCache(t)

	first := "Ada"
	user := &model.User{
		ID:           42,
		Email:        "cache@example.com",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		FirstName:    &first,
	}

	if err := c.SetUser(ctx, user); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}

	got, err := c.GetUser(ctx, 42)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected cached user, got miss")
	}
	if got.Email != "cache@example.com" {
		t.Errorf("unexpected email: %s", got.Email)
	}
	if got.FirstName == nil || *got.FirstName != "Ada" {
		t.Error("first name lost in round trip")
	}
	if got.PasswordHash != "" {
		t.Error("password hash must never reach the cache")
	}
}

func TestUserCache_MissReturnsNil(t *testing.T) {
	c, ctx := newTestCache(t)

	got, err := c.GetUser(ctx, 999999)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected miss, got %+v", got)
	}
}

func TestUserCache_DeleteInvalidates(t *testing.T) {
	c, ctx := newTestCache(t)

	user := &model.User{ID: 7, Email: "gone@example.com"}
	if err := c.SetUser(ctx, user); err != nil {
		t.Fatalf("SetUser failed: %v", err)
	}
	if err := c.DeleteUser(ctx, 7); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	got, err := c.GetUser(ctx, 7)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got != nil {
		t.Error("expected entry to be gone after delete")
	}
}

func TestUserCache_CorruptEntryIsMiss(t *testing.T) {
	c, ctx := newTestCache(t)

	if err := c.client.Set(ctx, userCacheKey(3), "{not json", time.Minute).Err(); err != nil {
		t.Fatalf("failed to plant corrupt entry: %v", err)
	}

	got, err := c.GetUser(ctx, 3)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected corrupt entry to read as miss, got %+v", got)
	}
}
