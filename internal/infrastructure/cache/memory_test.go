package cache

import (
	"testing"
	"time"

	"github.com/storykeep/storykeep/internal/domain/entities"
)

func TestStoryStore_PutAndGet(t *testing.T) {
	store := NewStoryStore(time.Minute)
	s := entities.NewStory("The Weaver and the River")

	store.Put(s)

	got, ok := store.Get(s.ID.String())
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Title != s.Title {
		t.Errorf("cached title = %q, want %q", got.Title, s.Title)
	}

	if _, ok := store.Get("unknown"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestStoryStore_Invalidate(t *testing.T) {
	store := NewStoryStore(time.Minute)
	s := entities.NewStory("Why the Drum Speaks")

	store.Put(s)
	store.Invalidate(s.ID.String())

	if _, ok := store.Get(s.ID.String()); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestStoryStore_Expiry(t *testing.T) {
	store := NewStoryStore(10 * time.Millisecond)
	s := entities.NewStory("Harvest Song")

	store.Put(s)
	time.Sleep(20 * time.Millisecond)

	if _, ok := store.Get(s.ID.String()); ok {
		t.Error("expected miss after ttl elapsed")
	}
}
