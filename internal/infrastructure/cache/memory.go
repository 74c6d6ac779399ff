package cache

import (
	"sync"
	"time"

	"github.com/storykeep/storykeep/internal/domain/entities"
)

// StoryStore is an in-memory cache of fetched stories with expiration. It
// keeps recently played stories warm so switching between transcript and
// translations does not re-fetch; nothing is ever persisted.
type StoryStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]*storyItem
}

type storyItem struct {
	story      *entities.Story
	expireTime time.Time
}

// NewStoryStore creates a new in-memory story cache
func NewStoryStore(ttl time.Duration) *StoryStore {
	store := &StoryStore{
		ttl:   ttl,
		items: make(map[string]*storyItem),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired()

	return store
}

// Put stores a story under its id
func (ss *StoryStore) Put(story *entities.Story) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.items[story.ID.String()] = &storyItem{
		story:      story,
		expireTime: time.Now().Add(ss.ttl),
	}
}

// Get retrieves a story by id (returns false if not found or expired)
func (ss *StoryStore) Get(id string) (*entities.Story, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	item, exists := ss.items[id]
	if !exists {
		return nil, false
	}

	// Check if expired
	if time.Now().After(item.expireTime) {
		return nil, false
	}

	return item.story, true
}

// Invalidate removes a story, e.g. after an update or delete
func (ss *StoryStore) Invalidate(id string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	delete(ss.items, id)
}

// cleanupExpired periodically removes expired items
func (ss *StoryStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ss.mu.Lock()
		now := time.Now()
		for id, item := range ss.items {
			if now.After(item.expireTime) {
				delete(ss.items, id)
			}
		}
		ss.mu.Unlock()
	}
}
