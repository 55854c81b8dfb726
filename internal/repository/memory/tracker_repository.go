package memory

import (
	"time"

	"brd-studio-be/pkg/selection"

	"github.com/patrickmn/go-cache"
)

// TrackerRepository keeps one selection tracker per connected client.
// Trackers are cheap and ephemeral; an idle client's tracker can be
// rebuilt from the next gesture, so eviction is harmless.
type TrackerRepository struct {
	cache *cache.Cache
}

func NewTrackerRepository() *TrackerRepository {
	c := cache.New(30*time.Minute, 10*time.Minute)
	return &TrackerRepository{
		cache: c,
	}
}

// GetOrCreate returns the client's tracker, creating one bound to the
// given container when the client is new.
func (r *TrackerRepository) GetOrCreate(clientID, containerID string, opts ...selection.Option) *selection.Tracker {
	if x, found := r.cache.Get(clientID); found {
		tracker := x.(*selection.Tracker)
		tracker.SetContainer(containerID)
		r.cache.Set(clientID, tracker, cache.DefaultExpiration)
		return tracker
	}
	tracker := selection.NewTracker(containerID, opts...)
	r.cache.Set(clientID, tracker, cache.DefaultExpiration)
	return tracker
}

func (r *TrackerRepository) Get(clientID string) (*selection.Tracker, bool) {
	if x, found := r.cache.Get(clientID); found {
		return x.(*selection.Tracker), true
	}
	return nil, false
}

func (r *TrackerRepository) Delete(clientID string) {
	r.cache.Delete(clientID)
}
