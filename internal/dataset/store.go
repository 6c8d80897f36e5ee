package dataset

import (
	"sync"

	"skill-gap/internal/domain/matching"
)

// Store holds the live snapshot and the recommender built from it. Both are
// swapped together so readers always see a matching pair.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
	rec  *matching.Recommender
}

func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.Replace(snap)
	return s
}

// Replace installs snap and returns the new recommender, which is nil unless
// snap has both users and jobs.
func (s *Store) Replace(snap *Snapshot) *matching.Recommender {
	if snap == nil {
		snap = emptySnapshot()
	}

	var rec *matching.Recommender
	if snap.Ready() {
		rec = matching.NewRecommender(snap.Users, snap.Jobs)
	}

	s.mu.Lock()
	s.snap = snap
	s.rec = rec
	s.mu.Unlock()
	return rec
}

func (s *Store) Current() (*Snapshot, *matching.Recommender) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.rec
}
