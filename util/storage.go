package util

import (
	"sync"
)

const (
	DefaultRecentsLimit = 50
)

/*
 * UsageStore keeps track of the carriers a user picks: how many times each
 * one was used and which ones were used last. It is owned by the outer
 * layers (CLI, local API) and never touched by the codec itself.
 */
type UsageStore interface {
	RecordUsage(carrier string) error
	Recents(limit int) ([]string, error)
	Stats() (map[string]uint, error)
	ClearRecents() error
}

// Storage is an in-memory UsageStore.
type Storage struct {
	stats        map[string]uint
	recents      []string
	recentsLimit int
	mtx          sync.Mutex
}

func NewStorage(recentsLimit int) *Storage {
	if recentsLimit <= 0 {
		recentsLimit = DefaultRecentsLimit
	}
	return &Storage{
		stats:        map[string]uint{},
		recents:      []string{},
		recentsLimit: recentsLimit,
	}
}

func (s *Storage) RecordUsage(carrier string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.stats[carrier]++

	// most recent first, no duplicates
	recents := []string{carrier}
	for _, r := range s.recents {
		if r != carrier {
			recents = append(recents, r)
		}
	}
	if len(recents) > s.recentsLimit {
		recents = recents[:s.recentsLimit]
	}
	s.recents = recents
	return nil
}

func (s *Storage) Recents(limit int) ([]string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if limit <= 0 || limit > len(s.recents) {
		limit = len(s.recents)
	}
	return append([]string{}, s.recents[:limit]...), nil
}

func (s *Storage) Stats() (map[string]uint, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	result := make(map[string]uint, len(s.stats))
	for k, v := range s.stats {
		result[k] = v
	}
	return result, nil
}

func (s *Storage) ClearRecents() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.recents = []string{}
	return nil
}
