// Package state holds the atomically swapped snapshots of active hazards and
// hotspots. Each snapshot has a single writer (the ingestion or refresh job)
// that replaces the whole slice per cycle; readers always see one consistent
// list and must not mutate it.
package state

import (
	"sync/atomic"
	"time"

	"go-shorewatch/types"
)

// HazardSnapshot is the latest full hazard list from weather ingestion.
type HazardSnapshot struct {
	current   atomic.Pointer[[]types.Hazard]
	updatedAt atomic.Pointer[time.Time]
}

func NewHazardSnapshot() *HazardSnapshot {
	s := &HazardSnapshot{}
	empty := []types.Hazard{}
	s.current.Store(&empty)
	return s
}

// Replace swaps in a new hazard list wholesale. The previous list is never
// merged with the new one.
func (s *HazardSnapshot) Replace(hazards []types.Hazard, now time.Time) {
	if hazards == nil {
		hazards = []types.Hazard{}
	}
	s.current.Store(&hazards)
	s.updatedAt.Store(&now)
}

// Get returns the current hazard list. Callers must treat it as read-only.
func (s *HazardSnapshot) Get() []types.Hazard {
	return *s.current.Load()
}

// UpdatedAt returns when the snapshot was last replaced, zero if never.
func (s *HazardSnapshot) UpdatedAt() time.Time {
	if t := s.updatedAt.Load(); t != nil {
		return *t
	}
	return time.Time{}
}

// HotspotSnapshot is the latest full hotspot recompute.
type HotspotSnapshot struct {
	current   atomic.Pointer[[]types.Hotspot]
	updatedAt atomic.Pointer[time.Time]
}

func NewHotspotSnapshot() *HotspotSnapshot {
	s := &HotspotSnapshot{}
	empty := []types.Hotspot{}
	s.current.Store(&empty)
	return s
}

// Replace swaps in a freshly recomputed hotspot list. Recomputation is
// idempotent, so when concurrent refreshes race, last-writer-wins is safe.
func (s *HotspotSnapshot) Replace(hotspots []types.Hotspot, now time.Time) {
	if hotspots == nil {
		hotspots = []types.Hotspot{}
	}
	s.current.Store(&hotspots)
	s.updatedAt.Store(&now)
}

// Get returns the current hotspot list. Callers must treat it as read-only.
func (s *HotspotSnapshot) Get() []types.Hotspot {
	return *s.current.Load()
}

// UpdatedAt returns when the snapshot was last replaced, zero if never.
func (s *HotspotSnapshot) UpdatedAt() time.Time {
	if t := s.updatedAt.Load(); t != nil {
		return *t
	}
	return time.Time{}
}
