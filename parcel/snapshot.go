package parcel

import (
	"github.com/cityfab/cityfab/blockfinder"
	"github.com/cityfab/cityfab/geom"
)

// StoreSnapshot is a deterministic, plain-data capture of a Store's
// parcels plus its id counter, in the same (BlockID, ID) order All()
// already guarantees.
type StoreSnapshot struct {
	Parcels []Parcel
	NextID  int
}

// Snapshot captures s's current parcel set. The returned value shares no
// memory with s.
//
// Complexity: O(P) where P is the number of stored parcels.
func (s *Store) Snapshot() StoreSnapshot {
	all := s.All()
	snap := StoreSnapshot{Parcels: make([]Parcel, 0, len(all)), NextID: s.nextID}
	for _, p := range all {
		cp := *p
		cp.Polygon = append(geom.Polygon(nil), p.Polygon...)
		snap.Parcels = append(snap.Parcels, cp)
	}
	return snap
}

// RestoreStore rebuilds a Store directly from snap, grouping parcels
// back by BlockID and preserving the id counter so any later paintZone
// call assigns ids that continue snap's sequence rather than colliding
// with a restored parcel's id.
//
// Complexity: O(P).
func RestoreStore(snap StoreSnapshot) *Store {
	s := &Store{byBlock: make(map[blockfinder.BlockID][]*Parcel), nextID: snap.NextID}
	for i := range snap.Parcels {
		p := snap.Parcels[i]
		s.byBlock[p.BlockID] = append(s.byBlock[p.BlockID], &p)
	}
	return s
}
