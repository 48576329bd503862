package parcel

import (
	"sort"

	"github.com/cityfab/cityfab/blockfinder"
	"github.com/cityfab/cityfab/roadgraph"
)

// Store owns the current parcel set, indexed by the block that produced
// it. paintZone always replaces a block's entire parcel set in one call
// (§4.7 step 2: "discard its existing parcels"), so Store's write surface
// is block-granular, not per-parcel.
type Store struct {
	byBlock map[blockfinder.BlockID][]*Parcel
	nextID  int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byBlock: make(map[blockfinder.BlockID][]*Parcel)}
}

// replaceBlock discards any parcels previously stored for blockID and
// stores polys in their place, assigning each a fresh Parcel.ID.
func (s *Store) replaceBlock(blockID blockfinder.BlockID, polys []candidateParcel) []*Parcel {
	out := make([]*Parcel, 0, len(polys))
	for _, c := range polys {
		frontageEdge := NoFrontageEdge
		if c.frontageEdge >= 0 {
			frontageEdge = roadgraph.EdgeID(c.frontageEdge)
		}
		p := &Parcel{
			ID:           s.nextID,
			BlockID:      blockID,
			Polygon:      c.poly,
			ZoneType:     c.zoneType,
			Density:      c.density,
			Area:         c.area,
			Frontage:     c.frontage,
			FrontageEdge: frontageEdge,
			IsCorner:     c.isCorner,
			Centroid:     c.centroid,
		}
		s.nextID++
		out = append(out, p)
	}
	s.byBlock[blockID] = out
	return out
}

// ClearBlock discards blockID's parcels, if any.
func (s *Store) ClearBlock(blockID blockfinder.BlockID) {
	delete(s.byBlock, blockID)
}

// Clear discards every parcel in the store (the "clear-zones" request).
func (s *Store) Clear() {
	s.byBlock = make(map[blockfinder.BlockID][]*Parcel)
}

// ParcelsInBlock returns blockID's current parcels, or nil if it has
// none.
func (s *Store) ParcelsInBlock(blockID blockfinder.BlockID) []*Parcel {
	return s.byBlock[blockID]
}

// All returns every parcel currently in the store, in block-id then
// parcel-id order. Map iteration order is randomized per process, so
// the accumulated slice is sorted explicitly before returning — callers
// downstream of this (engine.Context.GetParcels, engine.EncodeParcels)
// depend on bit-stable output for identical seed/era/bounds/requests.
func (s *Store) All() []*Parcel {
	out := make([]*Parcel, 0)
	for _, ps := range s.byBlock {
		out = append(out, ps...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BlockID != out[j].BlockID {
			return out[i].BlockID < out[j].BlockID
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ByID returns the parcel with the given id, if present.
func (s *Store) ByID(id int) (*Parcel, bool) {
	for _, ps := range s.byBlock {
		for _, p := range ps {
			if p.ID == id {
				return p, true
			}
		}
	}
	return nil, false
}
