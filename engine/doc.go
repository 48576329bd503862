// Package engine is the core of the urban-fabric generator (§6): it owns
// the road graph, welder, block set, parcel store, and building store
// behind one Context, and dispatches tagged Request values to typed
// Reply values.
//
// This replaces the originating system's manager-style singletons
// (RoadNetwork, BlockManager, BuildingManager) and dynamically-typed
// union message (§9 Design Notes) with explicit owned state on Context
// and a Go type switch over concrete request structs — the same
// "no cross-pointers, stable ids into flat tables" discipline the road
// graph itself uses, extended to own the graph, not just be one.
//
// Context never panics on ordinary input (§7): every operation returns
// a reply carrying success/failure and partial results instead of
// raising an error up through the call stack, except where the error
// return itself communicates a structural problem (a malformed request)
// rather than a runtime rejection.
package engine
