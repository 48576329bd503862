package blockfinder

import "github.com/cityfab/cityfab/roadgraph"

// findCycles runs the bounded DFS cycle search over g, returning raw
// closed node sequences (first element repeated at the end), deduplicated
// by canonical rotation, each of length within [MinCycleLen, MaxCycleLen]
// nodes, capped at MaxBlocks total.
//
// Adapted from lvlath/dfs.DetectCycles: three-color marking (White/Gray/
// Black), back-edge (Gray->Gray) cycle recording, canonical-rotation
// dedup. roadgraph has no parallel edges and no self-loops, so the
// "trivial 2-cycle"/"self-loop" special cases DetectCycles handles for a
// general core.Graph cannot arise here; the only skip needed is the
// trivial immediate backtrack to the DFS parent.
func findCycles(g *roadgraph.Graph) [][]roadgraph.NodeID {
	state := make(map[roadgraph.NodeID]int, g.NodeCount())
	seen := make(map[string]struct{})
	var cycles [][]roadgraph.NodeID

	for _, start := range g.NodeIDs() {
		if len(cycles) >= MaxBlocks {
			break
		}
		if state[start] == White {
			var path []roadgraph.NodeID
			visit(g, start, -1, state, &path, seen, &cycles)
		}
	}
	return cycles
}

func visit(g *roadgraph.Graph, id roadgraph.NodeID, parent roadgraph.NodeID, state map[roadgraph.NodeID]int, path *[]roadgraph.NodeID, seen map[string]struct{}, cycles *[][]roadgraph.NodeID) {
	if len(*cycles) >= MaxBlocks {
		return
	}
	state[id] = Gray
	*path = append(*path, id)

	n, ok := g.Node(id)
	if ok {
		for _, eid := range n.Incident {
			if len(*cycles) >= MaxBlocks {
				break
			}
			e, ok := g.Edge(eid)
			if !ok {
				continue
			}
			nbr := e.A
			if nbr == id {
				nbr = e.B
			}
			if nbr == parent {
				continue
			}

			switch state[nbr] {
			case White:
				visit(g, nbr, id, state, path, seen, cycles)
			case Gray:
				recordCycle(nbr, *path, seen, cycles)
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black
}

func recordCycle(start roadgraph.NodeID, path []roadgraph.NodeID, seen map[string]struct{}, cycles *[][]roadgraph.NodeID) {
	idx := indexOf(path, start)
	if idx < 0 {
		return
	}
	seq := append([]roadgraph.NodeID(nil), path[idx:]...)
	if len(seq) < MinCycleLen || len(seq) > MaxCycleLen {
		return
	}
	seq = append(seq, start)

	sig, canon := canonical(seq)
	if _, exists := seen[sig]; exists {
		return
	}
	seen[sig] = struct{}{}
	*cycles = append(*cycles, canon)
}
