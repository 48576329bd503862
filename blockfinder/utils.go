package blockfinder

import (
	"strconv"
	"strings"

	"github.com/cityfab/cityfab/roadgraph"
)

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf(s []roadgraph.NodeID, val roadgraph.NodeID) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}

// reverseIDs returns a new slice with s's elements in reverse order.
func reverseIDs(s []roadgraph.NodeID) []roadgraph.NodeID {
	out := make([]roadgraph.NodeID, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}
	return out
}

// compareIDs lexicographically compares two equal-length NodeID slices.
func compareIDs(a, b []roadgraph.NodeID) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// joinSig produces a canonical comma-joined signature for a closed cycle.
func joinSig(c []roadgraph.NodeID) string {
	parts := make([]string, len(c))
	for i, id := range c {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, ",")
}

// minimalRotation implements Booth's algorithm to find the
// lexicographically minimal rotation of s, in O(n) time. Adapted from
// lvlath/dfs.MinimalRotation, generalized from []string to
// []roadgraph.NodeID.
func minimalRotation(s []roadgraph.NodeID) []roadgraph.NodeID {
	n := len(s)
	doubled := append(append([]roadgraph.NodeID(nil), s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]roadgraph.NodeID, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}
	return res
}

// canonical computes the lexicographically minimal rotation of cycle (or
// its reversal) and returns both its join signature and the closed
// (first-element-repeated) canonical form, deduplicating cycles found
// from different starting points or traversal directions.
func canonical(cycle []roadgraph.NodeID) (string, []roadgraph.NodeID) {
	n := len(cycle) - 1
	base := cycle[:n]

	rotF := minimalRotation(base)
	rotB := minimalRotation(reverseIDs(base))

	picker := rotF
	if compareIDs(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]roadgraph.NodeID(nil), picker...), picker[0])
	return joinSig(closed), closed
}
