package hexbond

import mapset "github.com/deckarep/golang-set/v2"

// connectivityResult is the outcome of one traversal of a model's active
// bonds: either every atom is reached from atom 0 (Connected), or
// CutEdges lists the bonds discovered to bridge the reached and unreached
// partitions — the clause [LazySolver] must add before resolving.
type connectivityResult struct {
	Connected bool
	CutEdges  []int
}

// checkConnectivity walks the graph from atom 0 over every bond whose
// solved order is at least 1 (i.e. bondOrder(model, bondID) > 0), exactly as
// [Graph.Neighbors] reports them, and reports whether every atom was
// reached. It runs single-threaded and makes a single pass per call; it is
// always called with a fully-decided model, never concurrently with another
// traversal of the same graph.
//
// When the walk does not reach every atom, it also returns the set of
// bonds whose two endpoints ended up in different partitions: these are
// the edges a future solve must be allowed to activate to connect the two
// halves, and become the next clause added to the puzzle's [CutSet].
//
// The reached partition is tracked as a [mapset.Set] rather than a []bool:
// membership is all this walk ever needs from it (no ordered iteration, no
// indexing), and checking both a bond's endpoints against it below reads as
// a set-difference test either way.
func checkConnectivity(g *Graph, model []bool) connectivityResult {
	n := g.NumAtoms()
	if n == 0 {
		return connectivityResult{Connected: true}
	}
	reached := mapset.NewThreadUnsafeSet(0)
	queue := []int{0}
	var frontierCut []int
	for len(queue) > 0 {
		atom := queue[0]
		queue = queue[1:]
		for _, nb := range g.Neighbors(atom) {
			if reached.Contains(nb.AtomID) {
				continue
			}
			if bondOrder(model, nb.BondID) > 0 {
				reached.Add(nb.AtomID)
				queue = append(queue, nb.AtomID)
			} else {
				frontierCut = append(frontierCut, nb.BondID)
			}
		}
	}
	if reached.Cardinality() == n {
		return connectivityResult{Connected: true}
	}
	// A bond recorded above as a frontier crossing may since have become an
	// interior edge of the reached side (its far endpoint got pulled in by a
	// different path); keep only the ones whose endpoints still disagree.
	cutEdges := make([]int, 0, len(frontierCut))
	for _, bondID := range frontierCut {
		b := g.Bond(bondID)
		if reached.Contains(b.AtomID1) != reached.Contains(b.AtomID2) {
			cutEdges = append(cutEdges, bondID)
		}
	}
	return connectivityResult{CutEdges: cutEdges}
}
