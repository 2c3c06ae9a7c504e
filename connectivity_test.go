package hexbond

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// buildChain returns a graph of n atoms in a straight line, atom i bonded to
// atom i+1, plus the bond ids in order.
func buildChain(n int) (*Graph, []int) {
	g := NewGraph()
	for i := 0; i < n; i++ {
		g.AddAtom(2*i, 0, AtomC)
	}
	bondIDs := make([]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		bondIDs = append(bondIDs, g.AddBond(2*i+1, 0, BondMinus))
	}
	if err := g.ResolveEndpoints(); err != nil {
		panic(err)
	}
	return g, bondIDs
}

func modelAllActive(numBonds int, active map[int]bool) []bool {
	model := make([]bool, 3*numBonds)
	for bondID := 0; bondID < numBonds; bondID++ {
		if active[bondID] {
			model[bondLit(bondID, 1)-1] = true
		}
	}
	return model
}

func TestCheckConnectivityFullyConnected(t *testing.T) {
	g, bondIDs := buildChain(4)
	active := map[int]bool{}
	for _, id := range bondIDs {
		active[id] = true
	}
	model := modelAllActive(g.NumBonds(), active)
	res := checkConnectivity(g, model)
	if !res.Connected {
		t.Fatalf("expected connected, got cut edges %v", res.CutEdges)
	}
}

func TestCheckConnectivityReportsCutEdge(t *testing.T) {
	g, bondIDs := buildChain(4)
	// Activate only the first two bonds (atoms 0-1-2 connected), leaving
	// atom 3 isolated: bondIDs[2] (connecting atom 2 and atom 3) must be
	// reported as the cut edge.
	active := map[int]bool{bondIDs[0]: true, bondIDs[1]: true}
	model := modelAllActive(g.NumBonds(), active)
	res := checkConnectivity(g, model)
	if res.Connected {
		t.Fatalf("expected disconnected")
	}
	if len(res.CutEdges) != 1 || res.CutEdges[0] != bondIDs[2] {
		t.Fatalf("expected cut edge %d, got %v", bondIDs[2], res.CutEdges)
	}
}

func TestCheckConnectivitySingleAtom(t *testing.T) {
	g := NewGraph()
	g.AddAtom(0, 0, AtomH)
	res := checkConnectivity(g, nil)
	if !res.Connected {
		t.Fatalf("a single atom with no bonds is trivially connected")
	}
}

// starGraph builds a center atom directly bonded to three leaves, using raw
// bond construction (as [newRawGraph] does) since the grid's position-based
// AddBond can't place one atom at three different bonds' implied positions
// at once.
func starGraph() (g *Graph, bondIDs []int) {
	g = NewGraph()
	g.AddAtom(0, 0, AtomC)
	for i := 0; i < 3; i++ {
		g.AddAtom(0, 0, AtomH)
		id := g.AddBond(0, 0, BondMinus)
		g.bonds[id].AtomID1, g.bonds[id].AtomID2 = 0, i+1
		bondIDs = append(bondIDs, id)
	}
	g.adjacency = nil
	return g, bondIDs
}

// With every leaf bond inactive, all three are boundary edges of the
// singleton reached partition {0}: checkConnectivity must report exactly
// that set, regardless of traversal order, which is where cmp.Diff on a
// sorted copy reads more clearly than a manual element-by-element check.
func TestCheckConnectivityMultipleCutEdges(t *testing.T) {
	g, bondIDs := starGraph()
	model := modelAllActive(g.NumBonds(), nil)
	res := checkConnectivity(g, model)
	if res.Connected {
		t.Fatalf("expected disconnected")
	}
	got := append([]int(nil), res.CutEdges...)
	slices.Sort(got)
	want := append([]int(nil), bondIDs...)
	slices.Sort(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cut edges mismatch (-want +got):\n%s", diff)
	}
}
