package hexbond

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// MaxAtoms and MaxBonds bound the size of any single puzzle. They mirror the
// fixed-size arrays of the program this package replaces; [Graph.AddAtom]
// and [Graph.AddBond] panic if a caller tries to exceed them, since doing so
// can only be a parser or generator bug, never a recoverable runtime
// condition.
const (
	MaxAtoms = 512
	MaxBonds = 512
)

type gridPos struct{ x, y int }

// Graph is the in-memory puzzle graph: a set of [Atom] vertices at grid
// positions, connected by [Bond] edges. It owns the stack of atom ids whose
// kind is still [AtomUnspecified], which the [Generator] drains before
// falling back to picking vertices uniformly at random.
type Graph struct {
	atoms       []Atom
	bonds       []Bond
	byPos       map[gridPos]int
	unspecified []int
	// unspecifiedSet mirrors the ids on unspecified, so PushUnspecified can
	// reject an already-queued atom in O(1) instead of risking a duplicate
	// that would let [Generator] perturb the same vertex twice in one pick.
	unspecifiedSet mapset.Set[int]
	adjacency      [][]link // lazily built by buildAdjacency; indexed by atom id
}

// link pairs a bond incident to an atom with the atom on its other end, the
// same association the original program recomputed on every traversal step
// via get_atom_link.
type link struct {
	bondID, otherAtomID int
}

// NewGraph returns an empty puzzle graph.
func NewGraph() *Graph {
	return &Graph{byPos: make(map[gridPos]int), unspecifiedSet: mapset.NewThreadUnsafeSet[int]()}
}

// AddAtom places an atom of the given kind at (x,y) and returns its id.
// Panics if the graph already holds [MaxAtoms] atoms.
func (g *Graph) AddAtom(x, y int, kind AtomKind) int {
	if len(g.atoms) >= MaxAtoms {
		panic(fmt.Sprintf("hexbond: atom capacity exceeded (max %d)", MaxAtoms))
	}
	id := len(g.atoms)
	g.atoms = append(g.atoms, Atom{X: x, Y: y, Kind: kind})
	g.byPos[gridPos{x, y}] = id
	if kind == AtomUnspecified {
		g.unspecified = append(g.unspecified, id)
		g.unspecifiedSet.Add(id)
	}
	g.adjacency = nil
	return id
}

// AddBond records a bond glyph of the given kind anchored at (x,y). The
// bond's endpoints are not resolved until [Graph.ResolveEndpoints] is
// called, since a bond's neighboring atoms may appear later in the source
// template than the bond glyph itself.
func (g *Graph) AddBond(x, y int, kind BondKind) int {
	if len(g.bonds) >= MaxBonds {
		panic(fmt.Sprintf("hexbond: bond capacity exceeded (max %d)", MaxBonds))
	}
	id := len(g.bonds)
	g.bonds = append(g.bonds, Bond{X: x, Y: y, Kind: kind, AtomID1: -1, AtomID2: -1})
	g.adjacency = nil
	return id
}

// ResolveEndpoints fills in AtomID1/AtomID2 for every bond added so far, by
// looking at the two grid cells adjacent to each bond glyph's position in
// the direction implied by its [BondKind]. Returns an error for any bond
// whose implied endpoint has no atom.
func (g *Graph) ResolveEndpoints() error {
	for i := range g.bonds {
		b := &g.bonds[i]
		var p1, p2 gridPos
		switch b.Kind {
		case BondMinus:
			p1, p2 = gridPos{b.X - 1, b.Y}, gridPos{b.X + 1, b.Y}
		case BondSlash:
			p1, p2 = gridPos{b.X - 1, b.Y + 1}, gridPos{b.X + 1, b.Y - 1}
		case BondBackslash:
			p1, p2 = gridPos{b.X - 1, b.Y - 1}, gridPos{b.X + 1, b.Y + 1}
		default:
			panic(fmt.Sprintf("hexbond: invalid bond kind %d", int(b.Kind)))
		}
		a1, ok1 := g.byPos[p1]
		a2, ok2 := g.byPos[p2]
		if !ok1 || !ok2 {
			return fmt.Errorf("hexbond: bond at (%d,%d) has no atom at one of its endpoints", b.X, b.Y)
		}
		b.AtomID1, b.AtomID2 = a1, a2
	}
	g.adjacency = nil
	return nil
}

func (g *Graph) buildAdjacency() {
	if g.adjacency != nil {
		return
	}
	adj := make([][]link, len(g.atoms))
	for bondID, b := range g.bonds {
		adj[b.AtomID1] = append(adj[b.AtomID1], link{bondID, b.AtomID2})
		adj[b.AtomID2] = append(adj[b.AtomID2], link{bondID, b.AtomID1})
	}
	g.adjacency = adj
}

// Neighbors returns, for the given atom, the ids of every incident bond
// together with the id of the atom on the other end of that bond. The
// result is ordered by bond id.
func (g *Graph) Neighbors(atomID int) []struct{ BondID, AtomID int } {
	g.buildAdjacency()
	links := g.adjacency[atomID]
	out := make([]struct{ BondID, AtomID int }, len(links))
	for i, l := range links {
		out[i] = struct{ BondID, AtomID int }{l.bondID, l.otherAtomID}
	}
	return out
}

// Degree returns the number of bonds incident to the given atom.
func (g *Graph) Degree(atomID int) int {
	g.buildAdjacency()
	return len(g.adjacency[atomID])
}

// NumAtoms returns the number of atoms in the graph.
func (g *Graph) NumAtoms() int { return len(g.atoms) }

// NumBonds returns the number of bonds in the graph.
func (g *Graph) NumBonds() int { return len(g.bonds) }

// Atom returns the atom with the given id.
func (g *Graph) Atom(id int) Atom { return g.atoms[id] }

// Bond returns the bond with the given id.
func (g *Graph) Bond(id int) Bond { return g.bonds[id] }

// SetAtomKind updates the kind of the given atom, maintaining the
// unspecified-vertex stack invariant.
func (g *Graph) SetAtomKind(atomID int, kind AtomKind) {
	was := g.atoms[atomID].Kind
	g.atoms[atomID].Kind = kind
	if was == AtomUnspecified && kind != AtomUnspecified {
		g.removeUnspecified(atomID)
	} else if was != AtomUnspecified && kind == AtomUnspecified {
		g.pushUnspecified(atomID)
	}
}

func (g *Graph) removeUnspecified(atomID int) {
	if !g.unspecifiedSet.Contains(atomID) {
		return
	}
	g.unspecifiedSet.Remove(atomID)
	for i, id := range g.unspecified {
		if id == atomID {
			g.unspecified = append(g.unspecified[:i], g.unspecified[i+1:]...)
			return
		}
	}
}

func (g *Graph) pushUnspecified(atomID int) {
	if g.unspecifiedSet.Contains(atomID) {
		return
	}
	g.unspecifiedSet.Add(atomID)
	g.unspecified = append(g.unspecified, atomID)
}

// PopUnspecified removes and returns an arbitrary unspecified atom id from
// the stack, mirroring unspecified_atom_ids' LIFO draining in the original
// generator loop. ok is false if no unspecified atoms remain.
func (g *Graph) PopUnspecified() (atomID int, ok bool) {
	if len(g.unspecified) == 0 {
		return 0, false
	}
	n := len(g.unspecified) - 1
	atomID = g.unspecified[n]
	g.unspecified = g.unspecified[:n]
	g.unspecifiedSet.Remove(atomID)
	return atomID, true
}

// PushUnspecified restores an atom id to the unspecified stack, used when
// the generator reverts a rejected perturbation. It is a no-op if atomID is
// already queued.
func (g *Graph) PushUnspecified(atomID int) {
	g.pushUnspecified(atomID)
}

// SetBondOrder records the solved order of a bond, used by [WritePuzzle].
func (g *Graph) SetBondOrder(bondID, order int) {
	g.bonds[bondID].Order = order
}

// Clone returns a deep copy of the graph, used by [BatchGenerator] to give
// each concurrent attempt its own mutable state.
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		atoms:          append([]Atom(nil), g.atoms...),
		bonds:          append([]Bond(nil), g.bonds...),
		byPos:          make(map[gridPos]int, len(g.byPos)),
		unspecified:    append([]int(nil), g.unspecified...),
		unspecifiedSet: g.unspecifiedSet.Clone(),
	}
	for k, v := range g.byPos {
		cp.byPos[k] = v
	}
	return cp
}
