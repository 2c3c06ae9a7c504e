package hexbond

import "fmt"

// BondKind records the grid glyph a bond was parsed from. It is purely
// lexical: it decides which pair of neighboring grid cells a bond connects
// and which glyph [WritePuzzle] prints back out. It has no bearing on the
// SAT encoding itself.
type BondKind int

const (
	BondMinus BondKind = iota
	BondSlash
	BondBackslash
)

func (k BondKind) String() string {
	switch k {
	case BondMinus:
		return "-"
	case BondSlash:
		return "/"
	case BondBackslash:
		return "\\"
	default:
		return fmt.Sprintf("BondKind(%d)", int(k))
	}
}

// Bond is an edge of the puzzle graph, anchored at the grid position of its
// glyph in the source template. AtomID1 and AtomID2 are the endpoints
// discovered by [Graph.ResolveEndpoints]; Order is the bond order found by
// the most recent solve, in [0,3].
type Bond struct {
	X, Y             int
	Kind             BondKind
	AtomID1, AtomID2 int
	Order            int
}
