package hexbond

import "fmt"

// AtomKind identifies the chemical element occupying a grid vertex, or
// [AtomUnspecified] for a vertex whose element the generator is still free
// to choose.
type AtomKind int

const (
	AtomUnspecified AtomKind = iota
	AtomH
	AtomO
	AtomN
	AtomC
	atomKindCount
)

// Valence returns the number of bond-order units the atom kind must satisfy
// exactly, and ok reports whether the kind has a fixed valence at all.
// [AtomUnspecified] has no fixed valence; callers must instead enforce the
// upper-bound-only constraint of [ValenceClausesUpperOnly].
func (k AtomKind) Valence() (v int, ok bool) {
	switch k {
	case AtomH:
		return 1, true
	case AtomO:
		return 2, true
	case AtomN:
		return 3, true
	case AtomC:
		return 4, true
	default:
		return 0, false
	}
}

func (k AtomKind) String() string {
	switch k {
	case AtomUnspecified:
		return "X"
	case AtomH:
		return "H"
	case AtomO:
		return "O"
	case AtomN:
		return "N"
	case AtomC:
		return "C"
	default:
		return fmt.Sprintf("AtomKind(%d)", int(k))
	}
}

// Atom is a vertex of the puzzle graph: a grid position and the element
// occupying it.
type Atom struct {
	X, Y int
	Kind AtomKind
}
