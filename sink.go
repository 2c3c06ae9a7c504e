package hexbond

import (
	"bufio"
	"io"

	"github.com/hexbond/hexbond/internal/itertools"
)

// WritePuzzle renders g as a character grid: each atom prints its
// [AtomKind] glyph and each bond prints its [BondKind] glyph at the bond's
// grid position, with every other cell left blank. The persisted format
// carries no solved-order information in the glyph itself — a solver
// reconstructs the order by re-running [LazySolver] over the fixed atom
// kinds, exactly as the original program's file writer ignores the solved
// order and only the interactive viewer (out of scope here) renders order
// with distinct glyphs. The grid's bounds are the smallest rectangle
// containing every atom and bond.
func WritePuzzle(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	minX, minY, maxX, maxY := bounds(g)

	cells := make(map[[2]int]string)
	for i := range itertools.Range(0, g.NumAtoms()) {
		a := g.Atom(i)
		cells[[2]int{a.X, a.Y}] = a.Kind.String()
	}
	for i := range itertools.Range(0, g.NumBonds()) {
		b := g.Bond(i)
		cells[[2]int{b.X, b.Y}] = b.Kind.String()
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			text, ok := cells[[2]int{x, y}]
			if !ok {
				text = " "
			}
			if _, err := bw.WriteString(text); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func bounds(g *Graph) (minX, minY, maxX, maxY int) {
	first := true
	consider := func(x, y int) {
		if first {
			minX, maxX, minY, maxY = x, x, y, y
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for i := range itertools.Range(0, g.NumAtoms()) {
		a := g.Atom(i)
		consider(a.X, a.Y)
	}
	for i := range itertools.Range(0, g.NumBonds()) {
		b := g.Bond(i)
		consider(b.X, b.Y)
	}
	return minX, minY, maxX, maxY
}
