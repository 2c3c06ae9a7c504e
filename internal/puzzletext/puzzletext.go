// Package puzzletext parses the ASCII grid format puzzle templates are
// written in into a [hexbond.Graph]. It mirrors the character-by-character
// scanner of the original generator's parse function: a space advances the
// cursor, a newline resets it to the next row, and each atom or bond glyph
// both advances the cursor and registers a vertex or edge at the current
// position.
package puzzletext

import (
	"fmt"
	"io"

	"github.com/hexbond/hexbond"
)

// Parse reads an entire template from r and returns the [hexbond.Graph] it
// describes, with every bond's endpoints already resolved.
func Parse(r io.Reader) (*hexbond.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("puzzletext: %w", err)
	}
	g := hexbond.NewGraph()
	x, y := 0, 0
	for i, c := range string(data) {
		switch c {
		case ' ':
			x++
		case '\n':
			x, y = 0, y+1
			continue
		case 'X':
			g.AddAtom(x, y, hexbond.AtomUnspecified)
			x++
		case 'H':
			g.AddAtom(x, y, hexbond.AtomH)
			x++
		case 'O':
			g.AddAtom(x, y, hexbond.AtomO)
			x++
		case 'N':
			g.AddAtom(x, y, hexbond.AtomN)
			x++
		case 'C':
			g.AddAtom(x, y, hexbond.AtomC)
			x++
		case '-':
			g.AddBond(x, y, hexbond.BondMinus)
			x++
		case '/':
			g.AddBond(x, y, hexbond.BondSlash)
			x++
		case '\\':
			g.AddBond(x, y, hexbond.BondBackslash)
			x++
		default:
			return nil, fmt.Errorf("puzzletext: unexpected character %q at byte offset %d", c, i)
		}
	}
	if err := g.ResolveEndpoints(); err != nil {
		return nil, fmt.Errorf("puzzletext: %w", err)
	}
	return g, nil
}
