package hexbond

import "fmt"

// MaxCutEdges bounds the total number of literals, summed over all clauses,
// that [CutSet] may accumulate across a puzzle's lifetime. It mirrors the fixed-size cut_edges array of the
// program this package replaces.
const MaxCutEdges = 64 * 1024 * 1024

// CutSet accumulates the connectivity-forcing clauses discovered across
// every call to [LazySolver.CountSolutions] for a single puzzle graph. Each
// clause asserts that at least one bond among a discovered graph cut must be
// active (order >= 1); once added, a clause is replayed into every future
// solve so the solver never again proposes a model with that disconnection.
type CutSet struct {
	clauses [][]int
}

// Add appends a new cut-forcing clause (a disjunction of bondLit(id,1)
// literals, one per candidate cut edge) to the set. Panics if doing so would
// exceed [MaxCutEdges] literals in total, which can only happen if a puzzle
// graph is pathologically large or the connectivity checker has a bug.
func (c *CutSet) Add(clause []int) {
	total := len(clause)
	for _, cl := range c.clauses {
		total += len(cl)
	}
	if total > MaxCutEdges {
		panic(fmt.Sprintf("hexbond: cut-set capacity exceeded (max %d literals)", MaxCutEdges))
	}
	c.clauses = append(c.clauses, clause)
}

// Clauses returns every clause accumulated so far, in the order they were
// added.
func (c *CutSet) Clauses() [][]int {
	return c.clauses
}

// Len reports how many clauses have been accumulated.
func (c *CutSet) Len() int {
	return len(c.clauses)
}
