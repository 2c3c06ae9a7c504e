package hexbond

// ValenceClauses returns the CNF clauses asserting that the sum of the
// orders of the given bonds equals exactly valence. bondIDs is the set of
// bonds incident to one atom; valence is the atom's required total bond
// order (see [AtomKind.Valence]).
//
// The encoding works directly on the order literals from bondLit rather
// than introducing auxiliary sum variables: for every combination of
// hypothetical per-bond orders that overshoots the target by exactly one,
// it forbids that combination; a parallel clause set, built against a
// degree-dependent threshold, forbids every combination that falls short.
// Together they pin the sum to exactly valence. ValenceClausesUpperOnly
// documents the degenerate case used for unspecified atoms.
func ValenceClauses(bondIDs []int, valence int) [][]int {
	clauses := synthesizeSumClauses(bondIDs, valence, -1)
	clauses = append(clauses, synthesizeSumClauses(bondIDs, valence, 1)...)
	return clauses
}

// ValenceClausesUpperOnly returns only the "sum <= valence" half of
// [ValenceClauses]. It is used for atoms whose element has not yet been
// chosen: such an atom must not exceed the highest possible valence (4,
// carbon's), but has no fixed lower bound to enforce.
func ValenceClausesUpperOnly(bondIDs []int, valence int) [][]int {
	return synthesizeSumClauses(bondIDs, valence, -1)
}

// synthesizeSumClauses builds one half of the valence encoding for a given
// atom's incident bonds.
//
// sign < 0 builds the upper-bound half ("sum <= target"): for every tuple of
// per-bond hypothetical orders summing to target+1, with no component equal
// to 4 (an order of 4 cannot occur, so such tuples need no clause), it emits
// a clause of negative literals forbidding that combination.
//
// sign > 0 builds the lower-bound half ("sum >= target"): for every tuple
// summing to target+(n-1), where n is the bond count, with no component
// equal to 0, it emits a clause of positive literals forbidding that
// shortfall. The target+(n-1) threshold generalizes the pairwise case (where
// overshooting the target by one suffices to contradict "sum >= target") to
// n-ary sums, where n-1 of the bonds can independently sit at their minimum
// nonzero order without yet reaching the target.
//
// In both halves, a per-bond component equal to 0 or to 4 contributes no
// literal to the clause at all: order 0 is the literal's natural negation
// (omitting it costs nothing since bondLit has no "order >= 0" literal to
// begin with) and order 4 has no literal either, since the order-encoding
// only goes up to 3.
func synthesizeSumClauses(bondIDs []int, target, sign int) [][]int {
	n := len(bondIDs)
	var threshold int
	if sign < 0 {
		threshold = target + 1
	} else {
		threshold = target + n - 1
	}
	var clauses [][]int
	for _, t := range tuples(n) {
		sum := 0
		for _, v := range t {
			sum += v
		}
		if sum != threshold {
			continue
		}
		skip := false
		for _, v := range t {
			if sign < 0 && v == 4 {
				skip = true
				break
			}
			if sign > 0 && v == 0 {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		var lits []int
		for k, v := range t {
			if v == 0 || v == 4 {
				continue
			}
			l := bondLit(bondIDs[k], v)
			if sign < 0 {
				l = -l
			}
			lits = append(lits, l)
		}
		clauses = append(clauses, lits)
	}
	return clauses
}

// tuples returns every n-length tuple over {0,1,2,3,4}, the hypothetical
// per-bond order values synthesizeSumClauses enumerates. n is at most 3 (no
// grid vertex in this puzzle has more than three incident bonds), so the
// 5^n enumeration is small regardless of puzzle size.
func tuples(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	rest := tuples(n - 1)
	out := make([][]int, 0, len(rest)*5)
	for v := 0; v <= 4; v++ {
		for _, r := range rest {
			t := make([]int, 0, n)
			t = append(t, v)
			t = append(t, r...)
			out = append(out, t)
		}
	}
	return out
}
