package hexbond

// bondLit returns the DIMACS-style positive literal asserting that the
// given bond's order is at least order, for order in [1,3]. Bond i owns
// literals 3*i+1, 3*i+2, 3*i+3; the monotonicity axioms below ensure that in
// any model, the number of these three literals that are true, read from
// order 1 up, is exactly the bond's order. This layout is what lets
// [LazySolver] hand clauses straight to gophersat's integer-literal API
// without a separate variable allocator.
func bondLit(bondID, order int) int {
	return 3*bondID + order
}

// monotonicityClauses returns the two axiom clauses for a bond that forbid a
// model asserting order>=3 without also asserting order>=2, or order>=2
// without order>=1. Without these, the three literals per bond would not
// correspond to a single consistent integer order.
func monotonicityClauses(bondID int) [][]int {
	return [][]int{
		{bondLit(bondID, 1), -bondLit(bondID, 2)},
		{bondLit(bondID, 2), -bondLit(bondID, 3)},
	}
}

// bondOrder reads the order assigned to a bond out of a gophersat model
// slice (0-indexed by var-1, as returned by solver.Solver.Model). It is the
// highest k in [1,3] whose order literal is true, or 0 if none is; under the
// monotonicity axioms this equals the count of the bond's true literals.
func bondOrder(model []bool, bondID int) int {
	order := 0
	for k := 1; k <= 3; k++ {
		idx := bondLit(bondID, k) - 1
		if idx < len(model) && model[idx] {
			order = k
		}
	}
	return order
}
