package hexbond

import (
	"math/rand/v2"

	"github.com/crillab/gophersat/solver"

	"github.com/hexbond/hexbond/internal/itertools"
)

// LazySolver drives a gophersat [solver.Solver] through the lazy
// connectivity-refinement loop: every model gophersat proposes is checked
// for connectivity before being accepted as a real solution; disconnected
// models instead contribute a new clause, forcing gophersat to try again
// with at least one of the discovered cut edges active. The accumulated
// clauses live in the puzzle's [CutSet] so later, unrelated solves (after
// the [Generator] perturbs a different vertex) don't have to rediscover
// them.
type LazySolver struct {
	g          *Graph
	cuts       *CutSet
	firstModel []bool
	hasModel   bool
}

// NewLazySolver returns a solver for g that persists discovered cut clauses
// into cuts. cuts is typically reused across many calls over the lifetime
// of one puzzle graph.
func NewLazySolver(g *Graph, cuts *CutSet) *LazySolver {
	return &LazySolver{g: g, cuts: cuts}
}

// CountSolutions searches for up to maxK satisfying, connected assignments
// of bond orders and reports how many were found. decisionsOfFirst is
// gophersat's decision count ([solver.Stats.NbDecisions]) at the moment the
// first connected solution was found, useful for the generator to gauge how
// constrained a candidate puzzle is. If found is exactly 1, [LazySolver.ApplyFirstModel]
// recovers the bond orders of that unique solution.
//
// gophersat's public Solver exposes no seed or phase-bias hook, so
// CountSolutions instead emits the valence clauses in a fresh random atom
// order on each call, drawn from math/rand/v2's global source; since
// gophersat's variable-activity
// initialization depends on clause presentation order, this perturbs the
// search similarly to reseeding the engine directly would.
func (ls *LazySolver) CountSolutions(maxK int) (found int, decisionsOfFirst int, err error) {
	ls.hasModel = false
	ls.firstModel = nil

	clauses := ls.buildClauses()
	prob, err := solver.ParseSlice(clauses)
	if err != nil {
		return 0, 0, err
	}
	s := solver.New(prob)

	for found < maxK {
		if s.Solve() != solver.Sat {
			break
		}
		model := s.Model()
		res := checkConnectivity(ls.g, model)
		if res.Connected {
			if found == 0 {
				decisionsOfFirst = s.Stats.NbDecisions
				ls.firstModel = append([]bool(nil), model...)
				ls.hasModel = true
			}
			found++
			s.AppendClause(clauseFromInts(blockingClause(model)))
			continue
		}
		clause := make([]int, 0, len(res.CutEdges))
		for _, bondID := range res.CutEdges {
			clause = append(clause, bondLit(bondID, 1))
		}
		ls.cuts.Add(clause)
		s.AppendClause(clauseFromInts(clause))
	}
	return found, decisionsOfFirst, nil
}

// ApplyFirstModel writes the bond orders of the first connected solution
// found by the most recent [LazySolver.CountSolutions] call back into the
// graph. ok is false if that call found no connected solution.
func (ls *LazySolver) ApplyFirstModel() (ok bool) {
	if !ls.hasModel {
		return false
	}
	for bondID := 0; bondID < ls.g.NumBonds(); bondID++ {
		ls.g.SetBondOrder(bondID, bondOrder(ls.firstModel, bondID))
	}
	return true
}

// buildClauses assembles the full clause set for the current graph state:
// bond-order monotonicity axioms, per-atom valence clauses, and every
// cut-forcing clause accumulated so far.
func (ls *LazySolver) buildClauses() [][]int {
	var clauses [][]int
	for bondID := range itertools.Range(0, ls.g.NumBonds()) {
		clauses = append(clauses, monotonicityClauses(bondID)...)
	}

	order := rand.Perm(ls.g.NumAtoms())
	for _, atomID := range order {
		atom := ls.g.Atom(atomID)
		bondIDs := make([]int, 0, 3)
		for _, nb := range ls.g.Neighbors(atomID) {
			bondIDs = append(bondIDs, nb.BondID)
		}
		if v, ok := atom.Kind.Valence(); ok {
			clauses = append(clauses, ValenceClauses(bondIDs, v)...)
		} else {
			clauses = append(clauses, ValenceClausesUpperOnly(bondIDs, 4)...)
		}
	}

	clauses = append(clauses, ls.cuts.Clauses()...)
	return clauses
}

// blockingClause returns the clause that negates every literal of model,
// which when added to the solver forbids that exact assignment from being
// returned again.
func blockingClause(model []bool) []int {
	clause := make([]int, len(model))
	for i, v := range model {
		if v {
			clause[i] = -(i + 1)
		} else {
			clause[i] = i + 1
		}
	}
	return clause
}

func clauseFromInts(ints []int) *solver.Clause {
	lits := make([]solver.Lit, len(ints))
	for i, v := range ints {
		lits[i] = solver.IntToLit(int32(v))
	}
	return solver.NewClause(lits)
}
