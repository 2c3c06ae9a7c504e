// Package hexbond generates and solves single-solution chemical-bond
// puzzles on a hexagonal grid.
//
// A puzzle is a [Graph] of [Atom] vertices, each with an [AtomKind]
// (hydrogen, oxygen, nitrogen, carbon, or unspecified), connected by [Bond]
// edges whose integer order (0 through 3) the puzzle's solver must choose.
// A solution assigns an order to every bond such that each atom's incident
// bond orders sum to exactly its element's valence, and the set of bonds
// with a nonzero order forms a single connected graph spanning every atom.
//
// [LazySolver] finds solutions by handing a SAT encoding of the valence
// constraints to a gophersat solver and lazily adding connectivity-forcing
// clauses whenever a proposed assignment turns out to be disconnected,
// rather than encoding connectivity directly — the naive encoding is
// exponential in the number of atoms, while the number of lazily-discovered
// cuts needed in practice is small.
//
// [Generator] drives that solver through repeated small perturbations of a
// starting template's atom kinds, keeping any perturbation that leaves the
// puzzle solvable and stopping as soon as one leaves exactly one solution.
// [BatchGenerator] runs several such attempts concurrently and keeps
// whichever finishes first.
//
// [WritePuzzle] renders a solved graph back out as a character grid; the
// internal/puzzletext package parses that same grid format back into a
// [Graph], for the command line tool to bootstrap from a template file.
package hexbond
