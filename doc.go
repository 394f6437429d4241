// Package boundset searches a Boolean function's truth table for a
// disjoint bound-set/free-set decomposition that minimizes column
// multiplicity, the number of distinct cofactors the function exhibits
// once a subset of its variables is held fixed.
//
// A function of n variables decomposes as F(X,Y) = G(H(X), Y) whenever
// holding X (the bound set) fixed produces few enough distinct cofactors
// over Y (the free set) to be captured by a small intermediate function H.
// This package finds the X/Y split, of a given bound-set size, that
// minimizes that cofactor count, optionally allowing bound-set variables
// to be shared back into the free set to save output rails.
//
// # Searching for a split
//
// FindBVarsSVars runs an exhaustive Chase-walk search over every
// bound-set choice of the given size, stepping between choices by single
// variable swaps, and is exact
// for bound-set sizes small enough to enumerate directly. FindBVarsSVars2
// falls back to a randomly sampled, iteratively refined search for larger
// problems, returning every split tied for the best result found.
//
// Both entry points report their result as a packed Result: the column
// multiplicity, the bound-set mask, and the shared-variable mask, encoded
// as described by Result's documentation.
package boundset
