// Package grouping reconstructs which files of an import batch belong to
// the same creative project, using only filename and category heuristics.
//
// The algorithm is three greedy passes over a per-run processed set: DAW
// session files anchor groups first and pull in similarly named files of
// any category; remaining masters and stems cluster by canonical base name;
// everything left becomes a standalone group. The passes are deliberately
// order-sensitive — reordering the input can change the output — and that
// determinism-given-order is part of the contract, not a defect. All run
// state lives in a per-call context value, so concurrent batches never
// interfere.
package grouping
