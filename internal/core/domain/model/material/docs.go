// Package material contains the StockEntry aggregate and the StockMovement
// entity that together form the material stock ledger.
//
// The movement log is the source of truth: every change to a stock entry's
// available quantity produces exactly one signed StockMovement, so the
// cached level is always reconstructible by summing movements. Available
// quantity is never negative; a reservation that would make it negative
// fails with a ConflictError before any mutation.
package material
