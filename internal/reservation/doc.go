// Package reservation implements the room reservation engine: the room
// registry, the append-only reservation ledger with its overlap check, and
// the recommendation search that proposes shifted stays when a room is taken.
//
// Stays are half-open day intervals. Two stays conflict exactly when
// Overlaps reports true; booking and recommendation share that predicate.
package reservation
