// Package serviceorder contains the ServiceOrder aggregate: a scheduled
// moving job derived from a signed contract, together with its value objects
// (order number, addresses, crew assignments, material reservation lines, and
// pre/post service checklists).
//
// The aggregate owns the order lifecycle state machine:
//
//	Scheduled ──> InProgress ──> Completed
//	    │             │
//	    └──> Cancelled <──┘
//
// Completed and Cancelled are terminal; no transition leaves either state.
// Resource side effects of transitions (returning reserved stock, releasing
// the vehicle) are orchestrated by the application layer; the aggregate only
// guards legality of the transitions and the completion checklist gate.
package serviceorder
