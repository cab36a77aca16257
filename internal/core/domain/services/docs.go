// Package services contains stateless domain services that coordinate logic
// across aggregates without owning persistent state of their own. The
// ResourceReconciler computes delta-based reservation updates between an
// order's old and new material line sets.
package services
