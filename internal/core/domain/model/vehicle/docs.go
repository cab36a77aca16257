// Package vehicle contains the Vehicle aggregate of the fleet: an exclusively
// allocatable resource. A vehicle is InUse for at most one non-terminal
// service order at a time; the persistence layer enforces this with a
// compare-and-set on the status column, serializing concurrent allocation
// attempts without a separate lock manager.
package vehicle
