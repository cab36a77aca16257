// Package kernel contains shared value objects used by every domain model:
// entity identifiers and the schedule time window. Value objects here are
// immutable, validated on construction, and safe for concurrent use.
package kernel
