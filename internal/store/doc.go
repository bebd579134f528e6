// Package store provides the in-memory backing collections of the school.
//
// Memory implements the domain storage interfaces for classes, students and
// transactions. It owns the id counters, which start at 1 and only grow, and
// copies values on the way in and out so callers never share maps or slices
// with the stored state. All methods are concurrency-safe via internal locking.
// Nothing is written to disk; state ends with the process.
package store
