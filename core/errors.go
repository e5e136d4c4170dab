package core

import "errors"

// Sentinel errors shared across every package in this module. They realize
// the closed error taxonomy of the planning engine: programmer errors,
// resource errors, and search outcomes all reduce to one of these, wrapped
// with %w for context where useful.
var (
	// ErrNullPointer indicates a required argument was nil.
	ErrNullPointer = errors.New("wayfarer: null pointer")

	// ErrInvalidArgument indicates a caller-supplied value failed validation.
	ErrInvalidArgument = errors.New("wayfarer: invalid argument")

	// ErrOutOfMemory indicates an allocation could not be satisfied.
	ErrOutOfMemory = errors.New("wayfarer: out of memory")

	// ErrKeyNotFound indicates a lookup by key found no entry.
	ErrKeyNotFound = errors.New("wayfarer: key not found")

	// ErrTypeMismatch indicates a Value was read as the wrong variant.
	ErrTypeMismatch = errors.New("wayfarer: type mismatch")

	// ErrTimeout indicates a search exceeded its wall-clock budget.
	ErrTimeout = errors.New("wayfarer: timeout")

	// ErrNoPathFound indicates the open set emptied before the goal was reached.
	ErrNoPathFound = errors.New("wayfarer: no path found")
)
