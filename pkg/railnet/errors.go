package railnet

import "errors"

var (
	// ErrDuplicateID is returned when an insert collides with an existing id.
	ErrDuplicateID = errors.New("railnet: duplicate id")

	// ErrUnknownEndpoint is returned when an edge references a node id
	// that is not part of the network.
	ErrUnknownEndpoint = errors.New("railnet: unknown endpoint")

	// ErrDanglingEdge is returned when removing a node would orphan an
	// incident edge.
	ErrDanglingEdge = errors.New("railnet: node has incident edges")

	// ErrInvalidEdge is returned for self-loops and non-positive
	// distance or speed values.
	ErrInvalidEdge = errors.New("railnet: invalid edge")

	// ErrNotFound is returned when a referenced node or edge does not exist.
	ErrNotFound = errors.New("railnet: not found")
)
