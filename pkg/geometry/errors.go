package geometry

import "errors"

var (
	// ErrDegenerateGeometry is returned when points are collinear or coincident
	// and no unique plane or circle passes through them.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrInsufficientPoints is returned when a plane fit receives fewer than 3 points.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrInvalidPrimitive is returned when a primitive cannot be constructed from its defining points.
	ErrInvalidPrimitive = errors.New("invalid primitive")
)
