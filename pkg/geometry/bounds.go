package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// BoundingBox is an axis aligned box. Start from NewBoundingBox, not the zero value.
type BoundingBox struct {
	Min r3.Vector
	Max r3.Vector
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: r3.Vector{X: inf, Y: inf, Z: inf},
		Max: r3.Vector{X: -inf, Y: -inf, Z: -inf},
	}
}

// Extend grows the box to contain p
func (b *BoundingBox) Extend(p r3.Vector) {
	b.Min = minComponents(b.Min, p)
	b.Max = maxComponents(b.Max, p)
}

// IsEmpty reports whether no point was added
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the extent along each axis
func (b BoundingBox) Size() r3.Vector {
	if b.IsEmpty() {
		return r3.Vector{}
	}
	return b.Max.Sub(b.Min)
}

func (b BoundingBox) Center() r3.Vector {
	if b.IsEmpty() {
		return r3.Vector{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Norm()
}

func minComponents(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxComponents(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
