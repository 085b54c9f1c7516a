package geometry

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Pt is a shorthand constructor for a 3D point
func Pt(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Centroid returns the mean of the points, or the origin for an empty slice
func Centroid(points []r3.Vector) r3.Vector {
	var sum r3.Vector
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

// SquaredDistance returns |a-b|^2
func SquaredDistance(a, b r3.Vector) float64 {
	return a.Sub(b).Norm2()
}

// FormatPoint formats a 3D point
func FormatPoint(v r3.Vector) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
