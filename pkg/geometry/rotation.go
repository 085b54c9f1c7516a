package geometry

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// axisEpsilon is the rotation axis length below which two directions are treated as parallel.
const axisEpsilon = 1e-9

// Rotation is a proper rotation in 3D stored as a row-major 3x3 matrix.
// The zero value is the identity.
type Rotation struct {
	m *mat.Dense
}

// IdentityRotation returns the rotation that leaves every vector unchanged
func IdentityRotation() Rotation {
	return Rotation{m: mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// AxisAngle returns the right-handed rotation by angle radians about axis.
// The axis does not need to be normalized.
func AxisAngle(axis r3.Vector, angle float64) Rotation {
	k := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c

	// Rodrigues: R = cI + s[k]x + t kk^T
	return Rotation{m: mat.NewDense(3, 3, []float64{
		t*k.X*k.X + c, t*k.X*k.Y - s*k.Z, t*k.X*k.Z + s*k.Y,
		t*k.X*k.Y + s*k.Z, t*k.Y*k.Y + c, t*k.Y*k.Z - s*k.X,
		t*k.X*k.Z - s*k.Y, t*k.Y*k.Z + s*k.X, t*k.Z*k.Z + c,
	})}
}

// RotationBetween returns the shortest rotation taking direction from onto direction to.
// Parallel directions give the identity; opposite directions give a half turn about
// an axis perpendicular to from.
func RotationBetween(from, to r3.Vector) Rotation {
	f := from.Normalize()
	t := to.Normalize()

	axis := f.Cross(t)
	if axis.Norm() < axisEpsilon {
		if f.Dot(t) >= 0 {
			return IdentityRotation()
		}
		return AxisAngle(f.Ortho(), math.Pi)
	}

	return AxisAngle(axis, float64(f.Angle(t)))
}

// Apply rotates v
func (r Rotation) Apply(v r3.Vector) r3.Vector {
	if r.m == nil {
		return v
	}
	var out mat.VecDense
	out.MulVec(r.m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// ApplyAll rotates every point and returns the results in a new slice
func (r Rotation) ApplyAll(points []r3.Vector) []r3.Vector {
	out := make([]r3.Vector, len(points))
	for i, p := range points {
		out[i] = r.Apply(p)
	}
	return out
}

// Inverse returns the rotation undoing r (its transpose)
func (r Rotation) Inverse() Rotation {
	if r.m == nil {
		return r
	}
	var t mat.Dense
	t.CloneFrom(r.m.T())
	return Rotation{m: &t}
}

// IsIdentity reports whether r leaves every vector unchanged within tol
func (r Rotation) IsIdentity(tol float64) bool {
	if r.m == nil {
		return true
	}
	return mat.EqualApprox(r.m, IdentityRotation().m, tol)
}
