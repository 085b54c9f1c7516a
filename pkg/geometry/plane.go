package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// degenerateEpsilon bounds the relative cross-product magnitude accepted as non-collinear
const degenerateEpsilon = 1e-10

// EstimatePlaneNormal returns a unit normal of the plane spanned by the points.
//
// It is a deterministic 3-point fit rather than least squares: the plane passes
// through points[0], the point farthest from it, and the point farthest from the
// line between those two. The first point encountered wins ties. The result is
// flipped so its Z component is not negative.
func EstimatePlaneNormal(points []r3.Vector) (r3.Vector, error) {
	if len(points) < 3 {
		return r3.Vector{}, fmt.Errorf("%w: plane fit needs 3 points, got %d", ErrInsufficientPoints, len(points))
	}

	origin := points[0]

	far := origin
	farDist := -1.0
	for _, p := range points[1:] {
		if d := SquaredDistance(p, origin); d > farDist {
			far = p
			farDist = d
		}
	}

	dir := far.Sub(origin)
	if farDist <= 0 {
		return r3.Vector{}, fmt.Errorf("%w: all %d points coincide", ErrDegenerateGeometry, len(points))
	}

	// |(p-origin) x dir| is proportional to the perpendicular distance from the line
	third := origin
	thirdDist := -1.0
	for _, p := range points[1:] {
		if d := p.Sub(origin).Cross(dir).Norm2(); d > thirdDist {
			third = p
			thirdDist = d
		}
	}

	normal := dir.Cross(third.Sub(origin))
	if normal.Norm() <= degenerateEpsilon*farDist {
		return r3.Vector{}, fmt.Errorf("%w: %d points are collinear", ErrDegenerateGeometry, len(points))
	}

	normal = normal.Normalize()
	if normal.Z < 0 {
		normal = normal.Mul(-1)
	}
	return normal, nil
}

// PlaneFit is a least-squares plane through a point set
type PlaneFit struct {
	Centroid r3.Vector // Mean of the points
	Normal   r3.Vector // Unit normal, Z component not negative
	Residual float64   // RMS distance of the points from the plane
}

// FitPlane fits a least-squares plane through the points using the eigenvector of
// the smallest covariance eigenvalue. Matching uses EstimatePlaneNormal; this is
// meant for planarity diagnostics.
func FitPlane(points []r3.Vector) (*PlaneFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: plane fit needs 3 points, got %d", ErrInsufficientPoints, len(points))
	}

	c := Centroid(points)
	n := float64(len(points))

	var cov [9]float64
	for _, p := range points {
		d := p.Sub(c)
		cov[0] += d.X * d.X
		cov[1] += d.X * d.Y
		cov[2] += d.X * d.Z
		cov[4] += d.Y * d.Y
		cov[5] += d.Y * d.Z
		cov[8] += d.Z * d.Z
	}
	cov[3], cov[6], cov[7] = cov[1], cov[2], cov[5]
	for i := range cov {
		cov[i] /= n
	}

	var eigen mat.EigenSym
	if ok := eigen.Factorize(mat.NewSymDense(3, cov[:]), true); !ok {
		return nil, fmt.Errorf("%w: covariance factorization failed", ErrDegenerateGeometry)
	}

	// Eigenvalues are ascending; column 0 is the normal direction.
	vals := eigen.Values(nil)
	if vals[1] <= degenerateEpsilon*vals[2] {
		return nil, fmt.Errorf("%w: %d points are collinear", ErrDegenerateGeometry, len(points))
	}

	var vecs mat.Dense
	eigen.VectorsTo(&vecs)

	normal := r3.Vector{X: vecs.At(0, 0), Y: vecs.At(1, 0), Z: vecs.At(2, 0)}.Normalize()
	if normal.Z < 0 {
		normal = normal.Mul(-1)
	}

	return &PlaneFit{
		Centroid: c,
		Normal:   normal,
		Residual: math.Sqrt(math.Max(vals[0], 0)),
	}, nil
}
