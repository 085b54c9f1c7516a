package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

const (
	// SampleSpacing is the target distance between consecutive generated curve points
	SampleSpacing = 0.02

	minSamples = 3
	maxSamples = 1 << 16

	// fullCircleGap keeps the last sample of a full circle from landing on the first
	fullCircleGap = 1e-3

	// planeTolerance is the allowed height disagreement after rotating onto the XY plane
	planeTolerance = 1e-6

	// collinearEpsilon bounds the cross product relative to the product of the edge lengths
	collinearEpsilon = 1e-10
)

var zAxis = r3.Vector{Z: 1}

// Curve is a circular arc (or full circle) through three points, densely sampled
type Curve struct {
	Points     []r3.Vector // Samples from the first point counterclockwise to the last
	Center     r3.Vector   // Circle center in 3D
	StartAngle float64     // Polar angle of the first point in the circle's plane frame
	EndAngle   float64     // Polar angle of the last sample, always >= StartAngle
	Radius     float64     // Circle radius
	Normal     r3.Vector   // Unit plane normal (p2-p1)x(p3-p1), sign not canonicalized
}

// Circumcircle2D returns the center and radius of the circle through three 2D points.
//
// Uses the 3-point determinant formula:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func Circumcircle2D(p1, p2, p3 r2.Point) (r2.Point, float64, error) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	D := 2.0 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(D) <= 2*collinearEpsilon*p2.Sub(p1).Norm()*p3.Sub(p1).Norm() {
		return r2.Point{}, 0, fmt.Errorf("%w: points are collinear", ErrDegenerateGeometry)
	}

	x1sq := x1*x1 + y1*y1
	x2sq := x2*x2 + y2*y2
	x3sq := x3*x3 + y3*y3

	center := r2.Point{
		X: (x1sq*(y2-y3) + x2sq*(y3-y1) + x3sq*(y1-y2)) / D,
		Y: (x1sq*(x3-x2) + x2sq*(x1-x3) + x3sq*(x2-x1)) / D,
	}

	return center, p1.Sub(center).Norm(), nil
}

// CurveFrom3Points computes the circle through p1, p2 and p3 and samples it from p1
// counterclockwise (seen from the plane normal) to p3, or all the way round when
// fullCircle is set.
//
// The points are rotated so their plane normal maps onto +Z, solved in 2D and the
// samples are rotated back into the original frame.
func CurveFrom3Points(p1, p2, p3 r3.Vector, fullCircle bool) (*Curve, error) {
	// Step 1: Plane through the points
	cross := p2.Sub(p1).Cross(p3.Sub(p1))
	if cross.Norm() <= collinearEpsilon*p2.Sub(p1).Norm()*p3.Sub(p1).Norm() {
		return nil, fmt.Errorf("%w: no plane through %s, %s, %s",
			ErrDegenerateGeometry, FormatPoint(p1), FormatPoint(p2), FormatPoint(p3))
	}
	normal := cross.Normalize()

	// Step 2: Rotate the plane onto XY
	toPlane := RotationBetween(normal, zAxis)
	q1, q2, q3 := toPlane.Apply(p1), toPlane.Apply(p2), toPlane.Apply(p3)

	height := (q1.Z + q2.Z + q3.Z) / 3
	if math.Abs(q1.Z-q2.Z) > planeTolerance || math.Abs(q1.Z-q3.Z) > planeTolerance {
		log.Info("rotated points disagree on plane height", "z1", q1.Z, "z2", q2.Z, "z3", q3.Z)
	}

	// Step 3: Solve in 2D
	c, radius, err := Circumcircle2D(r2.Point{X: q1.X, Y: q1.Y}, r2.Point{X: q2.X, Y: q2.Y}, r2.Point{X: q3.X, Y: q3.Y})
	if err != nil {
		return nil, err
	}

	// Step 4: Sweep counterclockwise from p1
	start := math.Atan2(q1.Y-c.Y, q1.X-c.X)
	var end float64
	if fullCircle {
		end = start + 2*math.Pi - fullCircleGap
	} else {
		end = math.Atan2(q3.Y-c.Y, q3.X-c.X)
		for end < start {
			end += 2 * math.Pi
		}
	}

	count := int(math.Round((end - start) * radius / SampleSpacing))
	count = max(minSamples, min(count, maxSamples))

	// Step 5: Sample and rotate back
	fromPlane := toPlane.Inverse()
	step := (end - start) / float64(count-1)
	points := make([]r3.Vector, count)
	for i := range points {
		a := start + float64(i)*step
		points[i] = fromPlane.Apply(r3.Vector{
			X: c.X + radius*math.Cos(a),
			Y: c.Y + radius*math.Sin(a),
			Z: height,
		})
	}

	return &Curve{
		Points:     points,
		Center:     fromPlane.Apply(r3.Vector{X: c.X, Y: c.Y, Z: height}),
		StartAngle: start,
		EndAngle:   end,
		Radius:     radius,
		Normal:     normal,
	}, nil
}

// ArcFit is an Arc together with the curve it was derived from
type ArcFit struct {
	Arc Arc
	Curve
}

// ArcFrom3Points fits the arc starting at p1, passing p2 and ending at p3.
// The Arc's midpoint is the middle sample of the curve, not necessarily p2.
func ArcFrom3Points(p1, p2, p3 r3.Vector) (*ArcFit, error) {
	curve, err := CurveFrom3Points(p1, p2, p3, false)
	if err != nil {
		return nil, err
	}

	arc, err := NewArc(p1, middleSample(curve.Points), p3)
	if err != nil {
		return nil, err
	}

	return &ArcFit{Arc: arc, Curve: *curve}, nil
}

// middleSample returns the central sample, or the mean of the two central samples
// for an even count
func middleSample(points []r3.Vector) r3.Vector {
	n := len(points)
	if n%2 == 1 {
		return points[n/2]
	}
	return points[n/2-1].Add(points[n/2]).Mul(0.5)
}

// CircleFit is a Circle together with its sampled outline
type CircleFit struct {
	Circle Circle
	Curve
}

// CircleFrom3Points fits the full circle through three guide points
func CircleFrom3Points(p1, p2, p3 r3.Vector) (*CircleFit, error) {
	curve, err := CurveFrom3Points(p1, p2, p3, true)
	if err != nil {
		return nil, err
	}

	circle := Circle{
		p1:     p1,
		p2:     p2,
		p3:     p3,
		center: curve.Center,
		normal: CanonicalNormal(curve.Normal),
		radius: curve.Radius,
	}
	return &CircleFit{Circle: circle, Curve: *curve}, nil
}

// NewCircle returns the circle through three guide points
func NewCircle(p1, p2, p3 r3.Vector) (Circle, error) {
	fit, err := CircleFrom3Points(p1, p2, p3)
	if err != nil {
		return Circle{}, err
	}
	return fit.Circle, nil
}

// SampledFit is a circle fitted to a dense point sample
type SampledFit struct {
	Curve
	StdDev float64 // RMS deviation of the samples from the fitted radius
}

// FitCircleToSamples fits a circle to a sampled stroke.
// Uses the first, middle and last points to get good coverage of the arc and
// reports how far the remaining samples stray from it.
func FitCircleToSamples(points []r3.Vector, fullCircle bool) (*SampledFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 points to fit a circle, got %d", ErrInsufficientPoints, len(points))
	}

	curve, err := CurveFrom3Points(points[0], points[len(points)/2], points[len(points)-1], fullCircle)
	if err != nil {
		return nil, err
	}

	// Distance from the circle: in-plane offset from the radius plus out-of-plane offset
	var sumError float64
	for _, p := range points {
		d := p.Sub(curve.Center)
		h := d.Dot(curve.Normal)
		inPlane := math.Sqrt(math.Max(d.Norm2()-h*h, 0)) - curve.Radius
		sumError += inPlane*inPlane + h*h
	}

	return &SampledFit{
		Curve:  *curve,
		StdDev: math.Sqrt(sumError / float64(len(points))),
	}, nil
}
