package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// distinctEpsilon is the minimum separation for two arc points to count as distinct
const distinctEpsilon = 1e-12

// Segment is a straight stroke between two endpoints.
// Derived attributes are computed once by NewSegment.
type Segment struct {
	a, b   r3.Vector
	center r3.Vector
	length float64
	angle  float64
}

// NewSegment creates a segment from a to b
func NewSegment(a, b r3.Vector) Segment {
	return Segment{
		a:      a,
		b:      b,
		center: a.Add(b).Mul(0.5),
		length: a.Distance(b),
		angle:  segmentAngle(a, b),
	}
}

// segmentAngle is the X-Y heading of b-a folded into (-pi/2, pi/2]
func segmentAngle(a, b r3.Vector) float64 {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	for angle <= -math.Pi/2 {
		angle += math.Pi
	}
	for angle > math.Pi/2 {
		angle -= math.Pi
	}
	return angle
}

func (s Segment) A() r3.Vector { return s.a }
func (s Segment) B() r3.Vector { return s.b }
func (s Segment) Center() r3.Vector { return s.center }
func (s Segment) Length() float64 { return s.length }

// Angle is the heading of the segment projected onto its local X-Y plane,
// in (-pi/2, pi/2]. It is only comparable between segments that share a plane.
func (s Segment) Angle() float64 { return s.angle }

// Points returns the two endpoints
func (s Segment) Points() []r3.Vector {
	return []r3.Vector{s.a, s.b}
}

// WithEndpoints returns a segment with replaced endpoints
func (s Segment) WithEndpoints(a, b r3.Vector) Segment {
	return NewSegment(a, b)
}

// Translate returns the segment moved by offset
func (s Segment) Translate(offset r3.Vector) Segment {
	return NewSegment(s.a.Add(offset), s.b.Add(offset))
}

// Rotate returns the segment rotated about the origin
func (s Segment) Rotate(r Rotation) Segment {
	return NewSegment(r.Apply(s.a), r.Apply(s.b))
}

// ScaleAndTranslate scales the endpoints about the origin, then moves them by offset
func (s Segment) ScaleAndTranslate(scale float64, offset r3.Vector) Segment {
	return NewSegment(s.a.Mul(scale).Add(offset), s.b.Mul(scale).Add(offset))
}

func (s Segment) String() string {
	return fmt.Sprintf("Segment{%s -> %s}", FormatPoint(s.a), FormatPoint(s.b))
}

// Arc is a circular stroke sampled at both ends and its middle.
// Center and radius are not stored; ArcFrom3Points derives them.
type Arc struct {
	end1, mid, end2 r3.Vector
}

// NewArc creates an arc through end1, mid and end2, which must be pairwise distinct
func NewArc(end1, mid, end2 r3.Vector) (Arc, error) {
	if SquaredDistance(end1, mid) <= distinctEpsilon ||
		SquaredDistance(mid, end2) <= distinctEpsilon ||
		SquaredDistance(end1, end2) <= distinctEpsilon {
		return Arc{}, fmt.Errorf("%w: arc points must be distinct: %s, %s, %s",
			ErrInvalidPrimitive, FormatPoint(end1), FormatPoint(mid), FormatPoint(end2))
	}
	return Arc{end1: end1, mid: mid, end2: end2}, nil
}

func (a Arc) End1() r3.Vector { return a.end1 }
func (a Arc) Mid() r3.Vector { return a.mid }
func (a Arc) End2() r3.Vector { return a.end2 }

// Points returns end1, mid and end2
func (a Arc) Points() []r3.Vector {
	return []r3.Vector{a.end1, a.mid, a.end2}
}

// Translate returns the arc moved by offset
func (a Arc) Translate(offset r3.Vector) Arc {
	return Arc{end1: a.end1.Add(offset), mid: a.mid.Add(offset), end2: a.end2.Add(offset)}
}

// Rotate returns the arc rotated about the origin
func (a Arc) Rotate(r Rotation) Arc {
	return Arc{end1: r.Apply(a.end1), mid: r.Apply(a.mid), end2: r.Apply(a.end2)}
}

// ScaleAndTranslate scales the points about the origin, then moves them by offset
func (a Arc) ScaleAndTranslate(scale float64, offset r3.Vector) Arc {
	return Arc{
		end1: a.end1.Mul(scale).Add(offset),
		mid:  a.mid.Mul(scale).Add(offset),
		end2: a.end2.Mul(scale).Add(offset),
	}
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc{%s, %s, %s}", FormatPoint(a.end1), FormatPoint(a.mid), FormatPoint(a.end2))
}

// Circle is a full circle with the three guide points that generated it.
// Use CircleFrom3Points to construct one.
type Circle struct {
	p1, p2, p3 r3.Vector
	center     r3.Vector
	normal     r3.Vector
	radius     float64
}

func (c Circle) P1() r3.Vector { return c.p1 }
func (c Circle) P2() r3.Vector { return c.p2 }
func (c Circle) P3() r3.Vector { return c.p3 }
func (c Circle) Center() r3.Vector { return c.center }
func (c Circle) Radius() float64 { return c.radius }

// Normal is the unit plane normal with canonical sign (see CanonicalNormal)
func (c Circle) Normal() r3.Vector { return c.normal }

// GuidePoints returns the three points the circle was built from
func (c Circle) GuidePoints() []r3.Vector {
	return []r3.Vector{c.p1, c.p2, c.p3}
}

// Translate returns the circle moved by offset
func (c Circle) Translate(offset r3.Vector) Circle {
	return c.ScaleAndTranslate(1, offset)
}

// Rotate returns the circle rotated about the origin
func (c Circle) Rotate(r Rotation) Circle {
	return Circle{
		p1:     r.Apply(c.p1),
		p2:     r.Apply(c.p2),
		p3:     r.Apply(c.p3),
		center: r.Apply(c.center),
		normal: CanonicalNormal(r.Apply(c.normal)),
		radius: c.radius,
	}
}

// ScaleAndTranslate scales radius, guide points and center about the origin,
// then moves the points and center by offset. The normal is unchanged.
func (c Circle) ScaleAndTranslate(scale float64, offset r3.Vector) Circle {
	return Circle{
		p1:     c.p1.Mul(scale).Add(offset),
		p2:     c.p2.Mul(scale).Add(offset),
		p3:     c.p3.Mul(scale).Add(offset),
		center: c.center.Mul(scale).Add(offset),
		normal: c.normal,
		radius: c.radius * math.Abs(scale),
	}
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{center %s, radius %.6f, normal %s}",
		FormatPoint(c.center), c.radius, FormatPoint(c.normal))
}

// CanonicalNormal normalizes n and picks the sign with positive Z; if Z is zero,
// positive Y; if Y is also zero, positive X.
func CanonicalNormal(n r3.Vector) r3.Vector {
	n = n.Normalize()
	switch {
	case n.Z != 0:
		if n.Z < 0 {
			return n.Mul(-1)
		}
	case n.Y != 0:
		if n.Y < 0 {
			return n.Mul(-1)
		}
	case n.X < 0:
		return n.Mul(-1)
	}
	return n
}
