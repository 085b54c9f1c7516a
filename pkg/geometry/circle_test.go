package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// pointOnCircle returns center + radius*(cos(a)*u + sin(a)*v)
func pointOnCircle(center, u, v r3.Vector, radius, a float64) r3.Vector {
	return center.Add(u.Mul(radius * math.Cos(a))).Add(v.Mul(radius * math.Sin(a)))
}

// planeBasis returns two orthonormal vectors spanning the plane with the given normal
func planeBasis(normal r3.Vector) (r3.Vector, r3.Vector) {
	n := normal.Normalize()
	u := n.Ortho()
	return u, n.Cross(u)
}

func TestCircumcircle2D(t *testing.T) {
	center, radius, err := Circumcircle2D(r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1}, r2.Point{X: -1, Y: 0})
	if err != nil {
		t.Fatalf("Circumcircle2D failed: %v", err)
	}

	if math.Abs(center.X) > 1e-12 || math.Abs(center.Y) > 1e-12 {
		t.Errorf("Center failed: expected (0, 0), got %v", center)
	}
	if math.Abs(radius-1) > 1e-12 {
		t.Errorf("Radius failed: expected 1, got %v", radius)
	}
}

func TestCircumcircle2DCollinear(t *testing.T) {
	_, _, err := Circumcircle2D(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2})
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestCurveFrom3PointsDegenerate(t *testing.T) {
	cases := map[string][3]r3.Vector{
		"collinear":  {Pt(0, 0, 0), Pt(1, 1, 1), Pt(2, 2, 2)},
		"coincident": {Pt(1, 2, 3), Pt(1, 2, 3), Pt(4, 5, 6)},
	}

	for name, p := range cases {
		if _, err := CurveFrom3Points(p[0], p[1], p[2], false); !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%s: expected ErrDegenerateGeometry, got %v", name, err)
		}
		if _, err := CircleFrom3Points(p[0], p[1], p[2]); !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%s: circle expected ErrDegenerateGeometry, got %v", name, err)
		}
	}
}

func TestCircleFrom3PointsSmallUnits(t *testing.T) {
	center := Pt(2e-5, -1e-5, 3e-5)
	radius := 1e-5
	u, v := planeBasis(Pt(0.3, 0.4, 1))

	fit, err := CircleFrom3Points(
		pointOnCircle(center, u, v, radius, 0.2),
		pointOnCircle(center, u, v, radius, 1.9),
		pointOnCircle(center, u, v, radius, 4.1),
	)
	if err != nil {
		t.Fatalf("CircleFrom3Points failed: %v", err)
	}
	if fit.Circle.Center().Distance(center) > 1e-15 {
		t.Errorf("Center failed: expected %v, got %v", center, fit.Circle.Center())
	}
	if math.Abs(fit.Circle.Radius()-radius) > 1e-15 {
		t.Errorf("Radius failed: expected %v, got %v", radius, fit.Circle.Radius())
	}

	_, r, err := Circumcircle2D(r2.Point{X: 1e-6, Y: 0}, r2.Point{X: 0, Y: 1e-6}, r2.Point{X: -1e-6, Y: 0})
	if err != nil {
		t.Fatalf("Circumcircle2D failed: %v", err)
	}
	if math.Abs(r-1e-6) > 1e-18 {
		t.Errorf("Radius failed: expected 1e-6, got %v", r)
	}
}

func TestArcFrom3PointsEndpoints(t *testing.T) {
	triples := [][3]r3.Vector{
		{Pt(1, 0, 0), Pt(0, 1, 0), Pt(-1, 0, 0)},
		{Pt(-1, 0, 0), Pt(0, 1, 0), Pt(1, 0, 0)}, // clockwise seen from +Z
		{Pt(0, 0, 0), Pt(1, 2, 3), Pt(4, -1, 2)},
		{Pt(0.1, 0.2, 0.3), Pt(0.15, 0.28, 0.31), Pt(0.22, 0.3, 0.36)},
		{Pt(5, 5, 5), Pt(5, 6, 5.5), Pt(5, 5.5, 7)},
		{Pt(2, 0, 1), Pt(0, 0, 3), Pt(-2, 0, 1)}, // vertical plane
	}

	for i, p := range triples {
		fit, err := ArcFrom3Points(p[0], p[1], p[2])
		if err != nil {
			t.Fatalf("triple %d: ArcFrom3Points failed: %v", i, err)
		}

		first := fit.Points[0]
		last := fit.Points[len(fit.Points)-1]
		if first.Distance(p[0]) > 1e-4 {
			t.Errorf("triple %d: first sample failed: expected %v, got %v", i, p[0], first)
		}
		if last.Distance(p[2]) > 1e-4 {
			t.Errorf("triple %d: last sample failed: expected %v, got %v", i, p[2], last)
		}
		if fit.Arc.End1() != p[0] || fit.Arc.End2() != p[2] {
			t.Errorf("triple %d: arc ends failed: got %v", i, fit.Arc)
		}
		if d := fit.Arc.Mid().Distance(fit.Center); math.Abs(d-fit.Radius) > 1e-3 {
			t.Errorf("triple %d: midpoint should lie near the circle: distance %v, radius %v", i, d, fit.Radius)
		}
		if fit.EndAngle < fit.StartAngle {
			t.Errorf("triple %d: angles must increase: start %v, end %v", i, fit.StartAngle, fit.EndAngle)
		}
	}
}

func TestArcPassesThroughMiddlePoint(t *testing.T) {
	// Going counterclockwise from p1 to p3 must pass p2, whatever the winding
	p1, p2, p3 := Pt(-1, 0, 0), Pt(0, -1, 0), Pt(1, 0, 0)

	fit, err := ArcFrom3Points(p1, p2, p3)
	if err != nil {
		t.Fatalf("ArcFrom3Points failed: %v", err)
	}

	if d := fit.Arc.Mid().Distance(p2); d > 1e-3 {
		t.Errorf("Midpoint failed: expected near %v, got %v", p2, fit.Arc.Mid())
	}
	if math.Abs(fit.EndAngle-fit.StartAngle-math.Pi) > 1e-9 {
		t.Errorf("Sweep failed: expected pi, got %v", fit.EndAngle-fit.StartAngle)
	}
}

func TestCircleFrom3PointsKnownCircle(t *testing.T) {
	center := Pt(1, 2, 3)
	radius := 2.5
	normal := Pt(1, -2, 0.5).Normalize()
	u, v := planeBasis(normal)

	fit, err := CircleFrom3Points(
		pointOnCircle(center, u, v, radius, 0.3),
		pointOnCircle(center, u, v, radius, 2.1),
		pointOnCircle(center, u, v, radius, 4.4),
	)
	if err != nil {
		t.Fatalf("CircleFrom3Points failed: %v", err)
	}

	c := fit.Circle
	if c.Center().Distance(center) > 1e-9 {
		t.Errorf("Center failed: expected %v, got %v", center, c.Center())
	}
	if math.Abs(c.Radius()-radius) > 1e-9 {
		t.Errorf("Radius failed: expected %v, got %v", radius, c.Radius())
	}
	if c.Normal().Distance(CanonicalNormal(normal)) > 1e-9 {
		t.Errorf("Normal failed: expected %v, got %v", CanonicalNormal(normal), c.Normal())
	}

	for _, p := range fit.Points {
		if d := p.Distance(center); math.Abs(d-radius) > 1e-9 {
			t.Fatalf("sample %v off circle: distance %v", p, d)
		}
	}
}

func TestCircleNormalCanonicalSign(t *testing.T) {
	// Clockwise seen from +Z, so the raw plane normal points down
	c, err := NewCircle(Pt(0, 1, 2), Pt(1, 0, 2), Pt(0, -1, 2))
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}

	expected := Pt(0, 0, 1)
	if c.Normal().Distance(expected) > 1e-12 {
		t.Errorf("Normal failed: expected %v, got %v", expected, c.Normal())
	}
	if c.Center().Distance(Pt(0, 0, 2)) > 1e-12 {
		t.Errorf("Center failed: expected (0, 0, 2), got %v", c.Center())
	}
}

func TestCircleSampleSpacing(t *testing.T) {
	fit, err := CircleFrom3Points(Pt(1, 0, 0), Pt(0, 1, 0), Pt(-1, 0, 0))
	if err != nil {
		t.Fatalf("CircleFrom3Points failed: %v", err)
	}

	expected := int(math.Round((2*math.Pi - fullCircleGap) / SampleSpacing))
	if len(fit.Points) != expected {
		t.Errorf("Sample count failed: expected %d, got %d", expected, len(fit.Points))
	}

	gap := fit.Points[1].Distance(fit.Points[0])
	if math.Abs(gap-SampleSpacing) > 1e-4 {
		t.Errorf("Spacing failed: expected ~%v, got %v", SampleSpacing, gap)
	}
}

func TestShortArcHasMinimumSamples(t *testing.T) {
	fit, err := ArcFrom3Points(Pt(1, 0, 0), Pt(math.Cos(0.01), math.Sin(0.01), 0), Pt(math.Cos(0.02), math.Sin(0.02), 0))
	if err != nil {
		t.Fatalf("ArcFrom3Points failed: %v", err)
	}

	if len(fit.Points) != minSamples {
		t.Errorf("Sample count failed: expected %d, got %d", minSamples, len(fit.Points))
	}
}

func TestFitCircleToSamples(t *testing.T) {
	center := Pt(0, 0, 1)
	u, v := planeBasis(Pt(0, 1, 1))

	var samples []r3.Vector
	for i := 0; i <= 20; i++ {
		samples = append(samples, pointOnCircle(center, u, v, 3, float64(i)*0.1))
	}

	fit, err := FitCircleToSamples(samples, false)
	if err != nil {
		t.Fatalf("FitCircleToSamples failed: %v", err)
	}

	if math.Abs(fit.Radius-3) > 1e-9 {
		t.Errorf("Radius failed: expected 3, got %v", fit.Radius)
	}
	if fit.StdDev > 1e-9 {
		t.Errorf("StdDev failed: expected ~0, got %v", fit.StdDev)
	}

	if _, err := FitCircleToSamples(samples[:2], false); !errors.Is(err, ErrInsufficientPoints) {
		t.Errorf("expected ErrInsufficientPoints, got %v", err)
	}
}
