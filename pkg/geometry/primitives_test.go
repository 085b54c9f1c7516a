package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestSegmentDerived(t *testing.T) {
	s := NewSegment(Pt(0, 0, 0), Pt(3, 4, 0))

	if math.Abs(s.Length()-5) > 1e-12 {
		t.Errorf("Length failed: expected 5, got %v", s.Length())
	}
	if s.Center() != Pt(1.5, 2, 0) {
		t.Errorf("Center failed: expected (1.5, 2, 0), got %v", s.Center())
	}
	if math.Abs(s.Angle()-math.Atan2(4, 3)) > 1e-12 {
		t.Errorf("Angle failed: expected %v, got %v", math.Atan2(4, 3), s.Angle())
	}
}

func TestSegmentAngleRange(t *testing.T) {
	cases := []struct {
		dx, dy   float64
		expected float64
	}{
		{1, 0, 0},
		{-1, 0, 0},
		{0, 1, math.Pi / 2},
		{0, -1, math.Pi / 2},
		{-1, -1, math.Pi / 4},
		{-1, 1, -math.Pi / 4},
	}

	for _, c := range cases {
		s := NewSegment(Pt(1, 1, 1), Pt(1+c.dx, 1+c.dy, 1))
		if math.Abs(s.Angle()-c.expected) > 1e-12 {
			t.Errorf("Angle(%v, %v) failed: expected %v, got %v", c.dx, c.dy, c.expected, s.Angle())
		}
		// Reversing a segment does not change its angle
		r := NewSegment(s.B(), s.A())
		if math.Abs(r.Angle()-s.Angle()) > 1e-12 {
			t.Errorf("reversed Angle(%v, %v) failed: expected %v, got %v", c.dx, c.dy, s.Angle(), r.Angle())
		}
	}
}

func TestSegmentWithEndpoints(t *testing.T) {
	s := NewSegment(Pt(0, 0, 0), Pt(1, 0, 0))
	moved := s.WithEndpoints(Pt(0, 0, 0), Pt(0, 2, 0))

	if s.Length() != 1 {
		t.Errorf("original segment changed: length %v", s.Length())
	}
	if moved.Length() != 2 || moved.Center() != Pt(0, 1, 0) {
		t.Errorf("WithEndpoints failed: got %v", moved)
	}
}

func TestNewArcRequiresDistinctPoints(t *testing.T) {
	if _, err := NewArc(Pt(0, 0, 0), Pt(0, 0, 0), Pt(1, 0, 0)); !errors.Is(err, ErrInvalidPrimitive) {
		t.Errorf("expected ErrInvalidPrimitive, got %v", err)
	}
	if _, err := NewArc(Pt(0, 0, 0), Pt(1, 1, 0), Pt(0, 0, 0)); !errors.Is(err, ErrInvalidPrimitive) {
		t.Errorf("expected ErrInvalidPrimitive, got %v", err)
	}

	arc, err := NewArc(Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 0, 0))
	if err != nil {
		t.Fatalf("NewArc failed: %v", err)
	}
	if len(arc.Points()) != 3 || arc.Mid() != Pt(1, 1, 0) {
		t.Errorf("Points failed: got %v", arc.Points())
	}
}

func TestCircleScaleAndTranslate(t *testing.T) {
	c, err := NewCircle(Pt(1, 0, 0), Pt(0, 1, 0), Pt(-1, 0, 0))
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}

	moved := c.ScaleAndTranslate(2, Pt(10, 0, 0))

	if math.Abs(moved.Radius()-2) > 1e-12 {
		t.Errorf("Radius failed: expected 2, got %v", moved.Radius())
	}
	if moved.Center().Distance(Pt(10, 0, 0)) > 1e-12 {
		t.Errorf("Center failed: expected (10, 0, 0), got %v", moved.Center())
	}
	if moved.P2().Distance(Pt(10, 2, 0)) > 1e-12 {
		t.Errorf("P2 failed: expected (10, 2, 0), got %v", moved.P2())
	}
	if moved.Normal() != c.Normal() {
		t.Errorf("Normal changed: expected %v, got %v", c.Normal(), moved.Normal())
	}
}

func TestCircleRotate(t *testing.T) {
	c, err := NewCircle(Pt(1, 0, 0), Pt(0, 1, 0), Pt(-1, 0, 0))
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}

	rotated := c.Rotate(AxisAngle(Pt(1, 0, 0), math.Pi/3))
	expected := Pt(0, -math.Sin(math.Pi/3), math.Cos(math.Pi/3))
	if rotated.Normal().Distance(expected) > 1e-12 {
		t.Errorf("Normal failed: expected %v, got %v", expected, rotated.Normal())
	}
	if rotated.Radius() != c.Radius() {
		t.Errorf("Radius changed: expected %v, got %v", c.Radius(), rotated.Radius())
	}
}

func TestCanonicalNormal(t *testing.T) {
	cases := []struct {
		in, expected [3]float64
	}{
		{[3]float64{0, 0, -2}, [3]float64{0, 0, 1}},
		{[3]float64{1, 1, -1}, [3]float64{-1 / math.Sqrt(3), -1 / math.Sqrt(3), 1 / math.Sqrt(3)}},
		{[3]float64{0, -1, 0}, [3]float64{0, 1, 0}},
		{[3]float64{3, -4, 0}, [3]float64{-0.6, 0.8, 0}},
		{[3]float64{-1, 0, 0}, [3]float64{1, 0, 0}},
	}

	for _, c := range cases {
		result := CanonicalNormal(Pt(c.in[0], c.in[1], c.in[2]))
		expected := Pt(c.expected[0], c.expected[1], c.expected[2])
		if result.Distance(expected) > 1e-12 {
			t.Errorf("CanonicalNormal(%v) failed: expected %v, got %v", c.in, expected, result)
		}
	}
}
