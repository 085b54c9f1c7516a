package figure

import (
	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/geometry"
)

// Figure is a drawn gesture: fitted primitives in the order they were drawn
type Figure struct {
	Name     string
	Segments []geometry.Segment
	Arcs     []geometry.Arc
	Circles  []geometry.Circle
}

// NewFigure creates an empty figure
func NewFigure(name string) *Figure {
	return &Figure{Name: name}
}

func (f *Figure) AddSegment(s geometry.Segment) {
	f.Segments = append(f.Segments, s)
}

func (f *Figure) AddArc(a geometry.Arc) {
	f.Arcs = append(f.Arcs, a)
}

func (f *Figure) AddCircle(c geometry.Circle) {
	f.Circles = append(f.Circles, c)
}

// PrimitiveCount returns the number of primitives of all kinds
func (f *Figure) PrimitiveCount() int {
	return len(f.Segments) + len(f.Arcs) + len(f.Circles)
}

// Points returns every point stored in the figure: segment endpoints, arc
// points and circle guide points
func (f *Figure) Points() []r3.Vector {
	var points []r3.Vector
	for _, s := range f.Segments {
		points = append(points, s.Points()...)
	}
	for _, a := range f.Arcs {
		points = append(points, a.Points()...)
	}
	for _, c := range f.Circles {
		points = append(points, c.GuidePoints()...)
	}
	return points
}

// Transform returns a copy with every primitive rotated, scaled and moved
func (f *Figure) Transform(r geometry.Rotation, scale float64, offset r3.Vector) *Figure {
	out := NewFigure(f.Name)
	for _, s := range f.Segments {
		out.AddSegment(s.Rotate(r).ScaleAndTranslate(scale, offset))
	}
	for _, a := range f.Arcs {
		out.AddArc(a.Rotate(r).ScaleAndTranslate(scale, offset))
	}
	for _, c := range f.Circles {
		out.AddCircle(c.Rotate(r).ScaleAndTranslate(scale, offset))
	}
	return out
}
