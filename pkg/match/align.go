package match

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/philipparndt/gosigil/pkg/templates"
)

var zAxis = r3.Vector{Z: 1}

// Alignment is a copy of a template's geometry rotated, scaled and translated
// onto a drawn figure
type Alignment struct {
	Segments []geometry.Segment
	Arcs     []geometry.Arc
	Circles  []geometry.Circle
	Centroid r3.Vector // Centroid of the drawn defining points
	Normal   r3.Vector // Estimated plane normal of the drawing
	Scale    float64   // Drawn size divided by template size
}

// Align maps the template onto the drawn primitives.
//
// The template's +Z normal is rotated onto the drawing's estimated plane normal,
// then scaled by the ratio of the two size sums and moved to the drawing's
// centroid. Both size sums include circle radii as well as point distances.
// In-plane rotation is not searched and reflections are never applied.
func Align(segments []geometry.Segment, arcs []geometry.Arc, circles []geometry.Circle, tmpl *templates.Template) (*Alignment, error) {
	centroid := geometry.Centroid(templates.DefiningPoints(segments, arcs, circles))

	normal, err := geometry.EstimatePlaneNormal(planePoints(segments, arcs, circles))
	if err != nil {
		return nil, fmt.Errorf("aligning %s: %w", tmpl.Name(), err)
	}

	rotation := geometry.RotationBetween(zAxis, normal)
	scale := templates.Size(segments, arcs, circles, centroid) / tmpl.Size()

	a := &Alignment{
		Segments: tmpl.Segments(),
		Arcs:     tmpl.Arcs(),
		Circles:  tmpl.Circles(),
		Centroid: centroid,
		Normal:   normal,
		Scale:    scale,
	}
	for i, s := range a.Segments {
		a.Segments[i] = s.Rotate(rotation).ScaleAndTranslate(scale, centroid)
	}
	for i, arc := range a.Arcs {
		a.Arcs[i] = arc.Rotate(rotation).ScaleAndTranslate(scale, centroid)
	}
	for i, c := range a.Circles {
		a.Circles[i] = c.Rotate(rotation).ScaleAndTranslate(scale, centroid)
	}

	return a, nil
}

// planePoints lists the points used to estimate the drawing's plane. Unlike the
// defining points, circles contribute their three guide points.
func planePoints(segments []geometry.Segment, arcs []geometry.Arc, circles []geometry.Circle) []r3.Vector {
	points := make([]r3.Vector, 0, 2*len(segments)+3*len(arcs)+3*len(circles))
	for _, s := range segments {
		points = append(points, s.Points()...)
	}
	for _, a := range arcs {
		points = append(points, a.Points()...)
	}
	for _, c := range circles {
		points = append(points, c.GuidePoints()...)
	}
	return points
}
