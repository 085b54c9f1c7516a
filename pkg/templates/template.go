package templates

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/geometry"
)

// Definition describes a template in its canonical frame: the symbol lies in the
// XY plane and faces +Z. Position and size are free; New centers it.
type Definition struct {
	Name     string
	Family   Family
	Segments []geometry.Segment
	Arcs     []geometry.Arc
	Circles  []geometry.Circle
	MinScore float64    // Score a match must exceed to be accepted
	Color    color.RGBA // Presentation only
	AudioTag string     // Presentation only
}

// Template is a centered, immutable symbol definition.
// Accessors return copies so the geometry cannot be modified after construction.
type Template struct {
	name     string
	family   Family
	segments []geometry.Segment
	arcs     []geometry.Arc
	circles  []geometry.Circle
	minScore float64
	size     float64
	color    color.RGBA
	audioTag string
}

// New builds a template from a definition, moving the centroid of its defining
// points to the origin and computing its size.
//
// Defining points are both segment endpoints, all three arc points and each
// circle's center, weighted equally.
func New(def Definition) (*Template, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("template needs a name")
	}
	if len(def.Segments)+len(def.Arcs)+len(def.Circles) == 0 {
		return nil, fmt.Errorf("template %q has no primitives", def.Name)
	}

	offset := geometry.Centroid(DefiningPoints(def.Segments, def.Arcs, def.Circles)).Mul(-1)

	t := &Template{
		name:     def.Name,
		family:   def.Family,
		segments: make([]geometry.Segment, len(def.Segments)),
		arcs:     make([]geometry.Arc, len(def.Arcs)),
		circles:  make([]geometry.Circle, len(def.Circles)),
		minScore: def.MinScore,
		color:    def.Color,
		audioTag: def.AudioTag,
	}
	for i, s := range def.Segments {
		t.segments[i] = s.Translate(offset)
	}
	for i, a := range def.Arcs {
		t.arcs[i] = a.Translate(offset)
	}
	for i, c := range def.Circles {
		t.circles[i] = c.Translate(offset)
	}

	t.size = Size(t.segments, t.arcs, t.circles, r3.Vector{})
	if t.size == 0 {
		return nil, fmt.Errorf("template %q has zero size", def.Name)
	}
	return t, nil
}

// DefiningPoints lists the points used for centering and sizing: segment
// endpoints, arc points and circle centers, in that order.
func DefiningPoints(segments []geometry.Segment, arcs []geometry.Arc, circles []geometry.Circle) []r3.Vector {
	points := make([]r3.Vector, 0, 2*len(segments)+3*len(arcs)+len(circles))
	for _, s := range segments {
		points = append(points, s.A(), s.B())
	}
	for _, a := range arcs {
		points = append(points, a.Points()...)
	}
	for _, c := range circles {
		points = append(points, c.Center())
	}
	return points
}

// Size sums the distances of all defining points from origin plus every circle radius.
// It is a scale reference, not an RMS distance.
func Size(segments []geometry.Segment, arcs []geometry.Arc, circles []geometry.Circle, origin r3.Vector) float64 {
	var size float64
	for _, p := range DefiningPoints(segments, arcs, circles) {
		size += p.Distance(origin)
	}
	for _, c := range circles {
		size += c.Radius()
	}
	return size
}

func (t *Template) Name() string { return t.name }
func (t *Template) Family() Family { return t.family }
func (t *Template) MinScore() float64 { return t.minScore }
func (t *Template) Size() float64 { return t.size }
func (t *Template) Color() color.RGBA { return t.color }
func (t *Template) AudioTag() string { return t.audioTag }
func (t *Template) Segments() []geometry.Segment { return slices.Clone(t.segments) }
func (t *Template) Arcs() []geometry.Arc { return slices.Clone(t.arcs) }
func (t *Template) Circles() []geometry.Circle { return slices.Clone(t.circles) }

// Counts returns how many segments, arcs and circles a drawing needs to be compared
func (t *Template) Counts() (segments, arcs, circles int) {
	return len(t.segments), len(t.arcs), len(t.circles)
}

func (t *Template) String() string {
	return fmt.Sprintf("%s (%s: %d segments, %d arcs, %d circles)",
		t.name, t.family, len(t.segments), len(t.arcs), len(t.circles))
}
