package templates

import (
	"image/color"
	"math"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/geometry"
)

// builtinDefinitions returns the compiled-in symbols. Order matters: it is the
// tie-break when two templates score the same.
//
// No template is a subset of another with the same stroke kinds in drawing order,
// otherwise the smaller one would match the trailing strokes of the larger equally well.
func builtinDefinitions() []Definition {
	star := regularPolygon(5, 1, 90)
	up := regularPolygon(3, 1, 90)
	down := regularPolygon(3, 1, 270)

	return []Definition{
		{
			Name:     "pentagram",
			Family:   FamilyGlyph,
			Segments: closedPath(star[0], star[2], star[4], star[1], star[3]),
			MinScore: 5,
			Color:    color.RGBA{R: 0xd9, G: 0x2b, B: 0x2b, A: 0xff},
			AudioTag: "pentagram",
		},
		{
			Name:     "triangle-fire",
			Family:   FamilyBrimstone,
			Segments: closedPath(up...),
			MinScore: 6,
			Color:    color.RGBA{R: 0xff, G: 0x6a, B: 0x00, A: 0xff},
			AudioTag: "brimstone_fire",
		},
		{
			Name:     "triangle-water",
			Family:   FamilyBrimstone,
			Segments: closedPath(down...),
			MinScore: 6,
			Color:    color.RGBA{R: 0x1e, G: 0x6f, B: 0xd9, A: 0xff},
			AudioTag: "brimstone_water",
		},
		{
			Name:     "triangle-air",
			Family:   FamilyBrimstone,
			Segments: append(closedPath(up...), bar(0.25, 0.6)),
			MinScore: 6,
			Color:    color.RGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff},
			AudioTag: "brimstone_air",
		},
		{
			Name:     "triangle-earth",
			Family:   FamilyBrimstone,
			Segments: append(closedPath(down...), bar(-0.25, 0.6)),
			MinScore: 6,
			Color:    color.RGBA{R: 0x3d, G: 0x8b, B: 0x37, A: 0xff},
			AudioTag: "brimstone_earth",
		},
		{
			Name:     "square",
			Family:   FamilyGlyph,
			Segments: closedPath(regularPolygon(4, 1, 45)...),
			MinScore: 6,
			Color:    color.RGBA{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
			AudioTag: "square",
		},
		{
			Name:   "crescent",
			Family: FamilyGlyph,
			Arcs: []geometry.Arc{
				mustArc(geometry.Pt(0, 1, 0), geometry.Pt(-1, 0, 0), geometry.Pt(0, -1, 0)),
				mustArc(geometry.Pt(0, 1, 0), geometry.Pt(-0.4, 0, 0), geometry.Pt(0, -1, 0)),
			},
			MinScore: 5,
			Color:    color.RGBA{R: 0xbd, G: 0xc3, B: 0xc7, A: 0xff},
			AudioTag: "crescent",
		},
		{
			Name:   "eye",
			Family: FamilyGlyph,
			Arcs: []geometry.Arc{
				mustArc(geometry.Pt(-1, 0, 0), geometry.Pt(0, 0.5, 0), geometry.Pt(1, 0, 0)),
				mustArc(geometry.Pt(-1, 0, 0), geometry.Pt(0, -0.5, 0), geometry.Pt(1, 0, 0)),
			},
			Circles:  []geometry.Circle{mustCircle(geometry.Pt(0.3, 0, 0), geometry.Pt(0, 0.3, 0), geometry.Pt(-0.3, 0, 0))},
			MinScore: 5,
			Color:    color.RGBA{R: 0x16, G: 0xa0, B: 0x85, A: 0xff},
			AudioTag: "eye",
		},
		{
			Name:     "sun",
			Family:   FamilyGlyph,
			Segments: rays(4, 0.7, 1.1),
			Circles:  []geometry.Circle{mustCircle(regularPolygon(3, 0.5, 90)...)},
			MinScore: 5,
			Color:    color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff},
			AudioTag: "sun",
		},
	}
}

// regularPolygon returns n vertices on a circle of the given radius in the XY
// plane, counterclockwise from startDeg
func regularPolygon(n int, radius, startDeg float64) []r3.Vector {
	vertices := make([]r3.Vector, n)
	for i := range vertices {
		a := (startDeg + float64(i)*360/float64(n)) * math.Pi / 180
		vertices[i] = geometry.Pt(radius*math.Cos(a), radius*math.Sin(a), 0)
	}
	return vertices
}

// closedPath connects the vertices in order and back to the first
func closedPath(vertices ...r3.Vector) []geometry.Segment {
	segments := make([]geometry.Segment, len(vertices))
	for i, v := range vertices {
		segments[i] = geometry.NewSegment(v, vertices[(i+1)%len(vertices)])
	}
	return segments
}

// rays are n radial strokes from inner to outer radius, starting along +X
func rays(n int, inner, outer float64) []geometry.Segment {
	from := regularPolygon(n, inner, 0)
	to := regularPolygon(n, outer, 0)
	segments := make([]geometry.Segment, n)
	for i := range segments {
		segments[i] = geometry.NewSegment(from[i], to[i])
	}
	return segments
}

// bar is a horizontal stroke at height y reaching halfWidth to either side
func bar(y, halfWidth float64) geometry.Segment {
	return geometry.NewSegment(geometry.Pt(-halfWidth, y, 0), geometry.Pt(halfWidth, y, 0))
}

func mustArc(p1, p2, p3 r3.Vector) geometry.Arc {
	fit, err := geometry.ArcFrom3Points(p1, p2, p3)
	if err != nil {
		panic(err)
	}
	return fit.Arc
}

func mustCircle(guides ...r3.Vector) geometry.Circle {
	c, err := geometry.NewCircle(guides[0], guides[1], guides[2])
	if err != nil {
		panic(err)
	}
	return c
}
