package match

import (
	"math"

	"github.com/philipparndt/gosigil/pkg/geometry"
)

// RMSD returns the root-mean-square distance between template primitives and
// their nearest drawn primitive of the same kind.
//
// Segments and arcs may pair their endpoints in either order; the closer pairing
// is used. Circles compare center, radius and normal. The sum is divided by the
// template's point count (2 per segment, 3 per arc, 3 per circle). A template
// primitive with no drawn primitive of its kind makes the result +Inf.
func RMSD(
	drawnSegments []geometry.Segment, drawnArcs []geometry.Arc, drawnCircles []geometry.Circle,
	tmplSegments []geometry.Segment, tmplArcs []geometry.Arc, tmplCircles []geometry.Circle,
) float64 {
	count := 2*len(tmplSegments) + 3*len(tmplArcs) + 3*len(tmplCircles)
	if count == 0 {
		return 0
	}

	var sum float64
	for _, t := range tmplSegments {
		sum += nearest(t, drawnSegments, segmentDistance)
	}
	for _, t := range tmplArcs {
		sum += nearest(t, drawnArcs, arcDistance)
	}
	for _, t := range tmplCircles {
		sum += nearest(t, drawnCircles, circleDistance)
	}

	return math.Sqrt(sum / float64(count))
}

// nearest returns the smallest squared distance from t to any candidate
func nearest[T any](t T, candidates []T, distance func(T, T) float64) float64 {
	best := math.Inf(1)
	for _, c := range candidates {
		best = min(best, distance(t, c))
	}
	return best
}

func segmentDistance(t, d geometry.Segment) float64 {
	return min(
		geometry.SquaredDistance(t.A(), d.A())+geometry.SquaredDistance(t.B(), d.B()),
		geometry.SquaredDistance(t.A(), d.B())+geometry.SquaredDistance(t.B(), d.A()),
	)
}

// arcDistance never swaps the midpoint
func arcDistance(t, d geometry.Arc) float64 {
	mid := geometry.SquaredDistance(t.Mid(), d.Mid())
	return mid + min(
		geometry.SquaredDistance(t.End1(), d.End1())+geometry.SquaredDistance(t.End2(), d.End2()),
		geometry.SquaredDistance(t.End1(), d.End2())+geometry.SquaredDistance(t.End2(), d.End1()),
	)
}

func circleDistance(t, d geometry.Circle) float64 {
	dr := t.Radius() - d.Radius()
	return geometry.SquaredDistance(t.Center(), d.Center()) + dr*dr + geometry.SquaredDistance(t.Normal(), d.Normal())
}
