package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/figure"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/philipparndt/gosigil/pkg/templates"
)

// SegmentInfo contains information about a drawn segment
type SegmentInfo struct {
	Index  int
	Start  r3.Vector
	End    r3.Vector
	Length float64
	Angle  float64
}

// CurveInfo describes the circle underlying a drawn arc or circle
type CurveInfo struct {
	Kind   string
	Index  int
	Center r3.Vector
	Radius float64
	Normal r3.Vector
}

// Report contains various measurements of a drawn figure
type Report struct {
	Name        string
	BoundingBox geometry.BoundingBox
	Dimensions  r3.Vector

	SegmentCount int
	ArcCount     int
	CircleCount  int

	TotalSegmentLength float64
	MinSegmentLength   float64
	MaxSegmentLength   float64
	AvgSegmentLength   float64
	Segments           []SegmentInfo
	Curves             []CurveInfo

	// Centroid of the defining points, as used for alignment
	Centroid r3.Vector
	// Normal as estimated for alignment; NormalErr is set when it could not be
	Normal    r3.Vector
	NormalErr error
	// Least-squares plane; Plane is nil when PlaneErr is set
	Plane    *geometry.PlaneFit
	PlaneErr error
}

// AnalyzeFigure performs comprehensive analysis on a drawn figure
func AnalyzeFigure(fig *figure.Figure) *Report {
	result := &Report{
		Name:         fig.Name,
		BoundingBox:  geometry.NewBoundingBox(),
		SegmentCount: len(fig.Segments),
		ArcCount:     len(fig.Arcs),
		CircleCount:  len(fig.Circles),
		Segments:     make([]SegmentInfo, 0, len(fig.Segments)),
	}

	points := fig.Points()
	for _, p := range points {
		result.BoundingBox.Extend(p)
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	for i, s := range fig.Segments {
		result.Segments = append(result.Segments, SegmentInfo{
			Index:  i,
			Start:  s.A(),
			End:    s.B(),
			Length: s.Length(),
			Angle:  s.Angle(),
		})

		result.TotalSegmentLength += s.Length()
		minLength = math.Min(minLength, s.Length())
		maxLength = math.Max(maxLength, s.Length())
	}
	if result.SegmentCount > 0 {
		result.MinSegmentLength = minLength
		result.MaxSegmentLength = maxLength
		result.AvgSegmentLength = result.TotalSegmentLength / float64(result.SegmentCount)
	}

	for i, a := range fig.Arcs {
		curve, err := geometry.CurveFrom3Points(a.End1(), a.Mid(), a.End2(), false)
		if err != nil {
			continue
		}
		result.Curves = append(result.Curves, CurveInfo{Kind: "arc", Index: i, Center: curve.Center, Radius: curve.Radius, Normal: curve.Normal})
	}
	for i, c := range fig.Circles {
		result.Curves = append(result.Curves, CurveInfo{Kind: "circle", Index: i, Center: c.Center(), Radius: c.Radius(), Normal: c.Normal()})
	}

	result.Centroid = geometry.Centroid(templates.DefiningPoints(fig.Segments, fig.Arcs, fig.Circles))
	result.Normal, result.NormalErr = geometry.EstimatePlaneNormal(points)
	result.Plane, result.PlaneErr = geometry.FitPlane(points)

	return result
}

// Planarity returns the plane residual relative to the figure's size: 0 for a
// flat drawing. It is NaN when no plane could be fitted.
func (r *Report) Planarity() float64 {
	if r.Plane == nil {
		return math.NaN()
	}
	diagonal := r.BoundingBox.Diagonal()
	if diagonal == 0 {
		return 0
	}
	return r.Plane.Residual / diagonal
}

// NormalDeviation returns the angle in radians between the alignment normal
// and the least-squares normal, ignoring their sign
func (r *Report) NormalDeviation() float64 {
	if r.NormalErr != nil || r.Plane == nil {
		return math.NaN()
	}
	cos := math.Min(math.Abs(r.Normal.Dot(r.Plane.Normal)), 1)
	return math.Acos(cos)
}

// FindSegmentsByLength finds all segments within a length range
func FindSegmentsByLength(result *Report, minLength, maxLength float64) []SegmentInfo {
	var segments []SegmentInfo
	for _, s := range result.Segments {
		if s.Length >= minLength && s.Length <= maxLength {
			segments = append(segments, s)
		}
	}
	return segments
}

// FindLongestSegments returns the N longest segments in the figure.
// A negative count returns none.
func FindLongestSegments(result *Report, count int) []SegmentInfo {
	segments := make([]SegmentInfo, len(result.Segments))
	copy(segments, result.Segments)

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Length > segments[j].Length
	})

	return segments[:min(max(count, 0), len(segments))]
}

// FindShortestSegments returns the N shortest segments in the figure.
// A negative count returns none.
func FindShortestSegments(result *Report, count int) []SegmentInfo {
	segments := make([]SegmentInfo, len(result.Segments))
	copy(segments, result.Segments)

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Length < segments[j].Length
	})

	return segments[:min(max(count, 0), len(segments))]
}

// FindNearestPoint finds the stored point in the figure nearest to a given point
func FindNearestPoint(fig *figure.Figure, point r3.Vector) (r3.Vector, float64) {
	var nearest r3.Vector
	minDistance := math.MaxFloat64

	for _, p := range fig.Points() {
		distance := point.Distance(p)
		if distance < minDistance {
			minDistance = distance
			nearest = p
		}
	}

	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatAngle formats radians as degrees
func FormatAngle(radians float64) string {
	return fmt.Sprintf("%.2f°", radians*180/math.Pi)
}
