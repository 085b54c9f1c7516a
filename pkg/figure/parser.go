package figure

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// document is the YAML/JSON layout of a figure file. Every stroke is a list
// of [x, y, z] points.
type document struct {
	Name     string        `yaml:"name,omitempty" json:"name,omitempty"`
	Segments [][][]float64 `yaml:"segments,omitempty" json:"segments,omitempty"`
	Arcs     [][][]float64 `yaml:"arcs,omitempty" json:"arcs,omitempty"`
	Circles  [][][]float64 `yaml:"circles,omitempty" json:"circles,omitempty"`
}

// Parse reads a figure file.
// The format is chosen by extension, or detected from the content.
func Parse(filename string) (*Figure, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	fig, err := Decode(data, DetectFormat(filename, data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return fig, nil
}

// Decode parses figure data in the given format
func Decode(data []byte, format Format) (*Figure, error) {
	switch format {
	case FormatText:
		return parseText(bytes.NewReader(data))
	case FormatJSON:
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing figure JSON: %w", err)
		}
		return doc.figure()
	default:
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing figure YAML: %w", err)
		}
		return doc.figure()
	}
}

func (d *document) figure() (*Figure, error) {
	fig := NewFigure(d.Name)

	for i, raw := range d.Segments {
		points, err := toPoints(raw)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if err := fig.addStroke("segment", points); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}
	for i, raw := range d.Arcs {
		points, err := toPoints(raw)
		if err != nil {
			return nil, fmt.Errorf("arc %d: %w", i, err)
		}
		if err := fig.addStroke("arc", points); err != nil {
			return nil, fmt.Errorf("arc %d: %w", i, err)
		}
	}
	for i, raw := range d.Circles {
		points, err := toPoints(raw)
		if err != nil {
			return nil, fmt.Errorf("circle %d: %w", i, err)
		}
		if err := fig.addStroke("circle", points); err != nil {
			return nil, fmt.Errorf("circle %d: %w", i, err)
		}
	}

	return fig, nil
}

func toPoints(raw [][]float64) ([]r3.Vector, error) {
	points := make([]r3.Vector, len(raw))
	for i, p := range raw {
		if len(p) != 3 {
			return nil, fmt.Errorf("point %d: expected 3 coordinates, got %d", i, len(p))
		}
		points[i] = r3.Vector{X: p[0], Y: p[1], Z: p[2]}
	}
	return points, nil
}

// parseText parses the line based format:
//
//	figure <name>
//	segment x1 y1 z1 x2 y2 z2
//	arc x1 y1 z1 x2 y2 z2 x3 y3 z3 [...]
//	circle x1 y1 z1 x2 y2 z2 x3 y3 z3 [...]
//
// Blank lines and lines starting with # are ignored.
func parseText(reader io.Reader) (*Figure, error) {
	scanner := bufio.NewScanner(reader)
	fig := NewFigure("")

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "figure":
			fig.Name = strings.Join(fields[1:], " ")

		case "segment", "arc", "circle":
			points, err := parseCoordinates(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if err := fig.addStroke(fields[0], points); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}

		default:
			return nil, fmt.Errorf("line %d: unknown keyword %q", lineNo, fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading figure text: %w", err)
	}

	return fig, nil
}

func parseCoordinates(fields []string) ([]r3.Vector, error) {
	if len(fields)%3 != 0 {
		return nil, fmt.Errorf("expected a multiple of 3 coordinates, got %d", len(fields))
	}

	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", field, err)
		}
		values[i] = v
	}

	points := make([]r3.Vector, 0, len(values)/3)
	for i := 0; i < len(values); i += 3 {
		points = append(points, r3.Vector{X: values[i], Y: values[i+1], Z: values[i+2]})
	}
	return points, nil
}

// addStroke fits a primitive to the stroke's points and appends it.
// Arcs and circles with more than 3 points are fitted through the first,
// middle and last point.
func (f *Figure) addStroke(kind string, points []r3.Vector) error {
	switch kind {
	case "segment":
		if len(points) != 2 {
			return fmt.Errorf("%w: a segment needs 2 points, got %d", geometry.ErrInvalidPrimitive, len(points))
		}
		f.AddSegment(geometry.NewSegment(points[0], points[1]))

	case "arc":
		if len(points) < 3 {
			return fmt.Errorf("%w: an arc needs at least 3 points, got %d", geometry.ErrInsufficientPoints, len(points))
		}
		first, mid, last := spread(points)
		fit, err := geometry.ArcFrom3Points(first, mid, last)
		if err != nil {
			return err
		}
		logResidual("arc", points, false)
		f.AddArc(fit.Arc)

	case "circle":
		if len(points) < 3 {
			return fmt.Errorf("%w: a circle needs at least 3 points, got %d", geometry.ErrInsufficientPoints, len(points))
		}
		first, mid, last := spread(points)
		c, err := geometry.NewCircle(first, mid, last)
		if err != nil {
			return err
		}
		logResidual("circle", points, true)
		f.AddCircle(c)
	}
	return nil
}

func spread(points []r3.Vector) (first, mid, last r3.Vector) {
	return points[0], points[len(points)/2], points[len(points)-1]
}

// logResidual reports how well a densely sampled stroke fits its circle
func logResidual(kind string, points []r3.Vector, fullCircle bool) {
	if len(points) <= 3 || !log.V(1).Enabled() {
		return
	}
	fit, err := geometry.FitCircleToSamples(points, fullCircle)
	if err != nil {
		return
	}
	log.V(1).Info("fitted stroke", "kind", kind, "points", len(points), "radius", fit.Radius, "stddev", fit.StdDev)
}
