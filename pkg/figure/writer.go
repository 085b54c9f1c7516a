package figure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"gopkg.in/yaml.v3"
)

// Encode writes the figure in the given format.
// Arcs are stored as end, middle, end and circles as their guide points.
func Encode(w io.Writer, fig *Figure, format Format) error {
	switch format {
	case FormatText:
		return writeText(w, fig)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(fig))
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(fig)); err != nil {
			return err
		}
		return enc.Close()
	}
}

// Save writes the figure to a file, choosing the format by extension
func Save(filename string, fig *Figure) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, fig, DetectFormat(filename, nil)); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return file.Close()
}

func newDocument(fig *Figure) *document {
	doc := &document{Name: fig.Name}
	for _, s := range fig.Segments {
		doc.Segments = append(doc.Segments, fromPoints(s.Points()))
	}
	for _, a := range fig.Arcs {
		doc.Arcs = append(doc.Arcs, fromPoints(a.Points()))
	}
	for _, c := range fig.Circles {
		doc.Circles = append(doc.Circles, fromPoints(c.GuidePoints()))
	}
	return doc
}

func fromPoints(points []r3.Vector) [][]float64 {
	raw := make([][]float64, len(points))
	for i, p := range points {
		raw[i] = []float64{p.X, p.Y, p.Z}
	}
	return raw
}

func writeText(w io.Writer, fig *Figure) error {
	bw := bufio.NewWriter(w)
	if fig.Name != "" {
		fmt.Fprintf(bw, "figure %s\n", fig.Name)
	}
	for _, s := range fig.Segments {
		fmt.Fprintf(bw, "segment %s\n", formatCoordinates(s.Points()))
	}
	for _, a := range fig.Arcs {
		fmt.Fprintf(bw, "arc %s\n", formatCoordinates(a.Points()))
	}
	for _, c := range fig.Circles {
		fmt.Fprintf(bw, "circle %s\n", formatCoordinates(c.GuidePoints()))
	}
	return bw.Flush()
}

func formatCoordinates(points []r3.Vector) string {
	fields := make([]string, 0, 3*len(points))
	for _, p := range points {
		for _, v := range []float64{p.X, p.Y, p.Z} {
			fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return strings.Join(fields, " ")
}
