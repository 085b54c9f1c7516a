package main

import (
	"fmt"
	"io"

	"github.com/philipparndt/gosigil/pkg/analysis"
	"github.com/philipparndt/gosigil/pkg/figure"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	inspectCount     int
	inspectLongest   bool
	inspectShortest  bool
	inspectMinLength float64
	inspectMaxLength float64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Display information about a drawn figure",
	Long: `Show primitive counts, bounding box, segment statistics, fitted curves and how
flat the drawing is. The estimated normal is the one used for alignment; the
least-squares plane is reported for comparison.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVarP(&inspectCount, "count", "n", 10, "Number of segments to display")
	inspectCmd.Flags().BoolVarP(&inspectLongest, "longest", "l", false, "List the longest segments")
	inspectCmd.Flags().BoolVarP(&inspectShortest, "shortest", "s", false, "List the shortest segments")
	inspectCmd.Flags().Float64Var(&inspectMinLength, "min", 0.0, "Minimum segment length filter")
	inspectCmd.Flags().Float64Var(&inspectMaxLength, "max", 0.0, "Maximum segment length filter")
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := args[0]
	if inspectCount < 0 {
		return fmt.Errorf("invalid count %d: must not be negative", inspectCount)
	}

	fig, err := figure.Parse(filename)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeFigure(fig)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Figure Information")
	fmt.Fprintln(out, "==================")
	if fig.Name != "" {
		fmt.Fprintf(out, "Name: %s\n", fig.Name)
	}
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Primitives:")
	fmt.Fprintf(out, "  Segments: %d\n", result.SegmentCount)
	fmt.Fprintf(out, "  Arcs: %d\n", result.ArcCount)
	fmt.Fprintf(out, "  Circles: %d\n\n", result.CircleCount)

	if !result.BoundingBox.IsEmpty() {
		fmt.Fprintln(out, "Bounding Box:")
		fmt.Fprintf(out, "  Min: %s\n", geometry.FormatPoint(result.BoundingBox.Min))
		fmt.Fprintf(out, "  Max: %s\n", geometry.FormatPoint(result.BoundingBox.Max))
		fmt.Fprintf(out, "  Size: %s\n", geometry.FormatPoint(result.Dimensions))
		fmt.Fprintf(out, "  Diagonal: %s\n\n", analysis.FormatMeasurement(result.BoundingBox.Diagonal(), ""))
	}

	fmt.Fprintln(out, "Plane:")
	fmt.Fprintf(out, "  Centroid: %s\n", geometry.FormatPoint(result.Centroid))
	if result.NormalErr != nil {
		fmt.Fprintf(out, "  Normal: unavailable (%v)\n", result.NormalErr)
	} else {
		fmt.Fprintf(out, "  Normal: %s\n", geometry.FormatPoint(result.Normal))
	}
	if result.PlaneErr != nil {
		fmt.Fprintf(out, "  Least-squares fit: unavailable (%v)\n\n", result.PlaneErr)
	} else {
		fmt.Fprintf(out, "  Least-squares normal: %s\n", geometry.FormatPoint(result.Plane.Normal))
		fmt.Fprintf(out, "  Residual: %s (%.4f%% of diagonal)\n", analysis.FormatMeasurement(result.Plane.Residual, ""), 100*result.Planarity())
		if result.NormalErr == nil {
			fmt.Fprintf(out, "  Normal deviation: %s\n", analysis.FormatAngle(result.NormalDeviation()))
		}
		fmt.Fprintln(out)
	}

	if result.SegmentCount > 0 {
		fmt.Fprintln(out, "Segment Lengths:")
		fmt.Fprintf(out, "  Total: %s\n", analysis.FormatMeasurement(result.TotalSegmentLength, ""))
		fmt.Fprintf(out, "  Minimum: %s\n", analysis.FormatMeasurement(result.MinSegmentLength, ""))
		fmt.Fprintf(out, "  Maximum: %s\n", analysis.FormatMeasurement(result.MaxSegmentLength, ""))
		fmt.Fprintf(out, "  Average: %s\n\n", analysis.FormatMeasurement(result.AvgSegmentLength, ""))
		writeSegments(out, result)
	}

	if len(result.Curves) > 0 {
		fmt.Fprintln(out, "Curves:")
		for _, c := range result.Curves {
			fmt.Fprintf(out, "  %s %d: center %s, radius %.6f, normal %s\n",
				c.Kind, c.Index+1, geometry.FormatPoint(c.Center), c.Radius, geometry.FormatPoint(c.Normal))
		}
	}

	return nil
}

func writeSegments(out io.Writer, result *analysis.Report) {
	var segments []analysis.SegmentInfo
	var title string

	if inspectLongest {
		segments = analysis.FindLongestSegments(result, inspectCount)
		title = fmt.Sprintf("Top %d Longest Segments", len(segments))
	} else if inspectShortest {
		segments = analysis.FindShortestSegments(result, inspectCount)
		title = fmt.Sprintf("Top %d Shortest Segments", len(segments))
	} else if inspectMaxLength > 0 {
		segments = analysis.FindSegmentsByLength(result, inspectMinLength, inspectMaxLength)
		title = fmt.Sprintf("Segments between %.6f and %.6f units (found %d)", inspectMinLength, inspectMaxLength, len(segments))
		segments = segments[:min(inspectCount, len(segments))]
	} else {
		segments = result.Segments
		title = fmt.Sprintf("Segments (showing %d of %d)", min(inspectCount, len(segments)), len(segments))
		segments = segments[:min(inspectCount, len(segments))]
	}

	fmt.Fprintln(out, title)
	for _, s := range segments {
		fmt.Fprintf(out, "  #%d %s -> %s  length %.6f  angle %s\n",
			s.Index+1, geometry.FormatPoint(s.Start), geometry.FormatPoint(s.End), s.Length, analysis.FormatAngle(s.Angle))
	}
	fmt.Fprintln(out)
}
