package main

import (
	"fmt"

	"github.com/philipparndt/gosigil/pkg/analysis"
	"github.com/philipparndt/gosigil/pkg/figure"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two 3D points and between the
stored figure points nearest to them.`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")

	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	fig, err := figure.Parse(args[0])
	if err != nil {
		return err
	}

	p1 := geometry.Pt(point1X, point1Y, point1Z)
	p2 := geometry.Pt(point2X, point2Y, point2Z)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Point-to-Point Measurement")
	fmt.Fprintln(out, "==========================")

	nearest1, dist1 := analysis.FindNearestPoint(fig, p1)
	nearest2, dist2 := analysis.FindNearestPoint(fig, p2)

	fmt.Fprintf(out, "\nPoint 1: %s\n", geometry.FormatPoint(p1))
	if dist1 > 0 {
		fmt.Fprintf(out, "  Nearest figure point: %s (distance: %.6f)\n", geometry.FormatPoint(nearest1), dist1)
	}

	fmt.Fprintf(out, "\nPoint 2: %s\n", geometry.FormatPoint(p2))
	if dist2 > 0 {
		fmt.Fprintf(out, "  Nearest figure point: %s (distance: %.6f)\n", geometry.FormatPoint(nearest2), dist2)
	}

	fmt.Fprintf(out, "\nDirect distance: %.6f units\n", p1.Distance(p2))
	if dist1 > 0 || dist2 > 0 {
		fmt.Fprintf(out, "Distance between nearest figure points: %.6f units\n", nearest1.Distance(nearest2))
	}
	return nil
}
