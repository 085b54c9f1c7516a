package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/spf13/cobra"
)

var fitSamples bool

var fitCmd = &cobra.Command{
	Use:   "fit arc|circle x1 y1 z1 x2 y2 z2 x3 y3 z3",
	Short: "Fit an arc or circle through three points",
	Long: `Run the curve solver on three 3D points and print the fitted center, radius,
plane normal, angular range and sample count. An arc starts at the first point,
passes the second and ends at the third. Flags must come before the curve kind
so negative coordinates are not read as flags.`,
	Args:      cobra.ExactArgs(10),
	ValidArgs: []string{"arc", "circle"},
	RunE:      runFit,
}

func init() {
	rootCmd.AddCommand(fitCmd)

	fitCmd.Flags().SetInterspersed(false)
	fitCmd.Flags().BoolVarP(&fitSamples, "samples", "s", false, "Print every sample point")
}

func runFit(cmd *cobra.Command, args []string) error {
	kind := args[0]
	points, err := parsePoints(args[1:])
	if err != nil {
		return err
	}

	var curve *geometry.Curve
	var primitive fmt.Stringer
	switch kind {
	case "arc":
		fit, err := geometry.ArcFrom3Points(points[0], points[1], points[2])
		if err != nil {
			return err
		}
		curve, primitive = &fit.Curve, fit.Arc
	case "circle":
		fit, err := geometry.CircleFrom3Points(points[0], points[1], points[2])
		if err != nil {
			return err
		}
		curve, primitive = &fit.Curve, fit.Circle
	default:
		return fmt.Errorf("unknown curve kind %q, expected arc or circle", kind)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", primitive)
	fmt.Fprintf(out, "Center: %s\n", geometry.FormatPoint(curve.Center))
	fmt.Fprintf(out, "Radius: %.6f\n", curve.Radius)
	fmt.Fprintf(out, "Normal: %s\n", geometry.FormatPoint(curve.Normal))
	fmt.Fprintf(out, "Start angle: %.6f rad (%.2f°)\n", curve.StartAngle, curve.StartAngle*180/math.Pi)
	fmt.Fprintf(out, "End angle: %.6f rad (%.2f°)\n", curve.EndAngle, curve.EndAngle*180/math.Pi)
	fmt.Fprintf(out, "Samples: %d\n", len(curve.Points))
	if fitSamples {
		for i, p := range curve.Points {
			fmt.Fprintf(out, "  %4d %s\n", i, geometry.FormatPoint(p))
		}
	}
	return nil
}

// parsePoints parses x y z triples from command line arguments
func parsePoints(args []string) ([]r3.Vector, error) {
	if len(args)%3 != 0 {
		return nil, fmt.Errorf("expected x y z triples, got %d values", len(args))
	}

	points := make([]r3.Vector, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		var v [3]float64
		for j := range v {
			f, err := strconv.ParseFloat(args[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid coordinate %q: %w", args[i+j], err)
			}
			v[j] = f
		}
		points = append(points, r3.Vector{X: v[0], Y: v[1], Z: v[2]})
	}
	return points, nil
}

func coordinates(v r3.Vector) []float64 {
	return []float64{v.X, v.Y, v.Z}
}
