package main

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/figure"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/philipparndt/gosigil/pkg/templates"
	"github.com/spf13/cobra"
)

var (
	sampleOutput string
	sampleFormat string
	sampleScale  float64
	sampleAxis   []float64
	sampleAngle  float64
	sampleOffset []float64
)

var sampleCmd = &cobra.Command{
	Use:   "sample [template]",
	Short: "Write a template as a figure file",
	Long: `Write a built-in template as a drawn figure, optionally rotated about an axis,
scaled and moved. The result can be fed back into match, which makes it handy
for trying out how much tilt the matcher tolerates.`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "Output file (format from extension); stdout if empty")
	sampleCmd.Flags().StringVar(&sampleFormat, "format", "yaml", "Format for stdout: yaml, json or text")
	sampleCmd.Flags().Float64Var(&sampleScale, "scale", 1, "Uniform scale factor")
	sampleCmd.Flags().Float64SliceVar(&sampleAxis, "axis", []float64{1, 0, 0}, "Rotation axis x,y,z")
	sampleCmd.Flags().Float64Var(&sampleAngle, "angle", 0, "Rotation angle in degrees")
	sampleCmd.Flags().Float64SliceVar(&sampleOffset, "offset", []float64{0, 0, 0}, "Translation x,y,z")
}

func runSample(cmd *cobra.Command, args []string) error {
	tmpl, ok := templates.Library().Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown template %q", args[0])
	}

	axis, err := vectorFlag("axis", sampleAxis)
	if err != nil {
		return err
	}
	offset, err := vectorFlag("offset", sampleOffset)
	if err != nil {
		return err
	}
	if sampleScale == 0 {
		return fmt.Errorf("scale must not be zero")
	}

	rotation := geometry.IdentityRotation()
	if sampleAngle != 0 {
		if axis.Norm() == 0 {
			return fmt.Errorf("rotation axis must not be zero")
		}
		rotation = geometry.AxisAngle(axis, sampleAngle*math.Pi/180)
	}

	fig := &figure.Figure{
		Name:     tmpl.Name(),
		Segments: tmpl.Segments(),
		Arcs:     tmpl.Arcs(),
		Circles:  tmpl.Circles(),
	}
	fig = fig.Transform(rotation, sampleScale, offset)

	if sampleOutput != "" {
		if err := figure.Save(sampleOutput, fig); err != nil {
			return err
		}
		log.V(1).Info("wrote figure", "template", tmpl.Name(), "file", sampleOutput)
		return nil
	}

	format, err := figure.ParseFormat(sampleFormat)
	if err != nil {
		return err
	}
	return figure.Encode(cmd.OutOrStdout(), fig, format)
}

func vectorFlag(name string, values []float64) (r3.Vector, error) {
	if len(values) != 3 {
		return r3.Vector{}, fmt.Errorf("--%s needs 3 values, got %d", name, len(values))
	}
	return r3.Vector{X: values[0], Y: values[1], Z: values[2]}, nil
}
