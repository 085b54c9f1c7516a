package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/philipparndt/gosigil/pkg/templates"
	"github.com/spf13/cobra"
)

var templatesFamily string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in symbol templates",
	Long:  "List every template in library order, which is also the order used to break ties while matching.",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesCmd.Flags().StringVarP(&templatesFamily, "family", "f", "", "Only list templates of this family (glyph, brimstone)")
}

func runTemplates(cmd *cobra.Command, args []string) error {
	library := templates.Library()

	list := library.All()
	if templatesFamily != "" {
		family, err := templates.ParseFamily(templatesFamily)
		if err != nil {
			return err
		}
		list = library.ByFamily(family)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFAMILY\tSEGMENTS\tARCS\tCIRCLES\tMIN SCORE\tSIZE\tCOLOR\tAUDIO")
	for _, t := range list {
		segments, arcs, circles := t.Counts()
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.1f\t%.3f\t%s\t%s\n",
			t.Name(), t.Family(), segments, arcs, circles, t.MinScore(), t.Size(), formatColor(t), orDash(t.AudioTag()))
	}
	return w.Flush()
}

func formatColor(t *templates.Template) string {
	c := t.Color()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
