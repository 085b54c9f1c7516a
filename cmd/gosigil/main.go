package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/philipparndt/gosigil/internal/config"
	"github.com/philipparndt/gosigil/internal/logging"
	"github.com/philipparndt/gosigil/pkg/figure"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/philipparndt/gosigil/version"
	"github.com/spf13/cobra"
)

var (
	verbosity  int
	configPath string

	cfg = config.Default()
	log = logr.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "gosigil",
	Short: "Recognize hand-drawn 3D gesture figures",
	Long: `gosigil matches drawn 3D figures made of segments, arcs and circles against
a library of planar symbol templates. Matching ignores position, size and the
tilt of the drawing plane.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "Log verbosity (higher is more detailed)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with default settings")
}

// setup loads the config file and installs the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := cfg.Verbosity
	if cmd.Flags().Changed("verbosity") {
		level = verbosity
	}

	log = logging.New(os.Stderr, level)
	geometry.SetLogger(log)
	figure.SetLogger(log)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
