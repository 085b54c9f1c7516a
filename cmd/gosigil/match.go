package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/philipparndt/gosigil/internal/config"
	"github.com/philipparndt/gosigil/pkg/figure"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/philipparndt/gosigil/pkg/match"
	"github.com/philipparndt/gosigil/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	matchFamilies []string
	matchJSON     bool
	matchWatch    bool
	matchDebounce time.Duration
)

var matchCmd = &cobra.Command{
	Use:   "match [file...]",
	Short: "Match drawn figures against the template library",
	Long: `Load each figure file (YAML, JSON or text) and report the best matching template,
its score and the aligned template overlay. With --watch the figures are matched
again whenever a file changes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringSliceVarP(&matchFamilies, "family", "f", nil, "Only match templates of these families")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCmd.Flags().BoolVarP(&matchWatch, "watch", "w", false, "Match again when a file changes")
	matchCmd.Flags().DurationVar(&matchDebounce, "debounce", config.DefaultDebounce, "Delay before matching a changed file")
}

func runMatch(cmd *cobra.Command, args []string) error {
	m, err := newMatcher(cmd)
	if err != nil {
		return err
	}

	out := &syncWriter{w: cmd.OutOrStdout()}
	for _, filename := range args {
		if err := matchFile(out, m, filename); err != nil {
			return err
		}
	}

	if !matchWatch {
		return nil
	}

	debounce := matchDebounce
	if !cmd.Flags().Changed("debounce") {
		if debounce, err = cfg.DebounceDuration(); err != nil {
			return err
		}
	}

	fw, err := watcher.NewFileWatcher(debounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch(args, func(path string) {
		if err := matchFile(out, m, path); err != nil {
			log.Error(err, "match failed", "file", path)
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fw.Start(ctx)

	fmt.Fprintf(out, "Watching %d file(s), press Ctrl+C to stop\n", len(args))
	<-ctx.Done()
	return nil
}

func newMatcher(cmd *cobra.Command) (*match.Matcher, error) {
	names := cfg.Match.Families
	if cmd.Flags().Changed("family") {
		names = matchFamilies
	}
	families, err := config.ParseFamilies(names)
	if err != nil {
		return nil, err
	}

	opts := []match.Option{match.WithLogger(log.WithName("match"))}
	if len(families) > 0 {
		opts = append(opts, match.WithFamilies(families...))
	}
	return match.New(opts...), nil
}

func matchFile(w io.Writer, m *match.Matcher, filename string) error {
	fig, err := figure.Parse(filename)
	if err != nil {
		return err
	}

	result := m.Match(fig.Segments, fig.Arcs, fig.Circles)
	if matchJSON {
		return writeResultJSON(w, filename, fig, result)
	}
	writeResult(w, filename, fig, result)
	return nil
}

func writeResult(w io.Writer, filename string, fig *figure.Figure, result match.Result) {
	var b []byte
	b = fmt.Appendf(b, "Figure: %s\n", describeFigure(filename, fig))
	b = fmt.Appendf(b, "Primitives: %d segments, %d arcs, %d circles\n", len(fig.Segments), len(fig.Arcs), len(fig.Circles))

	if result.Template == nil {
		b = fmt.Appendf(b, "No template could be attempted\n\n")
		w.Write(b)
		return
	}

	t := result.Template
	b = fmt.Appendf(b, "Best match: %s (%s)\n", t.Name(), t.Family())
	b = fmt.Appendf(b, "  Score: %.6f (minimum %.1f)\n", result.Score, t.MinScore())
	b = fmt.Appendf(b, "  RMSD: %.6f\n", result.RMSD)
	b = fmt.Appendf(b, "  Accepted: %t\n", result.Accepted())
	b = fmt.Appendf(b, "  Centroid: %s\n", geometry.FormatPoint(result.Centroid))
	b = fmt.Appendf(b, "  Color: %s  Audio: %s\n", formatColor(t), orDash(t.AudioTag()))

	b = fmt.Appendf(b, "Overlay:\n")
	for _, s := range result.Segments {
		b = fmt.Appendf(b, "  %s\n", s)
	}
	for _, a := range result.Arcs {
		b = fmt.Appendf(b, "  %s\n", a)
	}
	for _, c := range result.Circles {
		b = fmt.Appendf(b, "  %s\n", c)
	}
	b = append(b, '\n')
	w.Write(b)
}

func describeFigure(filename string, fig *figure.Figure) string {
	if fig.Name == "" {
		return filename
	}
	return fmt.Sprintf("%s (%s)", fig.Name, filename)
}

// resultJSON is the --json output. Infinite scores are reported as null.
type resultJSON struct {
	File     string       `json:"file"`
	Figure   string       `json:"figure,omitempty"`
	Template string       `json:"template,omitempty"`
	Family   string       `json:"family,omitempty"`
	Score    *float64     `json:"score"`
	RawScore *float64     `json:"raw_score"`
	RMSD     *float64     `json:"rmsd"`
	Accepted bool         `json:"accepted"`
	Perfect  bool         `json:"perfect"`
	Centroid []float64    `json:"centroid,omitempty"`
	Color    string       `json:"color,omitempty"`
	AudioTag string       `json:"audio_tag,omitempty"`
	Overlay  *overlayJSON `json:"overlay,omitempty"`
}

type overlayJSON struct {
	Segments [][][]float64 `json:"segments,omitempty"`
	Arcs     [][][]float64 `json:"arcs,omitempty"`
	Circles  []circleJSON  `json:"circles,omitempty"`
}

type circleJSON struct {
	Center []float64 `json:"center"`
	Normal []float64 `json:"normal"`
	Radius float64   `json:"radius"`
}

func newResultJSON(filename string, fig *figure.Figure, result match.Result) resultJSON {
	out := resultJSON{
		File:     filename,
		Figure:   fig.Name,
		Score:    finite(result.Score),
		RawScore: finite(result.RawScore),
		RMSD:     finite(result.RMSD),
		Accepted: result.Accepted(),
	}
	if result.Template == nil {
		return out
	}

	t := result.Template
	out.Template = t.Name()
	out.Family = t.Family().String()
	out.Perfect = math.IsInf(result.RawScore, 1)
	out.Centroid = coordinates(result.Centroid)
	out.Color = formatColor(t)
	out.AudioTag = t.AudioTag()

	overlay := &overlayJSON{}
	for _, s := range result.Segments {
		overlay.Segments = append(overlay.Segments, [][]float64{coordinates(s.A()), coordinates(s.B())})
	}
	for _, a := range result.Arcs {
		overlay.Arcs = append(overlay.Arcs, [][]float64{coordinates(a.End1()), coordinates(a.Mid()), coordinates(a.End2())})
	}
	for _, c := range result.Circles {
		overlay.Circles = append(overlay.Circles, circleJSON{
			Center: coordinates(c.Center()),
			Normal: coordinates(c.Normal()),
			Radius: c.Radius(),
		})
	}
	out.Overlay = overlay
	return out
}

func writeResultJSON(w io.Writer, filename string, fig *figure.Figure, result match.Result) error {
	data, err := json.Marshal(newResultJSON(filename, fig, result))
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// syncWriter serializes writes from concurrent watch callbacks
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

