package match

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-logr/logr"
	"github.com/golang/geo/r3"
	"github.com/philipparndt/gosigil/pkg/geometry"
	"github.com/philipparndt/gosigil/pkg/templates"
)

// Result is the outcome of matching a drawn figure against the template library.
// Template is nil and Score is -Inf when no template could be attempted.
type Result struct {
	Template *templates.Template
	Score    float64 // RawScore minus the template's MinScore
	RawScore float64 // 1/RMSD, +Inf for a perfect match
	RMSD     float64
	Centroid r3.Vector // Centroid of the candidate window

	// Aligned template primitives, for overlay feedback
	Segments []geometry.Segment
	Arcs     []geometry.Arc
	Circles  []geometry.Circle
}

// Accepted reports whether a template was found and scored above its minimum
func (r Result) Accepted() bool {
	return r.Template != nil && r.Score > 0
}

func (r Result) String() string {
	if r.Template == nil {
		return "no match"
	}
	return fmt.Sprintf("%s (score %.3f, raw %.3f, rmsd %.6f)", r.Template.Name(), r.Score, r.RawScore, r.RMSD)
}

// Matcher scores drawn primitives against a set of templates
type Matcher struct {
	templates []*templates.Template
	families  []templates.Family
	log       logr.Logger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithLibrary matches against the templates of the given registry
func WithLibrary(r *templates.Registry) Option {
	return func(m *Matcher) {
		m.templates = r.All()
	}
}

// WithFamilies restricts matching to templates of the given families.
// Repeated use widens the set; no families means no restriction.
func WithFamilies(families ...templates.Family) Option {
	return func(m *Matcher) {
		m.families = append(m.families, families...)
	}
}

// WithLogger sets the logger for per-template scoring details
func WithLogger(l logr.Logger) Option {
	return func(m *Matcher) {
		m.log = l
	}
}

// New creates a Matcher over the built-in library
func New(opts ...Option) *Matcher {
	m := &Matcher{
		templates: templates.Library().All(),
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if len(m.families) > 0 {
		m.templates = slices.DeleteFunc(m.templates, func(t *templates.Template) bool {
			return !slices.Contains(m.families, t.Family())
		})
	}
	return m
}

// Templates returns the templates the matcher considers, in order
func (m *Matcher) Templates() []*templates.Template {
	return m.templates
}

// Match finds the best scoring template for the most recently drawn primitives.
//
// Each template is compared against the trailing window of each drawn kind,
// sized to the template's counts. Templates needing more primitives than were
// drawn are skipped. Ties keep the earlier template.
func (m *Matcher) Match(segments []geometry.Segment, arcs []geometry.Arc, circles []geometry.Circle) Result {
	best := Result{Score: math.Inf(-1)}

	for _, tmpl := range m.templates {
		ns, na, nc := tmpl.Counts()
		if len(segments) < ns || len(arcs) < na || len(circles) < nc {
			continue
		}

		ws, wa, wc := trailing(segments, ns), trailing(arcs, na), trailing(circles, nc)

		aligned, err := Align(ws, wa, wc, tmpl)
		if err != nil {
			m.log.V(1).Info("skipping template", "template", tmpl.Name(), "error", err.Error())
			continue
		}

		diff := RMSD(ws, wa, wc, aligned.Segments, aligned.Arcs, aligned.Circles)
		raw := math.Inf(1)
		if diff != 0 {
			raw = 1 / diff
		}
		score := raw - tmpl.MinScore()

		m.log.V(2).Info("scored template", "template", tmpl.Name(), "rmsd", diff, "score", score)

		if best.Template == nil || score > best.Score {
			best = Result{
				Template: tmpl,
				Score:    score,
				RawScore: raw,
				RMSD:     diff,
				Centroid: aligned.Centroid,
				Segments: aligned.Segments,
				Arcs:     aligned.Arcs,
				Circles:  aligned.Circles,
			}
		}
	}

	if best.Template != nil {
		m.log.V(1).Info("best match", "template", best.Template.Name(), "score", best.Score)
	}
	return best
}

// MatchAgainstTemplates matches against the full built-in library
func MatchAgainstTemplates(segments []geometry.Segment, arcs []geometry.Arc, circles []geometry.Circle) Result {
	return New().Match(segments, arcs, circles)
}

// trailing returns the last n items
func trailing[T any](items []T, n int) []T {
	return items[len(items)-n:]
}
