// Package webdemo turns the fields of the browser form into chart data. The
// js/wasm entry point only converts between JavaScript values and these
// types.
package webdemo

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/cwbudde/algo-filterscope/dsp/pitch"
	"github.com/cwbudde/algo-filterscope/measure/response"
)

// Vertical range of the chart in dB. Points outside it are kept and left to
// the chart to clip.
const (
	ViewMinDB = -60.0
	ViewMaxDB = 20.0
)

// Form holds the raw text of the input fields.
type Form struct {
	Type      string
	Note      string
	Detune    string
	Cutoff    string
	Resonance string
}

// Chart is either a titled response or the list of input errors.
type Chart struct {
	Title  string
	Points [][2]float64
	Errors []string
}

const (
	chartExpiration = 10 * time.Minute
	chartCleanup    = 20 * time.Minute
)

// Engine computes charts. Responses are deterministic, so charts are kept
// for a while keyed by their parameters and redrawing a setting is free.
type Engine struct {
	workers int
	charts  *cache.Cache
}

// NewEngine returns an Engine measuring on the given number of goroutines.
func NewEngine(workers int) *Engine {
	return &Engine{
		workers: max(1, workers),
		charts:  cache.New(chartExpiration, chartCleanup),
	}
}

// CachedCharts reports how many charts are currently memoized.
func (e *Engine) CachedCharts() int {
	return e.charts.ItemCount()
}

// Forget drops every memoized chart.
func (e *Engine) Forget() {
	e.charts.Flush()
}

// Draw validates f and measures the response it describes. Every invalid
// field produces one entry in Errors and no points are computed. The
// returned Points are shared with the cache and must not be modified.
func (e *Engine) Draw(f Form) Chart {
	p, err := response.ParseParams(f.Type, f.Note, f.Detune, f.Cutoff, f.Resonance)
	if err != nil {
		fields := response.FieldErrors(err)
		msgs := make([]string, len(fields))
		for i, fe := range fields {
			msgs[i] = capitalizeWords(fe.Error())
		}

		return Chart{Errors: msgs}
	}

	key := chartKey(p)
	if cached, found := e.charts.Get(key); found {
		return cached.(Chart)
	}

	pts := response.Analyze(p, response.WithWorkers(e.workers))

	chart := Chart{Title: p.Label(), Points: make([][2]float64, len(pts))}
	for i, pt := range pts {
		chart.Points[i] = [2]float64{pt.FrequencyHz, pt.PowerDB}
	}

	e.charts.Set(key, chart, cache.DefaultExpiration)

	return chart
}

// chartKey includes the detune, which the title leaves out.
func chartKey(p response.Params) string {
	return fmt.Sprintf("%d/%d/%d/%d/%d", p.Type, p.Note, p.Detune, p.CutoffNote, p.Resonance)
}

// NoteLabel returns the pitch label for the note field while it is being
// typed. ok is false until the text is a valid note number.
func NoteLabel(raw string) (label string, ok bool) {
	note, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !pitch.ValidNote(note) {
		return "", false
	}

	return pitch.Label(note), true
}

// capitalizeWords turns "invalid note number '300'" into
// "Invalid Note Number '300'". The quoted value is left alone.
func capitalizeWords(s string) string {
	head, quoted, found := strings.Cut(s, "'")

	words := strings.Fields(head)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	out := strings.Join(words, " ")
	if found {
		out += " '" + quoted
	}

	return out
}
