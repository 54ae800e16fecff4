// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"io"
	"time"

	"github.com/tomtom215/marquee/internal/recommend/algorithms"
)

// Engine answers content similarity queries over a fixed catalog.
//
// All state is computed by the constructor and never modified afterwards,
// so every method is safe for concurrent use without locking.
type Engine struct {
	catalog    *Catalog
	model      *algorithms.TFIDFModel
	similarity *algorithms.SimilarityMatrix

	builtAt       time.Time
	buildDuration time.Duration
}

// Recommendation is one ranked result.
type Recommendation struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
	Index int     `json:"index"`
}

// Stats describes the computed state of an engine.
type Stats struct {
	Movies         int           `json:"movies"`
	VocabularySize int           `json:"vocabulary_size"`
	ZeroVectors    int           `json:"zero_vectors"`
	BuiltAt        time.Time     `json:"built_at"`
	BuildDuration  time.Duration `json:"build_duration_ns"`
}

// Option configures engine construction.
type Option func(*options)

type options struct {
	workers int
	now     func() time.Time
}

// WithWorkers sets how many goroutines compute similarity rows.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// NewEngineFromFile loads the catalog at path and builds an engine.
func NewEngineFromFile(path string, opts ...Option) (*Engine, error) {
	c, err := LoadCatalogFile(path)
	if err != nil {
		return nil, err
	}
	return NewEngineFromCatalog(c, opts...), nil
}

// NewEngine loads a CSV catalog from r and builds an engine.
func NewEngine(r io.Reader, opts ...Option) (*Engine, error) {
	c, err := LoadCatalog(r)
	if err != nil {
		return nil, err
	}
	return NewEngineFromCatalog(c, opts...), nil
}

// NewEngineFromCatalog composes documents, fits the TF-IDF model and builds
// the similarity matrix for an already loaded catalog.
func NewEngineFromCatalog(c *Catalog, opts ...Option) *Engine {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	start := o.now()

	model := algorithms.FitTFIDF(ComposeAll(c))
	sim := algorithms.BuildSimilarityIndex(model.Vectors(), algorithms.IndexConfig{
		Workers: o.workers,
	})

	end := o.now()
	return &Engine{
		catalog:       c,
		model:         model,
		similarity:    sim,
		builtAt:       end,
		buildDuration: end.Sub(start),
	}
}

// Recommend returns up to k titles most similar to title, best first.
//
// The ranking is a stable descending sort of the title's similarity row with
// the leading entry dropped. The leading entry is normally the query movie
// itself. When another row ties at the maximal score and precedes it in
// catalog order, that row is dropped instead and the query movie appears in
// the results. Duplicate titles resolve to their first row.
func (e *Engine) Recommend(title string, k int) ([]string, error) {
	ranked, err := e.RecommendScored(title, k)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(ranked))
	for i, r := range ranked {
		titles[i] = r.Title
	}
	return titles, nil
}

// RecommendScored is Recommend with similarity scores and row indices.
func (e *Engine) RecommendScored(title string, k int) ([]Recommendation, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	idx, ok := e.catalog.IndexOf(title)
	if !ok {
		return nil, &MovieNotFoundError{Title: title}
	}

	ranked := e.similarity.RankRow(idx)
	if len(ranked) > 0 {
		ranked = ranked[1:]
	}
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	out := make([]Recommendation, len(ranked))
	for i, r := range ranked {
		out[i] = Recommendation{
			Title: e.catalog.movies[r.Index].Title,
			Score: r.Score,
			Index: r.Index,
		}
	}
	return out, nil
}

// Titles returns every catalog title in catalog order.
func (e *Engine) Titles() []string {
	return e.catalog.Titles()
}

// Contains reports whether title exactly matches a catalog row.
func (e *Engine) Contains(title string) bool {
	_, ok := e.catalog.IndexOf(title)
	return ok
}

// Movie returns the first catalog row with the given title.
func (e *Engine) Movie(title string) (Movie, error) {
	idx, ok := e.catalog.IndexOf(title)
	if !ok {
		return Movie{}, &MovieNotFoundError{Title: title}
	}
	return e.catalog.Movie(idx), nil
}

// Similarity returns the precomputed similarity between rows i and j.
func (e *Engine) Similarity(i, j int) float64 {
	return e.similarity.At(i, j)
}

// Size returns the number of catalog rows.
func (e *Engine) Size() int {
	return e.catalog.Len()
}

// Stats returns a summary of the computed state.
func (e *Engine) Stats() Stats {
	return Stats{
		Movies:         e.catalog.Len(),
		VocabularySize: e.model.VocabularySize(),
		ZeroVectors:    e.model.ZeroVectors(),
		BuiltAt:        e.builtAt,
		BuildDuration:  e.buildDuration,
	}
}
