// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package algorithms

import (
	"math"
	"runtime"
	"sort"
	"sync"
)

// SimilarityMatrix is a dense, symmetric N x N cosine similarity matrix
// stored in row-major order.
type SimilarityMatrix struct {
	n    int
	data []float64
}

// IndexConfig controls similarity index construction.
type IndexConfig struct {
	// Workers is the number of goroutines computing rows.
	// Zero or negative means GOMAXPROCS.
	Workers int
}

// BuildSimilarityIndex computes the cosine similarity of every pair of
// L2-normalized vectors.
//
// Entry (i, j) for i < j is the dot product of vectors i and j, clamped to
// [0, 1], and is mirrored into (j, i). The diagonal is 1 for a non-zero
// vector and 0 for the zero vector.
func BuildSimilarityIndex(vectors []SparseVector, cfg IndexConfig) *SimilarityMatrix {
	n := len(vectors)
	m := &SimilarityMatrix{
		n:    n,
		data: make([]float64, n*n),
	}
	if n == 0 {
		return m
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	// Row i owns cells (i, j) and (j, i) for j >= i, so no two workers
	// ever write the same cell.
	rows := make(chan int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range rows {
				m.fillRow(vectors, i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return m
}

func (m *SimilarityMatrix) fillRow(vectors []SparseVector, i int) {
	vi := vectors[i]
	if vi.IsZero() {
		// Row and column stay zero, diagonal included.
		return
	}

	m.data[i*m.n+i] = 1
	for j := i + 1; j < m.n; j++ {
		vj := vectors[j]
		if vj.IsZero() {
			continue
		}
		s := clampUnit(vi.Dot(vj))
		m.data[i*m.n+j] = s
		m.data[j*m.n+i] = s
	}
}

// clampUnit bounds rounding drift of normalized dot products to [0, 1].
func clampUnit(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// Size returns N, the number of rows (and columns).
func (m *SimilarityMatrix) Size() int {
	return m.n
}

// At returns the similarity between rows i and j.
func (m *SimilarityMatrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns a copy of row i.
func (m *SimilarityMatrix) Row(i int) []float64 {
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])
	return out
}

// row returns row i without copying.
func (m *SimilarityMatrix) row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// Ranked pairs a row index with its similarity score.
type Ranked struct {
	Index int
	Score float64
}

// RankRow returns every column of row i ordered by descending score.
// The sort is stable, so equal scores keep ascending column order.
func (m *SimilarityMatrix) RankRow(i int) []Ranked {
	r := m.row(i)
	ranked := make([]Ranked, len(r))
	for j, s := range r {
		ranked[j] = Ranked{Index: j, Score: s}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})
	return ranked
}

// Equal reports whether two matrices hold identical values.
func (m *SimilarityMatrix) Equal(other *SimilarityMatrix) bool {
	if other == nil || m.n != other.n {
		return false
	}
	for k, v := range m.data {
		if other.data[k] != v {
			return false
		}
	}
	return true
}
