// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package algorithms

import (
	"math"
	"sort"
)

// TFIDFModel is a fitted term-frequency inverse-document-frequency model.
//
// Weights use raw term counts and smoothed IDF:
//
//	idf(t) = ln((1 + N) / (1 + df(t))) + 1
//
// Every document vector is L2-normalized, so the dot product of two vectors
// equals their cosine similarity.
type TFIDFModel struct {
	vocabulary []string
	termIndex  map[string]int
	idf        []float64
	docFreq    []int
	vectors    []SparseVector
}

// FitTFIDF fits a model over the documents and returns one vector per
// document, index-aligned with the input.
func FitTFIDF(documents []string) *TFIDFModel {
	n := len(documents)
	counts := make([]map[string]int, n)
	df := make(map[string]int)

	for i, doc := range documents {
		tc := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			tc[tok]++
		}
		for term := range tc {
			df[term]++
		}
		counts[i] = tc
	}

	vocabulary := make([]string, 0, len(df))
	for term := range df {
		vocabulary = append(vocabulary, term)
	}
	sort.Strings(vocabulary)

	m := &TFIDFModel{
		vocabulary: vocabulary,
		termIndex:  make(map[string]int, len(vocabulary)),
		idf:        make([]float64, len(vocabulary)),
		docFreq:    make([]int, len(vocabulary)),
		vectors:    make([]SparseVector, n),
	}
	for i, term := range vocabulary {
		m.termIndex[term] = i
		m.docFreq[i] = df[term]
		m.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	for i, tc := range counts {
		m.vectors[i] = m.weigh(tc)
	}
	return m
}

// weigh builds the normalized vector for one document's term counts.
func (m *TFIDFModel) weigh(tc map[string]int) SparseVector {
	if len(tc) == 0 {
		return SparseVector{}
	}

	indices := make([]int, 0, len(tc))
	for term := range tc {
		indices = append(indices, m.termIndex[term])
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sumSq float64
	for k, idx := range indices {
		w := float64(tc[m.vocabulary[idx]]) * m.idf[idx]
		values[k] = w
		sumSq += w * w
	}

	norm := math.Sqrt(sumSq)
	if norm == 0 {
		return SparseVector{}
	}
	for k := range values {
		values[k] /= norm
	}
	return SparseVector{Indices: indices, Values: values}
}

// Vocabulary returns a copy of the sorted vocabulary.
func (m *TFIDFModel) Vocabulary() []string {
	out := make([]string, len(m.vocabulary))
	copy(out, m.vocabulary)
	return out
}

// VocabularySize returns the number of distinct terms.
func (m *TFIDFModel) VocabularySize() int {
	return len(m.vocabulary)
}

// TermIndex returns the vocabulary index of a term.
func (m *TFIDFModel) TermIndex(term string) (int, bool) {
	idx, ok := m.termIndex[term]
	return idx, ok
}

// IDF returns the inverse document frequency of a term, or 0 when the term
// is not in the vocabulary.
func (m *TFIDFModel) IDF(term string) float64 {
	idx, ok := m.termIndex[term]
	if !ok {
		return 0
	}
	return m.idf[idx]
}

// DocumentFrequency returns the number of documents containing the term.
func (m *TFIDFModel) DocumentFrequency(term string) int {
	idx, ok := m.termIndex[term]
	if !ok {
		return 0
	}
	return m.docFreq[idx]
}

// Vectors returns the document vectors. The slice is shared and must not be
// modified.
func (m *TFIDFModel) Vectors() []SparseVector {
	return m.vectors
}

// Vector returns the vector of document i.
func (m *TFIDFModel) Vector(i int) SparseVector {
	return m.vectors[i]
}

// Documents returns the number of fitted documents.
func (m *TFIDFModel) Documents() int {
	return len(m.vectors)
}

// ZeroVectors returns how many documents mapped to the zero vector.
func (m *TFIDFModel) ZeroVectors() int {
	var n int
	for _, v := range m.vectors {
		if v.IsZero() {
			n++
		}
	}
	return n
}
