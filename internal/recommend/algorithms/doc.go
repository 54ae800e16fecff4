// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package algorithms implements the numeric building blocks of the content
// similarity engine.
//
// # Components
//
//   - Tokenize: word-boundary tokenizer with English stopword removal
//   - FitTFIDF: smoothed TF-IDF weighting with L2-normalized sparse vectors
//   - BuildSimilarityIndex: dense pairwise cosine similarity matrix
//
// # Determinism
//
// The vocabulary is sorted lexicographically before vectors are assembled, so
// fitting the same document sequence twice produces identical vocabularies,
// identical weights and identical similarity matrices. Similarity rows are
// computed concurrently, but every matrix cell has exactly one writer, so the
// result does not depend on scheduling.
//
// # Zero Vectors
//
// A document with no tokens left after stopword removal maps to the zero
// vector. Cosine similarity involving a zero vector is defined as 0, including
// the diagonal entry for that document. No NaN value is ever produced.
//
// # Thread Safety
//
// TFIDFModel and SimilarityMatrix are immutable after construction and may be
// read from any number of goroutines without synchronization.
package algorithms
