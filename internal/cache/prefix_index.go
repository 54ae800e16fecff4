// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package cache

import (
	"sort"
	"strings"
)

// DefaultSuggestions is the result limit used when Suggest gets limit <= 0.
const DefaultSuggestions = 10

type prefixNode struct {
	children map[rune]*prefixNode
	terminal bool
	title    string // first spelling inserted at this node
	index    int    // catalog position of that first spelling
	count    int    // how many catalog rows share this key
}

// Suggestion is one autocomplete match.
type Suggestion struct {
	Title string `json:"title"`
	Index int    `json:"index"`
	Count int    `json:"count"`
}

// PrefixIndex is a case-insensitive prefix tree over catalog titles.
// It is built once and read-only afterwards, so lookups need no locking.
type PrefixIndex struct {
	root *prefixNode
	size int
}

// NewPrefixIndex indexes titles by position. Empty titles are skipped.
// Titles that differ only in case share one entry that keeps the first
// spelling and position.
func NewPrefixIndex(titles []string) *PrefixIndex {
	idx := &PrefixIndex{root: newPrefixNode()}
	for i, title := range titles {
		idx.insert(title, i)
	}
	return idx
}

func newPrefixNode() *prefixNode {
	return &prefixNode{children: make(map[rune]*prefixNode)}
}

func (idx *PrefixIndex) insert(title string, position int) {
	if strings.TrimSpace(title) == "" {
		return
	}

	node := idx.root
	for _, ch := range strings.ToLower(title) {
		child := node.children[ch]
		if child == nil {
			child = newPrefixNode()
			node.children[ch] = child
		}
		node = child
	}

	if !node.terminal {
		node.terminal = true
		node.title = title
		node.index = position
		idx.size++
	}
	node.count++
}

// Len returns the number of distinct (case-folded) titles.
func (idx *PrefixIndex) Len() int {
	return idx.size
}

// Lookup returns the first catalog position of an exact, case-insensitive
// title match.
func (idx *PrefixIndex) Lookup(title string) (int, bool) {
	node := idx.walk(title)
	if node == nil || !node.terminal || title == "" {
		return 0, false
	}
	return node.index, true
}

// Suggest returns up to limit titles starting with prefix, most duplicated
// first, then alphabetically. An empty prefix returns nil.
func (idx *PrefixIndex) Suggest(prefix string, limit int) []Suggestion {
	if prefix == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestions
	}

	node := idx.walk(prefix)
	if node == nil {
		return nil
	}

	var results []Suggestion
	collect(node, &results)

	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		if results[i].Title != results[j].Title {
			return results[i].Title < results[j].Title
		}
		return results[i].Index < results[j].Index
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func (idx *PrefixIndex) walk(key string) *prefixNode {
	node := idx.root
	for _, ch := range strings.ToLower(key) {
		node = node.children[ch]
		if node == nil {
			return nil
		}
	}
	return node
}

func collect(node *prefixNode, results *[]Suggestion) {
	if node.terminal {
		*results = append(*results, Suggestion{Title: node.title, Index: node.index, Count: node.count})
	}
	for _, child := range node.children {
		collect(child, results)
	}
}
