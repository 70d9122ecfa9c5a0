// Package highscore keeps the top-five table for every difficulty/level
// pair and persists it through a pluggable backend.
package highscore

import (
	"sort"
	"strings"
)

// Table limits.
const (
	MaxEntries    = 5
	MaxNameLength = 3
	DefaultName   = "???"
)

// Entry is one high-score row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Table maps a config.Key ("easy_03") to entries sorted by score, highest
// first.
type Table map[string][]Entry

// NormalizeName applies the placeholder and length limit.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	return name
}

// Insert appends e under key, re-sorts, truncates to MaxEntries and returns
// a copy of the stored list. Equal scores keep insertion order, so an older
// entry stays ahead of a newer one with the same score.
func (t Table) Insert(key string, e Entry) []Entry {
	entries := append(t[key], e)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	t[key] = entries
	return t.Top(key)
}

// Top returns a copy of the entries stored under key.
func (t Table) Top(key string) []Entry {
	src := t[key]
	out := make([]Entry, len(src))
	copy(out, src)
	return out
}

// Keys returns the table keys in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sanitize repairs a table read from storage: it drops negative scores,
// normalizes names and enforces order and length.
func (t Table) Sanitize() Table {
	out := make(Table, len(t))
	for key, entries := range t {
		clean := make([]Entry, 0, len(entries))
		for _, e := range entries {
			if e.Score < 0 {
				continue
			}
			clean = append(clean, Entry{Name: NormalizeName(e.Name), Score: e.Score})
		}
		sort.SliceStable(clean, func(i, j int) bool {
			return clean[i].Score > clean[j].Score
		})
		if len(clean) > MaxEntries {
			clean = clean[:MaxEntries]
		}
		out[key] = clean
	}
	return out
}
