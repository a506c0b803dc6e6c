// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingredients holds the ordered, deduplicated list of ingredients
// a user searches with.
package ingredients

import (
	"regexp"
	"strings"
)

// delimiters matches one or more separators in a row.
var delimiters = regexp.MustCompile(`[,;\n]+`)

// Parse splits text on commas, semicolons and newlines, trims each piece
// and drops empty pieces. Parse("") returns an empty slice.
func Parse(text string) []string {
	out := []string{}
	for _, piece := range delimiters.Split(text, -1) {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// List is an ordered set of ingredients. Uniqueness is exact,
// case-sensitive string equality. The zero value is ready to use.
type List struct {
	items []string

	// OnChange, if set, is called with the current items after every
	// mutation. Renderers use it to redraw the chips.
	OnChange func(items []string)
}

// NewList returns an empty list that calls onChange after each mutation.
func NewList(onChange func(items []string)) *List {
	return &List{OnChange: onChange}
}

// Add parses text and appends every token not already present, keeping
// first-insertion order. It returns the number of tokens added.
func (l *List) Add(text string) int {
	added := 0
	for _, tok := range Parse(text) {
		if l.Contains(tok) {
			continue
		}
		l.items = append(l.items, tok)
		added++
	}
	l.changed()
	return added
}

// RemoveAt removes the ingredient at index. An out-of-range index leaves
// the list unchanged.
func (l *List) RemoveAt(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.changed()
}

// Clear removes every ingredient.
func (l *List) Clear() {
	l.items = nil
	l.changed()
}

// Contains reports whether s is in the list.
func (l *List) Contains(s string) bool {
	for _, it := range l.items {
		if it == s {
			return true
		}
	}
	return false
}

// Items returns a copy of the ingredients in order.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of ingredients.
func (l *List) Len() int { return len(l.items) }

func (l *List) changed() {
	if l.OnChange != nil {
		l.OnChange(l.Items())
	}
}
