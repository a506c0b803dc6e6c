// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingredients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"mixed delimiters", "a, b; c\nd", []string{"a", "b", "c", "d"}},
		{"empty", "", []string{}},
		{"only delimiters", ",;\n,,", []string{}},
		{"runs collapse", "egg,,,;;\n\nmilk", []string{"egg", "milk"}},
		{"whitespace pieces dropped", "  , tomato ,   ", []string{"tomato"}},
		{"inner spaces kept", "olive oil, soy sauce", []string{"olive oil", "soy sauce"}},
		{"case preserved", "Rice, rice", []string{"Rice", "rice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestListAddIsIdempotent(t *testing.T) {
	var l List
	l.Add("chicken")
	l.Add("chicken")
	assert.Equal(t, []string{"chicken"}, l.Items())
}

func TestListAddKeepsFirstInsertionOrder(t *testing.T) {
	var l List
	assert.Equal(t, 2, l.Add("rice, chicken"))
	assert.Equal(t, 1, l.Add("garlic; rice"))
	assert.Equal(t, []string{"rice", "chicken", "garlic"}, l.Items())
}

func TestListAddIsCaseSensitive(t *testing.T) {
	var l List
	l.Add("Egg")
	l.Add("egg")
	assert.Equal(t, []string{"Egg", "egg"}, l.Items())
}

func TestListRemoveAt(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"first", 0, []string{"b", "c"}},
		{"middle", 1, []string{"a", "c"}},
		{"last", 2, []string{"a", "b"}},
		{"beyond bounds", 3, []string{"a", "b", "c"}},
		{"far beyond bounds", 99, []string{"a", "b", "c"}},
		{"negative", -1, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l List
			l.Add("a,b,c")
			l.RemoveAt(tt.index)
			assert.Equal(t, tt.want, l.Items())
		})
	}
}

func TestListRemoveAtOnEmptyList(t *testing.T) {
	var l List
	l.RemoveAt(0)
	assert.Equal(t, 0, l.Len())
}

func TestListOnChange(t *testing.T) {
	var renders [][]string
	l := NewList(func(items []string) { renders = append(renders, items) })

	l.Add("a, b")
	l.RemoveAt(0)
	l.RemoveAt(5) // no-op, no render
	l.Clear()

	assert.Equal(t, [][]string{{"a", "b"}, {"b"}, {}}, renders)
}

func TestListItemsReturnsCopy(t *testing.T) {
	var l List
	l.Add("a")
	items := l.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"a"}, l.Items())
}
