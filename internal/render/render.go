// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns recipe summaries and details into terminal text,
// JSON or YAML. Favorite status is read at render time from a
// FavoriteChecker.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recipe-finder/pkg/types"
)

// MaxNutrients is how many nutrients a detail view shows.
const MaxNutrients = 6

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a --format value. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q: use table, json or yaml", s)
	}
}

// FavoriteChecker reports favorite membership.
type FavoriteChecker interface {
	IsFavorite(id string) bool
}

// Card is the view model of one result card.
type Card struct {
	types.RecipeSummary `yaml:",inline"`
	Meta                string `json:"meta,omitempty" yaml:"meta,omitempty"`
	Favorite            bool   `json:"favorite" yaml:"favorite"`
}

// MetaLine is the card subtitle: "2 used • 1 missing" when the source
// reported match counts, empty otherwise.
func MetaLine(s types.RecipeSummary) string {
	if !s.HasMatchCounts() {
		return ""
	}
	used := 0
	if s.UsedCount != nil {
		used = *s.UsedCount
	}
	return fmt.Sprintf("%d used • %d missing", used, *s.MissedCount)
}

// Cards builds the card view models for summaries.
func Cards(summaries []types.RecipeSummary, favs FavoriteChecker) []Card {
	cards := make([]Card, 0, len(summaries))
	for _, s := range summaries {
		c := Card{RecipeSummary: s, Meta: MetaLine(s)}
		if favs != nil {
			c.Favorite = favs.IsFavorite(s.ID)
		}
		cards = append(cards, c)
	}
	return cards
}

// Chips renders the ingredient list as numbered, removable chips.
func Chips(w io.Writer, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Ingredients: (none)")
		return
	}
	chips := make([]string, len(items))
	for i, it := range items {
		chips[i] = fmt.Sprintf("[%d] %s ✕", i, it)
	}
	fmt.Fprintf(w, "Ingredients: %s\n", strings.Join(chips, "  "))
}

// Results writes the search status and cards in the given format.
func Results(w io.Writer, status string, cards []Card, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, struct {
			Status  string `json:"status"`
			Results []Card `json:"results"`
		}{status, cards})
	case FormatYAML:
		return encodeYAML(w, struct {
			Status  string `yaml:"status"`
			Results []Card `yaml:"results"`
		}{status, cards})
	}

	if status != "" {
		fmt.Fprintln(w, status)
	}
	if len(cards) == 0 {
		return nil
	}
	fmt.Fprintf(w, "%-3s  %-10s  %-48s  %-22s  %s\n", "Fav", "ID", "Title", "Match", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, c := range cards {
		fav := " "
		if c.Favorite {
			fav = "♥"
		}
		title := c.Title
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(w, "%-3s  %-10s  %-48s  %-22s  %s\n", fav, c.ID, truncate(title, 48), c.Meta, c.Source)
	}
	return nil
}

// Detail writes a recipe detail in the given format.
func Detail(w io.Writer, d types.RecipeDetail, favorite bool, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, d)
	case FormatYAML:
		return encodeYAML(w, d)
	}

	if !d.Available {
		fmt.Fprintf(w, "%s.\n", types.PlaceholderTitle)
		return nil
	}

	title := d.Title
	if title == "" {
		title = "Recipe"
	}
	if favorite {
		title += " ♥"
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(title))))
	if d.Image != "" {
		fmt.Fprintf(w, "Image: %s\n", d.Image)
	}
	if line := TimingLine(d); line != "" {
		fmt.Fprintln(w, line)
	}
	if d.Category != "" {
		fmt.Fprintf(w, "Category: %s\n", d.Category)
	}

	if len(d.IngredientLines) > 0 {
		fmt.Fprintln(w, "\nIngredients")
		for _, l := range d.IngredientLines {
			fmt.Fprintf(w, "  - %s\n", l)
		}
	}
	if d.Instructions != "" {
		fmt.Fprintln(w, "\nInstructions")
		fmt.Fprintln(w, PlainText(d.Instructions))
	}
	if n := NutrientLines(d); len(n) > 0 {
		fmt.Fprintln(w, "\nNutrition (per recipe)")
		for _, l := range n {
			fmt.Fprintf(w, "  - %s\n", l)
		}
	}
	if d.SourceURL != "" {
		fmt.Fprintf(w, "\nOriginal recipe: %s\n", d.SourceURL)
	}
	return nil
}

// Favorites writes favorite ids, one per line for table output.
func Favorites(w io.Writer, ids []string, format Format) error {
	if ids == nil {
		ids = []string{}
	}
	switch format {
	case FormatJSON:
		return encodeJSON(w, struct {
			Favorites []string `json:"favorites"`
		}{ids})
	case FormatYAML:
		return encodeYAML(w, struct {
			Favorites []string `yaml:"favorites"`
		}{ids})
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
	return nil
}

// TimingLine is "Ready in 45 mins • Servings: 4" for details that carry
// timing, using "-" for a missing value. Details from a source with no
// timing at all get an empty line.
func TimingLine(d types.RecipeDetail) string {
	if d.Source == types.SourceMealDB && d.ReadyMinutes == nil && d.Servings == nil {
		return ""
	}
	return fmt.Sprintf("Ready in %s mins • Servings: %s", optInt(d.ReadyMinutes), optInt(d.Servings))
}

// NutrientLines formats the first MaxNutrients nutrients as "Calories: 612.5kcal".
func NutrientLines(d types.RecipeDetail) []string {
	n := d.Nutrients
	if len(n) > MaxNutrients {
		n = n[:MaxNutrients]
	}
	lines := make([]string, 0, len(n))
	for _, x := range n {
		lines = append(lines, fmt.Sprintf("%s: %s%s", x.Name, strconv.FormatFloat(x.Amount, 'f', -1, 64), x.Unit))
	}
	return lines
}

// PlainText flattens instruction markup to text in document order.
// List items, paragraphs, line breaks and other block elements start a
// new line; list items are numbered. A list item or paragraph nested in
// another is folded into its parent's line. Text without markup passes
// through with its line breaks normalized.
func PlainText(markup string) string {
	markup = strings.ReplaceAll(markup, "\r\n", "\n")
	if !strings.Contains(markup, "<") {
		return strings.TrimSpace(markup)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return strings.TrimSpace(markup)
	}

	var f flattener
	f.walk(doc.Find("body"), false)
	f.flush()
	return strings.Join(f.lines, "\n")
}

// blockNodes start a new line when they are not inside a list item or
// paragraph.
var blockNodes = map[string]bool{
	"div": true, "ol": true, "ul": true, "table": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

type flattener struct {
	lines  []string
	cur    strings.Builder
	isItem bool
	step   int
}

// flush ends the current line, numbering it when it is a list item.
// Empty lines are dropped and do not consume a number.
func (f *flattener) flush() {
	text := condense(f.cur.String())
	f.cur.Reset()
	if text != "" {
		if f.isItem {
			f.step++
			text = fmt.Sprintf("%d. %s", f.step, text)
		}
		f.lines = append(f.lines, text)
	}
	f.isItem = false
}

func (f *flattener) walk(sel *goquery.Selection, inLine bool) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		switch name := goquery.NodeName(c); {
		case name == "#text":
			f.cur.WriteString(c.Text())
		case name == "script" || name == "style" || name == "#comment":
		case name == "br":
			if inLine {
				f.cur.WriteString(" ")
			} else {
				f.flush()
			}
		case (name == "li" || name == "p") && !inLine:
			f.flush()
			f.isItem = name == "li"
			f.walk(c, true)
			f.flush()
		case blockNodes[name] && !inLine:
			f.flush()
			f.walk(c, false)
			f.flush()
		case name == "li" || name == "p" || blockNodes[name]:
			f.cur.WriteString(" ")
			f.walk(c, true)
			f.cur.WriteString(" ")
		default:
			f.walk(c, inLine)
		}
	})
}

func condense(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func optInt(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
