// Package translate maps text through fixed Unicode lookalike tables.
package translate

import "strings"

// Table is an immutable rune substitution map.
type Table struct {
	name  string
	runes map[rune]rune
}

// NewTable copies m into a new Table.
func NewTable(name string, m map[rune]rune) *Table {
	runes := make(map[rune]rune, len(m))
	for k, v := range m {
		runes[k] = v
	}
	return &Table{name: name, runes: runes}
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Len() int {
	return len(t.runes)
}

func (t *Table) Lookup(r rune) (rune, bool) {
	out, ok := t.runes[r]
	return out, ok
}

// Translate replaces every rune of text found in t and keeps the rest.
func Translate(text string, t *Table) string {
	if t == nil {
		return text
	}
	return strings.Map(func(r rune) rune {
		if out, ok := t.runes[r]; ok {
			return out
		}
		return r
	}, text)
}

// Normalize joins the whitespace-separated words of args with single spaces.
func Normalize(args []string) string {
	var words []string
	for _, arg := range args {
		words = append(words, strings.Fields(arg)...)
	}
	return strings.Join(words, " ")
}
