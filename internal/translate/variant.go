package translate

import (
	"sort"
	"strings"
)

// Variant is a named table plus an optional rewrite run before translation.
type Variant struct {
	Name    string
	Short   string
	table   func() *Table
	prepare func(string) string
}

// Table returns the substitution table of v.
func (v Variant) Table() *Table {
	return v.table()
}

// Apply rewrites and translates text.
func (v Variant) Apply(text string) string {
	if v.prepare != nil {
		text = v.prepare(text)
	}
	return Translate(text, v.table())
}

var variants = map[string]Variant{
	"fraktur": {
		Name:  "fraktur",
		Short: "𝔉𝔯𝔞𝔨𝔱𝔲𝔯 blackletter",
		table: Fraktur,
	},
	"fraktur-bold": {
		Name:  "fraktur-bold",
		Short: "𝕭𝖔𝖑𝖉 𝖋𝖗𝖆𝖐𝖙𝖚𝖗 blackletter",
		table: FrakturBold,
	},
	"full": {
		Name:    "full",
		Short:   "ｆｕｌｌ－ｗｉｄｔｈ forms",
		table:   FullWidth,
		prepare: SqueezePunctuation,
	},
	"mono": {
		Name:  "mono",
		Short: "𝚖𝚘𝚗𝚘𝚜𝚙𝚊𝚌𝚎 letters and digits",
		table: Mono,
	},
	"smol": {
		Name:  "smol",
		Short: "ꜱᴍᴀʟʟ ᴄᴀᴘɪᴛᴀʟꜱ",
		table: SmallCaps,
	},
}

// Lookup returns the built-in variant called name.
func Lookup(name string) (Variant, bool) {
	v, ok := variants[name]
	return v, ok
}

// Names lists the built-in variants in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Custom wraps a loaded table as a Variant.
func Custom(t *Table) Variant {
	return Variant{Name: t.Name(), table: func() *Table { return t }}
}

// squeezed lists the punctuation whose adjacent space is dropped before a
// full-width translation, in the order the replacements run. Full-width
// punctuation already carries its own spacing.
var squeezed = [][2]string{
	{"! ", "!"},
	{" (", "("},
	{") ", ")"},
	{", ", ","},
	{". ", "."},
	{": ", ":"},
	{"; ", ";"},
	{"? ", "?"},
	{" [", "["},
	{"] ", "]"},
	{" {", "{"},
	{"} ", "}"},
}

// SqueezePunctuation drops the space after closing and separating
// punctuation and before opening brackets.
func SqueezePunctuation(s string) string {
	for _, r := range squeezed {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return s
}
