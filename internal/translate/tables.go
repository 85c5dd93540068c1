package translate

import "sync"

const enSpace = '\u2002' // EN SPACE

var (
	frakturTable     = sync.OnceValue(buildFraktur)
	frakturBoldTable = sync.OnceValue(buildFrakturBold)
	fullWidthTable   = sync.OnceValue(buildFullWidth)
	monoTable        = sync.OnceValue(buildMono)
	smallCapsTable   = sync.OnceValue(buildSmallCaps)
)

// Fraktur maps ASCII letters to MATHEMATICAL FRAKTUR letters.
func Fraktur() *Table { return frakturTable() }

// FrakturBold maps ASCII letters to MATHEMATICAL BOLD FRAKTUR letters.
func FrakturBold() *Table { return frakturBoldTable() }

// FullWidth maps printable ASCII to the Halfwidth and Fullwidth Forms block.
func FullWidth() *Table { return fullWidthTable() }

// Mono maps ASCII letters and digits to MATHEMATICAL MONOSPACE.
func Mono() *Table { return monoTable() }

// SmallCaps maps both cases of ASCII letters to small capitals.
func SmallCaps() *Table { return smallCapsTable() }

// frakturHoles are the capitals encoded in Letterlike Symbols; their slots
// in the Mathematical Alphanumeric block are reserved.
var frakturHoles = map[rune]rune{
	'C': 'ℭ',
	'H': 'ℌ',
	'I': 'ℑ',
	'R': 'ℜ',
	'Z': 'ℨ',
}

func buildFraktur() *Table {
	m := letters(0x1D504, 0x1D51E)
	for k, v := range frakturHoles {
		m[k] = v
	}
	return &Table{name: "fraktur", runes: m}
}

func buildFrakturBold() *Table {
	return &Table{name: "fraktur-bold", runes: letters(0x1D56C, 0x1D586)}
}

func buildFullWidth() *Table {
	m := make(map[rune]rune, '~'-' '+1)
	m[' '] = enSpace
	for r := '!'; r <= '~'; r++ {
		m[r] = 0xFF01 + (r - '!')
	}
	return &Table{name: "full", runes: m}
}

func buildMono() *Table {
	m := letters(0x1D670, 0x1D68A)
	for r := '0'; r <= '9'; r++ {
		m[r] = 0x1D7F6 + (r - '0')
	}
	m[' '] = enSpace
	return &Table{name: "mono", runes: m}
}

var smallCaps = [26]rune{
	'ᴀ', // LATIN LETTER SMALL CAPITAL A
	'ʙ', // LATIN LETTER SMALL CAPITAL B
	'ᴄ', // LATIN LETTER SMALL CAPITAL C
	'ᴅ', // LATIN LETTER SMALL CAPITAL D
	'ᴇ', // LATIN LETTER SMALL CAPITAL E
	'ꜰ', // LATIN LETTER SMALL CAPITAL F
	'ɢ', // LATIN LETTER SMALL CAPITAL G
	'ʜ', // LATIN LETTER SMALL CAPITAL H
	'ɪ', // LATIN LETTER SMALL CAPITAL I
	'ᴊ', // LATIN LETTER SMALL CAPITAL J
	'ᴋ', // LATIN LETTER SMALL CAPITAL K
	'ʟ', // LATIN LETTER SMALL CAPITAL L
	'ᴍ', // LATIN LETTER SMALL CAPITAL M
	'ɴ', // LATIN LETTER SMALL CAPITAL N
	'ᴏ', // LATIN LETTER SMALL CAPITAL O
	'ᴘ', // LATIN LETTER SMALL CAPITAL P
	'ꞯ', // LATIN LETTER SMALL CAPITAL Q
	'ʀ', // LATIN LETTER SMALL CAPITAL R
	'ꜱ', // LATIN LETTER SMALL CAPITAL S
	'ᴛ', // LATIN LETTER SMALL CAPITAL T
	'ᴜ', // LATIN LETTER SMALL CAPITAL U
	'ᴠ', // LATIN LETTER SMALL CAPITAL V
	'ᴡ', // LATIN LETTER SMALL CAPITAL W
	// There is no small capital X; this is MATHEMATICAL SANS-SERIF BOLD SMALL X.
	'\U0001D605',
	'ʏ', // LATIN LETTER SMALL CAPITAL Y
	'ᴢ', // LATIN LETTER SMALL CAPITAL Z
}

func buildSmallCaps() *Table {
	m := make(map[rune]rune, 52)
	for i, r := range smallCaps {
		m['a'+rune(i)] = r
		m['A'+rune(i)] = r
	}
	return &Table{name: "smol", runes: m}
}

// letters maps A-Z to upper, upper+1, ... and a-z likewise from lower.
func letters(upper, lower rune) map[rune]rune {
	m := make(map[rune]rune, 62)
	for i := rune(0); i < 26; i++ {
		m['A'+i] = upper + i
		m['a'+i] = lower + i
	}
	return m
}
