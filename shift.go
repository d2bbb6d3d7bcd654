package dof

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// usShift is the shifted output of the US QWERTY symbol and digit keys.
var usShift = map[rune]rune{
	'`': '~', '1': '!', '2': '@', '3': '#', '4': '$', '5': '%', '6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
	'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|', ';': ':', '\'': '"', ',': '<', '.': '>', '/': '?',
}

// ShiftKey returns the key a Char key produces with shift held: symbols go
// through the US QWERTY table and letters are upper-cased. A letter whose
// upper case spans several characters becomes a Word key. Every other key is
// returned unchanged.
func ShiftKey(k Key) Key {
	c, ok := k.Char()
	if !ok {
		return k
	}
	if s, ok := usShift[c]; ok {
		return CharKey(s)
	}
	// Casers carry state, so each call gets its own.
	up := cases.Upper(language.Und).String(string(c))
	if utf8.RuneCountInString(up) == 1 {
		r, _ := utf8.DecodeRuneInString(up)
		return CharKey(r)
	}
	return WordKey(up)
}

// shiftLayer derives the shift layer from main.
func shiftLayer(main Layer) Layer {
	rows := make([][]Key, len(main.rows))
	for r, row := range main.rows {
		out := make([]Key, len(row))
		for c, k := range row {
			out[c] = ShiftKey(k)
		}
		rows[r] = out
	}
	return Layer{name: ShiftLayer, rows: rows}
}
