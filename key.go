package dof

import (
	"strings"
	"unicode/utf8"
)

// KeyKind tags the variant held by a Key.
type KeyKind int

const (
	KindEmpty       KeyKind = iota // ~, no output
	KindTransparent                // *, defers to the same slot on main
	KindEnter                      // literal newline character
	KindTab                        // literal tab character
	KindSpecial                    // one of SpecialKey
	KindChar                       // single character output
	KindLayer                      // switches to a named layer
	KindWord                       // multi-character output
)

var keyKindNames = [...]string{"empty", "transparent", "enter", "tab", "special", "char", "layer", "word"}

func (k KeyKind) String() string {
	if k < 0 || int(k) >= len(keyKindNames) {
		return "unknown"
	}
	return keyKindNames[k]
}

// SpecialKey enumerates the non-character keys commonly found on a keyboard.
type SpecialKey int

const (
	Esc SpecialKey = iota
	Repeat
	Space
	Tab
	Enter
	Shift
	Caps
	Ctrl
	Alt
	Meta
	Fn
	Backspace
	Del
)

var specialNames = [...]string{
	Esc: "Esc", Repeat: "Repeat", Space: "Space", Tab: "Tab", Enter: "Enter", Shift: "Shift",
	Caps: "Caps", Ctrl: "Ctrl", Alt: "Alt", Meta: "Meta", Fn: "Fn", Backspace: "Backspace", Del: "Del",
}

// canonical tokens written back by Key.String.
var specialTokens = [...]string{
	Esc: "esc", Repeat: "rpt", Space: "spc", Tab: "tab", Enter: "ret", Shift: "sft",
	Caps: "cps", Ctrl: "ctl", Alt: "alt", Meta: "mt", Fn: "fn", Backspace: "bsp", Del: "del",
}

func (s SpecialKey) String() string {
	if s < 0 || int(s) >= len(specialNames) {
		return "Unknown"
	}
	return specialNames[s]
}

// specialAliases maps every accepted alias to its key. Matching is exact and
// case sensitive.
var specialAliases = map[string]SpecialKey{
	"esc":    Esc,
	"repeat": Repeat, "rpt": Repeat,
	"space": Space, "spc": Space,
	"tab": Tab, "tb": Tab,
	"enter": Enter, "return": Enter, "ret": Enter, "ent": Enter, "rt": Enter,
	"shift": Shift, "shft": Shift, "sft": Shift, "st": Shift,
	"caps": Caps, "cps": Caps, "cp": Caps,
	"ctrl": Ctrl, "ctl": Ctrl, "ct": Ctrl,
	"alt": Alt, "lalt": Alt, "ralt": Alt, "lt": Alt,
	"meta": Meta, "mta": Meta, "met": Meta, "mt": Meta, "super": Meta, "sup": Meta, "sp": Meta,
	"fn":        Fn,
	"backspace": Backspace, "bksp": Backspace, "bcsp": Backspace, "bsp": Backspace,
	"del": Del,
}

// Key is a single logical key action. Keys are immutable values; two keys are
// equal (==) iff they describe the same action, so Key can be used as a map key.
type Key struct {
	kind    KeyKind
	special SpecialKey
	char    rune
	text    string // layer name or word output
}

func EmptyKey() Key { return Key{kind: KindEmpty} }
func TransparentKey() Key { return Key{kind: KindTransparent} }
func EnterKey() Key { return Key{kind: KindEnter} }
func TabKey() Key { return Key{kind: KindTab} }
func SpecialOf(s SpecialKey) Key { return Key{kind: KindSpecial, special: s} }
func CharKey(c rune) Key { return Key{kind: KindChar, char: c} }
func LayerKey(name string) Key { return Key{kind: KindLayer, text: name} }
func WordKey(text string) Key { return Key{kind: KindWord, text: text} }
func (k Key) Kind() KeyKind { return k.kind }
func (k Key) IsChar() bool { return k.kind == KindChar }
func (k Key) IsLayer() bool { return k.kind == KindLayer }
func (k Key) IsTransparent() bool { return k.kind == KindTransparent }

// Char returns the character output of a Char key.
func (k Key) Char() (rune, bool) { return k.char, k.kind == KindChar }

// Special returns the special key of a Special key.
func (k Key) Special() (SpecialKey, bool) { return k.special, k.kind == KindSpecial }

// Text returns the layer name of a Layer key or the output of a Word key, and
// "" for every other kind.
func (k Key) Text() string {
	if k.kind == KindLayer || k.kind == KindWord {
		return k.text
	}
	return ""
}

// String renders the canonical token for k. Classify(k.String()) == k for
// every key Classify can produce from a whitespace-free token.
func (k Key) String() string {
	switch k.kind {
	case KindEmpty:
		return "~"
	case KindTransparent:
		return "*"
	case KindEnter:
		return "\n"
	case KindTab:
		return "\t"
	case KindSpecial:
		if k.special >= 0 && int(k.special) < len(specialTokens) {
			return specialTokens[k.special]
		}
		return ""
	case KindChar:
		switch k.char {
		case '~', '*':
			return `\` + string(k.char)
		}
		return string(k.char)
	case KindLayer:
		return "@" + k.text
	case KindWord:
		if Classify(k.text) == k {
			return k.text
		}
		if strings.HasPrefix(k.text, "@") || strings.HasPrefix(k.text, "#") {
			return `\` + k.text
		}
		return "#" + k.text
	}
	return ""
}

// classifyRule inspects a token and reports whether it decides its Key.
type classifyRule func(token string) (Key, bool)

// classifyRules are evaluated in order; the first rule that matches wins.
// Tokens no rule claims become Word keys.
var classifyRules = [...]classifyRule{
	classifyEscapedLiteral,
	classifySingleChar,
	classifyEscapedWord,
	classifyLayerRef,
	classifyAlias,
}

// Classify maps a non-empty layer token to its Key. It never fails.
func Classify(token string) Key {
	for _, rule := range classifyRules {
		if k, ok := rule(token); ok {
			return k
		}
	}
	return WordKey(token)
}

func classifyEscapedLiteral(token string) (Key, bool) {
	switch token {
	case `\~`:
		return CharKey('~'), true
	case `\*`:
		return CharKey('*'), true
	case `\\`:
		return CharKey('\\'), true
	}
	return Key{}, false
}

func classifySingleChar(token string) (Key, bool) {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || size != len(token) {
		return Key{}, false
	}
	switch r {
	case '~':
		return EmptyKey(), true
	case '*':
		return TransparentKey(), true
	case '\n':
		return EnterKey(), true
	case '\t':
		return TabKey(), true
	}
	return CharKey(r), true
}

// classifyEscapedWord strips one marker character: `#x` is Word("x") while
// `\#x` and `\@x` are Word("#x") and Word("@x").
func classifyEscapedWord(token string) (Key, bool) {
	switch {
	case strings.HasPrefix(token, `\@`), strings.HasPrefix(token, `\#`), strings.HasPrefix(token, "#"):
		return WordKey(token[1:]), true
	}
	return Key{}, false
}

func classifyLayerRef(token string) (Key, bool) {
	if name, ok := strings.CutPrefix(token, "@"); ok && name != "" {
		return LayerKey(name), true
	}
	return Key{}, false
}

func classifyAlias(token string) (Key, bool) {
	if s, ok := specialAliases[token]; ok {
		return SpecialOf(s), true
	}
	return Key{}, false
}
