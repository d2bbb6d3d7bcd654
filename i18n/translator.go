// Package i18n translates issue codes into short human readable labels.
package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "layer" or "board").
type Translator interface {
	Message(code string, data map[string]string) string
}

var dictionaries = map[string]map[string]string{
	"en": {
		"missing_required_field": "required field missing",
		"shape_mismatch":         "shape mismatch",
		"unknown_preset":         "unknown preset",
		"malformed_token":        "malformed token",
		"unresolved_reference":   "unresolved reference",
		"duplicate_combo":        "duplicate combo",
		"invalid_type":           "invalid type",
		"unknown_key":            "unknown key",
		"duplicate_key":          "duplicate key",
		"conflict":               "conflicting fields",
		"parse_error":            "parse error",
		"truncated":              "truncated",
	},
	"ja": {
		"missing_required_field": "必須フィールドが不足しています",
		"shape_mismatch":         "形状が一致しません",
		"unknown_preset":         "未知のプリセットです",
		"malformed_token":        "トークンの形式が不正です",
		"unresolved_reference":   "参照を解決できません",
		"duplicate_combo":        "コンボが重複しています",
		"invalid_type":           "型が不正です",
		"unknown_key":            "未知のキーです",
		"duplicate_key":          "キーが重複しています",
		"conflict":               "フィールドが競合しています",
		"parse_error":            "解析エラー",
		"truncated":              "打ち切られました",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if name := data["layer"]; name != "" {
		return msg + " (" + name + ")"
	}
	return msg
}

// Languages lists the built-in languages.
func Languages() []string { return []string{"en", "ja"} }

// ForLanguage returns the built-in Translator for lang ("en"/"ja"). Region
// suffixes such as "ja-JP" are ignored; unknown languages fall back to en.
func ForLanguage(lang string) Translator {
	lang = strings.ToLower(lang)
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) { currentTranslator = ForLanguage(lang) }

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
