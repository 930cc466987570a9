// Package i18n holds the two-language display layer: a closed Language
// enumeration, the static translation table and the currency/date
// formatting helpers the rendering layer consumes.
package i18n

import "strings"

type Language string

const (
	LangFR Language = "FR"
	LangEN Language = "EN"
)

// Default is used whenever a stored or requested language is not a member
// of the enumeration.
const Default = LangFR

func (l Language) Valid() bool {
	return l == LangFR || l == LangEN
}

// Parse validates s strictly against the enumeration and silently falls
// back to Default on anything else, so a corrupt stored preference can
// never propagate.
func Parse(s string) Language {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case LangFR:
		return LangFR
	case LangEN:
		return LangEN
	default:
		return Default
	}
}

// T looks up a translation key for the given language. An unknown key comes
// back verbatim so a missing entry is visible instead of blank.
func T(lang Language, key string) string {
	if !lang.Valid() {
		lang = Default
	}
	if msg, ok := translations[lang][key]; ok {
		return msg
	}
	return key
}
