package i18n

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Language represents a supported locale.
type Language string

const (
	LangEN Language = "en"
)

type locale struct {
	messages map[string]string
	tag      language.Tag
}

var locales = map[Language]locale{
	LangEN: {messages: en, tag: language.English},
}

var (
	current = LangEN
	titler  = cases.Title(language.English)
)

// SetLanguage changes the active locale.
// Unrecognized values fall back to English.
func SetLanguage(lang string) {
	l, ok := locales[Language(lang)]
	if !ok {
		lang, l = string(LangEN), locales[LangEN]
	}
	current = Language(lang)
	titler = cases.Title(l.tag)
}

// T returns the translated string for the given key.
// If the key is not found, the key itself is returned.
func T(key string) string {
	if v, ok := locales[current].messages[key]; ok {
		return v
	}
	return key
}

// Tf returns a formatted translated string.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// Title upper-cases the first letter of each word and lower-cases the rest,
// using the casing rules of the active locale.
func Title(s string) string {
	return titler.String(s)
}
