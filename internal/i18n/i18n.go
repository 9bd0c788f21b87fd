// Package i18n serves the UI string bundles (English, Kiswahili, Arabic).
// Bundles are embedded at build time; lookups fall back to English and then
// to the key itself so a missing translation never breaks a screen.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage is returned when a caller asks for a language no
// bundle ships for.
var ErrUnsupportedLanguage = errors.New("unsupported language")

//go:embed locales/*.json
var localeFS embed.FS

const (
	LangEnglish   = "en"
	LangKiswahili = "sw"
	LangArabic    = "ar"

	fallbackLang = LangEnglish
)

var bundles map[string]map[string]any

func init() {
	bundles = make(map[string]map[string]any, 3)
	for _, lang := range Languages() {
		data, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", lang))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing embedded bundle %q: %v", lang, err))
		}
		var bundle map[string]any
		if err := json.Unmarshal(data, &bundle); err != nil {
			panic(fmt.Sprintf("i18n: malformed bundle %q: %v", lang, err))
		}
		bundles[lang] = bundle
	}
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{LangEnglish, LangKiswahili, LangArabic}
}

// Supported reports whether lang is one of the shipped bundles.
func Supported(lang string) bool {
	_, ok := bundles[lang]
	return ok
}

// RTL reports whether the language renders right-to-left.
func RTL(lang string) bool {
	return lang == LangArabic
}

// T resolves a dotted key ("finance.title") in the given language, falling
// back to English and finally to the key itself.
func T(lang, key string) string {
	if v, ok := lookup(lang, key); ok {
		return v
	}
	if lang != fallbackLang {
		if v, ok := lookup(fallbackLang, key); ok {
			return v
		}
	}
	return key
}

// Bundle returns the raw bundle for a language, for clients that resolve
// keys themselves. Unknown languages get the English bundle.
func Bundle(lang string) map[string]any {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles[fallbackLang]
}

func lookup(lang, key string) (string, bool) {
	bundle, ok := bundles[lang]
	if !ok {
		return "", false
	}
	parts := strings.Split(key, ".")
	var node any = bundle
	for _, p := range parts {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[p]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}
