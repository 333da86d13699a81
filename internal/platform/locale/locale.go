// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package locale selects which of the three stored translations a caller sees.

Every user-facing text in the directory is stored three times (English,
French, Arabic). This package owns the rules for choosing one of them:

  - Select picks the field for a language, falling back to English.
  - Negotiate resolves the display language from an explicit tag and the
    Accept-Language header, using golang.org/x/text/language matching.
  - Direction reports the text direction the presentation layer must use.
*/
package locale

import (
	"golang.org/x/text/language"
)

// Lang is one of the supported display languages.
type Lang string

const (
	English Lang = "en"
	French  Lang = "fr"
	Arabic  Lang = "ar"

	// Default is used whenever a language cannot be determined.
	Default = English
)

// supported is ordered so that index 0 (English) is the matcher's fallback.
var supported = []Lang{English, French, Arabic}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.Arabic,
})

// Text holds the three translations of a single user-facing value.
type Text struct {
	En string `json:"en"`
	Fr string `json:"fr"`
	Ar string `json:"ar"`
}

// Supported returns the display languages in preference order.
func Supported() []Lang {
	out := make([]Lang, len(supported))
	copy(out, supported)
	return out
}

// Parse maps a BCP-47 tag (e.g. "fr", "fr-CA", "ar-DZ") onto a supported [Lang].
// It reports false for empty, malformed, or unsupported tags.
func Parse(tag string) (Lang, bool) {
	if tag == "" {
		return "", false
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return "", false
	}

	base, _ := parsed.Base()
	for _, lang := range supported {
		if base.String() == string(lang) {
			return lang, true
		}
	}
	return "", false
}

// Select returns the translation of text for lang.
//
// Unrecognised languages and empty translations fall back to the English value.
func Select(text Text, lang Lang) string {
	var value string
	switch lang {
	case French:
		value = text.Fr
	case Arabic:
		value = text.Ar
	default:
		return text.En
	}

	if value == "" {
		return text.En
	}
	return value
}

// Negotiate resolves the display language.
//
// An explicit tag (typically the "lang" query parameter) wins when it names a
// supported language; otherwise the Accept-Language header is matched against
// the supported set. Anything unresolvable yields [Default].
func Negotiate(explicit, acceptLanguage string) Lang {
	if lang, ok := Parse(explicit); ok {
		return lang
	}

	if acceptLanguage == "" {
		return Default
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return supported[index]
}

// Direction returns "rtl" for Arabic and "ltr" for every other language.
func Direction(lang Lang) string {
	if lang == Arabic {
		return "rtl"
	}
	return "ltr"
}
