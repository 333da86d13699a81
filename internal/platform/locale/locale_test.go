// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/sanaa/internal/platform/locale"
)

var name = locale.Text{En: "Traditional Cooking", Fr: "Cuisine Traditionnelle", Ar: "الطبخ التقليدي"}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		lang locale.Lang
		want string
	}{
		{"english", locale.English, "Traditional Cooking"},
		{"french", locale.French, "Cuisine Traditionnelle"},
		{"arabic", locale.Arabic, "الطبخ التقليدي"},
		{"unknown_falls_back_to_english", locale.Lang("de"), "Traditional Cooking"},
		{"empty_falls_back_to_english", locale.Lang(""), "Traditional Cooking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Select(name, tt.lang))
		})
	}
}

func TestSelect_EmptyTranslation(t *testing.T) {
	text := locale.Text{En: "Home repairs", Fr: ""}
	assert.Equal(t, "Home repairs", locale.Select(text, locale.French))
}

func TestParse(t *testing.T) {
	tests := []struct {
		tag  string
		want locale.Lang
		ok   bool
	}{
		{"en", locale.English, true},
		{"fr-CA", locale.French, true},
		{"ar-DZ", locale.Arabic, true},
		{"de", "", false},
		{"", "", false},
		{"not a tag!", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := locale.Parse(tt.tag)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		accept   string
		want     locale.Lang
	}{
		{"explicit_wins", "ar", "fr-FR,fr;q=0.9", locale.Arabic},
		{"header_used_when_explicit_missing", "", "fr-FR,fr;q=0.9,en;q=0.5", locale.French},
		{"header_used_when_explicit_unsupported", "de", "ar", locale.Arabic},
		{"unsupported_header", "", "de-DE", locale.English},
		{"nothing", "", "", locale.English},
		{"garbage_header", "", ";;;", locale.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Negotiate(tt.explicit, tt.accept))
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "rtl", locale.Direction(locale.Arabic))
	assert.Equal(t, "ltr", locale.Direction(locale.French))
	assert.Equal(t, "ltr", locale.Direction(locale.English))
}
