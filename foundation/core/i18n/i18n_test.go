// File: i18n_test.go
// Title: Internationalization Tests
// Description: Catalog loading from an in-memory file system, lookups,
//              fallback and template rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package i18n

import (
	"reflect"
	"testing"
	"testing/fstest"

	mdwerror "github.com/msto63/termio/foundation/core/error"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"locales/en.toml": &fstest.MapFile{Data: []byte(`
[range]
number = "between {{.min}} and {{.max}}"

[format]
mismatch = "bad format"
`)},
		"locales/de.yaml": &fstest.MapFile{Data: []byte(`
range:
  number: "zwischen {{.min}} und {{.max}}"
`)},
		"locales/README.md": &fstest.MapFile{Data: []byte("ignored")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Options{DefaultLocale: "en", FS: testFS(), Dir: "locales"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNew(t *testing.T) {
	t.Run("loads toml and yaml", func(t *testing.T) {
		m := newTestManager(t)
		if got := m.Locales(); !reflect.DeepEqual(got, []string{"de", "en"}) {
			t.Errorf("Locales() = %v", got)
		}
	})

	t.Run("empty default locale", func(t *testing.T) {
		_, err := New(Options{FS: testFS()})
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("expected INVALID_CONFIG, got %v", err)
		}
	})

	t.Run("missing default locale", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "fr", FS: testFS(), Dir: "locales"})
		if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
			t.Errorf("expected CONFIG_ERROR, got %v", err)
		}
	})

	t.Run("broken catalog", func(t *testing.T) {
		fsys := fstest.MapFS{"en.toml": &fstest.MapFile{Data: []byte("x = ")}}
		if _, err := New(Options{DefaultLocale: "en", FS: fsys}); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestTranslate(t *testing.T) {
	m := newTestManager(t)
	data := map[string]interface{}{"min": "1", "max": "9"}

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]interface{}
		want   string
	}{
		{"english template", "en", "range.number", data, "between 1 and 9"},
		{"german template", "de", "range.number", data, "zwischen 1 und 9"},
		{"fallback to default", "de", "format.mismatch", nil, "bad format"},
		{"unknown key", "en", "nope", nil, "[nope]"},
		{"section is not a message", "en", "range", nil, "[range]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lm, err := m.ForLocale(tt.locale)
			if err != nil {
				t.Fatalf("ForLocale(%s) error = %v", tt.locale, err)
			}
			if got := lm.T(tt.key, tt.data); got != tt.want {
				t.Errorf("T(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestTryTMissingKey(t *testing.T) {
	m := newTestManager(t)
	_, err := m.TryT("range.date")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestTryTMissingTemplateData(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.TryT("range.number", map[string]interface{}{"min": 1}); err == nil {
		t.Error("expected error for missing template key")
	}
}

func TestNoFallback(t *testing.T) {
	m, err := New(Options{DefaultLocale: "en", FS: testFS(), Dir: "locales", NoFallback: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetLocale("de"); err != nil {
		t.Fatal(err)
	}
	if m.HasTranslation("format.mismatch") {
		t.Error("fallback should be disabled")
	}
}

func TestSetLocaleUnknown(t *testing.T) {
	m := newTestManager(t)
	if err := m.SetLocale("xx"); err == nil {
		t.Error("expected error for unknown locale")
	}
	if m.Locale() != "en" {
		t.Errorf("locale changed to %s", m.Locale())
	}
}

func TestForLocaleLeavesReceiver(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.ForLocale("de"); err != nil {
		t.Fatal(err)
	}
	if m.Locale() != "en" {
		t.Errorf("receiver locale = %s, want en", m.Locale())
	}
}
