// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager that loads message catalogs from
//              TOML and YAML files of an fs.FS (typically an embed.FS) and
//              renders them as text templates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue
// - 2026-10-19 v0.2.0: Catalogs loaded from fs.FS, watching and plurals removed

package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/termio/foundation/core/error"
)

// Format represents the language file format
type Format int

const (
	// FormatTOML represents TOML format
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// formatOf maps a file extension to a catalog format
func formatOf(fileName string) (Format, bool) {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".toml":
		return FormatTOML, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "en")
	FS            fs.FS  // File system holding the catalogs
	Dir           string // Directory inside FS, "." when empty
	NoFallback    bool   // Disable fallback to the default locale
}

// TranslationData represents the structure of a translation file
type TranslationData map[string]interface{}

// Manager manages the message catalogs of an application
type Manager struct {
	defaultLocale string
	currentLocale string
	fallback      bool

	// translations is read-only after New and shared between copies
	translations map[string]TranslationData

	tmplMu    *sync.Mutex
	templates map[string]*template.Template
}

// New creates a new i18n manager and loads every catalog found in Options.Dir
func New(options Options) (*Manager, error) {
	if strings.TrimSpace(options.DefaultLocale) == "" {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("i18n.New")
	}
	if options.FS == nil {
		return nil, mdwerror.New("catalog file system is nil").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("i18n.New")
	}
	if options.Dir == "" {
		options.Dir = "."
	}

	manager := &Manager{
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		fallback:      !options.NoFallback,
		translations:  make(map[string]TranslationData),
		tmplMu:        &sync.Mutex{},
		templates:     make(map[string]*template.Template),
	}

	if err := manager.loadAll(options.FS, options.Dir); err != nil {
		return nil, mdwerror.Wrap(err, "failed to load locales").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("i18n.New").
			WithDetail("directory", options.Dir)
	}

	return manager, nil
}

// loadAll loads every supported catalog file from dir
func (m *Manager) loadAll(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read locales directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		format, ok := formatOf(fileName)
		if !ok {
			continue
		}

		locale := strings.TrimSuffix(fileName, path.Ext(fileName))
		if locale == "" {
			continue
		}

		data, err := loadFile(fsys, path.Join(dir, fileName), format)
		if err != nil {
			return err
		}
		m.translations[locale] = data
	}

	if _, exists := m.translations[m.defaultLocale]; !exists {
		return fmt.Errorf("default locale '%s' not found", m.defaultLocale)
	}

	return nil
}

// loadFile parses one catalog file
func loadFile(fsys fs.FS, filePath string, format Format) (TranslationData, error) {
	content, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", filePath, err)
	}

	var data TranslationData
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("failed to parse TOML file %s: %w", filePath, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", filePath, err)
		}
	}

	return data, nil
}

// T translates a key with optional template data. Unknown keys render as
// "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return "[" + key + "]"
	}
	return translation
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	translation := m.getTranslation(key, m.currentLocale)
	if translation == "" {
		return "", mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key).
			WithDetail("locale", m.currentLocale)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.renderTemplate(m.currentLocale+":"+key, translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").
				WithCode(mdwerror.CodeInternal).
				WithOperation("i18n.renderTemplate").
				WithDetail("key", key)
		}
		return rendered, nil
	}

	return translation, nil
}

// getTranslation retrieves a translation for a specific locale with fallback
func (m *Manager) getTranslation(key, locale string) string {
	if translations, exists := m.translations[locale]; exists {
		if value := getNestedValue(translations, key); value != "" {
			return value
		}
	}

	if m.fallback && locale != m.defaultLocale {
		if translations, exists := m.translations[m.defaultLocale]; exists {
			return getNestedValue(translations, key)
		}
	}

	return ""
}

// getNestedValue retrieves a nested value from translations using dot notation
func getNestedValue(data map[string]interface{}, key string) string {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			if value, ok := current[k]; ok {
				if s, isString := value.(string); isString {
					return s
				}
			}
			return ""
		}

		switch next := current[k].(type) {
		case map[string]interface{}:
			current = next
		case TranslationData:
			current = next
		default:
			return ""
		}
	}

	return ""
}

// renderTemplate renders a translation template with data
func (m *Manager) renderTemplate(cacheKey, text string, data map[string]interface{}) (string, error) {
	m.tmplMu.Lock()
	tmpl, exists := m.templates[cacheKey]
	if !exists {
		var err error
		tmpl, err = template.New(cacheKey).Option("missingkey=error").Parse(text)
		if err != nil {
			m.tmplMu.Unlock()
			return text, fmt.Errorf("template compilation failed: %w", err)
		}
		m.templates[cacheKey] = tmpl
	}
	m.tmplMu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, fmt.Errorf("template execution failed: %w", err)
	}

	return result.String(), nil
}

// SetLocale changes the current locale
func (m *Manager) SetLocale(locale string) error {
	if !m.HasLocale(locale) {
		return mdwerror.New("locale not available").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}
	m.currentLocale = locale
	return nil
}

// ForLocale returns a copy of the manager switched to locale. Catalogs and
// the template cache are shared with the receiver.
func (m *Manager) ForLocale(locale string) (*Manager, error) {
	clone := *m
	if err := clone.SetLocale(locale); err != nil {
		return nil, err
	}
	return &clone, nil
}

// Locale returns the current active locale
func (m *Manager) Locale() string {
	return m.currentLocale
}

// Locales returns a sorted list of all available locales
func (m *Manager) Locales() []string {
	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasLocale checks if a locale is available
func (m *Manager) HasLocale(locale string) bool {
	_, exists := m.translations[locale]
	return exists
}

// HasTranslation checks if a translation key exists in the current locale
func (m *Manager) HasTranslation(key string) bool {
	return m.getTranslation(key, m.currentLocale) != ""
}
