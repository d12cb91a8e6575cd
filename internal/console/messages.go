// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     console
// Description: Localized rejection messages of the specialized readers
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"embed"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	"github.com/msto63/termio/foundation/core/i18n"
	"github.com/msto63/termio/foundation/utils/timex"
)

// Catalog locales shipped with the binary
const (
	LocaleEnglish = "en"
	LocaleGerman  = "de"
	LocaleLegacy  = "legacy"
)

// Message keys
const (
	keyNumberRange = "range.number"
	keyDateRange   = "range.date"
	keyFormat      = "format.mismatch"
)

var messageKeys = []string{keyNumberRange, keyDateRange, keyFormat}

//go:embed locales/*.toml locales/*.yaml
var localeFS embed.FS

var (
	catalogOnce sync.Once
	catalog     *i18n.Manager
	catalogErr  error
)

func loadCatalog() (*i18n.Manager, error) {
	catalogOnce.Do(func() {
		catalog, catalogErr = i18n.New(i18n.Options{
			DefaultLocale: LocaleEnglish,
			FS:            localeFS,
			Dir:           "locales",
		})
	})
	return catalog, catalogErr
}

// Messages renders the rejection texts of the range and format readers
type Messages struct {
	catalog *i18n.Manager
	legacy  bool
}

// NewMessages returns the messages of locale. The "legacy" locale also
// switches number rendering to the legacy double notation. Every message
// must resolve in locale or in the English fallback.
func NewMessages(locale string) (*Messages, error) {
	base, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	m, err := base.ForLocale(locale)
	if err != nil {
		return nil, err
	}
	for _, key := range messageKeys {
		if !m.HasTranslation(key) {
			return nil, mdwerror.Newf("catalog %q lacks message %q", locale, key).
				WithCode(mdwerror.CodeConfigError).
				WithOperation("console.NewMessages").
				WithDetail("locale", locale)
		}
	}
	return &Messages{catalog: m, legacy: locale == LocaleLegacy}, nil
}

// DefaultMessages returns the English messages
func DefaultMessages() *Messages {
	m, err := NewMessages(LocaleEnglish)
	if err != nil {
		// the English catalog is embedded
		panic(err)
	}
	return m
}

// Locale returns the catalog locale
func (m *Messages) Locale() string {
	return m.catalog.Locale()
}

// Locales lists the available catalogs
func Locales() []string {
	base, err := loadCatalog()
	if err != nil {
		return nil
	}
	return base.Locales()
}

// NumberRange is the rejection text for a number outside [min, max]
func (m *Messages) NumberRange(min, max float64) string {
	return m.catalog.T(keyNumberRange, map[string]interface{}{
		"min": m.formatNumber(min),
		"max": m.formatNumber(max),
	})
}

// DateRange is the rejection text for a date outside [from, to]
func (m *Messages) DateRange(from, to time.Time) string {
	return m.catalog.T(keyDateRange, map[string]interface{}{
		"from": timex.FormatISODate(from),
		"to":   timex.FormatISODate(to),
	})
}

// Format is the rejection text of predicate and option readers
func (m *Messages) Format() string {
	return m.catalog.T(keyFormat)
}

func (m *Messages) formatNumber(v float64) string {
	if m.legacy {
		return FormatLegacyNumber(v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatLegacyNumber renders v like the legacy double notation: at least
// one fractional digit, scientific form with "E" below 1e-3 and from 1e7.
func FormatLegacyNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}
