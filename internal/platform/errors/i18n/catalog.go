// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/message"

	i18ncatalog "github.com/louisbranch/username/internal/platform/i18n/catalog"
)

// Namespace is the catalog namespace holding error message templates.
const Namespace = "errors"

// Code is a machine-readable error code (duplicated from errors package to avoid cycle).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale    string
	messages  map[Code]string
	templates map[Code]*template.Template
}

var (
	catalogsMu sync.RWMutex
	// catalogs holds override and runtime-built catalogs by locale.
	catalogs = map[string]*Catalog{}
)

// GetCatalog returns the catalog for the given locale.
// The locale is matched against the embedded bundle ("pt" resolves to "pt-BR")
// and falls back to en-US when nothing matches. Messages are rendered through
// the bundle's x/text printer; keys missing from a locale use the en-US text.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = i18ncatalog.BaseLocale
	}

	if c, ok := lookupCatalog(requested); ok {
		return c
	}

	bundle := i18ncatalog.Default()
	resolvedLocale, printer := bundle.Printer(requested)
	if c, ok := lookupCatalog(resolvedLocale); ok {
		return c
	}

	base := bundle.NamespaceMessages(i18ncatalog.BaseLocale, Namespace)
	messages := make(map[Code]string, len(base))
	for code, fallback := range base {
		messages[code] = printer.Sprintf(message.Key(code, fallback))
	}
	return storeCatalogIfAbsent(resolvedLocale, NewCatalog(resolvedLocale, messages))
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Has reports whether the catalog defines a template for code.
func (c *Catalog) Has(code Code) bool {
	_, ok := c.messages[code]
	return ok
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found, and to the raw
// template text if it cannot be parsed or executed. Missing metadata keys
// render as "<no value>".
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	raw, ok := c.messages[code]
	if !ok {
		return code
	}
	tmpl, ok := c.templates[code]
	if !ok {
		return raw
	}

	if metadata == nil {
		metadata = map[string]string{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return raw
	}
	return buf.String()
}

// RegisterCatalog registers a catalog for the given locale, replacing any
// catalog built from the embedded bundle.
func RegisterCatalog(locale string, cat *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[locale] = cat
}

// NewCatalog creates a new catalog with the given locale and messages.
// Templates are parsed once here; unparsable entries are kept as raw text.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	cat := &Catalog{
		locale:    locale,
		messages:  make(map[Code]string, len(messages)),
		templates: make(map[Code]*template.Template, len(messages)),
	}
	for code, text := range messages {
		cat.messages[code] = text
		if tmpl, err := template.New(code).Parse(text); err == nil {
			cat.templates[code] = tmpl
		}
	}
	return cat
}

func lookupCatalog(locale string) (*Catalog, bool) {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	cat, ok := catalogs[locale]
	return cat, ok
}

func storeCatalogIfAbsent(locale string, candidate *Catalog) *Catalog {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	if existing, ok := catalogs[locale]; ok {
		return existing
	}
	catalogs[locale] = candidate
	return candidate
}
