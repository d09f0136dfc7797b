package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
	if got := len(bundle.NamespaceMessages("en-US", "errors")); got == 0 {
		t.Fatalf("expected en-US errors namespace messages")
	}
	if got := len(bundle.NamespaceMessages("fr-FR", "errors")); got != 0 {
		t.Fatalf("expected no fr-FR messages, got %d", got)
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	bundle := Default()
	base := bundle.NamespaceMessages(BaseLocale, "errors")
	for _, locale := range bundle.Locales() {
		messages := bundle.NamespaceMessages(locale, "errors")
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Fatalf("locale %s missing key %q", locale, key)
			}
		}
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/core.yaml"), `locale: "en-US"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/web.yaml"), `locale: "en-US"
namespace: "web"
messages:
  "a.key": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsMalformedCatalogs(t *testing.T) {
	t.Parallel()

	tests := map[string]fstest.MapFS{
		"locale mismatch": {
			"locales/en-US/errors.yaml": {Data: []byte("locale: \"pt-BR\"\nnamespace: \"errors\"\nmessages:\n  \"k\": \"v\"\n")},
		},
		"namespace mismatch": {
			"locales/en-US/errors.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"web\"\nmessages:\n  \"k\": \"v\"\n")},
		},
		"missing messages": {
			"locales/en-US/errors.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"errors\"\n")},
		},
		"blank key": {
			"locales/en-US/errors.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"errors\"\nmessages:\n  \" \": \"v\"\n")},
		},
		"invalid yaml": {
			"locales/en-US/errors.yaml": {Data: []byte("locale: [unterminated\n")},
		},
		"missing base locale": {
			"locales/pt-BR/errors.yaml": {Data: []byte("locale: \"pt-BR\"\nnamespace: \"errors\"\nmessages:\n  \"k\": \"v\"\n")},
		},
		"no files": {},
	}
	for name, fsys := range tests {
		if _, err := LoadFromFS(fsys); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestMatchResolvesLocales(t *testing.T) {
	bundle := Default()
	tests := map[string]string{
		"":      BaseLocale,
		"en-US": BaseLocale,
		"en":    BaseLocale,
		"pt-BR": "pt-BR",
		"pt":    "pt-BR",
		"fr-FR": BaseLocale,
		"%%%":   BaseLocale,
	}
	for requested, want := range tests {
		if got := bundle.Match(requested); got != want {
			t.Fatalf("Match(%q) = %q, want %q", requested, got, want)
		}
	}
	var nilBundle *Bundle
	if got := nilBundle.Match("pt-BR"); got != BaseLocale {
		t.Fatalf("nil Match = %q, want %q", got, BaseLocale)
	}
}

func TestPrinterRendersMatchedLocale(t *testing.T) {
	locale, printer := Default().Printer("pt")
	if locale != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", locale)
	}
	got := printer.Sprintf(message.Key("USERNAME_TOO_SHORT", "fallback"))
	if got != "O nome de usuário não pode ficar vazio" {
		t.Fatalf("pt-BR printer = %q", got)
	}
}

func TestPrinterFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/errors.yaml": {Data: []byte("locale: \"en-US\"\nnamespace: \"errors\"\nmessages:\n  \"a\": \"base a\"\n  \"b\": \"base b\"\n")},
		"locales/pt-BR/errors.yaml": {Data: []byte("locale: \"pt-BR\"\nnamespace: \"errors\"\nmessages:\n  \"a\": \"pt a\"\n")},
	})
	if err != nil {
		t.Fatalf("load catalogs: %v", err)
	}

	locale, printer := bundle.Printer("pt-BR")
	if locale != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", locale)
	}
	if got := printer.Sprintf(message.Key("a", "missing")); got != "pt a" {
		t.Fatalf("Sprintf(a) = %q, want %q", got, "pt a")
	}
	if got := printer.Sprintf(message.Key("b", "missing")); got != "base b" {
		t.Fatalf("Sprintf(b) = %q, want %q", got, "base b")
	}
	if got := printer.Sprintf(message.Key("c", "missing")); got != "missing" {
		t.Fatalf("Sprintf(c) = %q, want %q", got, "missing")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
