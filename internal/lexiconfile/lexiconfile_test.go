package lexiconfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cnlforge/corelang/internal/lexicon"
	"github.com/cnlforge/corelang/internal/lexiconfile"
)

const sampleLexiconYAML = `
locale: fr-FR
keywords:
  RETURN: "retourner"
  IF: "si"
  TRUE: "vrai"
multi_word_keywords:
  - "ce module est"
quote:
  open: "«"
  close: "»"
whitespace: space_separated
articles: ["le", "la", "les"]
rewrite_rules:
  - pattern: "oe"
    replacement: "œ"
fold_full_width: false
`

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadLexiconRegistersUnderLocale(t *testing.T) {
	path := writeTemp(t, "fr.yaml", sampleLexiconYAML)
	lx, err := lexiconfile.LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if lx.Locale != "fr-FR" {
		t.Fatalf("expected locale fr-FR, got %q", lx.Locale)
	}
	if lx.Keywords[lexicon.KwReturn] != "retourner" {
		t.Fatalf("expected RETURN -> retourner, got %q", lx.Keywords[lexicon.KwReturn])
	}
	if lx.Quote.Open != '«' || lx.Quote.Close != '»' {
		t.Fatalf("unexpected quote pair: %v", lx.Quote)
	}
	if lx.Whitespace != lexicon.SpaceSeparated {
		t.Fatalf("expected space-separated whitespace mode")
	}
	if len(lx.RewriteRules) != 1 || lx.RewriteRules[0].Pattern.String() != "oe" {
		t.Fatalf("expected one compiled rewrite rule, got %v", lx.RewriteRules)
	}

	got, ok := lexicon.Get("fr-FR")
	if !ok || got != lx {
		t.Fatalf("expected fr-FR to be registered in the process-wide registry")
	}
	lexicon.Reset()
}

func TestParseLexiconFileRejectsBadQuoteRune(t *testing.T) {
	bad := `
locale: xx-XX
keywords: {}
quote:
  open: "not-one-char"
  close: "\""
whitespace: space_separated
`
	path := writeTemp(t, "bad.yaml", bad)
	if _, err := lexiconfile.ParseLexiconFile(path); err == nil {
		t.Fatal("expected an error for a multi-character quote rune")
	}
}

func TestParseLexiconFileRejectsUnknownWhitespace(t *testing.T) {
	bad := `
locale: xx-XX
keywords: {}
quote: {open: "\"", close: "\""}
whitespace: sideways
`
	path := writeTemp(t, "bad2.yaml", bad)
	if _, err := lexiconfile.ParseLexiconFile(path); err == nil {
		t.Fatal("expected an error for an unknown whitespace mode")
	}
}

func TestLoadLexiconFromJSON(t *testing.T) {
	jsonDoc := `{
		"locale": "es-ES",
		"keywords": {"RETURN": "retornar"},
		"quote": {"open": "\"", "close": "\""},
		"whitespace": "space_separated"
	}`
	path := writeTemp(t, "es.json", jsonDoc)
	lx, err := lexiconfile.LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon (json): %v", err)
	}
	if lx.Locale != "es-ES" {
		t.Fatalf("expected locale es-ES, got %q", lx.Locale)
	}
	lexicon.Reset()
}

func TestLoadVocabularyBuildsMappings(t *testing.T) {
	doc := `
domain: logistics
locale: fr-FR
mappings:
  - canonical: Driver
    localized: "Chauffeur"
    kind: struct
  - canonical: Driver.name
    localized: "nom"
    kind: field
    parent: Driver
    aliases: ["nom complet"]
`
	path := writeTemp(t, "voc.yaml", doc)
	voc, err := lexiconfile.LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary: %v", err)
	}
	if voc.Domain != "logistics" || len(voc.Mappings) != 2 {
		t.Fatalf("unexpected vocabulary: %+v", voc)
	}
	if voc.Mappings[1].Parent != "Driver" || len(voc.Mappings[1].Aliases) != 1 {
		t.Fatalf("expected parent/aliases to carry through, got %+v", voc.Mappings[1])
	}
}

func TestLoadVocabularyRejectsUnknownKind(t *testing.T) {
	doc := `
domain: logistics
mappings:
  - canonical: Driver
    localized: "Chauffeur"
    kind: widget
`
	path := writeTemp(t, "badvoc.yaml", doc)
	if _, err := lexiconfile.LoadVocabulary(path); err == nil {
		t.Fatal("expected an error for an unknown mapping kind")
	}
}

func TestLoadManifestBuildsAllowSet(t *testing.T) {
	doc := `
allowed_capabilities:
  - network.read
  - storage.write
`
	path := writeTemp(t, "manifest.yaml", doc)
	m, err := lexiconfile.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if !m.AllowedCapabilities["network.read"] || !m.AllowedCapabilities["storage.write"] {
		t.Fatalf("expected both capabilities allowed, got %+v", m.AllowedCapabilities)
	}
	if m.AllowedCapabilities["database.write"] {
		t.Fatalf("did not expect an undeclared capability to be allowed")
	}
}
