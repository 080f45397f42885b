package lexicon_test

import (
	"testing"

	"github.com/cnlforge/corelang/internal/lexicon"
)

func TestGetReturnsBuiltinLocales(t *testing.T) {
	for _, locale := range []string{"en-US", "zh-CN", "de-DE"} {
		if _, ok := lexicon.Get(locale); !ok {
			t.Errorf("expected %s to be registered", locale)
		}
	}
}

func TestGetUnknownLocaleReturnsFalse(t *testing.T) {
	if _, ok := lexicon.Get("xx-XX"); ok {
		t.Fatal("expected unregistered locale to report ok=false")
	}
}

func TestRegisterAddsLocaleAndResetRestoresDefaults(t *testing.T) {
	defer lexicon.Reset()

	custom := &lexicon.Lexicon{Locale: "fr-FR", Keywords: map[lexicon.Keyword]string{}}
	lexicon.Register(custom)

	if _, ok := lexicon.Get("fr-FR"); !ok {
		t.Fatal("expected fr-FR to be registered after Register")
	}

	lexicon.Reset()
	if _, ok := lexicon.Get("fr-FR"); ok {
		t.Fatal("expected Reset to discard locales registered after bootstrap")
	}
	if _, ok := lexicon.Get("en-US"); !ok {
		t.Fatal("expected Reset to restore built-in en-US")
	}
}

func TestOperatorSymbolMapsWordsToSymbols(t *testing.T) {
	sym, ok := lexicon.OperatorSymbol(lexicon.KwPlus)
	if !ok || sym != "+" {
		t.Fatalf("expected KwPlus -> \"+\", got %q, %v", sym, ok)
	}
	if _, ok := lexicon.OperatorSymbol(lexicon.KwReturn); ok {
		t.Fatal("expected KwReturn not to be an operator keyword")
	}
}

// KeywordList must sort longest-localized-string first, so the
// canonicalizer's longest-match-first scan (spec.md §4.1 step 10) never
// matches a short keyword as a prefix of a longer one.
func TestKeywordListOrdersLongestLocalizedFirst(t *testing.T) {
	lx, ok := lexicon.Get("zh-CN")
	if !ok {
		t.Fatal("expected zh-CN lexicon to be registered")
	}
	entries := lx.KeywordList()
	if len(entries) == 0 {
		t.Fatal("expected a non-empty keyword list")
	}
	for i := 1; i < len(entries); i++ {
		if len([]rune(entries[i-1].Localized)) < len([]rune(entries[i].Localized)) {
			t.Fatalf("keyword list not sorted by descending length at index %d: %q before %q",
				i, entries[i-1].Localized, entries[i].Localized)
		}
	}
}

func TestLocalesIncludesAllBuiltins(t *testing.T) {
	locales := lexicon.Locales()
	want := map[string]bool{"en-US": true, "zh-CN": true, "de-DE": true}
	for _, l := range locales {
		delete(want, l)
	}
	if len(want) != 0 {
		t.Fatalf("missing builtin locales from Locales(): %v", want)
	}
}
