// Package lexiconfile loads Lexicon, Vocabulary, and capability Manifest
// definitions from external YAML or JSON files (spec.md §6 "external
// interfaces": a locale is data, not code, so a deployment can add one
// without a Go change). Loaded lexicons are registered into
// internal/lexicon's process-wide registry; vocabularies and manifests
// are returned for the caller to wire into a pipeline.Context.
package lexiconfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cnlforge/corelang/internal/lexicon"
)

// quoteFile is the textual form of lexicon.QuotePair: a single rune each,
// written as a one-character string so the file stays readable.
type quoteFile struct {
	Open  string `yaml:"open" json:"open"`
	Close string `yaml:"close" json:"close"`
}

type rewriteRuleFile struct {
	Pattern     string `yaml:"pattern" json:"pattern"`
	Replacement string `yaml:"replacement" json:"replacement"`
}

// LexiconFile is the on-disk shape of one locale's lexicon.Lexicon.
type LexiconFile struct {
	Locale            string            `yaml:"locale" json:"locale"`
	Keywords          map[string]string `yaml:"keywords" json:"keywords"`
	MultiWordKeywords []string          `yaml:"multi_word_keywords,omitempty" json:"multi_word_keywords,omitempty"`
	Quote             quoteFile         `yaml:"quote" json:"quote"`
	Whitespace        string            `yaml:"whitespace" json:"whitespace"` // "space_separated" | "spaceless"
	Articles          []string          `yaml:"articles,omitempty" json:"articles,omitempty"`
	RewriteRules      []rewriteRuleFile `yaml:"rewrite_rules,omitempty" json:"rewrite_rules,omitempty"`
	FoldFullWidth     bool              `yaml:"fold_full_width,omitempty" json:"fold_full_width,omitempty"`
}

// LoadLexicon reads a lexicon definition from path and registers it into
// internal/lexicon under its own Locale, so later lexicon.Get(locale)
// calls find it.
func LoadLexicon(path string) (*lexicon.Lexicon, error) {
	lx, err := ParseLexiconFile(path)
	if err != nil {
		return nil, err
	}
	lexicon.Register(lx)
	return lx, nil
}

// ParseLexiconFile reads and builds a Lexicon from path without
// registering it, for callers that want to inspect it first.
func ParseLexiconFile(path string) (*lexicon.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	var file LexiconFile
	if err := unmarshal(path, data, &file); err != nil {
		return nil, fmt.Errorf("parsing lexicon %s: %w", path, err)
	}
	return file.build(path)
}

func (f *LexiconFile) build(path string) (*lexicon.Lexicon, error) {
	if f.Locale == "" {
		return nil, fmt.Errorf("lexicon %s: locale is required", path)
	}
	keywords := make(map[lexicon.Keyword]string, len(f.Keywords))
	for k, v := range f.Keywords {
		keywords[lexicon.Keyword(k)] = v
	}

	open, err := singleRune(f.Quote.Open)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: quote.open: %w", path, err)
	}
	closeR, err := singleRune(f.Quote.Close)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: quote.close: %w", path, err)
	}

	whitespace, err := parseWhitespace(f.Whitespace)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}

	rules := make([]lexicon.RewriteRule, 0, len(f.RewriteRules))
	for _, r := range f.RewriteRules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("lexicon %s: rewrite rule %q: %w", path, r.Pattern, err)
		}
		rules = append(rules, lexicon.RewriteRule{Pattern: re, Replacement: r.Replacement})
	}

	return &lexicon.Lexicon{
		Locale:            f.Locale,
		Keywords:          keywords,
		MultiWordKeywords: f.MultiWordKeywords,
		Quote:             lexicon.QuotePair{Open: open, Close: closeR},
		Whitespace:        whitespace,
		Articles:          f.Articles,
		RewriteRules:      rules,
		FoldFullWidth:     f.FoldFullWidth,
	}, nil
}

func singleRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected exactly one character, got %q", s)
	}
	return runes[0], nil
}

func parseWhitespace(s string) (lexicon.WhitespaceMode, error) {
	switch strings.ToLower(s) {
	case "", "space_separated":
		return lexicon.SpaceSeparated, nil
	case "spaceless":
		return lexicon.Spaceless, nil
	default:
		return 0, fmt.Errorf("unknown whitespace mode %q", s)
	}
}

// unmarshal dispatches on file extension: .json files go through
// encoding/json, everything else is treated as YAML.
func unmarshal(path string, data []byte, v any) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}
