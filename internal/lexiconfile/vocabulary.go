package lexiconfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/cnlforge/corelang/internal/vocabulary"
)

type mappingFile struct {
	Canonical string   `yaml:"canonical" json:"canonical"`
	Localized string   `yaml:"localized" json:"localized"`
	Kind      string   `yaml:"kind" json:"kind"` // struct | field | function | enum_value
	Parent    string   `yaml:"parent,omitempty" json:"parent,omitempty"`
	Aliases   []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// VocabularyFile is the on-disk shape of one domain vocabulary.Vocabulary.
type VocabularyFile struct {
	Domain   string        `yaml:"domain" json:"domain"`
	Locale   string        `yaml:"locale" json:"locale"`
	Mappings []mappingFile `yaml:"mappings" json:"mappings"`
}

// LoadVocabulary reads a domain vocabulary from path. The caller is
// responsible for compiling it (and any others) into an IdentifierIndex
// via vocabulary.NewIndex.
func LoadVocabulary(path string) (*vocabulary.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary %s: %w", path, err)
	}
	var file VocabularyFile
	if err := unmarshal(path, data, &file); err != nil {
		return nil, fmt.Errorf("parsing vocabulary %s: %w", path, err)
	}
	return file.build(path)
}

func (f *VocabularyFile) build(path string) (*vocabulary.Vocabulary, error) {
	if f.Domain == "" {
		return nil, fmt.Errorf("vocabulary %s: domain is required", path)
	}
	mappings := make([]vocabulary.IdentifierMapping, 0, len(f.Mappings))
	for i, m := range f.Mappings {
		kind, err := parseKind(m.Kind)
		if err != nil {
			return nil, fmt.Errorf("vocabulary %s: mapping %d (%s): %w", path, i, m.Canonical, err)
		}
		mappings = append(mappings, vocabulary.IdentifierMapping{
			Canonical: m.Canonical,
			Localized: m.Localized,
			Kind:      kind,
			Parent:    m.Parent,
			Aliases:   m.Aliases,
		})
	}
	return &vocabulary.Vocabulary{Domain: f.Domain, Locale: f.Locale, Mappings: mappings}, nil
}

func parseKind(s string) (vocabulary.Kind, error) {
	switch strings.ToLower(s) {
	case "struct":
		return vocabulary.Struct, nil
	case "field":
		return vocabulary.Field, nil
	case "function":
		return vocabulary.Function, nil
	case "enum_value", "enumvalue":
		return vocabulary.EnumValue, nil
	default:
		return 0, fmt.Errorf("unknown kind %q", s)
	}
}
