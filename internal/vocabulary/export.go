package vocabulary

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
)

// exportMapping is the JSON wire shape for one IdentifierMapping.
type exportMapping struct {
	Canonical string   `json:"canonical"`
	Localized string   `json:"localized"`
	Kind      string   `json:"kind"`
	Parent    string   `json:"parent,omitempty"`
	Aliases   []string `json:"aliases,omitempty"`
}

type exportVocabulary struct {
	Domain   string          `json:"domain"`
	Locale   string          `json:"locale"`
	Mappings []exportMapping `json:"mappings"`
}

// Export is the top-level deterministic export document (spec.md §6).
type Export struct {
	Version       int                         `json:"version"`
	GeneratedAt   string                      `json:"generatedAt"`
	Vocabularies  map[string]exportVocabulary `json:"vocabularies"`
	Checksum      string                      `json:"checksum"`
}

const exportVersion = 1

// BuildExport renders the given vocabularies (keyed "<domain>:<locale>",
// as returned by All()) into a deterministic Export. generatedAt is
// supplied by the caller (the core never calls time.Now() itself, since
// that would make the export non-reproducible — spec.md forbids the
// core depending on wall-clock time for anything checker-visible).
func BuildExport(vocs map[string]*Vocabulary, generatedAt string) (*Export, error) {
	subObject := make(map[string]exportVocabulary, len(vocs))
	for k, v := range vocs {
		subObject[k] = toExportVocabulary(v)
	}

	checksum, err := checksumOf(subObject)
	if err != nil {
		return nil, fmt.Errorf("vocabulary export: computing checksum: %w", err)
	}

	return &Export{
		Version:      exportVersion,
		GeneratedAt:  generatedAt,
		Vocabularies: subObject,
		Checksum:     checksum,
	}, nil
}

func toExportVocabulary(v *Vocabulary) exportVocabulary {
	mappings := make([]exportMapping, 0, len(v.Mappings))
	for _, m := range v.Mappings {
		mappings = append(mappings, exportMapping{
			Canonical: m.Canonical,
			Localized: m.Localized,
			Kind:      m.Kind.String(),
			Parent:    m.Parent,
			Aliases:   m.Aliases,
		})
	}
	sort.Slice(mappings, func(i, j int) bool {
		if mappings[i].Canonical != mappings[j].Canonical {
			return mappings[i].Canonical < mappings[j].Canonical
		}
		return mappings[i].Localized < mappings[j].Localized
	})
	return exportVocabulary{Domain: v.Domain, Locale: v.Locale, Mappings: mappings}
}

// checksumOf computes SHA-256 of the compact JSON encoding of obj with
// map keys sorted (spec.md §6: "SHA-256 of the compact JSON of the
// vocabularies sub-object with keys sorted"). encoding/json already
// sorts map[string]X keys when marshaling, giving us this for free.
func checksumOf(obj map[string]exportVocabulary) (string, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum), nil
}
