// Package vocabulary implements domain-vocabulary identifier mapping:
// bidirectional, case-insensitive lookup between canonical identifiers
// (e.g. Driver) and their localized surface forms (e.g. 驾驶员), plus a
// deterministic JSON export format (spec.md §3 "Domain vocabulary", §6
// "Vocabulary export").
package vocabulary

import "golang.org/x/text/cases"

// Kind classifies what an IdentifierMapping names.
type Kind int

const (
	Struct Kind = iota
	Field
	Function
	EnumValue
)

func (k Kind) String() string {
	switch k {
	case Struct:
		return "Struct"
	case Field:
		return "Field"
	case Function:
		return "Function"
	case EnumValue:
		return "EnumValue"
	default:
		return "Unknown"
	}
}

// IdentifierMapping binds one canonical identifier to one localized
// surface form within a domain vocabulary.
type IdentifierMapping struct {
	Canonical string
	Localized string
	Kind      Kind
	Parent    string   // e.g. the owning struct's canonical name, for Field/EnumValue
	Aliases   []string // additional localized spellings
}

// Vocabulary is a named set of identifier mappings for one domain+locale.
type Vocabulary struct {
	Domain   string
	Locale   string
	Mappings []IdentifierMapping
}

// IdentifierIndex is a compiled, queryable view over one or more
// vocabularies, supporting bidirectional lookup with case-insensitive
// matching on the canonical side (spec.md §3).
type IdentifierIndex struct {
	byCanonicalLower map[string]IdentifierMapping
	byLocalized      map[string]IdentifierMapping // key: locale + "\x00" + localized
}

var caseFolder = cases.Fold()

// NewIndex compiles an IdentifierIndex from one or more vocabularies.
// Later vocabularies win on conflicting canonical names.
func NewIndex(vocs ...*Vocabulary) *IdentifierIndex {
	idx := &IdentifierIndex{
		byCanonicalLower: map[string]IdentifierMapping{},
		byLocalized:      map[string]IdentifierMapping{},
	}
	for _, v := range vocs {
		idx.add(v)
	}
	return idx
}

func (idx *IdentifierIndex) add(v *Vocabulary) {
	for _, m := range v.Mappings {
		idx.byCanonicalLower[caseFolder.String(m.Canonical)] = m
		idx.byLocalized[localizedKey(v.Locale, m.Localized)] = m
		for _, alias := range m.Aliases {
			idx.byLocalized[localizedKey(v.Locale, alias)] = m
		}
	}
}

func localizedKey(locale, localized string) string {
	return locale + "\x00" + localized
}

// Lookup finds a mapping by its canonical identifier, case-insensitively.
func (idx *IdentifierIndex) Lookup(canonical string) (IdentifierMapping, bool) {
	m, ok := idx.byCanonicalLower[caseFolder.String(canonical)]
	return m, ok
}

// LookupLocalized finds a mapping by its exact localized surface form
// within one locale (localized matching is exact, not folded: CJK
// domain vocabulary has no case to fold).
func (idx *IdentifierIndex) LookupLocalized(locale, localized string) (IdentifierMapping, bool) {
	m, ok := idx.byLocalized[localizedKey(locale, localized)]
	return m, ok
}

// CanonicalFor translates a localized identifier to its canonical form,
// or returns the input unchanged if no mapping exists (so callers can
// apply it unconditionally during canonicalization, spec.md §4.1 step 11).
func (idx *IdentifierIndex) CanonicalFor(locale, localized string) string {
	if m, ok := idx.LookupLocalized(locale, localized); ok {
		return m.Canonical
	}
	return localized
}
