package vocabulary

// SampleFleetVocabulary is a small worked example domain vocabulary
// (spec.md §1's own example: "驾驶员 -> Driver"), used by tests and by
// callers bootstrapping a fresh registry. It is not auto-registered;
// callers opt in by calling Register(SampleFleetVocabulary()).
func SampleFleetVocabulary() *Vocabulary {
	return &Vocabulary{
		Domain: "fleet",
		Locale: "zh-CN",
		Mappings: []IdentifierMapping{
			{Canonical: "Driver", Localized: "驾驶员", Kind: Struct},
			{Canonical: "Vehicle", Localized: "车辆", Kind: Struct},
			{Canonical: "licenseNumber", Localized: "驾照号码", Kind: Field, Parent: "Driver"},
			{Canonical: "assignDriver", Localized: "分配驾驶员", Kind: Function},
			{Canonical: "Active", Localized: "在职", Kind: EnumValue, Parent: "DriverStatus"},
			{Canonical: "Suspended", Localized: "停职", Kind: EnumValue, Parent: "DriverStatus", Aliases: []string{"暂停"}},
		},
	}
}
