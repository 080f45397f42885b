package lexiconfile

import (
	"fmt"
	"os"

	"github.com/cnlforge/corelang/internal/effects"
)

// ManifestFile is the on-disk shape of an effects.Manifest: a flat list
// of capability names a deployment allows modules to declare.
type ManifestFile struct {
	AllowedCapabilities []string `yaml:"allowed_capabilities" json:"allowed_capabilities"`
}

// LoadManifest reads a capability allow-list from path.
func LoadManifest(path string) (*effects.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var file ManifestFile
	if err := unmarshal(path, data, &file); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	allowed := make(map[string]bool, len(file.AllowedCapabilities))
	for _, c := range file.AllowedCapabilities {
		allowed[c] = true
	}
	return &effects.Manifest{AllowedCapabilities: allowed}, nil
}
