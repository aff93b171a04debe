package docfill

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// TypeKeywords is one entry in the document-type precedence chain.
type TypeKeywords struct {
	Type     DocumentType `yaml:"type"`
	Keywords []string     `yaml:"keywords"`
}

// FallbackSection is one named bucket in a type's fallback table.
type FallbackSection struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// KeywordConfig is the immutable keyword taxonomy driving the classifier and
// the section assigner. It is loaded once and passed in explicitly rather
// than referenced as ambient state.
type KeywordConfig struct {
	Types     []TypeKeywords                     `yaml:"types"`
	Concepts  map[string][]string                `yaml:"concepts"`
	Fallbacks map[DocumentType][]FallbackSection `yaml:"fallbacks"`
}

// ParseKeywordConfig parses a YAML keyword taxonomy.
func ParseKeywordConfig(data []byte) (*KeywordConfig, error) {
	var cfg KeywordConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse keyword config: %w", err)
	}
	if len(cfg.Types) == 0 {
		return nil, fmt.Errorf("keyword config defines no document types")
	}
	if _, ok := cfg.Fallbacks[TypeGeneric]; !ok {
		return nil, fmt.Errorf("keyword config is missing the %q fallback table", TypeGeneric)
	}
	return &cfg, nil
}

var loadDefaultKeywords = sync.OnceValue(func() *KeywordConfig {
	cfg, err := ParseKeywordConfig(defaultKeywordsYAML)
	if err != nil {
		// The embedded taxonomy ships with the binary; failing to parse
		// it is a build defect, not a runtime condition.
		panic(fmt.Sprintf("docfill: invalid embedded keyword config: %v", err))
	}
	return cfg
})

// DefaultKeywords returns the built-in keyword taxonomy.
func DefaultKeywords() *KeywordConfig {
	return loadDefaultKeywords()
}

// fallbackFor returns the fallback section table for a document type,
// defaulting to the generic table.
func (c *KeywordConfig) fallbackFor(t DocumentType) []FallbackSection {
	if sections, ok := c.Fallbacks[t]; ok {
		return sections
	}
	return c.Fallbacks[TypeGeneric]
}
