package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
)

//go:embed skills.yaml
var defaultVocabulary []byte

// vocabularyFile is the on-disk vocabulary format.
type vocabularyFile struct {
	Version string   `yaml:"version"`
	Skills  []string `yaml:"skills"`
}

// LoadVocabulary reads a vocabulary file. An empty path loads the embedded
// default list. Every failure is a *domain.ConfigurationError.
func LoadVocabulary(path string) (*skill.Vocabulary, error) {
	data := defaultVocabulary
	if path != "" {
		raw, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, domain.NewConfigurationError(-1, "", fmt.Sprintf("read vocabulary %s: %v", path, err))
		}
		data = raw
	}
	return ParseVocabulary(data)
}

// ParseVocabulary builds a vocabulary from YAML bytes.
func ParseVocabulary(data []byte) (*skill.Vocabulary, error) {
	var f vocabularyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, domain.NewConfigurationError(-1, "", fmt.Sprintf("parse vocabulary: %v", err))
	}
	if len(f.Skills) == 0 {
		return nil, domain.NewConfigurationError(-1, "", "vocabulary has no skills")
	}

	vocab, err := skill.LoadVersioned(f.Version, f.Skills)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return vocab, nil
}

// DefaultVocabulary returns the embedded vocabulary.
func DefaultVocabulary() *skill.Vocabulary {
	vocab, err := ParseVocabulary(defaultVocabulary)
	if err != nil {
		panic(err)
	}
	return vocab
}
