package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// AnalysisStore persists analysis results between runs so the view
// command can render them without re-parsing the sources.
type AnalysisStore interface {
	SaveAnalysis(path m.Path, analysis *m.AnalysisResult) error
	LoadAnalysis(path m.Path) (*m.AnalysisResult, error)
}

// YAMLAnalysisStore stores analysis results as a YAML document.
type YAMLAnalysisStore struct{}

// NewYAMLAnalysisStore constructs a YAMLAnalysisStore.
func NewYAMLAnalysisStore() *YAMLAnalysisStore {
	return &YAMLAnalysisStore{}
}

// SaveAnalysis marshals the analysis to YAML and writes it to path.
func (s *YAMLAnalysisStore) SaveAnalysis(path m.Path, analysis *m.AnalysisResult) error {
	data, err := yaml.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}

	return nil
}

// LoadAnalysis reads and unmarshals a previously saved analysis.
func (s *YAMLAnalysisStore) LoadAnalysis(path m.Path) (*m.AnalysisResult, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read analysis: %w", err)
	}

	var analysis m.AnalysisResult
	if err := yaml.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}

	return &analysis, nil
}
