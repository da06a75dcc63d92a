package model

import "strings"

// FileAnalysis is the per-file output of the orchestrator: structural
// records plus the findings detected for that file, still undeduplicated
// against the rest of the run.
type FileAnalysis struct {
	Path         Path
	Functions    []FunctionRecord
	Classes      []ClassRecord
	Imports      []ImportRecord
	EdgeCases    []string
	FailureModes []string
}

// AnalysisResult aggregates a whole run. It is built fresh per run and
// owned exclusively by the workflow; classifiers and generators only ever
// read it. EdgeCases and FailureModes are deduplicated run-wide with
// first-seen order preserved.
type AnalysisResult struct {
	Files        []string         `yaml:"files" json:"files"`
	Functions    []FunctionRecord `yaml:"functions,omitempty" json:"functions,omitempty"`
	Classes      []ClassRecord    `yaml:"classes,omitempty" json:"classes,omitempty"`
	Imports      []ImportRecord   `yaml:"imports,omitempty" json:"imports,omitempty"`
	EdgeCases    []string         `yaml:"edge_cases,omitempty" json:"edge_cases,omitempty"`
	FailureModes []string         `yaml:"failure_modes,omitempty" json:"failure_modes,omitempty"`
	Skipped      []SkippedFile    `yaml:"skipped,omitempty" json:"skipped,omitempty"`
}

// GeneratedTestFile is one fully-formed test file produced by a generator.
// It is assembled entirely in memory and written once, atomically.
type GeneratedTestFile struct {
	Path  Path
	Lines []string
}

// Content joins the lines into the final file text.
func (g GeneratedTestFile) Content() string {
	return strings.Join(g.Lines, "\n")
}
