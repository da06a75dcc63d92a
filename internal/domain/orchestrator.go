// Package domain holds the workflow logic that ties the analyzer,
// generators and adapters together.
package domain

import (
	"context"
	"fmt"

	"github.com/yksanjo/smart-test-generator/internal/analyzer"
	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// Orchestrator coordinates the single-file analysis pass: parsing the
// source, extracting structural records and running both finding
// detectors over them.
type Orchestrator interface {
	AnalyzeFile(ctx context.Context, unit m.SourceUnit) (m.FileAnalysis, error)
}

type orchestrator struct {
	parser   *analyzer.Parser
	edges    *analyzer.EdgeCaseDetector
	failures *analyzer.FailureModeDetector
}

// NewOrchestrator constructs an Orchestrator with its own parser
// instance. The parser is not safe for concurrent use, so callers that
// analyze in parallel create one Orchestrator per worker.
func NewOrchestrator() Orchestrator {
	return &orchestrator{
		parser:   analyzer.NewParser(),
		edges:    analyzer.NewEdgeCaseDetector(),
		failures: analyzer.NewFailureModeDetector(),
	}
}

func (o *orchestrator) AnalyzeFile(ctx context.Context, unit m.SourceUnit) (m.FileAnalysis, error) {
	tree, err := o.parser.Parse(ctx, unit.Text)
	if err != nil {
		return m.FileAnalysis{}, fmt.Errorf("analyze %s: %w", unit.Path, err)
	}

	defer tree.Close()

	extraction := analyzer.Extract(tree)

	return m.FileAnalysis{
		Path:         unit.Path,
		Functions:    extraction.Functions,
		Classes:      extraction.Classes,
		Imports:      extraction.Imports,
		EdgeCases:    o.edges.Detect(extraction.Functions, extraction.Classes),
		FailureModes: o.failures.Detect(extraction.Functions, extraction.Classes),
	}, nil
}
