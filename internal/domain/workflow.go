package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yksanjo/smart-test-generator/internal/adapter"
	"github.com/yksanjo/smart-test-generator/internal/generator"
	m "github.com/yksanjo/smart-test-generator/internal/model"
	"github.com/yksanjo/smart-test-generator/pkg/orderedset"
)

// AnalysisFileName is the name of the persisted analysis document inside
// the output directory.
const AnalysisFileName = "analysis.yaml"

// GenerateArgs contains the arguments for a full generation run.
type GenerateArgs struct {
	Sources   []m.Path
	OutputDir m.Path
	TestTypes []string
	Recursive bool
	RunTests  bool
	Threads   uint
}

// Workflow is the top-level use case surface of the tool.
type Workflow interface {
	// Analyze parses the given files or directories and returns the merged
	// analysis. Files that fail to parse are recorded as skipped.
	Analyze(ctx context.Context, sources []m.Path, recursive bool, threads uint) (*m.AnalysisResult, error)

	// Generate runs the complete pipeline: analyze, generate test files,
	// optionally execute them, and persist the analysis next to the tests.
	Generate(ctx context.Context, args GenerateArgs) (*m.RunReport, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.AnalysisStore
	runner adapter.TestRunnerAdapter
	newRun func() *m.RunReport
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
// newRun stamps identity onto fresh reports; it exists as an injection
// point so tests get stable IDs.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.AnalysisStore,
	runner adapter.TestRunnerAdapter,
	newRun func() *m.RunReport,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		AnalysisStore:   store,
		runner:          runner,
		newRun:          newRun,
	}
}

func (w *workflow) Analyze(ctx context.Context, sources []m.Path, recursive bool, threads uint) (*m.AnalysisResult, error) {
	files, err := w.collectSourceFiles(sources, recursive)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no Python files found under %v", sources)
	}

	return w.analyzeAll(ctx, files, threads)
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) (*m.RunReport, error) {
	analysis, err := w.Analyze(ctx, args.Sources, args.Recursive, args.Threads)
	if err != nil {
		return nil, err
	}

	if err := w.MkdirAll(args.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	generators, err := selectGenerators(args.TestTypes)
	if err != nil {
		return nil, err
	}

	var written []string

	for _, gen := range generators {
		files, err := gen.Generate(analysis, args.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("generate %s tests: %w", gen.Name(), err)
		}

		for _, file := range files {
			if err := w.WriteFileAtomic(file.Path, []byte(file.Content()), 0o600); err != nil {
				return nil, fmt.Errorf("write %s: %w", file.Path, err)
			}

			slog.Info("wrote test file", "path", file.Path, "generator", gen.Name())
			written = append(written, string(file.Path))
		}
	}

	report := w.newRun()
	report.Analysis = analysis
	report.GeneratedTests = written

	if args.RunTests {
		results, err := w.runner.RunPytest(ctx, args.OutputDir, len(written))
		if err != nil {
			return nil, fmt.Errorf("run tests: %w", err)
		}

		results.TestFiles = written
		report.Results = &results
	}

	analysisPath := w.JoinPath(string(args.OutputDir), AnalysisFileName)
	if err := w.SaveAnalysis(analysisPath, analysis); err != nil {
		return nil, fmt.Errorf("persist analysis: %w", err)
	}

	return report, nil
}

// collectSourceFiles expands the requested paths to a flat, duplicate-free
// list of Python files. Directories contribute their files in sorted
// order so repeated runs see the same sequence.
func (w *workflow) collectSourceFiles(sources []m.Path, recursive bool) ([]m.Path, error) {
	set := orderedset.New()

	for _, source := range sources {
		info, err := w.FileInfo(source)
		if err != nil {
			return nil, fmt.Errorf("source path error: %w", err)
		}

		if !info.IsDir() {
			set.Add(string(source))

			continue
		}

		var found []string

		err = w.Walk(source, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				base := filepath.Base(path)
				if path != string(source) && (base == "__pycache__" || strings.HasPrefix(base, ".")) {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) == ".py" {
				found = append(found, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", source, err)
		}

		sort.Strings(found)
		set.AddAll(found)
	}

	paths := make([]m.Path, 0, set.Len())
	for _, p := range set.Items() {
		paths = append(paths, m.Path(p))
	}

	return paths, nil
}

// analyzeAll runs the per-file analysis in parallel and merges the
// outcomes in input order, so the merged result is independent of
// goroutine scheduling.
func (w *workflow) analyzeAll(ctx context.Context, files []m.Path, threads uint) (*m.AnalysisResult, error) {
	type outcome struct {
		analysis m.FileAnalysis
		skip     *m.SkippedFile
	}

	outcomes := make([]outcome, len(files))

	group, ctx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(int(threads))
	}

	for i, path := range files {
		i, path := i, path

		group.Go(func() error {
			text, err := w.ReadFile(path)
			if err != nil {
				outcomes[i] = outcome{skip: &m.SkippedFile{Path: path, Reason: err.Error()}}

				return nil
			}

			orch := NewOrchestrator()

			analysis, err := orch.AnalyzeFile(ctx, m.SourceUnit{Path: path, Text: text})
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}

				slog.Warn("skipping file", "path", path, "reason", err)
				outcomes[i] = outcome{skip: &m.SkippedFile{Path: path, Reason: err.Error()}}

				return nil
			}

			outcomes[i] = outcome{analysis: analysis}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &m.AnalysisResult{}
	edges := orderedset.New()
	failures := orderedset.New()

	for _, out := range outcomes {
		if out.skip != nil {
			result.Skipped = append(result.Skipped, *out.skip)

			continue
		}

		result.Files = append(result.Files, string(out.analysis.Path))
		result.Functions = append(result.Functions, out.analysis.Functions...)
		result.Classes = append(result.Classes, out.analysis.Classes...)
		result.Imports = append(result.Imports, out.analysis.Imports...)
		edges.AddAll(out.analysis.EdgeCases)
		failures.AddAll(out.analysis.FailureModes)
	}

	result.EdgeCases = edges.Items()
	result.FailureModes = failures.Items()

	return result, nil
}

// selectGenerators maps the requested test types to generator instances.
// An empty list and the special value "all" both select every generator.
func selectGenerators(testTypes []string) ([]generator.Generator, error) {
	all := len(testTypes) == 0

	for _, t := range testTypes {
		if t == "all" {
			all = true
		}
	}

	if all {
		return []generator.Generator{
			generator.NewUnitGenerator(),
			generator.NewIntegrationGenerator(),
			generator.NewPropertyGenerator(),
		}, nil
	}

	var generators []generator.Generator

	for _, t := range testTypes {
		switch t {
		case "unit":
			generators = append(generators, generator.NewUnitGenerator())
		case "integration":
			generators = append(generators, generator.NewIntegrationGenerator())
		case "property":
			generators = append(generators, generator.NewPropertyGenerator())
		default:
			return nil, fmt.Errorf("unknown test type %q (want unit, integration, property or all)", t)
		}
	}

	return generators, nil
}
