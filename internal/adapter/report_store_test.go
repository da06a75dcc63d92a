package adapter

import (
	"path/filepath"
	"reflect"
	"testing"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

func TestYAMLAnalysisStore_RoundTrip(t *testing.T) {
	store := NewYAMLAnalysisStore()
	path := m.Path(filepath.Join(t.TempDir(), "analysis.yaml"))

	analysis := &m.AnalysisResult{
		Files: []string{"service.py"},
		Functions: []m.FunctionRecord{
			{
				Name:       "divide",
				Args:       []m.ArgumentRecord{{Name: "a", Annotation: "int"}},
				ReturnType: "float",
				Line:       4,
				Complexity: 2,
			},
		},
		Classes: []m.ClassRecord{
			{Name: "Calculator", Bases: []string{"Base"}, Line: 10},
		},
		Imports: []m.ImportRecord{
			{Module: "os", Name: "os", Kind: m.ImportDirect},
		},
		EdgeCases:    []string{"divide: division - test with zero divisor"},
		FailureModes: []string{"divide: may not handle None a"},
		Skipped: []m.SkippedFile{
			{Path: "broken.py", Reason: "syntax error at line 1, column 1: near \"def (\""},
		},
	}

	if err := store.SaveAnalysis(path, analysis); err != nil {
		t.Fatalf("SaveAnalysis() error = %v", err)
	}

	loaded, err := store.LoadAnalysis(path)
	if err != nil {
		t.Fatalf("LoadAnalysis() error = %v", err)
	}

	if !reflect.DeepEqual(loaded, analysis) {
		t.Fatalf("LoadAnalysis() = %+v, want %+v", loaded, analysis)
	}
}

func TestYAMLAnalysisStore_LoadMissingFile(t *testing.T) {
	store := NewYAMLAnalysisStore()

	if _, err := store.LoadAnalysis(m.Path(filepath.Join(t.TempDir(), "absent.yaml"))); err == nil {
		t.Fatal("LoadAnalysis() expected error for missing file")
	}
}
