// Package generator emits test-file scaffolding from analysis results.
// Generators are pure: they build every file fully in memory and never
// touch the filesystem themselves.
package generator

import (
	"path/filepath"
	"strings"

	m "github.com/yksanjo/smart-test-generator/internal/model"
)

// Generator is one test-skeleton producer. Generate returns zero files
// when the analysis holds nothing of the generator's kind; that is not an
// error.
type Generator interface {
	Name() string
	Generate(analysis *m.AnalysisResult, outDir m.Path) ([]m.GeneratedTestFile, error)
}

// publicFunction reports whether a function name is considered public.
// A single leading underscore marks it private; dunder names stay public.
func publicFunction(name string) bool {
	return !strings.HasPrefix(name, "_") || strings.HasPrefix(name, "__")
}

// publicClass reports whether a class name is considered public. Unlike
// functions, any leading underscore hides a class.
func publicClass(name string) bool {
	return !strings.HasPrefix(name, "_")
}

// literalForType maps an annotation string to a synthesized Python
// literal used as a placeholder argument.
func literalForType(annotation string) string {
	if strings.Contains(annotation, "Optional[") {
		return "None"
	}
	if strings.Contains(annotation, "List[") {
		return "[]"
	}
	if strings.Contains(annotation, "Dict[") {
		return "{}"
	}

	switch annotation {
	case "int":
		return "1"
	case "float":
		return "1.0"
	case "str":
		return `"test"`
	case "bool":
		return "True"
	case "list", "List":
		return "[]"
	case "dict", "Dict":
		return "{}"
	case "set", "Set":
		return "set()"
	case "tuple", "Tuple":
		return "()"
	case "bytes":
		return `b""`
	case "bytearray":
		return "bytearray()"
	case "MemoryView":
		return `memoryview(b"")`
	}

	return "None"
}

// callArgs synthesizes the literal argument list for invoking fn.
func callArgs(args []m.ArgumentRecord) string {
	literals := make([]string, len(args))
	for i, arg := range args {
		literals[i] = literalForType(arg.Annotation)
	}

	return strings.Join(literals, ", ")
}

func testFilePath(outDir m.Path, name string) m.Path {
	return m.Path(filepath.Join(string(outDir), name))
}
