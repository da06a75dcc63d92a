package analyzer

import (
	"fmt"
	"strings"

	m "github.com/yksanjo/smart-test-generator/internal/model"
	"github.com/yksanjo/smart-test-generator/pkg/orderedset"
)

// nameRule pairs the keywords matched against a lowercased function name
// with the finding templates emitted when any keyword is a substring.
// Rules are applied in order and additively: one name can fire several.
type nameRule struct {
	keywords []string
	findings []string
}

// edgeNameRules is the function-name rule table. The message templates
// are load-bearing: downstream consumers key off the exact text.
var edgeNameRules = []nameRule{
	{[]string{"divide", "div", "/"}, []string{"division by zero", "integer overflow in division"}},
	{[]string{"sort", "order", "unique"}, []string{"empty collection", "single element collection", "collection with duplicates"}},
	{[]string{"find", "search", "index", "get"}, []string{"item not found", "empty collection"}},
	{[]string{"parse", "convert", "encode", "decode"}, []string{"empty string input", "invalid input format", "very long input"}},
	{[]string{"read", "load", "fetch", "get"}, []string{"empty file/data", "file not found", "permission denied"}},
	{[]string{"write", "save", "store"}, []string{"write to read-only location", "disk full"}},
}

// Annotation keyword sets. The tables deliberately keep the original
// casing split: "list" and "List" are both listed where the source rules
// listed both, and nowhere else.
var (
	numericAnnotations    = []string{"int", "float", "number"}
	stringAnnotations     = []string{"str", "string"}
	collectionAnnotations = []string{"list", "set", "dict", "List", "Set", "Dict", "Collection"}
)

const highComplexityEdge = 10

// EdgeCaseDetector derives textual edge-case findings from structural
// records using name and annotation heuristics. It is stateless; Detect
// never mutates its inputs.
type EdgeCaseDetector struct{}

// NewEdgeCaseDetector constructs an EdgeCaseDetector.
func NewEdgeCaseDetector() *EdgeCaseDetector {
	return &EdgeCaseDetector{}
}

// Detect returns the deduplicated, first-seen-ordered edge cases for the
// given functions and classes.
func (d *EdgeCaseDetector) Detect(functions []m.FunctionRecord, classes []m.ClassRecord) []string {
	set := orderedset.New()

	for _, fn := range functions {
		set.AddAll(d.detectFunction(fn))
	}

	for _, cls := range classes {
		set.AddAll(d.detectClass(cls))
	}

	return set.Items()
}

func (d *EdgeCaseDetector) detectFunction(fn m.FunctionRecord) []string {
	var cases []string

	name := fn.Name
	lower := strings.ToLower(name)

	for _, rule := range edgeNameRules {
		if containsAny(lower, rule.keywords) {
			for _, finding := range rule.findings {
				cases = append(cases, fmt.Sprintf("%s: %s", name, finding))
			}
		}
	}

	for _, arg := range fn.Args {
		switch {
		case contains(numericAnnotations, arg.Annotation):
			cases = append(cases,
				fmt.Sprintf("%s: %s = 0", name, arg.Name),
				fmt.Sprintf("%s: %s = negative", name, arg.Name),
				fmt.Sprintf("%s: %s = very large", name, arg.Name))

		case contains(stringAnnotations, arg.Annotation):
			cases = append(cases,
				fmt.Sprintf("%s: %s = empty string", name, arg.Name),
				fmt.Sprintf("%s: %s = very long string", name, arg.Name),
				fmt.Sprintf("%s: %s = special characters", name, arg.Name))

		case contains(collectionAnnotations, arg.Annotation):
			cases = append(cases,
				fmt.Sprintf("%s: %s = empty collection", name, arg.Name),
				fmt.Sprintf("%s: %s = very large collection", name, arg.Name))
		}
	}

	if fn.ReturnType == "int" || fn.ReturnType == "float" {
		cases = append(cases,
			fmt.Sprintf("%s: return zero", name),
			fmt.Sprintf("%s: return negative value", name))
	}

	if fn.Complexity > highComplexityEdge {
		cases = append(cases, fmt.Sprintf("%s: high complexity (%d) - test thoroughly", name, fn.Complexity))
	}

	if fn.HasVarArgs {
		cases = append(cases,
			fmt.Sprintf("%s: zero arguments passed to *args", name),
			fmt.Sprintf("%s: many arguments passed to *args", name))
	}

	if fn.HasKwArgs {
		cases = append(cases,
			fmt.Sprintf("%s: empty kwargs", name),
			fmt.Sprintf("%s: unexpected kwargs keys", name))
	}

	if fn.IsAsync {
		cases = append(cases, fmt.Sprintf("%s: async function - test concurrent calls", name))
	}

	return cases
}

func (d *EdgeCaseDetector) detectClass(cls m.ClassRecord) []string {
	name := cls.Name

	cases := []string{
		fmt.Sprintf("%s: initialization with invalid parameters", name),
		fmt.Sprintf("%s: initialization with None", name),
	}

	for _, method := range cls.Methods {
		switch {
		case method.Name == "__init__":
			cases = append(cases,
				fmt.Sprintf("%s: create instance with no arguments", name),
				fmt.Sprintf("%s: create instance with extra arguments", name))

		case strings.HasPrefix(method.Name, "__get"):
			cases = append(cases, fmt.Sprintf("%s: access non-existent attribute", name))
		}

		if method.Name == "__str__" || method.Name == "__repr__" {
			cases = append(cases, fmt.Sprintf("%s: string representation of edge case instances", name))
		}
	}

	return cases
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}

	return false
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}

	return false
}
