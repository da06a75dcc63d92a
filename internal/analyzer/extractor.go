package analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	m "github.com/yksanjo/smart-test-generator/internal/model"
	"github.com/yksanjo/smart-test-generator/pkg/orderedset"
)

// Extract walks the whole tree in pre-order and produces the ordered
// structural records for functions, classes and imports. Nested
// definitions are included: every function_definition reachable from the
// root yields a FunctionRecord, whether it sits at module level, inside a
// class body or inside another function.
func Extract(tree *SyntaxTree) m.Extraction {
	var ex m.Extraction

	walkDefinitions(tree, tree.Root(), nil, &ex)

	return ex
}

// walkDefinitions recurses through every named node. Decorated definitions
// hand their decorator list down to the wrapped definition.
func walkDefinitions(tree *SyntaxTree, node *sitter.Node, decorators []string, ex *m.Extraction) {
	switch node.Type() {
	case "decorated_definition":
		decs := extractDecorators(tree, node)
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child.Type() == "function_definition" || child.Type() == "class_definition" {
				walkDefinitions(tree, child, decs, ex)
			}
		}

		return

	case "function_definition":
		ex.Functions = append(ex.Functions, extractFunction(tree, node, decorators))

	case "class_definition":
		ex.Classes = append(ex.Classes, extractClass(tree, node, decorators))

	case "import_statement":
		ex.Imports = append(ex.Imports, extractImport(tree, node)...)

	case "import_from_statement":
		ex.Imports = append(ex.Imports, extractFromImport(tree, node)...)
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		walkDefinitions(tree, node.NamedChild(i), nil, ex)
	}
}

// extractFunction builds the FunctionRecord for one function_definition.
func extractFunction(tree *SyntaxTree, node *sitter.Node, decorators []string) m.FunctionRecord {
	record := m.FunctionRecord{
		Name:       childFieldText(tree, node, "name"),
		Decorators: decorators,
		Line:       int(node.StartPoint().Row) + 1,
		Complexity: complexity(node),
		Body:       tree.Text(node),
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == "async" {
			record.IsAsync = true
			break
		}
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		fillParameters(tree, params, &record)
	}

	if ret := node.ChildByFieldName("return_type"); ret != nil {
		record.ReturnType = renderExpr(tree, ret)
	}

	if body := node.ChildByFieldName("body"); body != nil {
		record.Docstring = extractDocstring(tree, body)
	}

	for _, dec := range decorators {
		switch terminalIdentifier(dec) {
		case "staticmethod":
			record.IsStatic = true
		case "classmethod":
			record.IsClassMethod = true
		}
	}

	return record
}

// fillParameters mirrors the positional-argument view of a signature:
// plain, typed and defaulted parameters before any *args or bare * marker
// land in Args; keyword-only parameters do not. Splat parameters only set
// the variadic flags.
func fillParameters(tree *SyntaxTree, params *sitter.Node, record *m.FunctionRecord) {
	keywordOnly := false

	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)

		switch child.Type() {
		case "identifier":
			if !keywordOnly {
				record.Args = append(record.Args, m.ArgumentRecord{Name: tree.Text(child)})
			}

		case "typed_parameter":
			if !keywordOnly {
				arg := m.ArgumentRecord{Name: parameterName(tree, child)}
				if typeNode := child.ChildByFieldName("type"); typeNode != nil {
					arg.Annotation = renderExpr(tree, typeNode)
				}
				record.Args = append(record.Args, arg)
			}

		case "default_parameter", "typed_default_parameter":
			if !keywordOnly {
				arg := m.ArgumentRecord{Name: childFieldText(tree, child, "name")}
				if typeNode := child.ChildByFieldName("type"); typeNode != nil {
					arg.Annotation = renderExpr(tree, typeNode)
				}
				record.Args = append(record.Args, arg)
				record.HasDefaults = true
			}

		case "list_splat_pattern":
			record.HasVarArgs = true
			keywordOnly = true

		case "keyword_separator":
			keywordOnly = true

		case "dictionary_splat_pattern":
			record.HasKwArgs = true
		}
	}
}

// parameterName returns the identifier of a typed_parameter.
func parameterName(tree *SyntaxTree, node *sitter.Node) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "identifier" {
			return tree.Text(child)
		}
	}

	return ""
}

// extractClass builds the ClassRecord for one class_definition, including
// its direct methods and annotated class-level attributes.
func extractClass(tree *SyntaxTree, node *sitter.Node, decorators []string) m.ClassRecord {
	_ = decorators // class decorators carry no classification signal today

	record := m.ClassRecord{
		Name: childFieldText(tree, node, "name"),
		Line: int(node.StartPoint().Row) + 1,
	}

	if supers := node.ChildByFieldName("superclasses"); supers != nil {
		for i := 0; i < int(supers.NamedChildCount()); i++ {
			base := supers.NamedChild(i)
			if base.Type() == "keyword_argument" {
				continue // metaclass=... is not a base
			}

			record.Bases = append(record.Bases, renderExpr(tree, base))
		}
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return record
	}

	record.Docstring = extractDocstring(tree, body)

	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)

		switch child.Type() {
		case "function_definition":
			record.Methods = append(record.Methods, extractFunction(tree, child, nil))

		case "decorated_definition":
			decs := extractDecorators(tree, child)
			for j := 0; j < int(child.NamedChildCount()); j++ {
				inner := child.NamedChild(j)
				if inner.Type() == "function_definition" {
					record.Methods = append(record.Methods, extractFunction(tree, inner, decs))
				}
			}

		case "expression_statement":
			if attr, ok := extractAttribute(tree, child); ok {
				record.Attributes = append(record.Attributes, attr)
			}
		}
	}

	return record
}

// extractAttribute recognizes annotated class attributes (`name: type` or
// `name: type = value`).
func extractAttribute(tree *SyntaxTree, stmt *sitter.Node) (m.AttributeRecord, bool) {
	if stmt.NamedChildCount() != 1 {
		return m.AttributeRecord{}, false
	}

	assign := stmt.NamedChild(0)
	if assign.Type() != "assignment" {
		return m.AttributeRecord{}, false
	}

	typeNode := assign.ChildByFieldName("type")
	left := assign.ChildByFieldName("left")

	if typeNode == nil || left == nil || left.Type() != "identifier" {
		return m.AttributeRecord{}, false
	}

	return m.AttributeRecord{
		Name:       tree.Text(left),
		Annotation: renderExpr(tree, typeNode),
	}, true
}

// extractDecorators renders every decorator expression of a
// decorated_definition to its literal source form, without the @.
func extractDecorators(tree *SyntaxTree, node *sitter.Node) []string {
	var decorators []string

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "decorator" {
			continue
		}

		for j := 0; j < int(child.NamedChildCount()); j++ {
			decorators = append(decorators, renderExpr(tree, child.NamedChild(j)))
		}
	}

	return decorators
}

// terminalIdentifier reduces a rendered decorator expression to its last
// identifier: "classmethod", "abc.classmethod" and "classmethod()" all
// yield "classmethod". Matching is purely textual; imports are never
// resolved.
func terminalIdentifier(expr string) string {
	if idx := strings.IndexByte(expr, '('); idx >= 0 {
		expr = expr[:idx]
	}
	if idx := strings.LastIndexByte(expr, '.'); idx >= 0 {
		expr = expr[idx+1:]
	}

	return strings.TrimSpace(expr)
}

// extractImport handles `import a.b` and `import a.b as c`.
func extractImport(tree *SyntaxTree, node *sitter.Node) []m.ImportRecord {
	var records []m.ImportRecord

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case "dotted_name":
			name := tree.Text(child)
			records = append(records, m.ImportRecord{Module: name, Name: name, Kind: m.ImportDirect})

		case "aliased_import":
			module := childFieldText(tree, child, "name")
			alias := childFieldText(tree, child, "alias")
			if alias == "" {
				alias = module
			}
			records = append(records, m.ImportRecord{Module: module, Name: alias, Kind: m.ImportDirect})
		}
	}

	return records
}

// extractFromImport handles `from a.b import c [as d]`, wildcard imports
// and relative imports. The module recorded for each name is the joined
// "module.name" spelling used by the integration generator.
func extractFromImport(tree *SyntaxTree, node *sitter.Node) []m.ImportRecord {
	var records []m.ImportRecord

	module := ""
	sawImport := false

	joined := func(name string) string {
		if module == "" {
			return name
		}
		if strings.HasSuffix(module, ".") {
			return module + name
		}

		return module + "." + name
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "import":
			sawImport = true

		case "dotted_name":
			if !sawImport {
				module = tree.Text(child)
				continue
			}
			name := tree.Text(child)
			records = append(records, m.ImportRecord{Module: joined(name), Name: name, Kind: m.ImportFrom})

		case "relative_import":
			module = tree.Text(child)

		case "aliased_import":
			name := childFieldText(tree, child, "name")
			alias := childFieldText(tree, child, "alias")
			if alias == "" {
				alias = name
			}
			records = append(records, m.ImportRecord{Module: joined(name), Name: alias, Kind: m.ImportFrom})

		case "wildcard_import":
			records = append(records, m.ImportRecord{Module: joined("*"), Name: "*", Kind: m.ImportFrom})
		}
	}

	return records
}

// complexity computes the cyclomatic complexity of a function subtree.
// The base path counts 1; each branch construct adds 1. Boolean operators
// are binary nodes here, so a chain of v operands contributes v-1.
func complexity(fn *sitter.Node) int {
	count := 1
	count += countBranches(fn)

	return count
}

func countBranches(node *sitter.Node) int {
	total := 0

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case "if_statement", "elif_clause", "while_statement", "for_statement", "except_clause", "boolean_operator":
			total++
		}

		total += countBranches(child)
	}

	return total
}

// extractDocstring returns the leading string literal of a block, with
// quotes and prefixes stripped.
func extractDocstring(tree *SyntaxTree, body *sitter.Node) string {
	if body.NamedChildCount() == 0 {
		return ""
	}

	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() != 1 {
		return ""
	}

	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}

	return stripStringQuotes(tree.Text(str))
}

func stripStringQuotes(text string) string {
	trimmed := strings.TrimLeft(text, "rRbBuUfF")

	for _, quote := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(trimmed, quote) && strings.HasSuffix(trimmed, quote) && len(trimmed) >= 2*len(quote) {
			return strings.TrimSpace(trimmed[len(quote) : len(trimmed)-len(quote)])
		}
	}

	return strings.TrimSpace(trimmed)
}

// renderExpr renders an expression node back to literal source text.
// Interior whitespace runs are collapsed so that annotations split across
// lines still match their single-line spelling.
func renderExpr(tree *SyntaxTree, node *sitter.Node) string {
	text := tree.Text(node)
	if !strings.ContainsAny(text, "\n\t") {
		return text
	}

	return strings.Join(strings.Fields(text), " ")
}

// childFieldText is a convenience for rendering a named field, or "" when
// the field is absent.
func childFieldText(tree *SyntaxTree, node *sitter.Node, field string) string {
	child := node.ChildByFieldName(field)
	if child == nil {
		return ""
	}

	return tree.Text(child)
}

// Dependencies reduces import records to their distinct top-level module
// names, preserving first-seen order.
func Dependencies(imports []m.ImportRecord) []string {
	set := orderedset.New()

	for _, imp := range imports {
		module := imp.Module
		if idx := strings.IndexByte(module, '.'); idx >= 0 {
			module = module[:idx]
		}
		if module != "" && module != "*" {
			set.Add(module)
		}
	}

	return set.Items()
}
