// Package analyzer contains the static-analysis core: the tree-sitter
// based source parser, the structural extractor and the heuristic
// edge-case / failure-mode detectors.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ParseError reports syntactically invalid source. The orchestrator skips
// the offending file and continues the batch.
type ParseError struct {
	Line    int
	Column  int
	Snippet string
}

func (e *ParseError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("syntax error at line %d, column %d: near %q", e.Line, e.Column, e.Snippet)
	}

	return fmt.Sprintf("syntax error at line %d, column %d", e.Line, e.Column)
}

// Token is one lexical element of the source, exposed for lexical queries
// on an already-parsed unit.
type Token struct {
	Type   string
	Text   string
	Line   int
	Column int
}

// SyntaxTree wraps a parsed tree together with the source bytes it was
// built from. The token view is computed on first use and cached.
type SyntaxTree struct {
	tree *sitter.Tree
	src  []byte

	tokensOnce sync.Once
	tokens     []Token
}

// Root returns the root node of the tree.
func (t *SyntaxTree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Source returns the raw source bytes the tree was parsed from.
func (t *SyntaxTree) Source() []byte {
	return t.src
}

// Text returns the source text covered by node.
func (t *SyntaxTree) Text(node *sitter.Node) string {
	return string(t.src[node.StartByte():node.EndByte()])
}

// Tokens returns the lexical elements of the source in document order.
// The slice is built lazily from the cached text and reused afterwards.
func (t *SyntaxTree) Tokens() []Token {
	t.tokensOnce.Do(func() {
		t.tokens = collectTokens(t.Root(), t.src, nil)
	})

	return t.tokens
}

// Close releases the underlying tree-sitter tree. The SyntaxTree must not
// be used afterwards.
func (t *SyntaxTree) Close() {
	t.tree.Close()
}

func collectTokens(node *sitter.Node, src []byte, out []Token) []Token {
	if node.ChildCount() == 0 {
		if node.StartByte() == node.EndByte() {
			return out
		}

		return append(out, Token{
			Type:   node.Type(),
			Text:   string(src[node.StartByte():node.EndByte()]),
			Line:   int(node.StartPoint().Row) + 1,
			Column: int(node.StartPoint().Column),
		})
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		out = collectTokens(node.Child(i), src, out)
	}

	return out
}

// Parser turns Python source text into a SyntaxTree. It is safe to reuse
// for multiple files but not for concurrent calls; the workflow gives each
// worker its own instance.
type Parser struct {
	parser *sitter.Parser
}

// NewParser constructs a Parser with the Python grammar loaded.
func NewParser() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	return &Parser{parser: parser}
}

// Parse parses src and returns the syntax tree. Malformed input yields a
// *ParseError carrying the position of the first invalid region; there is
// no partial recovery.
func (p *Parser) Parse(ctx context.Context, src []byte) (*SyntaxTree, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		parseErr := diagnoseError(root, src)
		tree.Close()

		slog.Debug("parse failed", "line", parseErr.Line, "column", parseErr.Column)

		return nil, parseErr
	}

	return &SyntaxTree{tree: tree, src: src}, nil
}

// diagnoseError locates the first ERROR or MISSING node and builds the
// diagnostic from it.
func diagnoseError(root *sitter.Node, src []byte) *ParseError {
	node := firstErrorNode(root)
	if node == nil {
		node = root
	}

	snippet := string(src[node.StartByte():node.EndByte()])
	if idx := strings.IndexByte(snippet, '\n'); idx >= 0 {
		snippet = snippet[:idx]
	}
	if len(snippet) > 40 {
		snippet = snippet[:40]
	}

	return &ParseError{
		Line:    int(node.StartPoint().Row) + 1,
		Column:  int(node.StartPoint().Column),
		Snippet: strings.TrimSpace(snippet),
	}
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.IsMissing() || node.Type() == "ERROR" {
		return node
	}
	if !node.HasError() {
		return nil
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}

	return nil
}
