// Package phpast wraps the tree-sitter PHP grammar behind the small set of
// lookups the rewrite rules need: parsing, node text, positions, parent
// checks and integer literal decoding. The tree owns every node; all values
// handed out are borrowed references valid for the lifetime of the File.
package phpast

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/php"

	tt "github.com/phpmod-labs/phpmod/internal/types"
)

// File is a single parsed PHP source unit.
type File struct {
	Filename string
	Source   []byte
	tree     *sitter.Tree
}

// ParseFile reads and parses a PHP file.
func ParseFile(filename string) (*File, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	return ParseSource(filename, source)
}

// ParseSource parses PHP source text. The filename is only used for issue
// reporting and may be empty.
func ParseSource(filename string, source []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(php.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	return &File{
		Filename: filename,
		Source:   source,
		tree:     tree,
	}, nil
}

// Root returns the root node of the parse tree.
func (f *File) Root() *sitter.Node {
	return f.tree.RootNode()
}

// Text returns the source text covered by a node.
func (f *File) Text(n *sitter.Node) string {
	return n.Content(f.Source)
}

// Pos returns the start position of a node.
func (f *File) Pos(n *sitter.Node) tt.Position {
	p := n.StartPoint()
	return tt.Position{
		Offset: int(n.StartByte()),
		Line:   int(p.Row) + 1,
		Column: int(p.Column) + 1,
	}
}

// End returns the end position of a node.
func (f *File) End(n *sitter.Node) tt.Position {
	p := n.EndPoint()
	return tt.Position{
		Offset: int(n.EndByte()),
		Line:   int(p.Row) + 1,
		Column: int(p.Column) + 1,
	}
}

// Walk visits named nodes in preorder. Returning false from the visitor
// skips the node's children.
func Walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		Walk(n.NamedChild(i), visit)
	}
}

// Same reports whether two node references denote the same tree node.
func Same(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// FindParent walks the parent chain until it hits a node of the given kind.
func FindParent(n *sitter.Node, kind string) *sitter.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == kind {
			return p
		}
	}
	return nil
}

// IntegerValue decodes an integer literal node. PHP digit separators
// (80_000) are accepted.
func (f *File) IntegerValue(n *sitter.Node) (int, bool) {
	if n == nil || n.Type() != "integer" {
		return 0, false
	}
	text := strings.ReplaceAll(f.Text(n), "_", "")
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// Unparenthesize unwraps parenthesized expressions down to the innermost
// expression.
func Unparenthesize(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" && n.NamedChildCount() == 1 {
		n = n.NamedChild(0)
	}
	return n
}

// BodyStatements returns the statement nodes of an if body. A braced body
// yields its inner statements (an empty slice when the braces hold nothing),
// a single unbraced statement yields itself. Alternative syntax bodies
// (if/endif) are not supported and yield nil.
func BodyStatements(body *sitter.Node) []*sitter.Node {
	if body == nil {
		return nil
	}
	switch body.Type() {
	case "compound_statement":
		stmts := make([]*sitter.Node, 0, body.NamedChildCount())
		for i := 0; i < int(body.NamedChildCount()); i++ {
			child := body.NamedChild(i)
			if child.Type() == "comment" {
				continue
			}
			stmts = append(stmts, child)
		}
		return stmts
	case "colon_block":
		return nil
	default:
		return []*sitter.Node{body}
	}
}

// Arguments returns the argument nodes of a call's argument list.
func Arguments(argList *sitter.Node) []*sitter.Node {
	if argList == nil {
		return nil
	}
	args := make([]*sitter.Node, 0, argList.NamedChildCount())
	for i := 0; i < int(argList.NamedChildCount()); i++ {
		child := argList.NamedChild(i)
		if child.Type() != "argument" {
			continue
		}
		args = append(args, child)
	}
	return args
}
