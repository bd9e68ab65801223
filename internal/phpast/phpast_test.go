package phpast

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *File {
	t.Helper()
	f, err := ParseSource("test.php", []byte(src))
	require.NoError(t, err)
	return f
}

func TestParseSource(t *testing.T) {
	t.Parallel()
	f := parse(t, "<?php echo 'x';\n")
	assert.Equal(t, "program", f.Root().Type())
	assert.Equal(t, "test.php", f.Filename)
}

func TestPositions(t *testing.T) {
	t.Parallel()
	src := "<?php\necho 'x';\n"
	f := parse(t, src)

	var echo *sitter.Node
	Walk(f.Root(), func(n *sitter.Node) bool {
		if n.Type() == "echo_statement" {
			echo = n
		}
		return true
	})
	require.NotNil(t, echo)

	start := f.Pos(echo)
	assert.Equal(t, 2, start.Line)
	assert.Equal(t, 1, start.Column)
	assert.Equal(t, 6, start.Offset)
	assert.Equal(t, "echo 'x';", f.Text(echo))
}

func TestIntegerValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		expected int
		ok       bool
	}{
		{"plain literal", "<?php $x = 80000;", 80000, true},
		{"digit separators", "<?php $x = 80_000;", 80000, true},
		{"hex literal", "<?php $x = 0x10;", 16, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := parse(t, tc.src)
			var lit *sitter.Node
			Walk(f.Root(), func(n *sitter.Node) bool {
				if n.Type() == "integer" {
					lit = n
				}
				return true
			})
			require.NotNil(t, lit)

			v, ok := f.IntegerValue(lit)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestBodyStatements(t *testing.T) {
	t.Parallel()
	f := parse(t, "<?php if ($x) { $a = 1; $b = 2; }")

	var ifNode *sitter.Node
	Walk(f.Root(), func(n *sitter.Node) bool {
		if n.Type() == "if_statement" {
			ifNode = n
		}
		return true
	})
	require.NotNil(t, ifNode)

	stmts := BodyStatements(ifNode.ChildByFieldName("body"))
	require.Len(t, stmts, 2)
	assert.Equal(t, "$a = 1;", f.Text(stmts[0]))
	assert.Equal(t, "$b = 2;", f.Text(stmts[1]))
}

func TestBodyStatementsEmptyAndAlternativeSyntax(t *testing.T) {
	t.Parallel()

	findIf := func(f *File) *sitter.Node {
		var ifNode *sitter.Node
		Walk(f.Root(), func(n *sitter.Node) bool {
			if n.Type() == "if_statement" {
				ifNode = n
			}
			return true
		})
		return ifNode
	}

	// empty braced body is an empty, non-nil slice
	braced := findIf(parse(t, "<?php if ($x) { }"))
	require.NotNil(t, braced)
	stmts := BodyStatements(braced.ChildByFieldName("body"))
	assert.NotNil(t, stmts)
	assert.Empty(t, stmts)

	// alternative syntax (if/endif) yields nil
	alt := findIf(parse(t, "<?php if ($x) : run(); endif;"))
	require.NotNil(t, alt)
	assert.Nil(t, BodyStatements(alt.ChildByFieldName("body")))
}

func TestArguments(t *testing.T) {
	t.Parallel()
	f := parse(t, "<?php foo($a, $b, $c);")

	var call *sitter.Node
	Walk(f.Root(), func(n *sitter.Node) bool {
		if n.Type() == "function_call_expression" {
			call = n
		}
		return true
	})
	require.NotNil(t, call)

	args := Arguments(call.ChildByFieldName("arguments"))
	require.Len(t, args, 3)
	assert.Equal(t, "$a", f.Text(args[0]))
	assert.Equal(t, "$c", f.Text(args[2]))
}

func TestFindParent(t *testing.T) {
	t.Parallel()
	f := parse(t, "<?php if ($x) { foo(); }")

	var call *sitter.Node
	Walk(f.Root(), func(n *sitter.Node) bool {
		if n.Type() == "function_call_expression" {
			call = n
		}
		return true
	})
	require.NotNil(t, call)

	assert.NotNil(t, FindParent(call, "if_statement"))
	assert.Nil(t, FindParent(call, "while_statement"))
}
