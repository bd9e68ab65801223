package rules

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phpmod-labs/phpmod/internal/phpast"
	tt "github.com/phpmod-labs/phpmod/internal/types"
	"github.com/phpmod-labs/phpmod/internal/version"
)

// VersionConstant is the constant whose guards this rule folds.
const VersionConstant = "PHP_VERSION_ID"

// DetectVersionGuards finds if statements whose entire condition is a
// PHP_VERSION_ID comparison that is statically decided once the target
// minimum version is known. A guard proven always false is removed outright,
// a guard proven always true is replaced by its body.
//
// Version checks embedded in compound conditions
// (PHP_VERSION_ID < 80000 && $flag) are left untouched, as are comparisons
// against anything but a plain integer literal.
func DetectVersionGuards(filename string, f *phpast.File, target int, sev tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue

	phpast.Walk(f.Root(), func(n *sitter.Node) bool {
		if n.Type() != "name" || f.Text(n) != VersionConstant {
			return true
		}

		guard, ok := matchGuard(f, n)
		if !ok || target > guard.literal {
			return true
		}

		issue := tt.Issue{
			Rule:     "version-id-check",
			Filename: filename,
			Start:    f.Pos(guard.ifNode),
			End:      f.End(guard.ifNode),
			Severity: sev,
			Note:     fmt.Sprintf("minimum PHP version is %s", version.String(target)),
		}

		if guard.alwaysTrue {
			body, ok := hoistedBody(f, guard.ifNode)
			if !ok {
				return true
			}
			issue.Message = fmt.Sprintf("version guard %q is always true, unwrap its body", f.Text(guard.cmp))
			issue.Suggestion = body
			issue.Confidence = 0.95
		} else {
			issue.Message = fmt.Sprintf("version guard %q is always false, remove the dead branch", f.Text(guard.cmp))
			issue.Confidence = 1.0
		}

		issues = append(issues, issue)
		return false
	})

	return issues, nil
}

type guardMatch struct {
	ifNode     *sitter.Node
	cmp        *sitter.Node
	literal    int
	alwaysTrue bool
}

// matchGuard checks that the constant reference is one operand of a < or >=
// comparison forming the entire condition of an enclosing if statement, with
// an integer literal on the other side.
func matchGuard(f *phpast.File, constRef *sitter.Node) (guardMatch, bool) {
	cmp := constRef.Parent()
	if cmp == nil || cmp.Type() != "binary_expression" {
		return guardMatch{}, false
	}

	op := cmp.ChildByFieldName("operator")
	if op == nil {
		return guardMatch{}, false
	}
	opText := f.Text(op)
	if opText != "<" && opText != ">=" {
		return guardMatch{}, false
	}

	paren := cmp.Parent()
	if paren == nil || paren.Type() != "parenthesized_expression" {
		return guardMatch{}, false
	}
	ifNode := paren.Parent()
	if ifNode == nil || ifNode.Type() != "if_statement" {
		return guardMatch{}, false
	}
	if !phpast.Same(ifNode.ChildByFieldName("condition"), paren) {
		return guardMatch{}, false
	}

	left := cmp.ChildByFieldName("left")
	right := cmp.ChildByFieldName("right")
	constLeft := phpast.Same(left, constRef)
	if !constLeft && !phpast.Same(right, constRef) {
		return guardMatch{}, false
	}

	other := right
	if !constLeft {
		other = left
	}
	literal, ok := f.IntegerValue(other)
	if !ok {
		return guardMatch{}, false
	}

	// With target <= literal the guard's truth value is fixed by which
	// side the constant sits on:
	//   CONST <  lit  -> always false, dead branch
	//   lit   <  CONST -> always true, unwrap
	//   CONST >= lit  -> always true, unwrap
	//   lit   >= CONST -> always false, dead branch
	alwaysTrue := (opText == "<" && !constLeft) || (opText == ">=" && constLeft)

	return guardMatch{
		ifNode:     ifNode,
		cmp:        cmp,
		literal:    literal,
		alwaysTrue: alwaysTrue,
	}, true
}

// hoistedBody renders the guard's body statements as the replacement text
// for the whole if statement, dedented to the if statement's own indent
// level.
func hoistedBody(f *phpast.File, ifNode *sitter.Node) (string, bool) {
	stmts := phpast.BodyStatements(ifNode.ChildByFieldName("body"))
	if stmts == nil {
		// alternative syntax (if/endif), not rewritten
		return "", false
	}
	if len(stmts) == 0 {
		// empty guarded body, unwrapping leaves nothing
		return "", true
	}

	first := stmts[0]
	last := stmts[len(stmts)-1]
	text := string(f.Source[first.StartByte():last.EndByte()])

	return dedent(text, lineIndent(f.Source, int(first.StartByte()))), true
}
