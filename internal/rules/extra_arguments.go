package rules

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phpmod-labs/phpmod/internal/phpast"
	"github.com/phpmod-labs/phpmod/internal/signature"
	tt "github.com/phpmod-labs/phpmod/internal/types"
)

// DetectExtraArguments finds calls that pass more positional arguments than
// any variant of the resolved callee accepts and trims the excess tail.
//
// The rule never guesses: calls with dynamic callees, unresolvable or
// ambiguous targets, variadic variants, named arguments or argument
// unpacking are all skipped. parent:: calls are skipped as well since they
// forward explicitly to the parent implementation.
func DetectExtraArguments(filename string, f *phpast.File, sev tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	resolver := signature.NewResolver(f)

	phpast.Walk(f.Root(), func(n *sitter.Node) bool {
		var sig *signature.Signature
		var callee string

		switch n.Type() {
		case "function_call_expression":
			fn := n.ChildByFieldName("function")
			if fn == nil || fn.Type() != "name" {
				return true
			}
			callee = f.Text(fn)
			sig = resolver.ResolveFunction(callee)

		case "member_call_expression":
			name := n.ChildByFieldName("name")
			if name == nil || name.Type() != "name" {
				return true
			}
			callee = f.Text(name)
			sig = resolver.ResolveMethod(callee)

		case "scoped_call_expression":
			scope := n.ChildByFieldName("scope")
			name := n.ChildByFieldName("name")
			if scope == nil || name == nil || name.Type() != "name" {
				return true
			}
			// relative scopes (parent::, self::, static::) are not
			// plain class names; parent:: in particular must keep
			// its explicit argument forwarding
			if scope.Type() != "name" || strings.EqualFold(f.Text(scope), "parent") {
				return true
			}
			callee = fmt.Sprintf("%s::%s", f.Text(scope), f.Text(name))
			sig = resolver.ResolveStatic(f.Text(scope), f.Text(name))

		default:
			return true
		}

		argList := n.ChildByFieldName("arguments")
		args := phpast.Arguments(argList)
		if len(args) == 0 || sig == nil || sig.HasVariadic() {
			return true
		}
		for _, arg := range args {
			if !positional(arg) {
				return true
			}
		}

		maxAllowed := sig.MaxParamCount()
		if len(args) <= maxAllowed {
			return true
		}

		kept := make([]string, 0, maxAllowed)
		for _, arg := range args[:maxAllowed] {
			kept = append(kept, f.Text(arg))
		}

		issues = append(issues, tt.Issue{
			Rule:       "extra-arguments",
			Filename:   filename,
			Message:    fmt.Sprintf("call to %s passes %d arguments but at most %d are accepted", callee, len(args), maxAllowed),
			Start:      f.Pos(argList),
			End:        f.End(argList),
			Suggestion: "(" + strings.Join(kept, ", ") + ")",
			Confidence: 1.0,
			Severity:   sev,
		})
		return true
	})

	return issues, nil
}

// positional reports whether an argument is a plain positional expression,
// i.e. neither a named argument nor a ... unpacking.
func positional(arg *sitter.Node) bool {
	if arg.ChildByFieldName("name") != nil {
		return false
	}
	for i := 0; i < int(arg.NamedChildCount()); i++ {
		if arg.NamedChild(i).Type() == "variadic_unpacking" {
			return false
		}
	}
	return true
}
