// Package suppress implements phpmod:ignore comment handling. A comment of
// the form
//
//	// phpmod:ignore
//	// phpmod:ignore rule-a,rule-b
//
// suppresses matching issues reported on its own line (inline comments) and
// on the line directly below it (standalone comments). Both // and # comment
// markers are recognized.
package suppress

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phpmod-labs/phpmod/internal/phpast"
)

const ignoreDirective = "phpmod:ignore"

// Manager holds the suppression scopes of one source unit.
type Manager struct {
	scopes []scope
}

// scope is a line range with an optional rule filter; an empty rule set
// suppresses every rule.
type scope struct {
	rules     map[string]struct{}
	startLine int
	endLine   int
}

// Parse collects ignore directives from a parsed unit's comments.
func Parse(f *phpast.File) *Manager {
	m := &Manager{}

	phpast.Walk(f.Root(), func(n *sitter.Node) bool {
		if n.Type() != "comment" {
			return true
		}
		directive, ok := parseDirective(f.Text(n))
		if !ok {
			return true
		}

		line := f.Pos(n).Line
		m.scopes = append(m.scopes, scope{
			rules:     directive,
			startLine: line,
			endLine:   line + 1,
		})
		return true
	})

	return m
}

// parseDirective strips comment markers and extracts the rule list, if any.
func parseDirective(text string) (map[string]struct{}, bool) {
	text = strings.TrimSpace(text)
	for _, marker := range []string{"//", "#", "/*"} {
		text = strings.TrimPrefix(text, marker)
	}
	text = strings.TrimSuffix(text, "*/")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, ignoreDirective) {
		return nil, false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(text, ignoreDirective))

	rules := make(map[string]struct{})
	if rest != "" {
		for _, rule := range strings.Split(rest, ",") {
			rule = strings.TrimSpace(rule)
			if rule != "" {
				rules[rule] = struct{}{}
			}
		}
	}
	return rules, true
}

// IsSuppressed reports whether a rule is suppressed at the given line.
func (m *Manager) IsSuppressed(line int, rule string) bool {
	for _, s := range m.scopes {
		if line < s.startLine || line > s.endLine {
			continue
		}
		if len(s.rules) == 0 {
			return true
		}
		if _, ok := s.rules[rule]; ok {
			return true
		}
	}
	return false
}
