package internal

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/phpmod-labs/phpmod/internal/phpast"
	"github.com/phpmod-labs/phpmod/internal/suppress"
	tt "github.com/phpmod-labs/phpmod/internal/types"
)

// Engine manages the rewrite process for one target PHP version.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]RewriteRule
	cache        *Cache
	target       int
}

// SetCache attaches a result cache consulted by Run.
func (e *Engine) SetCache(c *Cache) {
	e.cache = c
}

// NewEngine creates a new rewrite engine for the given minimum PHP version id.
func NewEngine(target int, rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{target: target}
	engine.applyRules(rules)

	return engine, nil
}

type ruleConstructor func(target int) RewriteRule

type ruleMap map[string]ruleConstructor

var allRuleConstructors = ruleMap{
	"version-id-check": NewVersionIDCheckRule,
	"extra-arguments":  NewExtraArgumentsRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) {
	e.rules = make(map[string]RewriteRule)
	e.registerDefaultRules()

	for key, rule := range rules {
		r := e.findRule(key)
		if r == nil {
			newRuleCstr := allRuleConstructors[key]
			if newRuleCstr == nil {
				// Unknown rule, continue to the next one
				continue
			}
			newRule := newRuleCstr(e.target)
			newRule.SetSeverity(rule.Severity)
			e.rules[key] = newRule
		} else {
			if rule.Severity == tt.SeverityOff {
				e.IgnoreRule(key)
			}
			r.SetSeverity(rule.Severity)
		}
	}
}

func (e *Engine) registerDefaultRules() {
	for key, newRuleCstr := range allRuleConstructors {
		newRule := newRuleCstr(e.target)
		if newRule.Severity() != tt.SeverityOff {
			e.rules[key] = newRule
		}
	}
}

func (e *Engine) findRule(name string) RewriteRule {
	if rule, ok := e.rules[name]; ok {
		return rule
	}
	return nil
}

// Run applies all rewrite rules to the given file and returns a slice of Issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isPathIgnored(filename) {
		return nil, nil
	}

	if e.cache != nil {
		if issues, ok := e.cache.Get(filename); ok {
			return issues, nil
		}
	}

	f, err := phpast.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error parsing file: %w", err)
	}

	issues, err := e.runRules(filename, f)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		_ = e.cache.Set(filename, issues)
	}

	return issues, nil
}

// RunSource applies all rewrite rules to the given source and returns a slice
// of Issues.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	f, err := phpast.ParseSource("", source)
	if err != nil {
		return nil, fmt.Errorf("error parsing content: %w", err)
	}

	return e.runRules("", f)
}

func (e *Engine) runRules(filename string, f *phpast.File) ([]tt.Issue, error) {
	suppressions := suppress.Parse(f)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		wg.Add(1)
		go func(r RewriteRule) {
			defer wg.Done()
			if e.ignoredRules[r.Name()] {
				return
			}
			issues, err := r.Check(filename, f)
			if err != nil {
				return
			}

			kept := filterSuppressed(issues, suppressions)

			mu.Lock()
			allIssues = append(allIssues, kept...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	return allIssues, nil
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(path))
}

func (e *Engine) isPathIgnored(path string) bool {
	cleaned := filepath.Clean(path)
	for _, ignored := range e.ignoredPaths {
		if cleaned == ignored || strings.HasPrefix(cleaned, ignored+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// filterSuppressed drops issues covered by a phpmod:ignore directive.
func filterSuppressed(issues []tt.Issue, mgr *suppress.Manager) []tt.Issue {
	if mgr == nil {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !mgr.IsSuppressed(issue.Start.Line, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
