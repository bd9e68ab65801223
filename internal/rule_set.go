package internal

import (
	"github.com/phpmod-labs/phpmod/internal/phpast"
	"github.com/phpmod-labs/phpmod/internal/rules"
	tt "github.com/phpmod-labs/phpmod/internal/types"
)

// RewriteRule defines the interface for all rewrite rules.
type RewriteRule interface {
	// Check runs the rule on a parsed source unit and returns a slice of Issues.
	Check(filename string, f *phpast.File) ([]tt.Issue, error)

	// Name returns the name of the rule.
	Name() string

	// Severity returns the severity issues of this rule carry.
	Severity() tt.Severity

	// SetSeverity overrides the rule's severity.
	SetSeverity(tt.Severity)
}

type VersionIDCheckRule struct {
	target   int
	severity tt.Severity
}

func NewVersionIDCheckRule(target int) RewriteRule {
	return &VersionIDCheckRule{target: target, severity: tt.SeverityError}
}

func (r *VersionIDCheckRule) Check(filename string, f *phpast.File) ([]tt.Issue, error) {
	return rules.DetectVersionGuards(filename, f, r.target, r.severity)
}

func (r *VersionIDCheckRule) Name() string {
	return "version-id-check"
}

func (r *VersionIDCheckRule) Severity() tt.Severity {
	return r.severity
}

func (r *VersionIDCheckRule) SetSeverity(s tt.Severity) {
	r.severity = s
}

type ExtraArgumentsRule struct {
	severity tt.Severity
}

func NewExtraArgumentsRule(int) RewriteRule {
	return &ExtraArgumentsRule{severity: tt.SeverityError}
}

func (r *ExtraArgumentsRule) Check(filename string, f *phpast.File) ([]tt.Issue, error) {
	return rules.DetectExtraArguments(filename, f, r.severity)
}

func (r *ExtraArgumentsRule) Name() string {
	return "extra-arguments"
}

func (r *ExtraArgumentsRule) Severity() tt.Severity {
	return r.severity
}

func (r *ExtraArgumentsRule) SetSeverity(s tt.Severity) {
	r.severity = s
}
