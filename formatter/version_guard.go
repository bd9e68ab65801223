package formatter

// VersionGuardFormatter renders version-id-check issues. A guard that is
// always false carries no replacement text, so the formatter spells out that
// the whole block goes away instead of rendering an empty suggestion.
type VersionGuardFormatter struct{}

func (f *VersionGuardFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}

{{- if .Suggestion }}
{{suggestion .Suggestion .Padding .MaxLineNumWidth .StartLine}}
{{- else }}
{{removal}}
{{- end }}

{{- if .Note }}
{{note .Note}}
{{- end }}
`
}
