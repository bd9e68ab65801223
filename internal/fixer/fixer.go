package fixer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tt "github.com/phpmod-labs/phpmod/internal/types"
)

// Fixer applies issue suggestions to source files. Suggestions are byte
// range replacements; an empty suggestion deletes the range together with
// its line indentation and trailing newline.
type Fixer struct {
	DryRun        bool
	MinConfidence float64 // threshold for fixing issues
}

func New(dryRun bool, threshold float64) *Fixer {
	return &Fixer{
		DryRun:        dryRun,
		MinConfidence: threshold,
	}
}

// Fix rewrites a single file in place.
func (f *Fixer) Fix(filename string, issues []tt.Issue) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if f.DryRun {
		for _, issue := range issues {
			if issue.Confidence < f.MinConfidence {
				continue
			}
			fmt.Printf("Would fix issue in %s at line %d: %s\n", filename, issue.Start.Line, issue.Message)
			if issue.Suggestion != "" {
				fmt.Printf("Suggestion:\n%s\n", issue.Suggestion)
			}
		}
		return nil
	}

	fixed, applied := f.Apply(content, issues)
	if applied == 0 {
		return nil
	}

	if err := os.WriteFile(filename, fixed, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Fixed %d issue(s) in %s\n", applied, filename)
	return nil
}

// Apply splices the issues' suggestions into src and returns the result
// along with the number of edits applied. Edits are applied back to front so
// earlier offsets stay valid; overlapping edits keep the first one applied
// and drop the rest.
func (f *Fixer) Apply(src []byte, issues []tt.Issue) ([]byte, int) {
	sorted := make([]tt.Issue, len(issues))
	copy(sorted, issues)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].End.Offset > sorted[j].End.Offset
	})

	applied := 0
	limit := len(src)

	for _, issue := range sorted {
		if issue.Confidence < f.MinConfidence {
			continue
		}
		start, end := issue.Start.Offset, issue.End.Offset
		if start < 0 || end < start || end > len(src) || end > limit {
			continue
		}

		var replacement []byte
		if issue.Suggestion == "" {
			start = expandToLineStart(src, start)
			end = expandPastNewline(src, end)
		} else {
			replacement = []byte(reindent(issue.Suggestion, lineIndent(src, start)))
		}

		rest := append(replacement, src[end:]...)
		src = append(src[:start:start], rest...)
		limit = start
		applied++
	}

	return src, applied
}

// expandToLineStart moves the start of a deletion to the beginning of its
// line when only indentation precedes it.
func expandToLineStart(src []byte, start int) int {
	i := start
	for i > 0 && (src[i-1] == ' ' || src[i-1] == '\t') {
		i--
	}
	if i == 0 || src[i-1] == '\n' {
		return i
	}
	return start
}

// expandPastNewline swallows the newline terminating a deleted statement.
func expandPastNewline(src []byte, end int) int {
	if end < len(src) && src[end] == '\r' {
		end++
	}
	if end < len(src) && src[end] == '\n' {
		end++
	}
	return end
}

// lineIndent returns the leading whitespace of the line containing offset.
func lineIndent(src []byte, offset int) string {
	start := offset
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}

// reindent prefixes every line after the first with the surrounding indent.
// The first line lands at the replaced range's own column.
func reindent(text, indent string) string {
	if indent == "" || !strings.Contains(text, "\n") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
