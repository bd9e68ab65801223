package fixer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/phpmod-labs/phpmod/internal/types"
)

const confidenceThreshold = 0.8

func TestApplyReplacement(t *testing.T) {
	t.Parallel()

	src := []byte("<?php\n$n = strlen(\"asdf\", 1);\n")
	require.Equal(t, "(\"asdf\", 1)", string(src[17:28]))
	issues := []tt.Issue{
		{
			Rule:       "extra-arguments",
			Message:    "call passes more arguments than the callee accepts",
			Start:      tt.Position{Offset: 17},
			End:        tt.Position{Offset: 28},
			Suggestion: "(\"asdf\")",
			Confidence: 1.0,
		},
	}

	f := New(false, confidenceThreshold)
	fixed, applied := f.Apply(src, issues)

	assert.Equal(t, 1, applied)
	assert.Equal(t, "<?php\n$n = strlen(\"asdf\");\n", string(fixed))
}

func TestApplyDeletionRemovesWholeLines(t *testing.T) {
	t.Parallel()

	src := []byte("<?php\nif (PHP_VERSION_ID < 80000) {\n    return;\n}\necho 'x';\n")
	start := 6
	end := len(src) - len("echo 'x';\n") - 1

	issues := []tt.Issue{
		{
			Rule:       "version-id-check",
			Message:    "version guard is always false",
			Start:      tt.Position{Offset: start},
			End:        tt.Position{Offset: end},
			Suggestion: "",
			Confidence: 1.0,
		},
	}

	f := New(false, confidenceThreshold)
	fixed, applied := f.Apply(src, issues)

	assert.Equal(t, 1, applied)
	assert.Equal(t, "<?php\necho 'x';\n", string(fixed))
}

func TestApplyIndentedDeletion(t *testing.T) {
	t.Parallel()

	src := []byte("<?php\nfunction f() {\n    legacy();\n}\n")
	start := 25
	end := start + len("legacy();")
	require.Equal(t, "legacy();", string(src[start:end]))

	issues := []tt.Issue{
		{
			Rule:       "version-id-check",
			Start:      tt.Position{Offset: start},
			End:        tt.Position{Offset: end},
			Suggestion: "",
			Confidence: 1.0,
		},
	}

	f := New(false, confidenceThreshold)
	fixed, applied := f.Apply(src, issues)

	assert.Equal(t, 1, applied)
	assert.Equal(t, "<?php\nfunction f() {\n}\n", string(fixed))
}

func TestApplyReindentsMultilineSuggestion(t *testing.T) {
	t.Parallel()

	src := []byte("<?php\nfunction f() {\n    if (PHP_VERSION_ID >= 70400) {\n        $a = 1;\n        $b = 2;\n    }\n}\n")
	start := 25
	require.Equal(t, byte('i'), src[start])
	end := len(src) - len("\n}\n")

	issues := []tt.Issue{
		{
			Rule:       "version-id-check",
			Message:    "version guard is always true",
			Start:      tt.Position{Offset: start},
			End:        tt.Position{Offset: end},
			Suggestion: "$a = 1;\n$b = 2;",
			Confidence: 0.95,
		},
	}

	f := New(false, confidenceThreshold)
	fixed, applied := f.Apply(src, issues)

	assert.Equal(t, 1, applied)
	assert.Equal(t, "<?php\nfunction f() {\n    $a = 1;\n    $b = 2;\n}\n", string(fixed))
}

func TestApplyMultipleEditsBackToFront(t *testing.T) {
	t.Parallel()

	src := []byte("<?php\nstrlen(\"a\", 1);\nstrlen(\"b\", 2);\n")
	require.Equal(t, "(\"a\", 1)", string(src[12:20]))
	require.Equal(t, "(\"b\", 2)", string(src[28:36]))
	issues := []tt.Issue{
		{
			Rule:       "extra-arguments",
			Start:      tt.Position{Offset: 12},
			End:        tt.Position{Offset: 20},
			Suggestion: "(\"a\")",
			Confidence: 1.0,
		},
		{
			Rule:       "extra-arguments",
			Start:      tt.Position{Offset: 28},
			End:        tt.Position{Offset: 36},
			Suggestion: "(\"b\")",
			Confidence: 1.0,
		},
	}

	f := New(false, confidenceThreshold)
	fixed, applied := f.Apply(src, issues)

	assert.Equal(t, 2, applied)
	assert.Equal(t, "<?php\nstrlen(\"a\");\nstrlen(\"b\");\n", string(fixed))
}

func TestApplySkipsLowConfidence(t *testing.T) {
	t.Parallel()

	src := []byte("<?php\nstrlen(\"a\", 1);\n")
	issues := []tt.Issue{
		{
			Rule:       "extra-arguments",
			Start:      tt.Position{Offset: 12},
			End:        tt.Position{Offset: 20},
			Suggestion: "(\"a\")",
			Confidence: 0.5,
		},
	}

	f := New(false, confidenceThreshold)
	fixed, applied := f.Apply(src, issues)

	assert.Equal(t, 0, applied)
	assert.Equal(t, string(src), string(fixed))
}

func TestApplySkipsOverlappingEdits(t *testing.T) {
	t.Parallel()

	src := []byte("<?php\nabcdef\n")
	issues := []tt.Issue{
		{
			Rule:       "version-id-check",
			Start:      tt.Position{Offset: 6},
			End:        tt.Position{Offset: 12},
			Suggestion: "x",
			Confidence: 1.0,
		},
		{
			Rule:       "version-id-check",
			Start:      tt.Position{Offset: 8},
			End:        tt.Position{Offset: 10},
			Suggestion: "y",
			Confidence: 1.0,
		},
	}

	f := New(false, confidenceThreshold)
	fixed, applied := f.Apply(src, issues)

	// The edit with the larger end offset wins; the contained edit is dropped.
	assert.Equal(t, 1, applied)
	assert.Equal(t, "<?php\nx\n", string(fixed))
}

func TestFixWritesFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.php")
	src := "<?php\nstrlen(\"a\", 1);\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	issues := []tt.Issue{
		{
			Rule:       "extra-arguments",
			Filename:   path,
			Start:      tt.Position{Offset: 12, Line: 2},
			End:        tt.Position{Offset: 20, Line: 2},
			Suggestion: "(\"a\")",
			Confidence: 1.0,
		},
	}

	f := New(false, confidenceThreshold)
	require.NoError(t, f.Fix(path, issues))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<?php\nstrlen(\"a\");\n", string(content))
}

func TestFixDryRunLeavesFileAlone(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.php")
	src := "<?php\nstrlen(\"a\", 1);\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	issues := []tt.Issue{
		{
			Rule:       "extra-arguments",
			Filename:   path,
			Start:      tt.Position{Offset: 12, Line: 2},
			End:        tt.Position{Offset: 20, Line: 2},
			Suggestion: "(\"a\")",
			Confidence: 1.0,
		},
	}

	f := New(true, confidenceThreshold)
	require.NoError(t, f.Fix(path, issues))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(content))
}
