package refactor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phpmod-labs/phpmod/internal/types"
)

type mockRewriteEngine struct {
	mock.Mock
}

func (m *mockRewriteEngine) Run(filePath string) ([]types.Issue, error) {
	args := m.Called(filePath)
	return args.Get(0).([]types.Issue), args.Error(1)
}

func (m *mockRewriteEngine) RunSource(source []byte) ([]types.Issue, error) {
	args := m.Called(source)
	return args.Get(0).([]types.Issue), args.Error(1)
}

func (m *mockRewriteEngine) IgnoreRule(rule string) {
	m.Called(rule)
}

func (m *mockRewriteEngine) IgnorePath(path string) {
	m.Called(path)
}

func setupMockEngine(expectedIssues []types.Issue, filePath string) *mockRewriteEngine {
	mockEngine := new(mockRewriteEngine)
	mockEngine.On("Run", filePath).Return(expectedIssues, nil)
	return mockEngine
}

func TestProcessFile(t *testing.T) {
	t.Parallel()
	expectedIssues := []types.Issue{
		{
			Rule:     "extra-arguments",
			Filename: "test.php",
			Start:    types.Position{Offset: 12, Line: 2, Column: 7},
			End:      types.Position{Offset: 21, Line: 2, Column: 16},
			Message:  "Test issue",
		},
	}
	mockEngine := setupMockEngine(expectedIssues, "test.php")

	issues, err := ProcessFile(mockEngine, "test.php")
	require.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessPathSingleFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.php")
	require.NoError(t, os.WriteFile(path, []byte("<?php\n"), 0o644))

	expectedIssues := []types.Issue{{Rule: "version-id-check", Filename: path}}
	mockEngine := setupMockEngine(expectedIssues, path)

	issues, err := ProcessPath(context.Background(), zap.NewNop(), mockEngine, path, ProcessFile)
	require.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessPathSkipsOtherExtensions(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	mockEngine := new(mockRewriteEngine)

	issues, err := ProcessPath(context.Background(), zap.NewNop(), mockEngine, path, ProcessFile)
	require.NoError(t, err)
	assert.Empty(t, issues)
	mockEngine.AssertExpectations(t)
}

func TestProcessPathReportsWalkError(t *testing.T) {
	t.Parallel()
	if os.Geteuid() == 0 {
		t.Skip("permission errors are not observable as root")
	}

	tempDir := t.TempDir()
	closed := filepath.Join(tempDir, "closed")
	require.NoError(t, os.Mkdir(closed, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(closed, "a.php"), []byte("<?php\n"), 0o644))
	require.NoError(t, os.Chmod(closed, 0o000))
	t.Cleanup(func() { _ = os.Chmod(closed, 0o755) })

	mockEngine := new(mockRewriteEngine)

	_, err := ProcessPath(context.Background(), zap.NewNop(), mockEngine, tempDir, ProcessFile)
	assert.Error(t, err)
	mockEngine.AssertExpectations(t)
}

func TestProcessSources(t *testing.T) {
	t.Parallel()

	source := []byte("<?php\nstrlen(\"a\", 1);\n")
	expectedIssues := []types.Issue{{Rule: "extra-arguments"}}

	mockEngine := new(mockRewriteEngine)
	mockEngine.On("RunSource", source).Return(expectedIssues, nil)

	issues, err := ProcessSources(context.Background(), zap.NewNop(), mockEngine, [][]byte{source}, ProcessSource)
	require.NoError(t, err)
	assert.Equal(t, expectedIssues, issues)
	mockEngine.AssertExpectations(t)
}

func TestNewWithMissingConfig(t *testing.T) {
	t.Parallel()

	engine, err := New(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)
	require.NotNil(t, engine)

	// defaults apply: target 8.0, both rules active
	issues, err := engine.RunSource([]byte("<?php\nif (PHP_VERSION_ID < 80000) {\n    return;\n}\n"))
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestNewWithConfigFile(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, ".phpmod.yaml")
	cfg := `name: sample
target_version: "7.4"
rules:
  extra-arguments:
    severity: "off"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	engine, err := New(cfgPath)
	require.NoError(t, err)

	// guard against 7.0 is below the 7.4 target so it stays, and
	// extra-arguments is switched off
	issues, err := engine.RunSource([]byte("<?php\nif (PHP_VERSION_ID < 70000) {\n    return;\n}\nstrlen(\"a\", 1);\n"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestNewWithInvalidTargetVersion(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	cfgPath := filepath.Join(tempDir, ".phpmod.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("target_version: \"eight\"\n"), 0o644))

	_, err := New(cfgPath)
	assert.Error(t, err)
}

func TestProcessFilesOverDirectory(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	for _, name := range []string{"a.php", "b.php"} {
		require.NoError(t, os.WriteFile(
			filepath.Join(tempDir, name),
			[]byte("<?php\nstrlen(\"a\", 1);\n"),
			0o644,
		))
	}

	engine, err := New("")
	require.NoError(t, err)

	issues, err := ProcessFiles(context.Background(), zap.NewNop(), engine, []string{tempDir}, ProcessFile)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}
