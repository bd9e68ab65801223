package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		token    interface{}
		expected int
	}{
		{"dotted string", "8.0", 80000},
		{"dotted string with patch", "7.4.3", 70403},
		{"bare major string", "8", 80000},
		{"id form string", "80000", 80000},
		{"id form int", 80000, 80000},
		{"bare major int", 8, 80000},
		{"float from yaml", 7.4, 70400},
		{"whitespace around token", " 8.1 ", 80100},
		{"nil falls back to default", nil, 80000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ID(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestIDMalformed(t *testing.T) {
	t.Parallel()
	for _, token := range []interface{}{"", "eight", "8.x", true} {
		_, err := ID(token)
		assert.Error(t, err, "token %v", token)
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "8.0", String(80000))
	assert.Equal(t, "7.4.3", String(70403))
}
