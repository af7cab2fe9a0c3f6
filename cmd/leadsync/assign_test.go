package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync"
)

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"Ana=0,2", "Bob = 1", "Ana=5", "Carl="})
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"Ana": {0, 2, 5}, "Bob": {1}, "Carl": nil}, got)

	for _, bad := range []string{"Ana", "=1", "Ana=x"} {
		_, err := parseAssignments([]string{bad})
		assert.True(t, errors.Is(err, leadsync.ErrValidation), bad)
	}
}

func TestLoadAssignments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Ana: [0, 2]\nBob:\n  - 1\n"), 0644))

	got, err := loadAssignments(path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"Ana": {0, 2}, "Bob": {1}}, got)

	merged := map[string][]int{"Ana": {4}}
	mergeAssignments(merged, got)
	assert.Equal(t, []int{4, 0, 2}, merged["Ana"])

	_, err = loadAssignments(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "io", leadsync.Kind(err))
}
