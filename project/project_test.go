package project

import (
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/java"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	tree := NewTree(afero.NewMemMapFs(), "out")
	tests := []struct {
		name     string
		pkg      []string
		file     string
		expected string
	}{
		{"packaged", []string{"pkg"}, "Point.java", filepath.Join("out", "pkg", "Point.java")},
		{"nested", []string{"com", "example"}, "A.java", filepath.Join("out", "com", "example", "A.java")},
		{"default package", nil, "Main.java", filepath.Join("out", "Main.java")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tree.Path(tt.pkg, tt.file))
		})
	}
}

func TestPersistCreatesDirectories(t *testing.T) {
	tree := NewMemTree()
	pkg := []string{"com", "example"}

	ok, err := tree.Exists(pkg, "A.java")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tree.Persist(pkg, "A.java", "class A {\n}\n"))
	ok, err = tree.Exists(pkg, "A.java")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, tree.Persist(pkg, "A.java", "x"))
	got, err := tree.ReadFile(pkg, "A.java")
	require.NoError(t, err)
	assert.Equal(t, "x", got, "persist must truncate")
}

func TestPersistFailure(t *testing.T) {
	tree := NewTree(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/")
	err := tree.Persist([]string{"pkg"}, "A.java", "class A {}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, java.ErrPersist))
	assert.False(t, errors.Is(err, java.ErrConfiguration))
}

func TestJavaFiles(t *testing.T) {
	tree := NewMemTree()
	require.NoError(t, tree.Persist([]string{"b"}, "B.java", ""))
	require.NoError(t, tree.Persist([]string{"a"}, "A.java", ""))
	require.NoError(t, tree.Persist([]string{"a"}, "notes.txt", ""))

	files, err := tree.JavaFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("/", "a", "A.java"), filepath.Join("/", "b", "B.java")}, files)
}
