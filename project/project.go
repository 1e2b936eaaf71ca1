// Package project maps generated declarations onto an output source tree.
package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/java"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("checkthat.project")

// Tree is an output source root, e.g. "src/main/java". Each package
// segment becomes a directory below it.
type Tree struct {
	fs   afero.Fs
	root string
}

// NewTree roots a tree at root on fs. A nil fs means the OS filesystem.
func NewTree(fs afero.Fs, root string) *Tree {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if root == "" {
		root = "."
	}
	return &Tree{fs: fs, root: root}
}

// NewMemTree returns a tree backed by memory, for dry runs.
func NewMemTree() *Tree {
	return NewTree(afero.NewMemMapFs(), "/")
}

func (t *Tree) Root() string  { return t.root }
func (t *Tree) Fs() afero.Fs { return t.fs }

// Path returns the file path for fileName in the given package.
func (t *Tree) Path(pkg []string, fileName string) string {
	parts := append([]string{t.root}, pkg...)
	return filepath.Join(append(parts, fileName)...)
}

func (t *Tree) Exists(pkg []string, fileName string) (bool, error) {
	ok, err := afero.Exists(t.fs, t.Path(pkg, fileName))
	if err != nil {
		return false, errors.Wrapf(err, "probe %s", t.Path(pkg, fileName))
	}
	return ok, nil
}

// Persist writes content to the package directory, creating missing
// directories. An existing file is truncated.
func (t *Tree) Persist(pkg []string, fileName, content string) (err error) {
	path := t.Path(pkg, fileName)
	if err := t.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Mark(errors.Wrapf(err, "create directory for %s", path), java.ErrPersist)
	}

	f, err := t.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "open %s", path), java.ErrPersist)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Mark(errors.Wrapf(cerr, "close %s", path), java.ErrPersist)
		}
	}()

	if _, err := f.WriteString(content); err != nil {
		return errors.Mark(errors.Wrapf(err, "write %s", path), java.ErrPersist)
	}
	log.Debugf("persisted %s (%d bytes)", path, len(content))
	return nil
}

func (t *Tree) ReadFile(pkg []string, fileName string) (string, error) {
	data, err := afero.ReadFile(t.fs, t.Path(pkg, fileName))
	if err != nil {
		return "", errors.Wrapf(err, "read %s", t.Path(pkg, fileName))
	}
	return string(data), nil
}

// JavaFiles returns all .java files below the root, sorted.
func (t *Tree) JavaFiles() ([]string, error) {
	var files []string
	err := afero.Walk(t.fs, t.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, java.SourceExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", t.root)
	}
	sort.Strings(files)
	return files, nil
}
