// Package workspace keeps parsed scaffold scripts in memory for the
// language server and the file watcher.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/isti03/checkthat-generator/project"
	"github.com/isti03/checkthat-generator/script"
	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("checkthat.workspace")

type Workspace struct {
	mu    sync.RWMutex
	fs    afero.Fs
	root  string
	opts  script.RunOptions
	files map[string]*File
}

// File is one script with the outcome of its last dry run.
type File struct {
	Path     string
	Content  []byte
	Script   *script.Script
	ParseErr error
	RunErr   error
	Results  []script.Result
}

// Err is the parse error if there is one, otherwise the run error.
func (f *File) Err() error {
	if f.ParseErr != nil {
		return f.ParseErr
	}
	return f.RunErr
}

// New creates a workspace over fs rooted at root. opts.Sink is ignored:
// every run renders into a fresh in-memory tree.
func New(fs afero.Fs, root string, opts script.RunOptions) *Workspace {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	opts.Sink = nil
	return &Workspace{
		fs:    fs,
		root:  root,
		opts:  opts,
		files: make(map[string]*File),
	}
}

func (w *Workspace) Root() string {
	return w.root
}

func (w *Workspace) Fs() afero.Fs {
	return w.fs
}

// IsScript reports whether path names a scaffold script.
func IsScript(path string) bool {
	return strings.HasSuffix(path, script.Extension)
}

func (w *Workspace) ScanAll() error {
	return afero.Walk(w.fs, w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsScript(path) {
			if err := w.ScanFile(path); err != nil {
				log.Errorf("scan %s: %v", path, err)
			}
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := afero.ReadFile(w.fs, path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile parses content and renders it without touching the disk.
func (w *Workspace) UpdateFile(path string, content []byte) *File {
	f := &File{Path: path, Content: content}
	f.Script, f.ParseErr = script.Parse(filepath.Base(path), content)
	if f.ParseErr == nil {
		opts := w.opts
		opts.Sink = project.NewMemTree()
		f.Results, f.RunErr = f.Script.Run(opts)
	}
	if err := f.Err(); err != nil {
		log.Debugf("%s: %v", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = f
	return f
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *File {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths lists the known scripts, sorted.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// RenderedAt returns the Java produced by the declaration enclosing the
// 1-based line, or false when that declaration did not render.
func (w *Workspace) RenderedAt(path string, line int) (script.Result, bool) {
	f := w.GetFile(path)
	if f == nil || f.Script == nil {
		return script.Result{}, false
	}
	index := -1
	for i, d := range f.Script.Declarations {
		if d.Pos.Line <= line {
			index = i
		}
	}
	if index < 0 || index >= len(f.Results) {
		return script.Result{}, false
	}
	return f.Results[index], true
}
