package workspace

import (
	"path"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/isti03/checkthat-generator/scaffold"
)

// RunCallback is called after the watcher regenerated a script.
type RunCallback func(f *File, err error)

// Watcher regenerates scripts into an output sink whenever they are
// written. Files it produced itself may be overwritten by later runs;
// anything else already in the output still fails the run.
type Watcher struct {
	ws             *Workspace
	out            *regenerating
	watcher        *fsnotify.Watcher
	debouncePeriod time.Duration

	mu        sync.Mutex
	timers    map[string]*time.Timer
	callbacks []RunCallback
}

func NewWatcher(ws *Workspace, out scaffold.Sink) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	return &Watcher{
		ws:             ws,
		out:            &regenerating{Sink: out, written: make(map[string]bool)},
		watcher:        fw,
		debouncePeriod: 200 * time.Millisecond,
		timers:         make(map[string]*time.Timer),
	}, nil
}

// Add watches a directory for script changes.
func (w *Watcher) Add(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "watch %s", dir)
	}
	return nil
}

func (w *Watcher) OnRun(cb RunCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	for _, t := range w.timers {
		t.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !IsScript(event.Name) {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
				log.Debugf("%s: %s", event.Op, event.Name)
				w.schedule(event.Name)
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				w.ws.RemoveFile(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watcher: %v", err)
		}
	}
}

// schedule coalesces the bursts of events editors produce on save.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[name]; ok {
		t.Stop()
	}
	w.timers[name] = time.AfterFunc(w.debouncePeriod, func() {
		w.mu.Lock()
		delete(w.timers, name)
		w.mu.Unlock()

		f, err := w.Generate(name)
		w.notify(f, err)
	})
}

func (w *Watcher) notify(f *File, err error) {
	w.mu.Lock()
	callbacks := make([]RunCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()
	for _, cb := range callbacks {
		cb(f, err)
	}
}

// Generate rereads a script and, when it renders cleanly, persists its
// declarations into the output.
func (w *Watcher) Generate(name string) (*File, error) {
	if err := w.ws.ScanFile(name); err != nil {
		w.ws.RemoveFile(name)
		return nil, errors.Wrapf(err, "read %s", name)
	}
	f := w.ws.GetFile(name)
	if err := f.Err(); err != nil {
		log.Errorf("%v", err)
		return f, err
	}

	opts := w.ws.opts
	opts.Sink = w.out
	results, err := f.Script.Run(opts)
	if err != nil {
		log.Errorf("%v", err)
		return f, err
	}
	for _, r := range results {
		log.Infof("regenerated %s", r.Path())
	}
	return f, nil
}

type regenerating struct {
	scaffold.Sink

	mu      sync.Mutex
	written map[string]bool
}

func (r *regenerating) Exists(pkg []string, fileName string) (bool, error) {
	r.mu.Lock()
	owned := r.written[key(pkg, fileName)]
	r.mu.Unlock()
	if owned {
		return false, nil
	}
	return r.Sink.Exists(pkg, fileName)
}

func (r *regenerating) Persist(pkg []string, fileName, content string) error {
	if err := r.Sink.Persist(pkg, fileName, content); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.written[key(pkg, fileName)] = true
	return nil
}

func key(pkg []string, fileName string) string {
	return path.Join(append(append([]string{}, pkg...), fileName)...)
}
