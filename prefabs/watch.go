package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow is how long a file must stay quiet before its change is
// reported.
const debounceWindow = 100 * time.Millisecond

// Change reports that a prefab file settled after being written.
type Change struct {
	Path string
	Name string
}

// Watcher reports changes to prefab YAML files in one directory.
type Watcher struct {
	fs      *fsnotify.Watcher
	names   map[string]bool
	Changes chan Change
	Errors  chan error

	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// NewWatcher watches dir. With names given, only those base names are
// reported; otherwise every .yaml/.yml file is.
func NewWatcher(dir string, names ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fw,
		names:   make(map[string]bool, len(names)),
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	for _, n := range names {
		w.names[cleanPrefabPath(n)] = true
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.doneCh
		close(w.Changes)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) wants(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if len(w.names) > 0 {
		return w.names[name]
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	pending := make(map[string]struct{})
	settle := time.NewTimer(debounceWindow)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.wants(event) {
				continue
			}
			pending[event.Name] = struct{}{}
			settle.Reset(debounceWindow)
		case <-settle.C:
			for path := range pending {
				delete(pending, path)
				select {
				case w.Changes <- Change{Path: path, Name: filepath.Base(path)}:
				case <-w.closeCh:
					return
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
