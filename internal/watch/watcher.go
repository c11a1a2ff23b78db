// Package watch provides a file system watcher that re-runs a pipeline
// when a workbook in a watched directory changes.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config holds the watcher configuration.
type Config struct {
	Directories []string
	Extensions  []string
	Recursive   bool
	DebounceMS  int
}

// Handler is called with the path of a changed workbook after debouncing.
type Handler func(path string) error

// Watcher monitors directories for workbook changes.
type Watcher struct {
	Config  Config
	Logger  *log.Logger
	Handler Handler

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	debounce map[string]*time.Timer
}

// New creates a Watcher with the given configuration.
func New(config Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}

	if config.DebounceMS <= 0 {
		config.DebounceMS = 500
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".xlsx"}
	}

	return &Watcher{
		Config:   config,
		Logger:   log.New(os.Stderr, "[watch] ", log.LstdFlags),
		watcher:  fsw,
		debounce: make(map[string]*time.Timer),
	}, nil
}

// Start begins watching the configured directories. It blocks until the
// context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	for _, dir := range w.Config.Directories {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("could not resolve %s: %w", dir, err)
		}
		if w.Config.Recursive {
			if err := w.addRecursive(absDir); err != nil {
				return err
			}
		} else {
			if err := w.watcher.Add(absDir); err != nil {
				return fmt.Errorf("could not watch %s: %w", absDir, err)
			}
		}
	}

	w.Logger.Printf("Watching %d directory(ies) for %s files",
		len(w.Config.Directories), strings.Join(w.Config.Extensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.Logger.Println("Stopping watcher")
			return w.watcher.Close()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("Error: %v", err)
		}
	}
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != dir {
				return filepath.SkipDir
			}
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	path := event.Name
	if !w.matches(path) {
		return
	}

	// Debounce: editors and Excel save in bursts
	w.mu.Lock()
	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(time.Duration(w.Config.DebounceMS)*time.Millisecond, func() {
		w.process(path)
	})
	w.mu.Unlock()
}

// matches reports whether path is a watched workbook. Office lock files
// ("~$...") are skipped.
func (w *Watcher) matches(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, "~$") || strings.HasPrefix(base, ".~") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.Config.Extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

func (w *Watcher) process(path string) {
	if w.Handler == nil {
		w.Logger.Printf("Matched %s [no handler]", path)
		return
	}
	if err := w.Handler(path); err != nil {
		w.Logger.Printf("Error processing %s: %v", path, err)
		return
	}
	w.Logger.Printf("Processed %s", path)
}
