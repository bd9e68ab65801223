package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	tt "github.com/phpmod-labs/phpmod/internal/types"
)

// Watcher re-runs the engine whenever a PHP file under the watched
// directories changes.
type Watcher struct {
	engine     *Engine
	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool
}

func NewWatcher(engine *Engine, dirs []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating file watcher: %w", err)
	}
	return &Watcher{
		engine:    engine,
		watcher:   fsw,
		watchDirs: dirs,
	}, nil
}

func (w *Watcher) Start() error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, dir := range w.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.isWatching = true
	go w.watchLoop()
	return nil
}

func (w *Watcher) Stop() error {
	if !w.isWatching {
		log.Println("not watching")
	}

	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isWatching {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write == fsnotify.Write {
		if strings.HasSuffix(event.Name, ".php") || strings.HasSuffix(event.Name, ".phtml") {
			// wait for a while after file change to consider multiple changes as one
			time.Sleep(100 * time.Millisecond)
			issues, err := w.engine.Run(event.Name)
			if err != nil {
				log.Printf("error: %v", err)
				return
			}
			w.reportIssues(event.Name, issues)
		}
	}
}

func (w *Watcher) reportIssues(filename string, issues []tt.Issue) {
	if len(issues) == 0 {
		log.Printf("no issues found in %s", filename)
		return
	}

	log.Printf("found %d issues in %s", len(issues), filename)
	for _, issue := range issues {
		log.Printf("- %s: %s", issue.Rule, issue.Message)
	}
}
