package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher watches files for changes and triggers callbacks
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	logger    *zap.Logger
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewFileWatcher creates a new file watcher. A nil logger disables logging.
func NewFileWatcher(debounce time.Duration, logger *zap.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileWatcher{
		watcher:   watcher,
		logger:    logger,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		done:      make(chan struct{}),
	}, nil
}

// Watch starts watching the specified files
// callback will be called when any of the files change
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		// Editors often replace files on save, so watch the directory and
		// filter by name.
		if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		fw.callbacks[absPath] = callback
		fw.logger.Debug("watching file", zap.String("path", absPath))
	}

	return nil
}

// Start begins watching for file changes in the background
func (fw *FileWatcher) Start() {
	fw.wg.Add(1)
	go func() {
		defer fw.wg.Done()
		fw.loop()
	}()
}

// Run watches for file changes until ctx is done, then closes the watcher
func (fw *FileWatcher) Run(ctx context.Context) error {
	fw.Start()

	select {
	case <-ctx.Done():
	case <-fw.done:
	}
	return fw.Close()
}

func (fw *FileWatcher) loop() {
	for {
		select {
		case <-fw.done:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			// Only trigger on write or create events
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fw.handleFileChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return
	}

	callback, exists := fw.callbacks[absPath]
	if !exists {
		return
	}

	// Cancel existing timer if any
	if timer, exists := fw.timers[absPath]; exists {
		timer.Stop()
	}

	fw.logger.Debug("file changed", zap.String("path", absPath))
	fw.timers[absPath] = time.AfterFunc(fw.debounce, func() {
		select {
		case <-fw.done:
			return
		default:
		}
		callback(absPath)
	})
}

// Close stops the watcher and any pending callbacks
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		close(fw.done)

		fw.mu.Lock()
		for _, timer := range fw.timers {
			timer.Stop()
		}
		fw.mu.Unlock()

		err = fw.watcher.Close()
		fw.wg.Wait()
	})
	return err
}

// RemoveAll removes all watched files
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	dirs := make(map[string]bool)
	for file := range fw.callbacks {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := fw.watcher.Remove(dir); err != nil {
			return err
		}
	}

	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.callbacks = make(map[string]func(string))
	fw.timers = make(map[string]*time.Timer)
	return nil
}
