// internal/watch/watch.go
package watch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Run performs an initial build, then blocks watching the given paths and
// re-running buildFunc whenever one of them changes. Directories are watched
// recursively; plain files are watched through their parent directory, which
// also covers editors that save via rename-and-swap.
func Run(paths []string, buildFunc func() error) error {
	if err := buildFunc(); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer watcher.Close()

	// Track watched directories to avoid duplicate registrations.
	watchedDirs := make(map[string]bool)
	addWatch := func(dir string) {
		dir = filepath.Clean(dir)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				log.Printf("Error adding watch on %s: %v", dir, err)
			} else {
				fmt.Printf("Watching directory: %s\n", dir)
				watchedDirs[dir] = true
			}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("could not stat path %s: %w", path, err)
		}

		if info.IsDir() {
			if err := filepath.Walk(path, func(walkPath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() {
					addWatch(walkPath)
				}
				return nil
			}); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
		} else {
			addWatch(filepath.Dir(path))
		}
	}

	fmt.Println("Press Ctrl+C to stop")
	watchForChanges(watcher, buildFunc)
	return nil
}

func watchForChanges(watcher *fsnotify.Watcher, buildFunc func() error) {
	var lastBuildTime time.Time
	const debounceDuration = 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// Create, write, remove, and rename all matter: editors save
			// with different strategies.
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				if time.Since(lastBuildTime) > debounceDuration {
					time.Sleep(100 * time.Millisecond)

					log.Printf("Change detected in %s, rebuilding...", event.Name)
					if err := buildFunc(); err != nil {
						log.Printf("Error rebuilding site: %v", err)
					} else {
						log.Println("Site rebuilt successfully.")
					}
					lastBuildTime = time.Now()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
