// Package watch recompiles tipo sources when they change on disk.
package watch

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watch watches dir and calls run for every file created or written
// there whose name ends in one of exts. It returns when ctx is
// cancelled. Failed runs are reported and watching continues.
func Watch(ctx context.Context, dir string, exts []string, run func(path string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !matches(event.Name, exts) {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("File changed: %s\n", event.Name)
				if err := run(event.Name); err != nil {
					fmt.Printf("Compile failed: %v\n", err)
				} else {
					fmt.Println("Compile complete")
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("Watcher error: %v\n", err)
		}
	}
}

func matches(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}
