package cli

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

func newWatchCommand() *Command {
	cmd := &Command{
		Name:        "watch",
		Description: "Re-render a directory of proto files whenever one changes",
		Flags:       flag.NewFlagSet("watch", flag.ExitOnError),
		Run:         runWatch,
	}

	addRenderFlags(cmd.Flags)
	cmd.Flags.String("dir", ".", "Directory containing proto files")
	cmd.Flags.Duration("delay", 500*time.Millisecond, "Quiet period before re-rendering after a change")

	return cmd
}

func runWatch(args []string) error {
	cmd := newWatchCommand()
	if err := cmd.Flags.Parse(args); err != nil {
		return err
	}

	flags := readRenderFlags(cmd.Flags)
	dir := cmd.Flags.Lookup("dir").Value.String()
	delay, err := time.ParseDuration(cmd.Flags.Lookup("delay").Value.String())
	if err != nil {
		return fmt.Errorf("invalid delay: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env, err := newRunEnv(ctx, flags)
	if err != nil {
		return err
	}
	defer env.close(context.Background())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, dir); err != nil {
		return fmt.Errorf("failed to setup watcher: %w", err)
	}

	importPaths := append([]string{dir}, flags.importPaths...)
	rebuild := func() error {
		files, err := findProtoFiles(dir)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			env.log.WithField("dir", dir).Warn("No proto files to render")
			return nil
		}
		return env.render(ctx, flags.out, importPaths, files)
	}

	if err := rebuild(); err != nil {
		env.log.WithError(err).Error("Initial render failed")
	}

	env.log.WithField("dir", dir).Info("Watching for proto file changes")
	return watchLoop(ctx, watcher, delay, rebuild, env.log)
}

// watchLoop calls rebuild once no proto change has been seen for delay. It
// returns when ctx is done or the watcher closes.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, delay time.Duration, rebuild func() error, log *logrus.Logger) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := addWatchDirs(watcher, event.Name); err != nil {
						log.WithError(err).WithField("dir", event.Name).Warn("Failed to watch new directory")
					}
				}
			}

			if !isProtoChange(event) {
				continue
			}
			log.WithField("file", event.Name).Debug("Proto file changed")
			pending = time.After(delay)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("Watcher error")

		case <-pending:
			pending = nil
			if err := rebuild(); err != nil {
				log.WithError(err).Error("Render failed")
			}
		}
	}
}

func isProtoChange(event fsnotify.Event) bool {
	if filepath.Ext(event.Name) != ".proto" {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

// addWatchDirs adds root and every directory below it to the watcher
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// findProtoFiles returns the .proto files below dir, relative to dir, sorted
func findProtoFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".proto" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find proto files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
