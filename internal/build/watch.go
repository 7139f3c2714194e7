package build

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dooosp/agent-showcase/pkg/errors"
	"github.com/dooosp/agent-showcase/pkg/logging"
)

// debounceDelay is how long to wait for further file events before
// re-running the pipeline. Editors tend to fire several events per save.
const debounceDelay = 500 * time.Millisecond

// Watch re-runs the pipeline whenever a source or reference file
// changes, until ctx is cancelled. A failed rebuild is logged and the
// watcher keeps going; the previous artifacts stay in place.
//
// Watches are registered on the containing directories, not on the
// files themselves: editors save atomically by renaming a temp file
// over the target, and a file-level watch would keep following the
// replaced inode and miss every save after the first.
func (p *Pipeline) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapResource("create", "file watcher", "", err)
	}
	defer watcher.Close()

	sources := map[string]struct{}{
		filepath.Clean(p.config.CatalogPath):      {},
		filepath.Clean(p.config.ProjectsPath):     {},
		filepath.Clean(p.config.TranslationsPath): {},
		filepath.Clean(p.config.ConnectionsPath):  {},
	}
	subagentsDir := filepath.Clean(p.config.SubagentsDir)

	dirs := map[string]struct{}{subagentsDir: {}}
	for path := range sources {
		dirs[filepath.Dir(path)] = struct{}{}
	}

	watched := make([]string, 0, len(dirs))
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return errors.WrapIO("watch", dir, err)
		}
		watched = append(watched, dir)
	}
	sort.Strings(watched)

	log := logging.Ctx(ctx)
	log.Info().Strs("dirs", watched).Msg("Watching sources for changes")

	var debounce *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// Directory watches report every neighbor; only the source
			// files and the subagent directory's contents matter.
			name := filepath.Clean(event.Name)
			if _, ok := sources[name]; !ok && !underDir(name, subagentsDir) {
				continue
			}
			log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("Source changed")
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(watchErr).Msg("File watcher error")

		case <-rebuild:
			if _, err := p.Run(ctx); err != nil {
				log.Error().Err(err).Msg("Rebuild failed; keeping previous artifacts")
			}
		}
	}
}

// underDir reports whether path is dir itself or a path inside it.
func underDir(path, dir string) bool {
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}
