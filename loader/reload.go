package loader

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/milk9111/sceneloader/resources"
	"go.uber.org/zap"
)

// HotReload reloads the current scene when its file changes on disk. Poll
// must be called from the goroutine that owns the world.
type HotReload struct {
	loader  *SceneLoader
	watcher *resources.Watcher
	hashes  map[string]uint64
	log     *zap.Logger
}

func NewHotReload(l *SceneLoader, w *resources.Watcher, log *zap.Logger) *HotReload {
	if log == nil {
		log = zap.NewNop()
	}
	return &HotReload{
		loader:  l,
		watcher: w,
		hashes:  make(map[string]uint64),
		log:     log,
	}
}

// Prime records the current content of path so an event that does not change
// it is ignored.
func (h *HotReload) Prime(path string) error {
	sum, err := hashFile(path)
	if err != nil {
		return err
	}
	h.hashes[path] = sum
	return nil
}

// Poll drains pending watcher events without blocking and reloads the
// current scene at most once. It reports whether a reload happened.
func (h *HotReload) Poll() (bool, error) {
	if h == nil || h.watcher == nil {
		return false, nil
	}

	reload := false
	for done := false; !done; {
		select {
		case path, ok := <-h.watcher.Events:
			if !ok {
				done = true
				break
			}
			if h.changed(path) {
				reload = true
			}
		case err, ok := <-h.watcher.Errors:
			if ok && err != nil {
				h.log.Warn("scene watcher error", zap.Error(err))
			}
		default:
			done = true
		}
	}
	if !reload {
		return false, nil
	}

	name := h.loader.Name()
	h.log.Info("scene file changed, reloading", zap.String("scene", name))
	if _, err := h.loader.LoadScene(name); err != nil {
		return false, err
	}
	return true, nil
}

func (h *HotReload) changed(path string) bool {
	name := h.loader.Name()
	if name == "" || resources.SceneName(path) != name {
		return false
	}
	sum, err := hashFile(path)
	if err != nil {
		h.log.Debug("scene file unreadable", zap.String("path", path), zap.Error(err))
		return false
	}
	if prev, ok := h.hashes[path]; ok && prev == sum {
		return false
	}
	h.hashes[path] = sum
	return true
}

func hashFile(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("loader: hash %s: %w", path, err)
	}
	return xxhash.Sum64(data), nil
}
