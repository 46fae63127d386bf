// Package fixture serves lineage family trees from local JSON files.
//
// A fixture is either a single file holding one payload, returned for every
// lineage id, or a directory of <lineage-id>.json files. Fixtures let the CLI
// and TUI run against recorded responses without a lineage service.
package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/lineage-cli/internal/core/domain"
	"github.com/custodia-labs/lineage-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lineage-cli/internal/logger"
)

const (
	fixtureExt      = ".json"
	defaultDebounce = 200 * time.Millisecond
)

// Ensure Gateway implements the interface.
var _ driven.LineageGateway = (*Gateway)(nil)

// Gateway reads lineage payloads from disk.
type Gateway struct {
	path     string
	dir      bool
	debounce time.Duration
}

// New creates a fixture gateway for a file or directory.
func New(path string) (*Gateway, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: fixture path is empty", domain.ErrInvalidInput)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: fixture %s: %w", domain.ErrInvalidInput, path, err)
	}
	return &Gateway{path: path, dir: info.IsDir(), debounce: defaultDebounce}, nil
}

// Path returns the fixture file or directory.
func (g *Gateway) Path() string {
	return g.path
}

// FetchLineage reads the payload for lineageID.
func (g *Gateway) FetchLineage(ctx context.Context, lineageID string) (domain.RawPayload, error) {
	fail := func(err error) (domain.RawPayload, error) {
		return nil, &domain.FetchError{LineageID: lineageID, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return fail(fmt.Errorf("%w: %w", domain.ErrFetchFailed, err))
	}

	file, err := g.fileFor(lineageID)
	if err != nil {
		return fail(err)
	}

	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return fail(domain.ErrNotFound)
	}
	if err != nil {
		return fail(fmt.Errorf("%w: read fixture: %w", domain.ErrFetchFailed, err))
	}

	var payload domain.RawPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fail(fmt.Errorf("%w: decode fixture %s: %w", domain.ErrFetchFailed, file, err))
	}
	if payload == nil {
		return fail(fmt.Errorf("%w: fixture %s is empty", domain.ErrFetchFailed, file))
	}
	logger.Debug("fixture: loaded %s (%d groups)", file, len(payload))
	return payload, nil
}

func (g *Gateway) fileFor(lineageID string) (string, error) {
	if !g.dir {
		return g.path, nil
	}
	id := strings.TrimSpace(lineageID)
	if id == "" || id != filepath.Base(id) || id == "." || id == ".." {
		return "", fmt.Errorf("%w: lineage id %q is not a fixture name", domain.ErrInvalidInput, lineageID)
	}
	return filepath.Join(g.path, id+fixtureExt), nil
}

// Watch calls onChange with the affected lineage id whenever a fixture is
// written. In single-file mode the id is empty, meaning every lineage.
// Bursts of events are coalesced. Watch blocks until ctx is cancelled.
func (g *Gateway) Watch(ctx context.Context, onChange func(lineageID string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files by rename, so the parent directory is
	// watched rather than the file itself.
	watchDir := g.path
	if !g.dir {
		watchDir = filepath.Dir(g.path)
	}
	if err := watcher.Add(watchDir); err != nil {
		return fmt.Errorf("watch %s: %w", watchDir, err)
	}

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			id, relevant := g.lineageIDFor(event.Name)
			if !relevant {
				continue
			}
			pending[id] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(g.debounce)
			} else {
				timer.Reset(g.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			for id := range pending {
				logger.Debug("fixture: change detected for %q", id)
				onChange(id)
			}
			clear(pending)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("fixture watcher: %v", err)
		}
	}
}

// lineageIDFor reports which lineage an event path belongs to.
func (g *Gateway) lineageIDFor(name string) (string, bool) {
	if !g.dir {
		return "", filepath.Clean(name) == filepath.Clean(g.path)
	}
	base := filepath.Base(name)
	if filepath.Ext(base) != fixtureExt {
		return "", false
	}
	return strings.TrimSuffix(base, fixtureExt), true
}
