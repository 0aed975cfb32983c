// Package folio generates a personal portfolio site: a home page with hero,
// about and projects, section listings, articles, talks, an about page and
// tag pages. Content comes from a markdown tree or a SQLite database.
//
// Build writes the whole site to a directory. App serves the same pages from
// memory for previewing, reloading content when files change.
package folio

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// App is the preview server. It wires the content source, the snapshot
// cache, middleware and the page handler together.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Cache  *SiteCache
	Logger *log.Logger

	source ContentSource
	talks  *TalksProvider
	ready  bool
}

// New creates an App serving content from src.
func New(cfg SiteConfig, src ContentSource, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Logger: NewLogger(false),
		source: src,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.Echo.HideBanner = true
	a.Echo.Logger = a.Logger
	a.talks = &TalksProvider{Path: a.Config.TalksFile, Logger: a.Logger}
	a.Cache = NewSiteCache(a.load, a.Config.CacheTTL)
	return a
}

func (a *App) load(ctx context.Context) (*Snapshot, error) {
	snap, err := LoadSnapshot(ctx, a.Config, a.source, a.talks)
	if err != nil {
		return nil, err
	}
	a.Logger.Debugf("loaded %d targets", len(snap.Targets()))
	return snap, nil
}

// setup validates the configuration and registers middleware and routes.
// It runs once; Start calls it.
func (a *App) setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if a.source == nil {
		return fmt.Errorf("folio: no content source")
	}

	a.setupMiddleware()
	a.setupRoutes()
	a.ready = true
	return nil
}

// Start loads the site once, so content errors surface before the server
// listens, and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.setup(); err != nil {
		return err
	}
	if _, err := a.Cache.Snapshot(context.Background()); err != nil {
		return fmt.Errorf("folio: initial load: %w", err)
	}

	a.Logger.Infof("serving %s on %s", a.Config.ContentDir, a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets; a file with the same name in the static directory is
	// served first by the static middleware.
	assets := http.FileServer(http.FS(assetsFS()))
	e.GET("/styles.css", echo.WrapHandler(assets))

	e.GET("/", a.handlePage)
	e.GET("/*", a.handlePage)
}

// Watch invalidates the snapshot cache whenever something under the content
// or static directory, or the talks file, changes. It blocks until ctx is
// done.
func (a *App) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("folio: watch: %w", err)
	}
	defer watcher.Close()

	for _, root := range a.watchRoots() {
		if err := addTree(watcher, root); err != nil {
			a.Logger.Warnf("watch: %s: %v", root, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := addTree(watcher, event.Name); err != nil {
					a.Logger.Warnf("watch: %s: %v", event.Name, err)
				}
			}
			a.Logger.Infof("change detected: %s (%s)", event.Name, event.Op)
			a.Cache.Invalidate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.Logger.Warnf("watch: %v", err)
		}
	}
}

// watchRoots lists the directories to watch. The talks file is covered by
// its directory.
func (a *App) watchRoots() []string {
	roots := []string{a.Config.ContentDir, a.Config.StaticDir}
	talksDir := filepath.Dir(a.Config.TalksFile)
	if !within(a.Config.ContentDir, talksDir) {
		roots = append(roots, talksDir)
	}
	var out []string
	for _, r := range roots {
		if isDir(r) {
			out = append(out, r)
		}
	}
	return out
}

func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Close releases the content source when it holds resources, such as a
// Store.
func (a *App) Close() error {
	if c, ok := a.source.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
