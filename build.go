package folio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/labstack/gommon/log"
)

// BuildReport summarizes one build.
type BuildReport struct {
	Pages     int
	Files     int // static files and embedded assets
	Optimized int // images scaled down while copying
	Talks     int
	Duration  time.Duration
}

// Builder renders a whole site into Config.OutputDir.
type Builder struct {
	Config SiteConfig
	Source ContentSource
	Talks  *TalksProvider
	Logger *log.Logger
}

// NewBuilder creates a Builder that reads talks from cfg.TalksFile.
func NewBuilder(cfg SiteConfig, src ContentSource, logger *log.Logger) *Builder {
	cfg.setDefaults()
	if logger == nil {
		logger = NewLogger(false)
	}
	return &Builder{
		Config: cfg,
		Source: src,
		Talks:  &TalksProvider{Path: cfg.TalksFile, Logger: logger},
		Logger: logger,
	}
}

// Build loads content, clears the output directory and writes every page,
// the embedded assets and the static files. It stops at the first error.
func (b *Builder) Build(ctx context.Context) (BuildReport, error) {
	start := time.Now()
	if b.Logger == nil {
		b.Logger = NewLogger(false)
	}
	cfg := b.Config
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return BuildReport{}, err
	}
	if err := b.checkOutputDir(cfg); err != nil {
		return BuildReport{}, err
	}

	snap, err := LoadSnapshot(ctx, cfg, b.Source, b.Talks)
	if err != nil {
		return BuildReport{}, err
	}
	report := BuildReport{Talks: len(snap.Content.Talks)}

	out := cfg.OutputDir
	if err := os.RemoveAll(out); err != nil {
		return report, fmt.Errorf("folio: clean %s: %w", out, err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return report, fmt.Errorf("folio: create %s: %w", out, err)
	}

	n, err := writeAssets(out)
	if err != nil {
		return report, fmt.Errorf("folio: write assets: %w", err)
	}
	report.Files += n

	files, optimized, err := copyStatic(cfg.StaticDir, out, cfg.MaxImageWidth, b.Logger)
	if err != nil {
		return report, fmt.Errorf("folio: copy static: %w", err)
	}
	report.Files += files
	report.Optimized = optimized

	targets := snap.Targets()
	if err := b.renderAll(ctx, snap, out, targets, cfg.Workers); err != nil {
		return report, err
	}
	report.Pages = len(targets)
	report.Duration = time.Since(start)

	b.Logger.Infof("built %d pages, %d files (%d images optimized) in %s",
		report.Pages, report.Files, report.Optimized, report.Duration)
	return report, nil
}

// checkOutputDir refuses an output directory that Build cannot safely clear:
// the working directory, a filesystem root, or any directory holding the
// content, talks or static sources.
func (b *Builder) checkOutputDir(cfg SiteConfig) error {
	out, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("folio: output directory %s: %w", cfg.OutputDir, err)
	}
	if out == filepath.VolumeName(out)+string(filepath.Separator) {
		return fmt.Errorf("folio: refusing to use filesystem root %s as output directory", out)
	}
	if wd, err := os.Getwd(); err == nil && out == wd {
		return fmt.Errorf("folio: refusing to use the working directory as output directory")
	}

	sources := []string{cfg.ContentDir, cfg.StaticDir, cfg.TalksFile}
	if ds, ok := b.Source.(*DirSource); ok {
		sources = append(sources, ds.Root)
	}
	for _, src := range sources {
		if src == "" {
			continue
		}
		abs, err := filepath.Abs(src)
		if err != nil {
			continue
		}
		if within(out, abs) {
			return fmt.Errorf("folio: output directory %s would remove %s", cfg.OutputDir, src)
		}
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// renderAll fans targets out to a fixed number of workers. The first error
// cancels the remaining work.
func (b *Builder) renderAll(ctx context.Context, snap *Snapshot, out string, targets []Target, workers int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	var wg sync.WaitGroup
	var firstErr error

	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	jobs := make(chan Target)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				if err := b.writeTarget(ctx, snap, out, t); err != nil {
					setErr(err)
				}
			}
		}()
	}

feed:
	for _, t := range targets {
		select {
		case jobs <- t:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func (b *Builder) writeTarget(ctx context.Context, snap *Snapshot, out string, t Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := snap.Assembler.Assemble(t)
	html, err := doc.HTML(ctx)
	if err != nil {
		return fmt.Errorf("folio: render %s: %w", t.Path(), err)
	}
	path := filepath.Join(out, filepath.FromSlash(OutputPath(t)))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, html, 0o644); err != nil {
		return fmt.Errorf("folio: write %s: %w", path, err)
	}
	b.Logger.Debugf("wrote %s (%s)", path, t.Kind())
	return nil
}
