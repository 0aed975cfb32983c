package folio

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
)

// EmbeddedAssets contains the assets every site ships with: styles.css.
// Files under the static directory with the same name take precedence.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func assetsFS() fs.FS {
	sub, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		panic(err)
	}
	return sub
}

// writeAssets copies the embedded assets into dir.
func writeAssets(dir string) (int, error) {
	assets := assetsFS()
	entries, err := fs.ReadDir(assets, ".")
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := fs.ReadFile(assets, e.Name())
		if err != nil {
			return n, err
		}
		if err := os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
