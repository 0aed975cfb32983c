// Package scaffold creates a new folio site from embedded templates.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

// Templates contains all scaffold template files.
// Files ending in .tmpl are executed as Go text/templates; everything else
// is copied as is.
//
//go:embed all:templates
var Templates embed.FS

const root = "templates"

// Data holds the variables passed to every template.
type Data struct {
	SiteName string
	Author   string
	URL      string
	Date     string // date of the sample post, YYYY-MM-DD
}

// Create writes a new site into dir, which must not exist yet, and returns
// the files it created relative to dir.
func Create(dir string, data Data) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("directory %q already exists", dir)
	}

	var created []string
	err := fs.WalkDir(Templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		out := filepath.Join(dir, filepath.FromSlash(outputName(rel)))
		if d.IsDir() {
			return os.MkdirAll(out, 0o755)
		}

		content, err := Templates.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if strings.HasSuffix(p, ".tmpl") {
			content, err = execute(p, content, data)
			if err != nil {
				return err
			}
		}
		if err := os.WriteFile(out, content, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		created = append(created, filepath.ToSlash(outputName(rel)))
		return nil
	})
	if err != nil {
		return created, err
	}
	return created, nil
}

// outputName strips the .tmpl suffix and renames dotenv to .env.example.
func outputName(rel string) string {
	rel = strings.TrimSuffix(rel, ".tmpl")
	if path.Base(rel) == "dotenv" {
		rel = path.Join(path.Dir(rel), ".env.example")
	}
	return rel
}

func execute(name string, content []byte, data Data) ([]byte, error) {
	tmpl, err := template.New(path.Base(name)).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return []byte(sb.String()), nil
}
