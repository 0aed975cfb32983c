package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/folio-dev/folio/scaffold"
)

func newNewCmd() *cobra.Command {
	var author, url string
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new site",
		Example: `  folio new my-site
  folio new my-site --author "Jane Doe" --url https://jane.dev`,
		Args: cobra.ExactArgs(1),
		// The scaffold needs no config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			data := scaffold.Data{
				SiteName: toTitle(filepath.Base(dir)),
				Author:   author,
				URL:      url,
				Date:     time.Now().Format("2006-01-02"),
			}
			if data.Author == "" {
				data.Author = data.SiteName
			}

			files, err := scaffold.Create(dir, data)
			if err != nil {
				return err
			}
			for _, f := range files {
				cmd.Printf("  created %s\n", filepath.Join(dir, f))
			}
			cmd.Printf("\nDone! Next steps:\n\n  cd %s\n  folio serve --watch\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&author, "author", "", "author name (default: the site name)")
	cmd.Flags().StringVar(&url, "url", "http://localhost:3000", "site base URL")
	return cmd
}

// toTitle converts a hyphenated name to a title, e.g. "my-site" -> "My Site".
func toTitle(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}
