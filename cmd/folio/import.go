package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio"
)

func newImportCmd(c *cli) *cobra.Command {
	var prune, replace bool
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the content directory into a SQLite database",
		Long: `import loads the markdown content tree and upserts it into the database
given with --db, skipping rows that did not change. --prune also deletes
rows whose files are gone; --replace rewrites the whole database in one
transaction. Build and serve read from the database when --db is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.settings.Database == "" {
				return fmt.Errorf("import needs --db")
			}
			site := c.settings.siteConfig()
			src := &folio.DirSource{Root: site.ContentDir, Sections: site.Sections, Logger: c.logger}
			content, err := src.Load(cmd.Context())
			if err != nil {
				return err
			}

			store, err := folio.NewStore(c.settings.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			if replace {
				if err := store.Import(cmd.Context(), content); err != nil {
					return err
				}
				cmd.Printf("imported %d items and %d pages into %s\n", len(content.Items), len(content.Pages), c.settings.Database)
				return nil
			}

			r, err := store.Sync(cmd.Context(), content, prune)
			if err != nil {
				return err
			}
			cmd.Printf("synced %s: %d saved, %d unchanged, %d deleted, %d tags\n",
				c.settings.Database, r.Saved, r.Unchanged, r.Deleted, r.Tags)
			return nil
		},
	}
	cmd.Flags().BoolVar(&prune, "prune", false, "delete stored items and pages missing from the content directory")
	cmd.Flags().BoolVar(&replace, "replace", false, "replace the database contents in a single transaction")
	cmd.MarkFlagsMutuallyExclusive("prune", "replace")
	return cmd
}
