package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio"
)

func newTagsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tags [tag]",
		Short: "List the tags in a content database",
		Long: `tags prints every tag stored in the database given with --db with its item
count. Given a tag, it prints the items carrying it, newest first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.settings.Database == "" {
				return fmt.Errorf("tags needs --db")
			}
			store, err := folio.NewStore(c.settings.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			defer w.Flush()

			if len(args) == 1 {
				items, err := store.ListItems(ctx, folio.Tag(args[0]))
				if err != nil {
					return err
				}
				for _, it := range items {
					fmt.Fprintf(w, "%s\t%s\t%s\n", folio.FormatDate(it.Date), it.Path(), it.Title)
				}
				return nil
			}

			tags, err := store.ListTags(ctx)
			if err != nil {
				return err
			}
			for _, t := range tags {
				items, err := store.ListItems(ctx, t)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", t, len(items), folio.TagPath(t))
			}
			return nil
		},
	}
}
