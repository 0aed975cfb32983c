package main

import (
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio"
)

func newBuildCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, src, err := c.site()
			if err != nil {
				return err
			}
			if closer, ok := src.(interface{ Close() error }); ok {
				defer closer.Close()
			}

			report, err := folio.NewBuilder(site, src, c.logger).Build(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("%d pages and %d files written to %s\n", report.Pages, report.Files, site.OutputDir)
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "output directory")
	cmd.Flags().Int("workers", 0, "render workers")
	cmd.Flags().Int("max-image-width", 0, "scale down images wider than this")
	bindFlags(c.v, cmd.Flags(), map[string]string{
		"outputDir":     "out",
		"workers":       "workers",
		"maxImageWidth": "max-image-width",
	})
	return cmd
}
