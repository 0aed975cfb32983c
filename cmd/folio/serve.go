package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio"
)

func newServeCmd(c *cli) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the site",
		Long: `serve renders pages on request from the current content. With --watch,
edits to content and static files show up on the next reload.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, src, err := c.site()
			if err != nil {
				return err
			}
			app := folio.New(site, src,
				folio.WithLogger(c.logger),
				folio.WithStaticDir(site.StaticDir),
			)
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch {
				go func() {
					if err := app.Watch(ctx); err != nil {
						c.logger.Errorf("watch: %v", err)
					}
				}()
			}
			go func() {
				<-ctx.Done()
				shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := app.Echo.Shutdown(shutdown); err != nil {
					c.logger.Errorf("shutdown: %v", err)
				}
			}()

			return app.Start()
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload content when files change")
	cmd.Flags().String("addr", "", "listen address")
	bindFlags(c.v, cmd.Flags(), map[string]string{"addr": "addr"})
	return cmd
}
