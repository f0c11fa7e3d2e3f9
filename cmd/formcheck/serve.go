package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-formcheck/internal/watch"
	"github.com/goliatone/go-formcheck/pkg/server"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var noLive bool
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Serve the form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, flags)
			if err != nil {
				return err
			}
			page, err := rt.page()
			if err != nil {
				return err
			}
			pages, err := rt.pages()
			if err != nil {
				return err
			}

			srv, err := server.New(
				server.WithLogger(rt.logger),
				server.WithFormConfig(page.Form),
				server.WithPage(page),
				server.WithPages(pages),
				server.WithLive(rt.cfg.Server.Live && !noLive),
			)
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			if rt.cfg.Templates.Dir != "" && rt.cfg.Templates.Watch {
				w := &watch.Watcher{
					Dir:      rt.cfg.Templates.Dir,
					Reloader: pages,
					Logger:   rt.logger.With("component", "watch"),
				}
				g.Go(func() error { return w.Run(ctx) })
			}
			g.Go(func() error { return srv.ListenAndServe(ctx, rt.cfg.Server.Addr) })
			return g.Wait()
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().String("templates", "", "directory with page templates overriding the embedded ones")
	cmd.Flags().Bool("watch", false, "reload templates when files in --templates change")
	cmd.Flags().BoolVar(&noLive, "no-live", false, "disable the WebSocket live channel")
	return cmd
}
