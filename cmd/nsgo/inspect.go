package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/nsgo-dev/nsgo/internal/errors"
)

func inspectCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Serve the element inspector",
		Long: `Serve the registry over HTTP:

  GET /elements          registered names
  GET /elements/{name}   how a tag resolves
  GET /metrics           Prometheus metrics
  GET /probe             WebSocket tag probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := flags.buildApp(ctx)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = app.Config().Inspect.Addr
			}

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return errors.New("E300").WithSubject(addr).Wrap(err)
			}

			srv := &http.Server{
				Handler:           app.Inspector(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Serve(ln)
			}()
			newOutput(cmd).success("Inspector listening on http://%s", ln.Addr())

			select {
			case err := <-errCh:
				return errors.New("E300").WithSubject(addr).Wrap(err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			app.Logger().Info("shutting down inspector")
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: inspect.addr from nsgo.json)")
	return cmd
}
