package main

import (
	"fmt"
	"net"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/liinajapson/budget-tool/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	var open bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.ServeAddr
			}
			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}
			url := fmt.Sprintf("http://%s", listener.Addr().String())
			fmt.Fprintf(cmd.ErrOrStderr(), "Serving budget-tool API on %s\n", url)
			if open {
				if err := browser.OpenURL(url + "/api/v1/presets"); err != nil {
					a.logger.Warn("open browser", zap.Error(err))
				}
			}
			return server.New(a.logger).Serve(listener)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().BoolVar(&open, "open", false, "open the API in a browser")
	return cmd
}
