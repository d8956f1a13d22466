package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"videoskill/internal/adapters/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as an HTTPS skill endpoint",
	Long: `Serve skill requests on POST /, plus GET /health and GET /metrics.

TLS is expected to be terminated in front of the process.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	deps, err := wire()
	if err != nil {
		return err
	}
	defer deps.logger.Sync()

	addr := deps.cfg.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	server := web.NewServer(deps.skill, deps.registry, deps.logger)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		deps.logger.Info("🛑 Shutting down")
		if err := server.Shutdown(); err != nil {
			deps.logger.Error("❌ Shutdown failed", zap.Error(err))
		}
	}()

	return server.Listen(addr)
}
