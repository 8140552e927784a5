package cmd

import (
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"paycheck-engine/internal/engine"
	"paycheck-engine/internal/handler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the projection HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tables := newRegistry()
		h := handler.New(engine.NewProcessor(tables, cfg.Defaults.TaxYear, logger), tables, logger)

		srv := &fasthttp.Server{
			Handler:      h.Handle,
			Name:         "paycalc",
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}

		errc := make(chan error, 1)
		go func() {
			logger.Info("paycalc listening", zap.String("addr", cfg.Addr()))
			errc <- srv.ListenAndServe(cfg.Addr())
		}()

		select {
		case err := <-errc:
			return err
		case <-cmd.Context().Done():
			logger.Info("shutting down")
			return srv.Shutdown()
		}
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "listen port")
	_ = v.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}
