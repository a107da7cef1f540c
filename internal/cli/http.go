package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/rcli/internal/clock"
	"github.com/mrz1836/rcli/internal/httpserve"
	"github.com/mrz1836/rcli/internal/signal"
)

type httpServeOptions struct {
	dir  string
	port int
}

// AddHTTPCommand adds the http command group to the root command.
func AddHTTPCommand(root *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "HTTP utilities",
	}

	addHTTPServeCmd(cmd, flags)

	root.AddCommand(cmd)
}

func addHTTPServeCmd(parent *cobra.Command, _ *GlobalFlags) {
	opts := &httpServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory over HTTP",
		Long: `Serve the files of a directory over HTTP until interrupted.

Requests are logged with a request id. GET /healthz reports liveness.`,
		Example: `  rcli http serve
  rcli http serve -d ./public -p 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHTTPServe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "directory to serve")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "port to listen on (default from config, 8080)")

	parent.AddCommand(cmd)
}

func runHTTPServe(cmd *cobra.Command, opts *httpServeOptions) error {
	logger := GetLogger()

	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}

	serveCfg := httpserve.Config{
		Dir:               stringFlag(cmd, "dir", opts.dir, cfg.HTTP.Dir),
		Port:              cfg.HTTP.Port,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}
	if cmd.Flags().Changed("port") {
		serveCfg.Port = opts.port
	}

	srv, err := httpserve.New(serveCfg, httpserve.WithLogger(logger))
	if err != nil {
		return err
	}

	sh := signal.NewHandler(cmd.Context())
	defer sh.Stop()

	clk := clock.RealClock{}
	start := clk.Now()
	err = srv.ListenAndServe(sh.Context())

	event := logger.Info()
	if sig := sh.Signal(); sig != nil {
		event = event.Str("signal", sig.String())
	}
	event.Dur("uptime", clock.Since(clk, start)).Msg("http server stopped")

	return err
}
