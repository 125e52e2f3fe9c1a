package application

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dealflow/internal/config"
	"dealflow/internal/server"
	"dealflow/pkg/logx"
	"dealflow/pkg/middlewarex"
)

func newRouter(cfg config.HTTP, srv server.Server) chi.Router {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.LogFieldMaxLen),
	)

	srv.RegisterRoutes(r)

	return r
}

func newHTTPServer(ctx context.Context, cfg config.HTTP, srv server.Server) *http.Server {
	return &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.ListenAddress,
		Handler:           newRouter(cfg, srv),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}
