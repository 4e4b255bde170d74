package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run serves until the context is canceled, then shuts down gracefully,
// letting in-flight requests finish within shutdownTimeout.
func (gw *Gateway) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", gw.port),
		Handler: gw.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		gw.l.Infof(ctx, "Gateway listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	gw.l.Info(ctx, "Gateway shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
