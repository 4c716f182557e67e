package command

import (
	"context"
	"net/http"
	"time"

	"github.com/maxmcd/calc/internal/logger"
	"github.com/maxmcd/calc/internal/server"
	"github.com/maxmcd/calc/pkg/fxt"
	"golang.org/x/sync/errgroup"
)

func (c calc) serve(ctx context.Context, listenOn string) error {
	srv := &http.Server{
		Addr:    listenOn,
		Handler: server.Handler(c.config.Display.Precision),
	}
	fxt.Fprintfln(c.stdout, "Server listening on: %s", listenOn)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
