package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta la API JSON del back office",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := loadApp()
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	port := application.Config.Port
	ln, err := listen(port)
	if err != nil {
		return err
	}

	server := &http.Server{Handler: application.HTTPHandler(), ReadHeaderTimeout: 10 * time.Second}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info().Str("addr", ln.Addr().String()).Msg("escuchando")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// listen prueba el puerto pedido y, si está ocupado, los puertos 8081 a 8090.
func listen(port string) (net.Listener, error) {
	ln, err := net.Listen("tcp", ":"+port)
	if err == nil {
		return ln, nil
	}
	zlog.Warn().Err(err).Str("port", port).Msg("puerto ocupado, busco alternativo")
	for p := 8081; p <= 8090; p++ {
		l2, err2 := net.Listen("tcp", net.JoinHostPort("", fmt.Sprintf("%d", p)))
		if err2 == nil {
			return l2, nil
		}
	}
	return nil, fmt.Errorf("listen :%s: %w", port, err)
}
