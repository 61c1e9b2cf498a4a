package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhorak/kiosek/cmd/config"
	"github.com/mhorak/kiosek/internal/server"
)

// NewServeCmd creates the `kiosek serve` command.
func NewServeCmd() *cobra.Command {
	var (
		port       int
		contentDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the kiosk HTTP server",
		Long: `Run the password-gated kiosk server over the content directory.

The catalog is rebuilt from disk on every request, so content updates are
picked up without a restart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := config.Logger()
			if contentDir == "" {
				contentDir = config.ContentDir()
			}
			if port == 0 {
				port = config.Port()
			}

			if info, err := os.Stat(contentDir); err != nil || !info.IsDir() {
				return fmt.Errorf("content directory %q is not usable", contentDir)
			}

			prefStore, err := config.OpenPrefs()
			if err != nil {
				log.WithError(err).Warn("preference store unavailable, using defaults")
				prefStore = nil
			} else {
				defer prefStore.Close()
			}

			srv := server.New(server.Config{
				Password:   config.Password(),
				SessionTTL: config.SessionTTL(),
			}, os.DirFS(contentDir), prefStore, log)

			httpSrv := &http.Server{
				Addr:    fmt.Sprintf(":%d", port),
				Handler: srv.Handler(),
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				fmt.Printf("Server běží na http://localhost:%d\n", port)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = httpSrv.Shutdown(shutdownCtx)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config)")
	cmd.Flags().StringVar(&contentDir, "content", "", "content directory (default from config)")

	return cmd
}
