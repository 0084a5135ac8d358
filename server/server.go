package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultListenAddr = ":1080"

// Run starts the Gin HTTP server that exposes the factorization APIs.
func Run(listenAddr string) error {
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/api/options", optionsHandler)
	router.POST("/api/factor", factorHandler)
	router.GET("/api/factor/ws", wsFactorHandler)

	srv := &http.Server{Addr: listenAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		if strings.Contains(err.Error(), "address already in use") {
			return fmt.Errorf("listen %s: %w", listenAddr, err)
		}
		return err
	}

	return nil
}
