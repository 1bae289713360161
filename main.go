package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "github.com/oeangg/simago-backend/internal/config"
	router "github.com/oeangg/simago-backend/internal/http"
	"github.com/oeangg/simago-backend/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	util.InitLogger(env.LogLevel, env.GinMode)

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	// Router (Gin engine)
	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		util.Log().Info().Str("addr", env.AppAddr).Msg("Server berjalan")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Log().Fatal().Err(err).Msg("Gagal menjalankan server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	util.Log().Info().Msg("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		util.Log().Fatal().Err(err).Msg("Shutdown server gagal")
	}

	util.Log().Info().Msg("Server berhenti dengan aman.")
}
