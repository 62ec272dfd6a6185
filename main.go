// webdraft is a thin broker between a browser frontend and three LLM
// backends. It accepts a natural-language website description (plus
// optional reference images, or an existing document to revise),
// forwards a constructed instruction to the chosen provider, and
// returns the single HTML document extracted from the model's reply.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/forge-ai/webdraft/internal/api"
	"github.com/forge-ai/webdraft/internal/provider"
	"github.com/forge-ai/webdraft/internal/webgen"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	_ = godotenv.Load()

	port := envOr("PORT", "8080")
	webDir := envOr("WEB_DIR", "./web/dist")

	// No per-call timeout here: the upstream call is the sole suspension
	// point and generation can legitimately take a while.
	svc := webgen.NewService(provider.NewRegistry(&http.Client{}))

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: api.New(svc, webDir).Handler(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; cancel() }()

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx)
	}()

	log.Info().Str("port", port).Str("web", webDir).Msg("webdraft online")

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
