package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ColinThePanda/RaspberryPiSite/internal/resolver"
	"github.com/joho/godotenv"
)

type apiConfig struct {
	files  *resolver.Resolver
	getenv func(string) string
	now    func() time.Time
}

func newAPIConfig(contentRoot fs.FS) *apiConfig {
	return &apiConfig{
		files:  resolver.New(contentRoot),
		getenv: os.Getenv,
		now:    time.Now,
	}
}

// routes wraps the root handler in the request boundary: every request is
// logged, and any error or panic becomes a 500 instead of reaching the server.
//
// The raw request path reaches handlerRoot untouched; cleaning happens in the
// resolver, so no path is ever answered with a redirect.
func (cfg *apiConfig) routes() http.Handler {
	return middlewareLog(middlewareRecover(handleErrors(cfg.handlerRoot)))
}

func main() {
	const filepathRoot = "."
	const host = "0.0.0.0"
	const port = "8080"

	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	apiCfg := newAPIConfig(os.DirFS(filepathRoot))

	srv := &http.Server{
		Addr:              host + ":" + port,
		Handler:           apiCfg.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	printBanner(os.Stdout, host, port)
	log.Printf("Serving files from %s on port %s", filepathRoot, port)

	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
