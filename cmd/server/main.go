package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/waseemraja21/personal-blog-website/internal/blog"
	"github.com/waseemraja21/personal-blog-website/internal/config"
	"github.com/waseemraja21/personal-blog-website/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := blog.Open(connectCtx, cfg.Database.URL)
	cancel()
	if err != nil {
		log.Fatalf("open content store: %v", err)
	}
	defer store.Close()

	server, err := web.NewServer(cfg, blog.NewRepository(store))
	if err != nil {
		log.Fatal(err)
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.Server.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}
