package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/waseemraja21/personal-blog-website/internal/blog"
	"github.com/waseemraja21/personal-blog-website/internal/config"
	"github.com/waseemraja21/personal-blog-website/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	baseURL := flag.String("base-url", "", "Override the site base URL")
	outputDir := flag.String("out", "dist", "output directory")
	flag.Parse()

	// 1. Load config and store
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *baseURL != "" {
		cfg.Site.BaseURL = strings.TrimRight(*baseURL, "/")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := blog.Open(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()
	repo := blog.NewRepository(store)

	// 2. Initialize Server
	srv, err := web.NewServer(cfg, repo)
	if err != nil {
		log.Fatal(err)
	}

	posts, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list posts: %v", err)
	}

	if err := generate(srv.Routes(), routesFor(posts), *outputDir); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Copying static assets...")
	if err := copyDir(cfg.Server.PublicDir, *outputDir); err != nil && !os.IsNotExist(errors.Cause(err)) {
		log.Fatalf("Failed to copy %s: %v", cfg.Server.PublicDir, err)
	}

	fmt.Printf("Done! Static site generated in '%s' directory.\n", *outputDir)
}

func routesFor(posts []blog.Post) []string {
	routes := []string{"/", "/about", "/contact", "/feed", "/sitemap.xml"}
	for _, p := range posts {
		routes = append(routes, "/posts/"+p.ID)
	}
	return routes
}

// generate requests every route from h and writes the bodies under
// outputDir, using clean URLs (/about -> about/index.html).
func generate(h http.Handler, routes []string, outputDir string) error {
	if err := os.RemoveAll(outputDir); err != nil {
		log.Printf("Warning: failed to clean %s: %v", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	for _, route := range routes {
		fmt.Printf("Generating %s...\n", route)
		req := httptest.NewRequest(http.MethodGet, route, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			log.Printf("Error generating %s: status %d", route, w.Code)
			continue
		}

		outPath := filepath.Join(outputDir, outputPath(route))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return errors.Wrapf(err, "create dir for %s", outPath)
		}
		if err := os.WriteFile(outPath, w.Body.Bytes(), 0o644); err != nil {
			return errors.Wrapf(err, "write %s", outPath)
		}
	}
	return nil
}

func outputPath(route string) string {
	switch {
	case route == "/":
		return "index.html"
	case filepath.Ext(route) != "":
		return strings.TrimPrefix(route, "/")
	case route == "/feed":
		return "feed.xml"
	}
	return filepath.Join(strings.TrimPrefix(route, "/"), "index.html")
}

func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		targetPath := filepath.Join(dst, relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode())
		}

		sourceFile, err := os.Open(path)
		if err != nil {
			return err
		}
		defer sourceFile.Close()

		destFile, err := os.Create(targetPath)
		if err != nil {
			return err
		}
		defer destFile.Close()

		_, err = io.Copy(destFile, sourceFile)
		return err
	})
}
