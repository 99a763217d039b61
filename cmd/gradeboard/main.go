package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/shubham050802/Auto-Grading-Tool/internal/api/http"
	"github.com/shubham050802/Auto-Grading-Tool/internal/auth"
	"github.com/shubham050802/Auto-Grading-Tool/internal/config"
	"github.com/shubham050802/Auto-Grading-Tool/internal/db"
	"github.com/shubham050802/Auto-Grading-Tool/internal/fetch"
	"github.com/shubham050802/Auto-Grading-Tool/internal/grading"
	"github.com/shubham050802/Auto-Grading-Tool/internal/session"
	"github.com/shubham050802/Auto-Grading-Tool/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	// --- DB (dataset catalog) ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	catalog := db.NewCatalog(dbh)

	bs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	authSvc := auth.NewService(cfg.AuthHMACSecret)
	registry := session.NewRegistry(grading.BoundariesFrom(cfg.DefaultBoundaries))
	loader := fetch.New(time.Duration(cfg.FetchTimeoutSec)*time.Second, cfg.FetchMaxBytes)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(time.Duration(cfg.FetchTimeoutSec+5) * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))
	r.Post("/sessions", api.CreateSessionHandler(registry, authSvc))

	// Session-scoped API behind the bearer token.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.Middleware(authSvc))
		api.Mount(pr, api.Deps{
			Registry: registry,
			Catalog:  catalog,
			Blobs:    bs,
			Loader:   loader,
		})
	})

	log.Printf("gradeboard listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
