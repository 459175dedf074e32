package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "inventory-tracker/internal/adapters/web"
	"inventory-tracker/internal/app"
	"inventory-tracker/internal/core"
	"inventory-tracker/internal/db"
	"inventory-tracker/internal/identity"
	"inventory-tracker/internal/pgcatalog"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	idService := identity.NewService(pool, jwtSecret)
	store := core.NewStore(pgcatalog.New(pool))
	if err := store.LoadSnapshot(ctx); err != nil {
		log.Fatalf("catalog: %v", err)
	}
	store.Seed(ctx, core.SeedCatalog())

	gate := core.NewAuthGate(idService, store)
	// One-shot session restore; an absent or stale token just means the owner
	// logs in again.
	if err := gate.Restore(ctx, os.Getenv("SESSION_TOKEN")); err != nil {
		log.Printf("session restore: %v", err)
	}

	svc := app.NewAppService(store, gate, idService)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	handler := webAdapter.NewHandler(svc, os.Getenv("ALLOWED_ORIGINS"))

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
