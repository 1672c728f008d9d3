package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gamefest/gamefest-api/internal/config"
	"github.com/gamefest/gamefest-api/internal/db"
	"github.com/gamefest/gamefest-api/internal/service"
	"github.com/gamefest/gamefest-api/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	database := db.InitDB(cfg.DBPath)
	defer database.Close()

	if err := db.RunMigrations(database.DB, "file://migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	admins := service.NewAdminService(store.NewAdminStore(database))
	if err := admins.EnsureSeedAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour

	router := newRouter(database, sessionManager)

	log.Println("Server starting on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
}
