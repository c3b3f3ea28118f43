package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/vinicius-yudi/taskboard/db"
	"github.com/vinicius-yudi/taskboard/internal/auth"
	"github.com/vinicius-yudi/taskboard/internal/config"
	"github.com/vinicius-yudi/taskboard/internal/router"
	"github.com/vinicius-yudi/taskboard/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := router.NewRouter(store.New(gdb), cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
