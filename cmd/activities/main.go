package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mergington-dev/activities/db"
	"github.com/mergington-dev/activities/internal/router"
	"github.com/mergington-dev/activities/internal/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		dsn = "mergington.db"
		log.Println("DATABASE_URL not set, using local sqlite database mergington.db")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seed.Load(db.DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "8000"
		log.Println("PORT not set, defaulting to 8000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
