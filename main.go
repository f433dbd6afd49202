package main

import (
	"log"

	"finance-tracker-go-be/auth"
	"finance-tracker-go-be/config"
	"finance-tracker-go-be/database"
	"finance-tracker-go-be/server"
)

func main() {
	cfg := config.Load()

	auth.Init(cfg.JWTSecret)

	// Connect to Database
	database.ConnectDB(cfg.DatabaseURL)

	app := server.New(cfg)

	// Start Server
	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
