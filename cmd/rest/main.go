package main

import (
	"log"

	"thrapy-be/internal/bootstrap"
	"thrapy-be/internal/config"
	"thrapy-be/internal/server"
	"thrapy-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	client, db, err := database.NewMongoDatabase(cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		log.Panicf("Unable to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Close(client); err != nil {
			log.Printf("Error closing MongoDB client: %v", err)
		}
	}()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(db, cfg)
	defer container.Logger.Sync()

	// 4. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
