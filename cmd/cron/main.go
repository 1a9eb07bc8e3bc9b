package main

import (
	"log"
	"os"

	"github.com/anonimax/anonimax-server/config"
	"github.com/anonimax/anonimax-server/internal/database"
	"github.com/anonimax/anonimax-server/internal/pkg/cron"
	"github.com/anonimax/anonimax-server/internal/repository"
)

// Binário avulso para rodar a varredura de expiração sob demanda
// (útil em cron do sistema ou após restaurar um backup).
func main() {
	log.Println("Starting expiry sweep...")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	svc := cron.NewService(
		repository.NewSubscriptionRepository(db),
		repository.NewListingRepository(db),
	)
	svc.RunNow()

	log.Println("Expiry sweep completed")
}
