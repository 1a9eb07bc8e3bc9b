package main

import (
	"context"
	"fmt"
	"log"

	"github.com/anonimax/anonimax-server/config"
	"github.com/anonimax/anonimax-server/internal/api"
	"github.com/anonimax/anonimax-server/internal/api/handler"
	"github.com/anonimax/anonimax-server/internal/database"
	"github.com/anonimax/anonimax-server/internal/pkg/cron"
	"github.com/anonimax/anonimax-server/internal/pkg/email"
	"github.com/anonimax/anonimax-server/internal/pkg/events"
	"github.com/anonimax/anonimax-server/internal/pkg/ws"
	"github.com/anonimax/anonimax-server/internal/repository"
	"github.com/anonimax/anonimax-server/internal/service"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	wsHub := ws.NewHub()

	// Eventos de status: publicados no Redis, entregues por WebSocket
	publisher := events.NewPublisher(rdb)
	subscriber := events.NewSubscriber(rdb)
	go func() {
		err := subscriber.Run(context.Background(), func(evt *events.Event) {
			if err := wsHub.SendToUser(evt.UserID, &ws.Message{
				Type: evt.Type,
				Data: evt,
			}); err != nil {
				log.Printf("Failed to deliver event to user %d: %v", evt.UserID, err)
			}
		})
		if err != nil {
			log.Printf("Event subscriber stopped: %v", err)
		}
	}()
	log.Println("Event subscriber started")

	// Repository
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	listingRepo := repository.NewListingRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	if err := categoryRepo.Seed(); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	// Service
	emailService := email.NewService(&cfg.Email)
	authService := service.NewAuthService(userRepo, emailService, cfg)
	profileService := service.NewProfileService(profileRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, profileRepo)
	listingService := service.NewListingService(listingRepo, subscriptionRepo, service.NewEntitlementService())
	paymentService := service.NewPaymentService(paymentRepo, subscriptionRepo, listingRepo, publisher, cfg)
	adminService := service.NewAdminService(userRepo, listingRepo, paymentRepo, publisher)

	// Handler
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService, favoriteService, authService)
	listingHandler := handler.NewListingHandler(listingService, authService)
	paymentHandler := handler.NewPaymentHandler(paymentService, authService)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	adminHandler := handler.NewAdminHandler(adminService, paymentService)
	websocketHandler := handler.NewWebSocketHandler(wsHub, cfg.JWT.Secret)

	// Varredura noturna de expiração
	cronService := cron.NewService(subscriptionRepo, listingRepo)
	cronService.Start()
	defer cronService.Stop()

	router := api.NewRouter(
		authHandler,
		profileHandler,
		listingHandler,
		paymentHandler,
		categoryHandler,
		adminHandler,
		websocketHandler,
		cfg,
	)
	engine := router.Setup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
