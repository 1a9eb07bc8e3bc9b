package api

import (
	"github.com/gin-gonic/gin"

	"github.com/anonimax/anonimax-server/config"
	"github.com/anonimax/anonimax-server/internal/api/handler"
	"github.com/anonimax/anonimax-server/internal/api/middleware"
)

type Router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	listingHandler   *handler.ListingHandler
	paymentHandler   *handler.PaymentHandler
	categoryHandler  *handler.CategoryHandler
	adminHandler     *handler.AdminHandler
	websocketHandler *handler.WebSocketHandler
	cfg              *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	listingHandler *handler.ListingHandler,
	paymentHandler *handler.PaymentHandler,
	categoryHandler *handler.CategoryHandler,
	adminHandler *handler.AdminHandler,
	websocketHandler *handler.WebSocketHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		listingHandler:   listingHandler,
		paymentHandler:   paymentHandler,
		categoryHandler:  categoryHandler,
		adminHandler:     adminHandler,
		websocketHandler: websocketHandler,
		cfg:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// WebSocket
		api.GET("/ws", r.websocketHandler.Handle)

		// Público - autenticação
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/verify-email", r.authHandler.VerifyEmail)
			auth.POST("/forgot-password", r.authHandler.ForgotPassword)
			auth.POST("/reset-password", r.authHandler.ResetPassword)
		}

		// Público - catálogo
		api.GET("/plans", r.paymentHandler.Plans)
		api.GET("/categories", r.categoryHandler.List)

		// Público - vitrine (autenticação opcional)
		public := api.Group("")
		public.Use(middleware.OptionalAuth(r.cfg.JWT.Secret))
		{
			public.GET("/listings", r.listingHandler.Browse)
			public.GET("/listings/:id", r.listingHandler.Get)
			public.GET("/profiles", r.profileHandler.Browse)
			public.GET("/profiles/:anonimax_id", r.profileHandler.Get)
		}

		// Autenticado
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			authenticated.GET("/auth/me", r.authHandler.Me)

			// Perfil próprio
			authenticated.GET("/profile", r.profileHandler.Me)
			authenticated.PUT("/profile", r.profileHandler.Update)

			// Anúncios próprios
			authenticated.POST("/listings", r.listingHandler.Create)
			authenticated.GET("/my/listings", r.listingHandler.ListMine)
			authenticated.PUT("/listings/:id", r.listingHandler.Update)
			authenticated.DELETE("/listings/:id", r.listingHandler.Delete)

			// Assinatura e direito de postagem
			authenticated.GET("/subscription", r.listingHandler.Entitlement)

			// Pagamentos
			authenticated.POST("/payments", r.paymentHandler.Submit)
			authenticated.GET("/payments", r.paymentHandler.ListMine)
			authenticated.GET("/payments/address", r.paymentHandler.Address)

			// Favoritos
			authenticated.POST("/favorites", r.profileHandler.AddFavorite)
			authenticated.GET("/favorites", r.profileHandler.ListFavorites)
			authenticated.DELETE("/favorites/:anonimax_id", r.profileHandler.RemoveFavorite)
		}

		// Operação (claim de admin no token)
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(r.cfg.JWT.Secret))
		{
			admin.GET("/stats", r.adminHandler.Stats)
			admin.GET("/users", r.adminHandler.ListUsers)
			admin.DELETE("/users/:id", r.adminHandler.DeleteUser)
			admin.GET("/listings", r.adminHandler.ListListings)
			admin.POST("/listings/:id/review", r.adminHandler.ReviewListing)
			admin.GET("/payments", r.adminHandler.ListPayments)
			admin.POST("/payments/:id/verify", r.adminHandler.VerifyPayment)
		}
	}

	return engine
}
