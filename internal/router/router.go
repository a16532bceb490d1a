package router

import (
	"fmt"
	"strings"

	"github.com/reborn-nursery/storefront/internal/cache"
	"github.com/reborn-nursery/storefront/internal/config"
	adminhandlers "github.com/reborn-nursery/storefront/internal/http/handlers/admin"
	publichandlers "github.com/reborn-nursery/storefront/internal/http/handlers/public"
	"github.com/reborn-nursery/storefront/internal/logger"
	"github.com/reborn-nursery/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and all API routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "rb"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "Too many login attempts",
	}
	orderRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:order_create", redisPrefix),
		WindowSeconds: cfg.Security.OrderRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.OrderRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.OrderRateLimit.BlockSeconds,
		Message:       "Too many orders",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded images are served straight from disk.
	r.Static("/uploads", cfg.Upload.Dir)

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:slug", publicHandler.GetProduct)
			public.GET("/hero-images", publicHandler.GetHeroImages)
			public.GET("/gallery", publicHandler.GetGallery)
			public.GET("/gallery/featured", publicHandler.GetFeaturedGallery)
			public.GET("/testimonials", publicHandler.GetTestimonials)
			public.GET("/social-links", publicHandler.GetSocialLinks)
		}

		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:product_id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:product_id", publicHandler.RemoveCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		orders := apiV1.Group("/orders")
		{
			orders.POST("", RateLimitMiddleware(redisClient, orderRule, KeyByIP), publicHandler.CreateOrder)
			orders.GET("/:reference", publicHandler.GetOrder)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/me", adminHandler.Me)
				authorized.PUT("/password", adminHandler.ChangePassword)

				authorized.GET("/products", adminHandler.GetProducts)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.PATCH("/products/:id/status", adminHandler.UpdateProductStatus)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/orders", adminHandler.GetOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

				authorized.GET("/hero-images", adminHandler.GetHeroImages)
				authorized.POST("/hero-images", adminHandler.CreateHeroImage)
				authorized.PUT("/hero-images/:id", adminHandler.UpdateHeroImage)
				authorized.DELETE("/hero-images/:id", adminHandler.DeleteHeroImage)

				authorized.GET("/gallery", adminHandler.GetGalleryImages)
				authorized.POST("/gallery", adminHandler.CreateGalleryImage)
				authorized.PUT("/gallery/:id", adminHandler.UpdateGalleryImage)
				authorized.DELETE("/gallery/:id", adminHandler.DeleteGalleryImage)

				authorized.GET("/testimonials", adminHandler.GetTestimonials)
				authorized.POST("/testimonials", adminHandler.CreateTestimonial)
				authorized.PUT("/testimonials/:id", adminHandler.UpdateTestimonial)
				authorized.DELETE("/testimonials/:id", adminHandler.DeleteTestimonial)

				authorized.GET("/social-links", adminHandler.GetSocialLinks)
				authorized.POST("/social-links", adminHandler.CreateSocialLink)
				authorized.PUT("/social-links/:id", adminHandler.UpdateSocialLink)
				authorized.DELETE("/social-links/:id", adminHandler.DeleteSocialLink)

				authorized.POST("/upload", adminHandler.UploadFile)
				authorized.DELETE("/upload", adminHandler.DeleteFile)

				authorized.GET("/admins", adminHandler.GetAdminAccounts)
				authorized.POST("/admins", adminHandler.CreateAdminAccount)
				authorized.DELETE("/admins/:id", adminHandler.DeleteAdminAccount)
			}
		}
	}

	return r
}
