package provider

import (
	"time"

	"github.com/reborn-nursery/storefront/internal/authz"
	"github.com/reborn-nursery/storefront/internal/cache"
	"github.com/reborn-nursery/storefront/internal/cart"
	"github.com/reborn-nursery/storefront/internal/config"
	"github.com/reborn-nursery/storefront/internal/logger"
	"github.com/reborn-nursery/storefront/internal/models"
	"github.com/reborn-nursery/storefront/internal/queue"
	"github.com/reborn-nursery/storefront/internal/repository"
	"github.com/reborn-nursery/storefront/internal/service"
)

// Container is the dependency injection root shared by handlers and the
// worker consumer.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo       repository.AdminRepository
	ProductRepo     repository.ProductRepository
	OrderRepo       repository.OrderRepository
	HeroImageRepo   repository.HeroImageRepository
	GalleryRepo     repository.GalleryRepository
	TestimonialRepo repository.TestimonialRepository
	SocialLinkRepo  repository.SocialLinkRepository

	// Services
	AuthzService       *authz.Service
	AuthService        *service.AuthService
	ProductService     *service.ProductService
	CartService        *service.CartService
	OrderService       *service.OrderService
	HeroService        *service.HeroService
	GalleryService     *service.GalleryService
	TestimonialService *service.TestimonialService
	SocialService      *service.SocialService
	UploadService      *service.UploadService
	EmailService       *service.EmailService
}

// NewContainer wires every repository and service.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.HeroImageRepo = repository.NewHeroImageRepository(db)
	c.GalleryRepo = repository.NewGalleryRepository(db)
	c.TestimonialRepo = repository.NewTestimonialRepository(db)
	c.SocialLinkRepo = repository.NewSocialLinkRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.buildCartStore(), c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.QueueClient)
	c.HeroService = service.NewHeroService(c.HeroImageRepo)
	c.GalleryService = service.NewGalleryService(c.GalleryRepo)
	c.TestimonialService = service.NewTestimonialService(c.TestimonialRepo)
	c.SocialService = service.NewSocialService(c.SocialLinkRepo)
}

// buildCartStore picks the Redis-backed store when the cache is up and
// falls back to the in-process store otherwise.
func (c *Container) buildCartStore() cart.Store {
	ttl := time.Duration(c.Config.Cart.SessionTTLHours) * time.Hour
	if cache.Enabled() {
		return cart.NewRedisStore(ttl)
	}
	logger.Warnw("provider_cart_store_fallback_memory", "reason", "redis disabled")
	return cart.NewMemoryStore(ttl)
}
