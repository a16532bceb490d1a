package main

import (
	"github.com/reborn-nursery/storefront/internal/config"
	"github.com/reborn-nursery/storefront/internal/constants"
	"github.com/reborn-nursery/storefront/internal/logger"
	"github.com/reborn-nursery/storefront/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("failed to initialize default admin: %v", err)
	}

	products := []models.Product{
		{
			Name:                "Baby Rosalie",
			Slug:                "baby-rosalie",
			PriceAmount:         models.NewMoneyFromDecimal(decimal.NewFromFloat(349.00)),
			Description:         "A sleeping newborn with hand-rooted mohair and delicate blushing.",
			DetailedDescription: "Rosalie is painted with many thin layers of heat-set paint for a soft newborn mottling. Her hair is rooted strand by strand and she is weighted with glass beads to feel like a real baby in your arms.",
			MaterialsAndCare:    "Full vinyl limbs, soft cloth body, premium mohair. Wipe gently with a damp cloth; keep away from direct sunlight.",
			ShippingInfo:        "Ships fully insured in 3-5 business days with a birth certificate and magnetic pacifier.",
			Images:              models.StringArray{"/uploads/product/rosalie-1.jpg", "/uploads/product/rosalie-2.jpg"},
			Status:              constants.ProductStatusAvailable,
			SortOrder:           1,
		},
		{
			Name:                "Baby Theodore",
			Slug:                "baby-theodore",
			PriceAmount:         models.NewMoneyFromDecimal(decimal.NewFromFloat(389.00)),
			Description:         "An awake baby boy with hand-painted hair and bright hazel eyes.",
			DetailedDescription: "Theodore has glass-like acrylic eyes, micro-veining on his temples and tiny milk spots across his nose. His hair is painted in fine individual strokes and sealed with matte varnish.",
			MaterialsAndCare:    "Full vinyl limbs, soft cloth body. Do not submerge; style painted hair with a dry soft brush only.",
			ShippingInfo:        "Ships fully insured in 3-5 business days with a birth certificate.",
			Images:              models.StringArray{"/uploads/product/theodore-1.jpg"},
			Status:              constants.ProductStatusAvailable,
			SortOrder:           2,
		},
		{
			Name:                "Baby Wren",
			Slug:                "baby-wren",
			PriceAmount:         models.NewMoneyFromDecimal(decimal.NewFromFloat(425.00)),
			Description:         "A preemie-sized girl with rooted eyelashes, still on the sculpting table.",
			DetailedDescription: "Wren is a limited sculpt currently being finished. Join the mailing list to hear when she is ready for her new home.",
			MaterialsAndCare:    "Full vinyl, weighted to under four pounds.",
			ShippingInfo:        "Shipping details announced at release.",
			Images:              models.StringArray{"/uploads/product/wren-1.jpg"},
			Status:              constants.ProductStatusDraft,
			SortOrder:           3,
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("product already exists: %s", product.Slug)
		}
	}

	active := true
	heroes := []models.HeroImage{
		{
			Title:     "Handcrafted with love",
			Subtitle:  "Every baby is painted, rooted and weighted by hand",
			ImageURL:  "/uploads/hero/studio.jpg",
			Link:      "/products",
			SortOrder: 1,
			IsActive:  active,
		},
		{
			Title:     "Meet the nursery",
			Subtitle:  "One-of-a-kind reborn dolls looking for a home",
			ImageURL:  "/uploads/hero/nursery.jpg",
			Link:      "/gallery",
			SortOrder: 2,
			IsActive:  active,
		},
	}
	for _, hero := range heroes {
		var existing models.HeroImage
		if err := models.DB.Where("image_url = ?", hero.ImageURL).First(&existing).Error; err != nil {
			if err := models.DB.Create(&hero).Error; err != nil {
				stdLog.Printf("failed to create hero image %s: %v", hero.ImageURL, err)
			} else {
				stdLog.Printf("created hero image: %s", hero.ImageURL)
			}
		}
	}

	gallery := []models.GalleryImage{
		{ImageURL: "/uploads/gallery/rosalie-home.jpg", Title: "Rosalie in her new home", Tags: models.StringArray{"newborn", "girl"}, IsFeatured: true, SortOrder: 1},
		{ImageURL: "/uploads/gallery/theodore-detail.jpg", Title: "Theodore, painted hair detail", Tags: models.StringArray{"boy", "painted-hair"}, IsFeatured: true, SortOrder: 2},
		{ImageURL: "/uploads/gallery/workbench.jpg", Title: "On the workbench", Tags: models.StringArray{"studio"}, IsFeatured: false, SortOrder: 3},
	}
	for _, image := range gallery {
		var existing models.GalleryImage
		if err := models.DB.Where("image_url = ?", image.ImageURL).First(&existing).Error; err != nil {
			if err := models.DB.Create(&image).Error; err != nil {
				stdLog.Printf("failed to create gallery image %s: %v", image.ImageURL, err)
			} else {
				stdLog.Printf("created gallery image: %s", image.ImageURL)
			}
		}
	}

	testimonials := []models.Testimonial{
		{Author: "Margaret H.", Location: "Portland, OR", Content: "Rosalie is even more beautiful in person. The packaging was so thoughtful, it felt like bringing a baby home from the hospital.", Rating: 5, IsActive: true, SortOrder: 1},
		{Author: "Dana W.", Location: "Austin, TX", Content: "The weighting is perfect and the hand-rooted hair is incredibly fine. You can tell every doll is a labor of love.", Rating: 5, IsActive: true, SortOrder: 2},
	}
	for _, testimonial := range testimonials {
		var existing models.Testimonial
		if err := models.DB.Where("author = ? AND content = ?", testimonial.Author, testimonial.Content).First(&existing).Error; err != nil {
			if err := models.DB.Create(&testimonial).Error; err != nil {
				stdLog.Printf("failed to create testimonial by %s: %v", testimonial.Author, err)
			} else {
				stdLog.Printf("created testimonial by: %s", testimonial.Author)
			}
		}
	}

	socials := []models.SocialLink{
		{Platform: "instagram", URL: "https://instagram.com/rebornnursery", Icon: "instagram", IsActive: true, SortOrder: 1},
		{Platform: "facebook", URL: "https://facebook.com/rebornnursery", Icon: "facebook", IsActive: true, SortOrder: 2},
		{Platform: "youtube", URL: "https://youtube.com/@rebornnursery", Icon: "youtube", IsActive: true, SortOrder: 3},
	}
	for _, link := range socials {
		var existing models.SocialLink
		if err := models.DB.Where("platform = ?", link.Platform).First(&existing).Error; err != nil {
			if err := models.DB.Create(&link).Error; err != nil {
				stdLog.Printf("failed to create social link %s: %v", link.Platform, err)
			} else {
				stdLog.Printf("created social link: %s", link.Platform)
			}
		}
	}

	stdLog.Printf("seed finished")
}
