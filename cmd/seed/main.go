package main

import (
	"fmt"

	"github.com/artisan-market/internal/config"
	"github.com/artisan-market/internal/constants"
	"github.com/artisan-market/internal/logger"
	"github.com/artisan-market/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash seed password: %v", err)
	}

	// 添加演示账号
	users := []models.User{
		{
			Name:         "Mei Lin",
			Email:        "mei@example.com",
			PasswordHash: string(hash),
			Role:         constants.RoleArtisan,
			Bio:          "Ceramicist working with wood-fired stoneware.",
			ProfileImage: "https://images.unsplash.com/photo-1556760544-74068565f05c?w=400",
		},
		{
			Name:         "Tomás Rivera",
			Email:        "tomas@example.com",
			PasswordHash: string(hash),
			Role:         constants.RoleArtisan,
			Bio:          "Leatherworker crafting hand-stitched bags and wallets.",
			ProfileImage: "https://images.unsplash.com/photo-1529626455594-4ff0802cfb7e?w=400",
		},
		{
			Name:         "Ada Brooks",
			Email:        "ada@example.com",
			PasswordHash: string(hash),
			Role:         constants.RoleBuyer,
		},
	}

	artisanIDs := map[string]uint{}
	for _, user := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", user.Email).First(&existing).Error; err != nil {
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", user.Email, err)
				continue
			}
			stdLog.Printf("Created user: %s (%s)", user.Email, user.Role)
			existing = user
		} else {
			stdLog.Printf("User already exists: %s", user.Email)
		}
		if existing.Role == constants.RoleArtisan {
			artisanIDs[existing.Email] = existing.ID
		}
	}

	// 添加商品
	products := []models.Product{
		{
			ArtisanID:    artisanIDs["mei@example.com"],
			Name:         "Wood-Fired Tea Bowl",
			Description:  "Stoneware chawan with a natural ash glaze. Each bowl is unique.",
			Category:     "ceramics",
			Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(48.00)),
			CountInStock: 12,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1565193566173-7a0ee3dbe261?w=800",
			}),
		},
		{
			ArtisanID:    artisanIDs["mei@example.com"],
			Name:         "Speckled Dinner Plate Set",
			Description:  "Set of four hand-thrown plates in a warm speckled cream glaze.",
			Category:     "ceramics",
			Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(120.00)),
			CountInStock: 6,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1578749556568-bc2c40e68b61?w=800",
			}),
		},
		{
			ArtisanID:    artisanIDs["tomas@example.com"],
			Name:         "Hand-Stitched Leather Wallet",
			Description:  "Full-grain vegetable-tanned leather, saddle-stitched with linen thread.",
			Category:     "leather",
			Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(75.00)),
			CountInStock: 20,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1627123424574-724758594e93?w=800",
			}),
		},
		{
			ArtisanID:    artisanIDs["tomas@example.com"],
			Name:         "Crossbody Satchel",
			Description:  "Compact satchel with brass hardware and an adjustable strap.",
			Category:     "leather",
			Price:        models.NewMoneyFromDecimal(decimal.NewFromFloat(185.00)),
			CountInStock: 4,
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800",
			}),
		},
	}

	created := 0
	for _, prod := range products {
		if prod.ArtisanID == 0 {
			stdLog.Printf("Skip product %s: artisan missing", prod.Name)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("artisan_id = ? AND name = ?", prod.ArtisanID, prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
				continue
			}
			stdLog.Printf("Created product: %s", prod.Name)
			created++
		} else {
			stdLog.Printf("Product already exists: %s", prod.Name)
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 2 Artisans + 1 Buyer (password: password123)")
	fmt.Printf("- %d Products created\n", created)
}
