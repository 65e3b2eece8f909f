package router

import (
	"fmt"
	"strings"

	"github.com/artisan-market/internal/cache"
	"github.com/artisan-market/internal/config"
	adminhandlers "github.com/artisan-market/internal/http/handlers/admin"
	publichandlers "github.com/artisan-market/internal/http/handlers/public"
	"github.com/artisan-market/internal/logger"
	"github.com/artisan-market/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "am"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(TrackVisitMiddleware(c.AnalyticsService))

	// API 路由组
	api := r.Group("/api")
	{
		// 认证接口
		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
			auth.POST("/admin/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), publicHandler.AdminLogin)
		}

		// 公开接口
		api.GET("/products", publicHandler.GetProducts)
		api.GET("/products/:id", publicHandler.GetProduct)
		api.GET("/products/search/:query", publicHandler.SearchProducts)
		api.GET("/users/artisans", publicHandler.ListArtisans)

		// 需鉴权接口：JWT 解析身份，RBAC 按角色能力放行
		authorized := api.Group("")
		authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey), RBACMiddleware(c.AuthzService))
		{
			// 商品（手艺人）
			authorized.POST("/products", publicHandler.CreateProduct)
			authorized.PUT("/products/:id", publicHandler.UpdateProduct)
			authorized.DELETE("/products/:id", publicHandler.DeleteProduct)

			// 购物车
			authorized.GET("/cart", publicHandler.GetCart)
			authorized.POST("/cart", publicHandler.AddCartItem)
			authorized.DELETE("/cart", publicHandler.ClearCart)
			authorized.PUT("/cart/:itemId", publicHandler.UpdateCartItem)
			authorized.DELETE("/cart/:itemId", publicHandler.DeleteCartItem)

			// 订单
			authorized.POST("/orders", publicHandler.CreateOrder)
			authorized.GET("/orders", publicHandler.ListMyOrders)
			authorized.GET("/orders/:id", publicHandler.GetOrder)
			authorized.GET("/orders/admin/all", publicHandler.ListAllOrders)

			// 心愿单
			authorized.GET("/wishlist", publicHandler.GetWishlist)
			authorized.POST("/wishlist", publicHandler.AddWishlistItem)
			authorized.DELETE("/wishlist/:productId", publicHandler.RemoveWishlistItem)

			// 个人资料
			authorized.GET("/users/profile", publicHandler.GetProfile)
			authorized.PUT("/users/profile", publicHandler.UpdateProfile)

			// 管理员接口
			admin := authorized.Group("/admin")
			{
				admin.GET("/users", adminHandler.GetUsers)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)
				admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
				admin.GET("/analytics/:period", adminHandler.GetAnalytics)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 前端静态资源
	staticDir := strings.TrimSpace(cfg.Web.StaticDir)
	if staticDir != "" {
		r.Static("/assets", staticDir+"/assets")
		r.StaticFile("/", staticDir+"/index.html")
		r.NoRoute(func(ctx *gin.Context) {
			if strings.HasPrefix(ctx.Request.URL.Path, "/api") {
				ctx.JSON(404, gin.H{"status_code": 404, "msg": "Not found"})
				return
			}
			ctx.File(staticDir + "/index.html")
		})
	}

	return r
}
