package router

import (
	"log"
	"time"

	"gamepal/config"
	"gamepal/internal/handler"
	"gamepal/internal/middleware"
	"gamepal/internal/repository"
	"gamepal/internal/service"
	"gamepal/internal/ws"
	"gamepal/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	companionRepo := repository.NewCompanionRepository(db)
	discoveryRepo := repository.NewDiscoveryRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	eventRepo := repository.NewEventRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	hub := ws.NewHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	fcmSvc := service.NewFCMService(cfg.Firebase.ServiceAccountPath)
	if fcmSvc != nil {
		log.Printf("[FCM] Push notifications enabled")
	} else if cfg.Firebase.ServiceAccountPath != "" {
		log.Printf("[FCM] Push notifications disabled: failed to init (check service account file)")
	} else {
		log.Printf("[FCM] Push notifications disabled: set FIREBASE_SERVICE_ACCOUNT_PATH to enable")
	}
	notifSvc := service.NewNotificationService(notificationRepo, userRepo, hub, fcmSvc)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	oauthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	profileHandler := handler.NewProfileHandler(userRepo, postRepo, followRepo, achievementRepo)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryRepo)
	companionHandler := handler.NewCompanionHandler(companionRepo, userRepo)
	reviewHandler := handler.NewReviewHandler(reviewRepo, companionRepo)
	feedHandler := handler.NewFeedHandler(postRepo, commentRepo, likeRepo, followRepo, userRepo, notifSvc)
	achievementHandler := handler.NewAchievementHandler(achievementRepo, userRepo, notifSvc)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	eventHandler := handler.NewEventHandler(eventRepo, userRepo, notifSvc)
	uploadHandler := handler.NewUploadHandler(cfg.Storage, cloud)
	adminHandler := handler.NewAdminHandler(adminRepo, userRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.PATCH("/change-password", authMw, authHandler.ChangePassword)
		auth.GET("/google", oauthHandler.Redirect)
		auth.GET("/google/callback", oauthHandler.Callback)
	}

	// Profile
	user := api.Group("/user", authMw)
	{
		user.GET("/profile", profileHandler.Get)
		user.PUT("/profile", profileHandler.Update)
		user.POST("/fcm-token", profileHandler.RegisterFCMToken)
	}

	// Companions
	companions := api.Group("/companions", authMw)
	{
		companions.GET("", discoveryHandler.List)
		companions.POST("", companionHandler.Enable)
		companions.PUT("/profile", companionHandler.Update)
		companions.POST("/services", companionHandler.AddService)
		companions.PUT("/services/:id", companionHandler.UpdateService)
		companions.DELETE("/services/:id", companionHandler.DeleteService)
		companions.POST("/games", companionHandler.AddGame)
		companions.DELETE("/games/:id", companionHandler.DeleteGame)
		companions.GET("/:id", companionHandler.Get)
		companions.GET("/:id/reviews", reviewHandler.List)
		companions.POST("/:id/reviews", reviewHandler.Create)
	}

	// Feed
	feed := api.Group("", authMw)
	{
		feed.GET("/feed", feedHandler.ListFeed)
		feed.POST("/posts", feedHandler.CreatePost)
		feed.GET("/posts/:id", feedHandler.GetPost)
		feed.DELETE("/posts/:id", feedHandler.DeletePost)
		feed.GET("/posts/:id/comments", feedHandler.ListComments)
		feed.POST("/posts/:id/comments", feedHandler.CreateComment)
		feed.DELETE("/comments/:id", feedHandler.DeleteComment)
		feed.POST("/posts/:id/like", feedHandler.LikePost)
		feed.DELETE("/posts/:id/like", feedHandler.UnlikePost)
		feed.POST("/users/:id/follow", feedHandler.Follow)
		feed.DELETE("/users/:id/follow", feedHandler.Unfollow)
		feed.GET("/users/:id/achievements", achievementHandler.ListByUser)
	}

	// Achievements
	achievements := api.Group("/achievements", authMw)
	{
		achievements.GET("", achievementHandler.ListCatalog)
		achievements.GET("/mine", achievementHandler.ListMine)
		achievements.POST("", middleware.StaffRequired(), achievementHandler.Grant)
	}

	// Notifications
	notifications := api.Group("/notifications", authMw)
	{
		notifications.GET("", notificationHandler.List)
		notifications.PATCH("", notificationHandler.MarkRead)
	}

	// Events
	events := api.Group("/events", authMw)
	{
		events.GET("", eventHandler.List)
		events.GET("/:id", eventHandler.Get)
		events.POST("", eventHandler.Create)
		events.POST("/:id/join", eventHandler.Join)
		events.DELETE("/:id/join", eventHandler.Leave)
	}

	// Upload
	api.POST("/upload/simple", authMw, uploadHandler.UploadImage)

	// Admin
	admin := api.Group("/admin", authMw, middleware.StaffRequired())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users/role", adminHandler.UpdateRole)
		admin.GET("/dashboard", adminHandler.Dashboard)
	}

	// Live notification stream
	r.GET("/ws/notifications", ws.UpgradeNotificationWS(&cfg.JWT, hub))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
