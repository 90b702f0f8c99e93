package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/steadfastapp/steadfast/billing"
	"github.com/steadfastapp/steadfast/config"
	"github.com/steadfastapp/steadfast/controllers"
	"github.com/steadfastapp/steadfast/middleware"
	"github.com/steadfastapp/steadfast/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Access log goes to its own rolling file, separate from the app log.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	notifier := billing.NewLogNotifier(utils.Sugar)

	authController := controllers.NewAuthController(db)
	checkInController := controllers.NewCheckInController(db)
	journalController := controllers.NewJournalController(db)
	urgeController := controllers.NewUrgeSurfController(db)
	desensController := controllers.NewDesensitizationController(db)
	progressController := controllers.NewProgressController(db, notifier)
	insightsController := controllers.NewInsightsController(db)
	milestoneController := controllers.NewMilestoneController(db)
	subscriptionController := controllers.NewSubscriptionController(db, notifier)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)
	authGroup.PATCH("/profile", middleware.AuthRequired(), authController.UpdateProfile)

	// Public community counters
	api.GET("/stats", statsController.GetStats)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.POST("/checkins/daily", checkInController.DailyCheckIn)
	protected.GET("/checkins", checkInController.ListCheckIns)

	protected.POST("/journal", journalController.CreateEntry)
	protected.GET("/journal", journalController.ListEntries)

	protected.POST("/urge-surf", urgeController.CreateSession)
	protected.GET("/urge-surf", urgeController.ListSessions)

	protected.POST("/desensitization", desensController.CreateSession)
	protected.GET("/desensitization", desensController.ListSessions)

	protected.GET("/progress", progressController.GetProgress)
	protected.GET("/insights", insightsController.GetInsights)

	protected.GET("/milestones", milestoneController.GetMilestones)
	protected.POST("/milestones/intimacy", milestoneController.SubmitIntimacy)
	protected.POST("/milestones/assessment", milestoneController.SubmitAssessment)

	protected.GET("/subscription", subscriptionController.GetSubscription)
	protected.POST("/subscription/lifetime", subscriptionController.ClaimLifetime)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
