package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/h4ks-com/brewlog/internal/handlers"
	"github.com/h4ks-com/brewlog/internal/logger"
	"github.com/h4ks-com/brewlog/internal/metrics"
	"github.com/h4ks-com/brewlog/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/h4ks-com/brewlog/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func newRouter(a *app) *gin.Engine {
	handlers.RegisterValidators()

	authMiddleware := middleware.NewAuthMiddleware(a.tokens, a.users, a.cfg.TestMode)
	adminMiddleware := middleware.NewAdminMiddleware(a.cfg.AdminUsers)

	beanHandler := handlers.NewBeanHandler(a.beans)
	inventoryHandler := handlers.NewInventoryHandler(a.inventory)
	tastingHandler := handlers.NewTastingHandler(a.tastings)
	scheduleHandler := handlers.NewScheduleHandler(a.schedule)
	costHandler := handlers.NewCostHandler(a.costs)
	brewLogHandler := handlers.NewBrewingLogHandler(a.brewLogs)
	freshnessHandler := handlers.NewFreshnessHandler(a.freshness)
	dashboardHandler := handlers.NewDashboardHandler(a.dashboard)
	tokenHandler := handlers.NewTokenHandler(a.tokens)
	exportHandler := handlers.NewExportHandler(a.export)
	adminHandler := handlers.NewAdminHandler(a.users)
	healthHandler := handlers.NewHealthHandler(a.db)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.L()))
	router.Use(metrics.HTTP().Middleware())

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/docs", handlers.SwaggerUIWithBearerFix(handlers.DocsPage{SpecURL: "/swagger/doc.json", APIBase: "/api/v1"}))

	api := router.Group("/api/v1")
	api.GET("/health", healthHandler.Health)

	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/beans", beanHandler.ListBeans)
		authenticated.POST("/beans", beanHandler.CreateBean)
		authenticated.GET("/beans/:id", beanHandler.GetBean)
		authenticated.PUT("/beans/:id", beanHandler.UpdateBean)
		authenticated.DELETE("/beans/:id", beanHandler.DeleteBean)

		authenticated.GET("/inventory", inventoryHandler.ListLots)
		authenticated.POST("/inventory", inventoryHandler.CreateLot)
		authenticated.GET("/inventory/summary", inventoryHandler.Summary)
		authenticated.GET("/inventory/low-stock", inventoryHandler.LowStock)
		authenticated.GET("/inventory/by-origin", inventoryHandler.ByOrigin)
		authenticated.GET("/inventory/bean/:id", inventoryHandler.ByBean)
		authenticated.GET("/inventory/:id", inventoryHandler.GetLot)
		authenticated.PUT("/inventory/:id", inventoryHandler.UpdateLot)
		authenticated.DELETE("/inventory/:id", inventoryHandler.DeleteLot)
		authenticated.POST("/inventory/:id/adjust", inventoryHandler.AdjustLot)

		authenticated.GET("/tastings", tastingHandler.ListTastings)
		authenticated.POST("/tastings", tastingHandler.CreateTasting)
		authenticated.GET("/tastings/stats", tastingHandler.Stats)
		authenticated.GET("/tastings/top-rated", tastingHandler.TopRated)
		authenticated.GET("/tastings/range", tastingHandler.Range)
		authenticated.GET("/tastings/bean/:id", tastingHandler.ByBean)
		authenticated.GET("/tastings/:id", tastingHandler.GetTasting)
		authenticated.PUT("/tastings/:id", tastingHandler.UpdateTasting)
		authenticated.DELETE("/tastings/:id", tastingHandler.DeleteTasting)

		authenticated.GET("/schedule", scheduleHandler.ListSchedule)
		authenticated.POST("/schedule", scheduleHandler.CreateSchedule)
		authenticated.GET("/schedule/upcoming", scheduleHandler.Upcoming)
		authenticated.GET("/schedule/stats", scheduleHandler.Stats)
		authenticated.GET("/schedule/:id", scheduleHandler.GetSchedule)
		authenticated.PUT("/schedule/:id", scheduleHandler.UpdateSchedule)
		authenticated.DELETE("/schedule/:id", scheduleHandler.DeleteSchedule)
		authenticated.POST("/schedule/:id/reopen", scheduleHandler.ReopenSchedule)

		authenticated.GET("/cost", costHandler.ListCosts)
		authenticated.POST("/cost", costHandler.CreateCost)
		authenticated.GET("/cost/analysis", costHandler.Analysis)
		authenticated.GET("/cost/roi", costHandler.ROI)
		authenticated.GET("/cost/monthly/:year/:month", costHandler.Monthly)
		authenticated.DELETE("/cost/:id", costHandler.DeleteCost)

		authenticated.GET("/brewing-log", brewLogHandler.ListBrewLogs)
		authenticated.POST("/brewing-log", brewLogHandler.CreateBrewLog)
		authenticated.GET("/brewing-log/stats", brewLogHandler.Stats)
		authenticated.GET("/brewing-log/methods", brewLogHandler.Methods)
		authenticated.DELETE("/brewing-log/:id", brewLogHandler.DeleteBrewLog)

		authenticated.GET("/freshness/alerts", freshnessHandler.Alerts)
		authenticated.GET("/freshness/summary", freshnessHandler.Summary)
		authenticated.GET("/dashboard", dashboardHandler.GetDashboard)

		authenticated.POST("/tokens", tokenHandler.CreateToken)
		authenticated.GET("/tokens", tokenHandler.ListTokens)
		authenticated.DELETE("/tokens/:id", tokenHandler.DeleteToken)

		authenticated.GET("/export", exportHandler.ExportJournal)
		authenticated.POST("/export/verify", exportHandler.VerifyExport)
	}

	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), adminMiddleware.RequireAdmin())
	{
		admin.GET("/users", adminHandler.ListUsers)
	}

	return router
}

// withCORS lets the browser front end call the API from its own origin.
func withCORS(h http.Handler, allowedOrigins []string) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader, middleware.TestUsernameHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(h)
}
