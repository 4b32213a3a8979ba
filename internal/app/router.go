package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"procureflow.io/procureflow/internal/api/handlers"
	"procureflow.io/procureflow/internal/api/middleware"
	"procureflow.io/procureflow/internal/config"
)

// newRouter registers all routes explicitly. Role gates follow the
// visibility matrix: staff own the request lifecycle, approvers decide,
// finance attaches artifacts, admin administers policies and corrects steps.
func newRouter(cfg *config.Config, server *handlers.Server, signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")

	// Public routes.
	api.POST("/auth/login", server.Login)
	api.GET("/health/live", server.GetLiveness)
	api.GET("/health/ready", server.GetReadiness)

	// Authenticated routes.
	auth := api.Group("", middleware.JWTAuth(signingKey))
	auth.GET("/auth/me", server.GetCurrentUser)

	requests := auth.Group("/requests")
	requests.GET("", server.ListRequests)
	requests.GET("/:request_id", server.GetRequest)
	requests.POST("", middleware.RequireRole("staff"), server.CreateRequest)
	requests.PUT("/:request_id/items", middleware.RequireRole("staff"), server.UpdateItems)
	requests.DELETE("/:request_id", middleware.RequireRole("staff"), server.DeleteRequest)
	requests.POST("/:request_id/steps", middleware.RequireRole("approver"), server.CreateStep)
	requests.POST("/:request_id/approve", middleware.RequireRole("approver"), server.ApproveRequest)
	requests.POST("/:request_id/reject", middleware.RequireRole("approver"), server.RejectRequest)
	requests.PATCH("/:request_id/artifacts", middleware.RequireRole("finance"), server.AttachArtifacts)
	requests.GET("/:request_id/finance-notes", middleware.RequireRole("finance"), server.ListFinanceNotes)
	requests.POST("/:request_id/finance-notes", middleware.RequireRole("finance"), server.CreateFinanceNote)
	requests.PUT("/:request_id/finance-notes/:note_id", middleware.RequireRole("finance"), server.UpdateFinanceNote)
	requests.DELETE("/:request_id/finance-notes/:note_id", middleware.RequireRole("finance"), server.DeleteFinanceNote)

	// Step deletion is an admin correction, not part of the decision flow.
	auth.DELETE("/steps/:step_id", middleware.RequireRole("admin"), server.DeleteStep)

	admin := auth.Group("/admin", middleware.RequireRole("admin"))
	admin.GET("/policies", server.ListPolicies)
	admin.POST("/policies", server.CreatePolicy)
	admin.PUT("/policies/:policy_id", server.UpdatePolicy)
	admin.DELETE("/policies/:policy_id", server.DeletePolicy)

	notifications := auth.Group("/notifications")
	notifications.GET("", server.ListNotifications)
	notifications.GET("/unread-count", server.GetUnreadCount)
	notifications.POST("/:notification_id/read", server.MarkNotificationRead)
	notifications.POST("/read-all", server.MarkAllNotificationsRead)

	return router
}
