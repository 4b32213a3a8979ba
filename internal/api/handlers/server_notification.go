package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/notification"
	"procureflow.io/procureflow/internal/api/middleware"
	"procureflow.io/procureflow/internal/pkg/logger"
)

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	query := s.client.Notification.Query().
		Where(notification.RecipientIDEQ(userID))

	if c.Query("unread_only") == "true" {
		query = query.Where(notification.ReadEQ(false))
	}

	page, perPage := defaultPagination(queryInt(c, "page"), queryInt(c, "per_page"))
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	notifications, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, notificationToAPI(n))
	}

	totalPages := (total + perPage - 1) / perPage
	c.JSON(http.StatusOK, NotificationList{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			notification.RecipientIDEQ(userID),
			notification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/{notification_id}/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	notificationID := c.Param("notification_id")
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	// Verify notification exists and belongs to user.
	n, err := s.client.Notification.Query().
		Where(
			notification.IDEQ(notificationID),
			notification.RecipientIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: "NOTIFICATION_NOT_FOUND"})
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if !n.Read {
		if _, err := s.client.Notification.UpdateOneID(notificationID).
			SetRead(true).
			Save(ctx); err != nil {
			logger.Error("failed to mark notification read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Code: "UNAUTHORIZED"})
		return
	}

	_, err := s.client.Notification.Update().
		Where(
			notification.RecipientIDEQ(userID),
			notification.ReadEQ(false),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	c.Status(http.StatusNoContent)
}
