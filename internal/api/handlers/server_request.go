package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/internal/api/middleware"
	"procureflow.io/procureflow/internal/domain"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
	"procureflow.io/procureflow/internal/pkg/logger"
)

// ListRequests handles GET /requests.
//
// Visibility is role-scoped: staff see their own requests, approvers and
// admins see all, finance sees approved requests only.
func (s *Server) ListRequests(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	role := domain.Role(middleware.GetUserRole(ctx))

	query := s.client.PurchaseRequest.Query()
	switch role {
	case domain.RoleApprover, domain.RoleAdmin:
		// Full visibility.
	case domain.RoleFinance:
		query = query.Where(purchaserequest.StatusEQ(purchaserequest.StatusAPPROVED))
	default:
		query = query.Where(purchaserequest.RequesterIDEQ(userID))
	}

	if status := c.Query("status"); status != "" {
		query = query.Where(purchaserequest.StatusEQ(purchaserequest.Status(status)))
	}

	page, perPage := defaultPagination(queryInt(c, "page"), queryInt(c, "per_page"))
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count purchase requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	requests, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(purchaserequest.FieldCreatedAt)).
		WithRequester().
		WithSteps(func(q *ent.ApprovalStepQuery) {
			q.Order(ent.Asc(approvalstep.FieldLevel))
		}).
		All(ctx)
	if err != nil {
		logger.Error("failed to list purchase requests", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]PurchaseRequestView, 0, len(requests))
	for _, r := range requests {
		items = append(items, requestToAPI(r))
	}

	totalPages := (total + perPage - 1) / perPage
	c.JSON(http.StatusOK, PurchaseRequestList{
		Items: items,
		Pagination: Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetRequest handles GET /requests/{request_id}.
func (s *Server) GetRequest(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")
	userID := middleware.GetUserID(ctx)
	role := domain.Role(middleware.GetUserRole(ctx))

	r, err := s.client.PurchaseRequest.Query().
		Where(purchaserequest.IDEQ(requestID)).
		WithRequester().
		WithItems().
		WithSteps(func(q *ent.ApprovalStepQuery) {
			q.Order(ent.Asc(approvalstep.FieldLevel))
		}).
		WithFinanceNotes().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: apperrors.CodeRequestNotFound})
			return
		}
		logger.Error("failed to get purchase request", zap.Error(err), zap.String("request_id", requestID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if !canViewRequest(r, userID, role) {
		// Invisible rather than forbidden: do not leak request existence.
		c.JSON(http.StatusNotFound, ErrorResponse{Code: apperrors.CodeRequestNotFound})
		return
	}

	c.JSON(http.StatusOK, requestToAPI(r))
}

// CreateRequest handles POST /requests.
func (s *Server) CreateRequest(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)

	var input CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed, Message: err.Error()})
		return
	}

	items, err := parseItems(input.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := s.gateway.Submit(ctx,
		userID, middleware.GetUserName(ctx),
		input.Title, input.Description, input.ProformaInvoice,
		items,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":              result.ID,
		"amount":          result.Amount.StringFixed(2),
		"status":          string(result.Status),
		"required_levels": result.RequiredLevels,
	})
}

// UpdateItems handles PUT /requests/{request_id}/items.
func (s *Server) UpdateItems(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")
	userID := middleware.GetUserID(ctx)
	role := domain.Role(middleware.GetUserRole(ctx))

	var input UpdateItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed, Message: err.Error()})
		return
	}

	if role == domain.RoleStaff {
		if !s.ownsRequest(c, requestID, userID) {
			return
		}
	}

	items, err := parseItems(input.Items)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := s.gateway.UpdateItems(ctx, requestID, userID, role, items)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              result.ID,
		"amount":          result.Amount.StringFixed(2),
		"status":          string(result.Status),
		"required_levels": result.RequiredLevels,
	})
}

// DeleteRequest handles DELETE /requests/{request_id}.
func (s *Server) DeleteRequest(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := c.Param("request_id")
	userID := middleware.GetUserID(ctx)
	role := domain.Role(middleware.GetUserRole(ctx))

	if err := s.gateway.Withdraw(ctx, requestID, userID, role); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ---- Helpers ----

// canViewRequest applies the role visibility matrix to a single request.
func canViewRequest(r *ent.PurchaseRequest, userID string, role domain.Role) bool {
	switch role {
	case domain.RoleApprover, domain.RoleAdmin:
		return true
	case domain.RoleFinance:
		return r.Status == purchaserequest.StatusAPPROVED
	default:
		return r.RequesterID == userID
	}
}

// ownsRequest verifies the staff caller owns the target request, responding
// with 404 otherwise.
func (s *Server) ownsRequest(c *gin.Context, requestID, userID string) bool {
	exists, err := s.client.PurchaseRequest.Query().
		Where(
			purchaserequest.IDEQ(requestID),
			purchaserequest.RequesterIDEQ(userID),
		).
		Exist(c.Request.Context())
	if err != nil {
		logger.Error("failed to check request ownership", zap.Error(err), zap.String("request_id", requestID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return false
	}
	if !exists {
		c.JSON(http.StatusNotFound, ErrorResponse{Code: apperrors.CodeRequestNotFound})
		return false
	}
	return true
}

// parseItems converts API item inputs into domain item lines.
func parseItems(inputs []ItemInput) ([]domain.ItemLine, error) {
	items := make([]domain.ItemLine, 0, len(inputs))
	for _, in := range inputs {
		price, err := decimal.NewFromString(in.UnitPrice)
		if err != nil {
			return nil, apperrors.BadRequest(apperrors.CodeItemInvalid, "unit_price must be a decimal string")
		}
		items = append(items, domain.ItemLine{
			Name:      in.Name,
			Quantity:  in.Quantity,
			UnitPrice: price,
		})
	}
	return items, nil
}

// respondError maps an error to the uniform JSON error body.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.IsAppError(err); ok {
		if appErr.Code == apperrors.CodeBusy {
			c.Header("Retry-After", "1")
		}
		c.JSON(appErr.HTTPStatus, ErrorResponse{
			Code:    appErr.Code,
			Message: appErr.Message,
			Params:  appErr.Params,
		})
		return
	}
	logger.Error("request handling failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed.
func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}
