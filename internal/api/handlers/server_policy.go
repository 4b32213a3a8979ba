package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"procureflow.io/procureflow/ent"
	"procureflow.io/procureflow/ent/approvalpolicy"
	"procureflow.io/procureflow/internal/api/middleware"
	apperrors "procureflow.io/procureflow/internal/pkg/errors"
	"procureflow.io/procureflow/internal/pkg/logger"
	"procureflow.io/procureflow/internal/service"
)

// ListPolicies handles GET /admin/policies.
func (s *Server) ListPolicies(c *gin.Context) {
	ctx := c.Request.Context()

	policies, err := s.client.ApprovalPolicy.Query().
		Order(ent.Asc(approvalpolicy.FieldMinAmount)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list approval policies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	items := make([]PolicyView, 0, len(policies))
	for _, p := range policies {
		items = append(items, policyToAPI(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":          items,
		"default_levels": s.policyService.DefaultLevels(),
	})
}

// CreatePolicy handles POST /admin/policies.
func (s *Server) CreatePolicy(c *gin.Context) {
	ctx := c.Request.Context()
	actorID := middleware.GetUserID(ctx)

	input, minAmount, maxAmount, ok := s.bindPolicyInput(c)
	if !ok {
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		logger.Error("failed to generate policy id", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	builder := s.client.ApprovalPolicy.Create().
		SetID(id.String()).
		SetTitle(input.Title).
		SetMinAmount(minAmount).
		SetMaxAmount(maxAmount).
		SetRequiredLevels(input.RequiredLevels).
		SetCreatedBy(actorID)
	if input.Active != nil {
		builder = builder.SetActive(*input.Active)
	}

	policy, err := builder.Save(ctx)
	if err != nil {
		logger.Error("failed to create approval policy", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if s.audit != nil {
		_ = s.audit.LogPolicyChange(ctx, "created", policy.ID, actorID)
	}

	c.JSON(http.StatusCreated, policyToAPI(policy))
}

// UpdatePolicy handles PUT /admin/policies/{policy_id}.
//
// Policy edits are not retroactive: requests that already resolved their
// required_levels keep them.
func (s *Server) UpdatePolicy(c *gin.Context) {
	ctx := c.Request.Context()
	policyID := c.Param("policy_id")
	actorID := middleware.GetUserID(ctx)

	input, minAmount, maxAmount, ok := s.bindPolicyInput(c)
	if !ok {
		return
	}

	builder := s.client.ApprovalPolicy.UpdateOneID(policyID).
		SetTitle(input.Title).
		SetMinAmount(minAmount).
		SetMaxAmount(maxAmount).
		SetRequiredLevels(input.RequiredLevels)
	if input.Active != nil {
		builder = builder.SetActive(*input.Active)
	}

	policy, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: apperrors.CodePolicyNotFound})
			return
		}
		logger.Error("failed to update approval policy", zap.Error(err), zap.String("policy_id", policyID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if s.audit != nil {
		_ = s.audit.LogPolicyChange(ctx, "updated", policyID, actorID)
	}

	c.JSON(http.StatusOK, policyToAPI(policy))
}

// DeletePolicy handles DELETE /admin/policies/{policy_id}.
func (s *Server) DeletePolicy(c *gin.Context) {
	ctx := c.Request.Context()
	policyID := c.Param("policy_id")
	actorID := middleware.GetUserID(ctx)

	if err := s.client.ApprovalPolicy.DeleteOneID(policyID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Code: apperrors.CodePolicyNotFound})
			return
		}
		logger.Error("failed to delete approval policy", zap.Error(err), zap.String("policy_id", policyID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR"})
		return
	}

	if s.audit != nil {
		_ = s.audit.LogPolicyChange(ctx, "deleted", policyID, actorID)
	}

	c.Status(http.StatusNoContent)
}

// bindPolicyInput binds and validates a policy payload, responding on error.
func (s *Server) bindPolicyInput(c *gin.Context) (PolicyInput, decimal.Decimal, decimal.Decimal, bool) {
	var input PolicyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodeValidationFailed, Message: err.Error()})
		return input, decimal.Decimal{}, decimal.Decimal{}, false
	}

	minAmount, err := decimal.NewFromString(input.MinAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodePolicyInvalid, Message: "min_amount must be a decimal string"})
		return input, decimal.Decimal{}, decimal.Decimal{}, false
	}
	maxAmount, err := decimal.NewFromString(input.MaxAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: apperrors.CodePolicyInvalid, Message: "max_amount must be a decimal string"})
		return input, decimal.Decimal{}, decimal.Decimal{}, false
	}

	if err := service.ValidatePolicyInput(minAmount, maxAmount, input.RequiredLevels); err != nil {
		respondError(c, err)
		return input, decimal.Decimal{}, decimal.Decimal{}, false
	}
	return input, minAmount, maxAmount, true
}
