package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/application/service"
	"github.com/kevinzhou/rentflow/internal/domain/entity"
	"github.com/kevinzhou/rentflow/internal/domain/workflow"
)

// Handler serves the application approval endpoints
type Handler struct {
	approvals       service.ApprovalService
	applicationRepo port.ApplicationRepository
	propertyRepo    port.PropertyRepository
	userRepo        port.UserRepository
	logger          *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	approvals service.ApprovalService,
	applicationRepo port.ApplicationRepository,
	propertyRepo port.PropertyRepository,
	userRepo port.UserRepository,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		approvals:       approvals,
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// approveRequest is the body of the approval endpoint
type approveRequest struct {
	Status string `json:"status" binding:"required"`
}

// Approve handles POST /api/v1/applications/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	var body approveRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{
			Error:   "invalid_request",
			Message: "A requested status is required.",
		})
		return
	}

	view, err := h.approvals.ProcessApproval(c.Request.Context(), &service.ApprovalRequest{
		ApplicationID:   c.Param("id"),
		ApproverID:      c.GetString(callerIDKey),
		ApproverRole:    c.GetString(callerRoleKey),
		RequestedStatus: workflow.Status(body.Status),
	})
	if err != nil {
		status, body := classify(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Approval failed", zap.String("application_id", c.Param("id")), zap.Error(err))
		} else {
			h.logger.Warn("Approval rejected", zap.String("application_id", c.Param("id")), zap.Error(err))
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Get handles GET /api/v1/applications/:id
func (h *Handler) Get(c *gin.Context) {
	if c.GetString(callerIDKey) == "" {
		status, body := classify(service.ErrNotAuthenticated)
		c.JSON(status, body)
		return
	}

	ctx := c.Request.Context()
	app, err := h.applicationRepo.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.logger.Error("Failed to load application", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal_error", Message: "An unexpected error occurred."})
		return
	}
	if app == nil {
		status, body := classify(service.ErrNotFound)
		c.JSON(status, body)
		return
	}

	// The joined view degrades rather than fails when a side load breaks.
	view := &entity.ApplicationView{Application: app}
	if property, err := h.propertyRepo.GetByID(ctx, app.PropertyID); err != nil {
		h.logger.Warn("Failed to load property for view",
			zap.String("application_id", app.ID), zap.String("property_id", app.PropertyID), zap.Error(err))
	} else {
		view.Property = property
	}
	if tenant, err := h.userRepo.GetByID(ctx, app.TenantID); err != nil {
		h.logger.Warn("Failed to load tenant for view",
			zap.String("application_id", app.ID), zap.String("tenant_id", app.TenantID), zap.Error(err))
	} else if tenant != nil {
		view.Tenant = tenant.Public()
	}

	c.JSON(http.StatusOK, view)
}

// Health handles GET /healthz
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
