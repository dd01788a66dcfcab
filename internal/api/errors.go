package api

import (
	"errors"
	"net/http"

	"github.com/kevinzhou/rentflow/internal/application/port"
	"github.com/kevinzhou/rentflow/internal/application/service"
	"github.com/kevinzhou/rentflow/internal/domain/workflow"
)

// errorBody is the machine-readable failure shape
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classify maps a workflow error onto an HTTP status and error kind.
func classify(err error) (int, errorBody) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized, errorBody{
			Error:   "not_authenticated",
			Message: "Caller identity is required.",
		}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, errorBody{
			Error:   "not_found",
			Message: "The application or a referenced record does not exist.",
		}
	case errors.Is(err, service.ErrNotAuthorized):
		return http.StatusForbidden, errorBody{
			Error:   "not_authorized",
			Message: "Only the landlord or the listing agent may review this application.",
		}
	case errors.Is(err, workflow.ErrAgentReviewRequired):
		return http.StatusForbidden, errorBody{
			Error:   "agent_review_required",
			Message: "The assigned agent must approve before the landlord can give final approval.",
		}
	case errors.Is(err, workflow.ErrTerminalState), errors.Is(err, workflow.ErrInvalidStatus), errors.Is(err, workflow.ErrInvalidTransition):
		return http.StatusBadRequest, errorBody{
			Error:   "invalid_transition",
			Message: "The requested status change is not legal for this application.",
		}
	case errors.Is(err, service.ErrInvalidPrice):
		return http.StatusBadRequest, errorBody{
			Error:   "invalid_price",
			Message: "The property has no valid price; the application was not modified.",
		}
	case errors.Is(err, port.ErrStatusConflict):
		return http.StatusConflict, errorBody{
			Error:   "status_conflict",
			Message: "The application changed concurrently; retry with its current state.",
		}
	case errors.Is(err, service.ErrLeaseCreationFailed):
		return http.StatusInternalServerError, errorBody{
			Error:   "lease_creation_failed",
			Message: "Lease provisioning failed; the application was reverted and is not approved.",
		}
	case errors.Is(err, service.ErrPaymentProvisioningFailed):
		return http.StatusInternalServerError, errorBody{
			Error:   "payment_provisioning_failed",
			Message: "Escrow payment setup failed; the approval was rolled back and the application is not approved.",
		}
	default:
		return http.StatusInternalServerError, errorBody{
			Error:   "internal_error",
			Message: "An unexpected error occurred.",
		}
	}
}
