package handlers

import (
	"errors"
	"net/http"
	"strings"

	"construction_backoffice/internal/domain/workflow"
	"construction_backoffice/internal/usecase"
	"construction_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// UserHeader carries the acting user. Every mutating endpoint requires it;
// the value lands in the audit trail as-is.
const UserHeader = "X-User-Email"

var (
	errMissingUserHeader = pkg.NewDomainErrorSimple("MISSING_USER", "Missing "+UserHeader+" header", http.StatusUnauthorized)
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// actingUser pulls the acting user from the request header. Writes a 401
// and returns false when absent.
func actingUser(c *gin.Context) (string, bool) {
	user := strings.TrimSpace(c.GetHeader(UserHeader))
	if user == "" {
		c.JSON(errMissingUserHeader.HTTPStatus, errMissingUserHeader.ToHTTPError())
		return "", false
	}
	return user, true
}

// mapCommonError handles errors shared by every module's endpoints.
// Returns nil when the error is module-specific.
func mapCommonError(err error) *pkg.AppError {
	var transitionErr *workflow.InvalidTransitionError
	switch {
	case errors.As(err, &transitionErr):
		return pkg.NewDomainError("INVALID_TRANSITION", transitionErr.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown status value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingActingUser):
		return pkg.NewDomainErrorSimple("MISSING_USER", "Missing acting user", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAllocationExhausted):
		return pkg.NewDomainErrorSimple("ID_ALLOCATION_CONFLICT", "Could not allocate an identifier, try again", http.StatusConflict)
	default:
		return nil
	}
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
