package handlers

import (
	"errors"
	"net/http"

	response "construction_backoffice/internal/adapter/http/dto/response"
	"construction_backoffice/internal/usecase"
	"construction_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// ActivityHandler exposes read access to the audit trail.

type ActivityHandler struct {
	usecase usecase.IActivityUseCase
}

func NewActivityHandler(uc usecase.IActivityUseCase) *ActivityHandler {
	return &ActivityHandler{usecase: uc}
}

// ListActivityByReference returns every audit entry recorded against the
// given entity id, oldest first.
func (h *ActivityHandler) ListActivityByReference(c *gin.Context) {
	referenceID := c.Param("reference_id")

	entries, err := h.usecase.ListByReferenceID(c.Request.Context(), referenceID)
	if err != nil {
		appErr := mapActivityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActivityLogEntries(entries))
}

func mapActivityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReferenceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
