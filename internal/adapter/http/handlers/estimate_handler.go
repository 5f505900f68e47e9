package handlers

import (
	"errors"
	"log"
	"net/http"

	request "construction_backoffice/internal/adapter/http/dto/request"
	response "construction_backoffice/internal/adapter/http/dto/response"
	"construction_backoffice/internal/usecase"
	"construction_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// EstimateHandler handles HTTP requests for versioned project estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDraft(c.Request.Context(), payload.ToInput(), user)
	if err != nil {
		log.Printf("[estimate][handler] create failed project_id=%s err=%v", payload.ProjectID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(created))
}

// ReviseEstimate appends a new version superseding the one in the path.
// The old row is kept for history with its active flag cleared.
func (h *EstimateHandler) ReviseEstimate(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	estimateID := c.Param("estimate_id")

	var payload request.ReviseEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	revised, err := h.usecase.Revise(c.Request.Context(), estimateID, payload.ToInput(), user)
	if err != nil {
		log.Printf("[estimate][handler] revise failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(revised))
}

func (h *EstimateHandler) UpdateEstimateStatus(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	estimateID := c.Param("estimate_id")

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	change, err := h.usecase.UpdateStatus(c.Request.Context(), estimateID, payload.Status, user)
	if err != nil {
		log.Printf("[estimate][handler] status update failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusChangeResponse{
		ID:             change.Estimate.EstimateID,
		Status:         string(change.Estimate.Status),
		PreviousStatus: string(change.PreviousStatus),
	})
}

// ApproveEstimate approves the estimate and cascades the linked project to
// APPROVED. The response always carries the committed estimate; the
// project_sync section reports whether the cascade followed. A cascade
// failure is not an error status: the primary change stands.
func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	estimateID := c.Param("estimate_id")

	result, err := h.usecase.ApproveWithSync(c.Request.Context(), estimateID, user)
	if err != nil {
		log.Printf("[estimate][handler] approve failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if result.CascadeError != nil {
		log.Printf("[estimate][handler] approve committed but project sync failed estimate_id=%s err=%v", estimateID, result.CascadeError)
	}

	c.JSON(http.StatusOK, response.FromApproveResult(result))
}

func (h *EstimateHandler) UpdateEstimateAmount(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	estimateID := c.Param("estimate_id")

	var payload request.UpdateAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateAmount(c.Request.Context(), estimateID, payload.Amount, user)
	if err != nil {
		log.Printf("[estimate][handler] amount update failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(updated))
}

func (h *EstimateHandler) GetEstimateByID(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	estimate, err := h.usecase.GetByID(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListEstimatesByProject returns every version recorded for the project,
// historical rows included.
func (h *EstimateHandler) ListEstimatesByProject(c *gin.Context) {
	projectID := c.Param("project_id")

	estimates, err := h.usecase.ListByProjectID(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) GetPreviousVersion(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	previous, err := h.usecase.PreviousVersion(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(previous))
}

func mapEstimateError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEstimateVal), errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateHasNoPrevious):
		return pkg.NewDomainErrorSimple("NO_PREVIOUS_VERSION", "Estimate has no previous version", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
