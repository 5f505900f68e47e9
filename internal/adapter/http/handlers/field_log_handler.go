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

// FieldLogHandler handles HTTP requests for field paperwork nested under a
// project: time logs, materials receipts and subcontractor invoices.

type FieldLogHandler struct {
	usecase usecase.IFieldLogUseCase
}

func NewFieldLogHandler(uc usecase.IFieldLogUseCase) *FieldLogHandler {
	return &FieldLogHandler{usecase: uc}
}

func (h *FieldLogHandler) CreateTimeLog(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	var payload request.TimeLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.LogTime(c.Request.Context(), payload.ToInput(projectID), user)
	if err != nil {
		log.Printf("[fieldlog][handler] time log failed project_id=%s err=%v", projectID, err)
		appErr := mapFieldLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTimeLog(created))
}

func (h *FieldLogHandler) CreateMaterialsReceipt(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	var payload request.MaterialsReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.LogMaterialsReceipt(c.Request.Context(), payload.ToInput(projectID), user)
	if err != nil {
		log.Printf("[fieldlog][handler] materials receipt failed project_id=%s err=%v", projectID, err)
		appErr := mapFieldLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaterialsReceipt(created))
}

func (h *FieldLogHandler) CreateSubInvoice(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	var payload request.SubInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.LogSubInvoice(c.Request.Context(), payload.ToInput(projectID), user)
	if err != nil {
		log.Printf("[fieldlog][handler] sub invoice failed project_id=%s err=%v", projectID, err)
		appErr := mapFieldLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubInvoice(created))
}

func mapFieldLogError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidHours), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrModuleNotAccessible):
		return pkg.NewDomainErrorSimple("MODULE_NOT_ACCESSIBLE", "Project modules are not open in the current status", http.StatusForbidden)
	default:
		return internalError(err)
	}
}
