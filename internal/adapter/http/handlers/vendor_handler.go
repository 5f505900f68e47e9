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

// VendorHandler handles HTTP requests for the vendor and subcontractor
// registries.

type VendorHandler struct {
	usecase usecase.IVendorUseCase
}

func NewVendorHandler(uc usecase.IVendorUseCase) *VendorHandler {
	return &VendorHandler{usecase: uc}
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var payload request.CreateVendorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateVendor(c.Request.Context(), payload.VendorName, user)
	if err != nil {
		log.Printf("[vendor][handler] create failed err=%v", err)
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVendor(created))
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.usecase.ListVendors(c.Request.Context())
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVendors(vendors))
}

func (h *VendorHandler) CreateSubcontractor(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var payload request.CreateSubcontractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateSubcontractor(c.Request.Context(), payload.ToInput(), user)
	if err != nil {
		log.Printf("[vendor][handler] subcontractor create failed err=%v", err)
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubcontractor(created))
}

func (h *VendorHandler) ListSubcontractors(c *gin.Context) {
	subs, err := h.usecase.ListSubcontractors(c.Request.Context())
	if err != nil {
		appErr := mapVendorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubcontractors(subs))
}

func mapVendorError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidVendorName), errors.Is(err, usecase.ErrInvalidSubName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
