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

// CustomerHandler handles HTTP requests for customer records.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer allocates a new year-scoped customer id and persists the
// record in PENDING status.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), user)
	if err != nil {
		log.Printf("[customer][handler] create failed err=%v", err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func (h *CustomerHandler) UpdateCustomerStatus(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	customerID := c.Param("customer_id")

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	change, err := h.usecase.UpdateStatus(c.Request.Context(), customerID, payload.Status, user)
	if err != nil {
		log.Printf("[customer][handler] status update failed customer_id=%s err=%v", customerID, err)
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusChangeResponse{
		ID:             change.Customer.CustomerID,
		Status:         string(change.Customer.Status),
		PreviousStatus: string(change.PreviousStatus),
	})
}

func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	customerID := c.Param("customer_id")

	customer, err := h.usecase.GetByID(c.Request.Context(), customerID)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func mapCustomerError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCustomerName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
