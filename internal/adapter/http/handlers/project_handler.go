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

// ProjectHandler handles HTTP requests for project records.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), user)
	if err != nil {
		log.Printf("[project][handler] create failed err=%v", err)
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(created))
}

func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	change, err := h.usecase.UpdateStatus(c.Request.Context(), projectID, payload.Status, user)
	if err != nil {
		log.Printf("[project][handler] status update failed project_id=%s err=%v", projectID, err)
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusChangeResponse{
		ID:             change.Project.ProjectID,
		Status:         string(change.Project.Status),
		PreviousStatus: string(change.PreviousStatus),
	})
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	projectID := c.Param("project_id")

	project, err := h.usecase.GetByID(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProject(project))
}

// ListActiveProjects returns only projects whose field modules are open
// (APPROVED or IN_PROGRESS).
func (h *ProjectHandler) ListActiveProjects(c *gin.Context) {
	projects, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProjects(projects))
}

func (h *ProjectHandler) GetModuleVisibility(c *gin.Context) {
	projectID := c.Param("project_id")

	visibility, err := h.usecase.ModuleVisibility(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromModuleVisibility(projectID, visibility))
}

func mapProjectError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidProjectName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
