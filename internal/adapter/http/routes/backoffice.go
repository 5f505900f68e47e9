package routes

import (
	"construction_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers      = "/customers"
	PathProjects       = "/projects"
	PathEstimates      = "/estimates"
	PathVendors        = "/vendors"
	PathSubcontractors = "/subcontractors"
	PathActivity       = "/activity"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	projectHandler *handlers.ProjectHandler,
	estimateHandler *handlers.EstimateHandler,
	vendorHandler *handlers.VendorHandler,
	fieldLogHandler *handlers.FieldLogHandler,
	activityHandler *handlers.ActivityHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:customer_id", customerHandler.GetCustomerByID)
		customers.PATCH("/:customer_id/status", customerHandler.UpdateCustomerStatus)
	}

	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.ListActiveProjects)
		projects.GET("/:project_id", projectHandler.GetProjectByID)
		projects.PATCH("/:project_id/status", projectHandler.UpdateProjectStatus)
		projects.GET("/:project_id/modules", projectHandler.GetModuleVisibility)
		projects.GET("/:project_id/estimates", estimateHandler.ListEstimatesByProject)

		// Field modules, gated on the project being APPROVED or IN_PROGRESS.
		projects.POST("/:project_id/time-logs", fieldLogHandler.CreateTimeLog)
		projects.POST("/:project_id/materials-receipts", fieldLogHandler.CreateMaterialsReceipt)
		projects.POST("/:project_id/sub-invoices", fieldLogHandler.CreateSubInvoice)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:estimate_id", estimateHandler.GetEstimateByID)
		estimates.GET("/:estimate_id/previous", estimateHandler.GetPreviousVersion)
		estimates.POST("/:estimate_id/revisions", estimateHandler.ReviseEstimate)
		estimates.PATCH("/:estimate_id/status", estimateHandler.UpdateEstimateStatus)
		estimates.POST("/:estimate_id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:estimate_id/amount", estimateHandler.UpdateEstimateAmount)
	}

	vendors := rg.Group(PathVendors)
	{
		vendors.POST("", vendorHandler.CreateVendor)
		vendors.GET("", vendorHandler.ListVendors)
	}

	subcontractors := rg.Group(PathSubcontractors)
	{
		subcontractors.POST("", vendorHandler.CreateSubcontractor)
		subcontractors.GET("", vendorHandler.ListSubcontractors)
	}

	activity := rg.Group(PathActivity)
	{
		activity.GET("/:reference_id", activityHandler.ListActivityByReference)
	}
}
