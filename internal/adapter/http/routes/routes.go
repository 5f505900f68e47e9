package routes

import (
	"log"
	"strconv"

	_ "construction_backoffice/docs" // This will be auto-generated
	"construction_backoffice/internal/adapter/http/handlers"
	repository2 "construction_backoffice/internal/adapter/persistence/repository"
	"construction_backoffice/internal/domain/identifier"
	"construction_backoffice/internal/infrastructure/database"
	"construction_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// RequestIDHeader is attached to every response; incoming values are kept
// so upstream callers can correlate.
const RequestIDHeader = "X-Request-ID"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	vendorRepo := repository2.NewVendorDynamoRepository(ddb)
	subRepo := repository2.NewSubcontractorDynamoRepository(ddb)
	timeLogRepo := repository2.NewTimeLogDynamoRepository(ddb)
	receiptRepo := repository2.NewMaterialsReceiptDynamoRepository(ddb)
	invoiceRepo := repository2.NewSubInvoiceDynamoRepository(ddb)
	activityRepo := repository2.NewActivityLogDynamoRepository(ddb)

	// One lock registry for every id scope in the process.
	locks := identifier.NewScopeLocks()

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, activityRepo, locks)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, activityRepo, locks)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, projectRepo, activityRepo, locks)
	vendorUseCase := usecase.NewVendorUseCase(vendorRepo, subRepo, locks)
	fieldLogUseCase := usecase.NewFieldLogUseCase(timeLogRepo, receiptRepo, invoiceRepo, projectRepo, activityRepo)
	activityUseCase := usecase.NewActivityUseCase(activityRepo)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	vendorHandler := handlers.NewVendorHandler(vendorUseCase)
	fieldLogHandler := handlers.NewFieldLogHandler(fieldLogUseCase)
	activityHandler := handlers.NewActivityHandler(activityUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBackofficeRoutes(v1, customerHandler, projectHandler, estimateHandler, vendorHandler, fieldLogHandler, activityHandler)
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}
