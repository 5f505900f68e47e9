package main

import (
	_ "construction_backoffice/docs"
	"construction_backoffice/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Construction Back Office API
// @version         1.0
// @description     Workflow and identifier engine for construction projects, estimates and customers, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserEmail
// @in header
// @name X-User-Email
// @description Acting user recorded in the audit trail.

func main() {
	routes.Run()
}
