package routes

import (
	"log"
	"strconv"

	_ "member_registry/docs" // This will be auto-generated
	"member_registry/internal/adapter/http/handlers"
	"member_registry/internal/adapter/persistence/repository"
	"member_registry/internal/infrastructure/database"
	"member_registry/internal/infrastructure/sms"
	"member_registry/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	dispatcher := getRoutes()
	defer dispatcher.Stop()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// getRoutes wires the dependency graph explicitly: env is read once into
// config structs here, and everything downstream takes its collaborators as
// constructor arguments.
func getRoutes() *usecase.NotificationDispatcher {
	ddb := database.ConnectDynamoDB()
	submissionRepo := repository.NewSubmissionDynamoRepository(ddb)

	smsCfg := sms.ConfigFromEnv()
	gateway := sms.NewGateway(smsCfg, nil)
	dispatcher := usecase.NewNotificationDispatcher(gateway, submissionRepo, smsCfg.MessageTemplate)

	submissionUseCase := usecase.NewSubmissionUseCase(submissionRepo, dispatcher)
	submissionHandler := handlers.NewSubmissionHandler(submissionUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addSubmissionRoutes(api, submissionHandler)

	return dispatcher
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
