package routes

import (
	"context"
	"log"
	"strings"

	"landmarker/config"
	_ "landmarker/docs" // This will be auto-generated
	"landmarker/internal/adapter/http/handlers"
	"landmarker/internal/adapter/persistence/store"
	"landmarker/internal/infrastructure/database"
	"landmarker/internal/infrastructure/generation"
	"landmarker/internal/infrastructure/ledger"
	"landmarker/internal/infrastructure/storage"
	"landmarker/internal/usecase"
	"landmarker/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.APP.PORT); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	referenceStore := newReferenceStore(cfg)
	portal := ledger.NewPortalGateway()

	editor := generation.NewRetryingEditor(
		generation.NewGeminiEditor(),
		cfg.Generation.RetryMaxAttempts,
		cfg.Generation.RetryBaseDelay,
	)

	var imageStorage interfaces.IImageStorage
	s3Storage, err := storage.NewS3ImageStorage(context.Background())
	if err != nil {
		// Generation still works without the hosted copy; images go back inline.
		log.Printf("Image storage not configured: %v", err)
	} else {
		imageStorage = s3Storage
	}

	referenceUseCase := usecase.NewPaymentReferenceUseCase(referenceStore, portal)
	generationUseCase := usecase.NewGenerationUseCase(referenceStore, editor, imageStorage)

	referenceHandler := handlers.NewPaymentReferenceHandler(referenceUseCase)
	generationHandler := handlers.NewGenerationHandler(generationUseCase)

	root := router.Group("/")
	addPingRoutes(root)
	addPaymentRoutes(root, referenceHandler, generationHandler)
}

func newReferenceStore(cfg *config.Config) interfaces.IReferenceStore {
	if strings.EqualFold(cfg.Reference.StoreBackend, "dynamodb") {
		log.Printf("Using DynamoDB payment reference store")
		return store.NewDynamoReferenceStore(database.ConnectDynamoDB(), cfg.Reference.TTL)
	}
	return store.NewMemoryReferenceStore(cfg.Reference.TTL)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
