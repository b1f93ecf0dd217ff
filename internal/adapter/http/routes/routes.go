package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "meusdocumentos/docs" // This will be auto-generated
	"meusdocumentos/internal/adapter/http/handlers"
	repository2 "meusdocumentos/internal/adapter/persistence/repository"
	"meusdocumentos/internal/infrastructure/database"
	"meusdocumentos/internal/infrastructure/notify"
	"meusdocumentos/internal/infrastructure/payments"
	"meusdocumentos/internal/usecase"
	"meusdocumentos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewServiceCatalogDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	conversationRepo := repository2.NewConversationDynamoRepository(ddb)
	profileRepo := repository2.NewCustomerProfileDynamoRepository(ddb)
	updateRequestRepo := repository2.NewOrderUpdateRequestDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notifier := notify.NewSESOrderNotifier(newSESClient())

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, updateRequestRepo, notifier)
	conversationUseCase := usecase.NewConversationUseCase(catalogUseCase, orderUseCase, profileRepo, conversationRepo, paymentGateway)
	conversationUseCase.SetTypingDelay(botTypingDelay())

	conversationHandler := handlers.NewConversationHandler(conversationUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addConversationRoutes(v1, conversationHandler)
	addOrderRoutes(v1, orderHandler)
}

func newSESClient() *sesv2.Client {
	cfg, err := database.NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		log.Printf("SES client not configured: %v", err)
		return nil
	}
	return sesv2.NewFromConfig(cfg)
}

func botTypingDelay() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("BOT_TYPING_DELAY_MS"))
	if err != nil || ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
