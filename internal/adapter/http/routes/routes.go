package routes

import (
	"log"
	"os"
	"strconv"

	_ "techfood_payment/docs" // This will be auto-generated
	"techfood_payment/internal/adapter/http/handlers"
	repository2 "techfood_payment/internal/adapter/persistence/repository"
	"techfood_payment/internal/domain/entities"
	"techfood_payment/internal/infrastructure/database"
	"techfood_payment/internal/infrastructure/events"
	"techfood_payment/internal/infrastructure/orders"
	"techfood_payment/internal/infrastructure/payments"
	"techfood_payment/internal/infrastructure/products"
	"techfood_payment/internal/usecase"
	"techfood_payment/internal/usecase/interfaces"

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

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	orderService := orders.NewOrderService(os.Getenv("ORDER_SERVICE_URL"))
	productService := products.NewProductService(os.Getenv("PRODUCT_SERVICE_URL"))
	publisher := events.NewLogPaymentEventPublisher()

	gateways := map[entities.PaymentType]interfaces.IPaymentGateway{}
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		gateways[entities.PaymentTypeMercadoPago] = mpGateway
	}

	createUseCase := usecase.NewCreatePaymentUseCase(paymentRepo, orderService, productService, gateways)
	confirmUseCase := usecase.NewConfirmPaymentUseCase(paymentRepo, publisher)

	paymentHandler := handlers.NewPaymentHandler(createUseCase, confirmUseCase)
	webhookHandler := handlers.NewWebhookHandler(confirmUseCase, os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
