package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gudang/internal/clients"
	"gudang/internal/handlers"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/pkg/rabbitmq"
	"gudang/pkg/validation"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8081")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("PRODUCT_API_URL", "http://localhost:8080")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseDSN := viper.GetString("DATABASE_DSN")
	productAPIURL := viper.GetString("PRODUCT_API_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize RabbitMQ Client (optional) ---
	// Stock events are a side channel; the HTTP path never depends on the
	// broker, so a missing RABBITMQ_URL just disables publishing.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, stock event publishing disabled")
	}

	// --- Initialize Repository ---
	var inventoryRepo repositories.InventoryRepository
	if databaseDSN != "" {
		db, err := gorm.Open(postgres.Open(databaseDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Inventory{}); err != nil {
			log.Fatalf("Failed to auto-migrate database: %v", err)
		}
		inventoryRepo = repositories.NewGORMInventoryRepository(db)
	} else {
		log.Println("DATABASE_DSN not set, using in-memory inventory store")
		inventoryRepo = repositories.NewMockInventoryRepository()
	}

	// --- Initialize Services ---
	// The product client is an explicit dependency of the service, built
	// once here rather than kept as package state.
	productClient := clients.NewProductAPIClient(productAPIURL)
	inventoryService := services.NewInventoryService(inventoryRepo, productClient, mqClient)

	// --- Initialize Handler ---
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validation.New())

	// --- Initialize Fiber App ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(recover.New())

	// --- API Routes ---
	api := app.Group("/api")
	inventoryHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for stock events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received stock event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeStockEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting inventory service on port %s (product API at %s)", appPort, productAPIURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down inventory service...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Inventory service gracefully stopped")
}
