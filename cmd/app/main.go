package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"foodorder/cmd"
	httpadapter "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/kafka"
	"foodorder/internal/adapters/out/neshan"
	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/ratingrepo"
	"foodorder/internal/core/ports"
	"foodorder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	estimator, err := neshan.NewEstimator(configs.NeshanBaseURL, configs.NeshanAPIKey)
	if err != nil {
		log.Fatalf("Failed to create travel estimator: %v", err)
	}

	publisher := createPublisher(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, estimator, publisher)

	failStaleHandler := app.CreateFailStaleOrdersCommandHandler()
	jobManager := jobs.NewJobManager(failStaleHandler, configs.MaxPendingAge, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		NeshanAPIKey:           goDotEnvVariable("NESHAN_API_KEY"),
		NeshanBaseURL:          goDotEnvVariable("NESHAN_BASE_URL"),
		EstimateTimeout:        durationEnv("ESTIMATE_TIMEOUT", 5*time.Second),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		MaxPendingAge:          durationEnv("MAX_PENDING_AGE", 30*time.Minute),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return parsed
}

// mustOpenDB opens the database and migrates the schema. TranslateError is
// required so duplicate-key violations surface as gorm.ErrDuplicatedKey.
func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&ratingrepo.RatingDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func createPublisher(configs cmd.Config, logger *slog.Logger) ports.OrderEventPublisher {
	if configs.KafkaHost == "" {
		return kafka.NoopPublisher{}
	}

	publisher, err := kafka.NewOrderChangedPublisher(
		configs.KafkaHost, configs.KafkaOrderChangedTopic, logger)
	if err != nil {
		log.Fatalf("Failed to create Kafka publisher: %v", err)
	}
	return publisher
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	createOrderHandler := app.CreateCreateOrderCommandHandler()
	updateStatusHandler := app.CreateUpdateOrderStatusCommandHandler()
	reorderHandler := app.CreateReorderCommandHandler()
	rateOrderHandler := app.CreateRateOrderCommandHandler()

	server := httpadapter.NewServer(
		&createOrderHandler,
		&updateStatusHandler,
		&reorderHandler,
		&rateOrderHandler,
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetRestaurantOrdersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
