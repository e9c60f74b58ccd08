package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"exchange/cmd"
	httpin "exchange/internal/adapters/in/http"
	"exchange/internal/adapters/out/postgres/auditrepo"
	"exchange/internal/adapters/out/postgres/batchrepo"
	"exchange/internal/adapters/out/postgres/exchangerepo"
	"exchange/internal/adapters/out/postgres/profilerepo"
	"exchange/internal/adapters/out/postgres/ratingrepo"
	"exchange/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager, err := jobs.NewJobManager(
		app.CreateExpireStaleRequestsCommandHandler(),
		configs.RequestTTL,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		RequestTTL:         goDotEnvDuration("REQUEST_TTL"),
		ReactivationPolicy: goDotEnvVariable("REACTIVATION_POLICY"),
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

func goDotEnvDuration(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns the unique-index violation on ratings into
	// gorm.ErrDuplicatedKey, which the rating repository depends on.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&batchrepo.BatchDTO{},
		&exchangerepo.OrderDTO{},
		&ratingrepo.RatingDTO{},
		&auditrepo.EntryDTO{},
		&profilerepo.ProfileDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateBatchCommandHandler(),
		app.CreateRequestExchangeCommandHandler(),
		app.CreateAcceptExchangeCommandHandler(),
		app.CreateRejectExchangeCommandHandler(),
		app.CreateCancelExchangeCommandHandler(),
		app.CreateCompleteExchangeCommandHandler(),
		app.CreateSubmitRatingCommandHandler(),
		app.CreateReportRatingCommandHandler(),
		app.CreateOverrideStatusCommandHandler(),
		app.CreateReactivateBatchCommandHandler(),
		app.CreateGetAvailableBatchesQueryHandler(),
		app.CreateGetOrdersForActorQueryHandler(),
		app.CreateGetActorRatingQueryHandler(),
		app.CreateGetAuditTrailQueryHandler(),
		app.IdentityProvider(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
