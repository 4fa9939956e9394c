package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	datasetsHttp "activity-report-service/internal/datasets/adapters/http/fiber"
	datasetsRepoPg "activity-report-service/internal/datasets/adapters/postgres"
	datasetsUsecase "activity-report-service/internal/datasets/core/usecase"

	reportsHttp "activity-report-service/internal/reports/adapters/http/fiber"
	reportsRepoPg "activity-report-service/internal/reports/adapters/postgres"
	reportsUsecase "activity-report-service/internal/reports/core/usecase"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "activity-report-service/docs"
)

func main() {
	// Config
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// DB connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	datasetsDB := datasetsRepoPg.NewSQLDB(db)
	reportsDB := reportsRepoPg.NewSQLDB(db)

	// Repositories
	registryRepository := datasetsRepoPg.NewRegistryRepository(datasetsDB)
	datasetRepository := reportsRepoPg.NewDatasetRepository(reportsDB)

	// Usecases
	uploadDatasetUC := datasetsUsecase.NewUploadDatasetUseCase(registryRepository)
	listDatasetsUC := datasetsUsecase.NewListDatasetsUseCase(registryRepository)

	buildReportUC := reportsUsecase.NewBuildReportUseCase(datasetRepository)
	exportReportUC := reportsUsecase.NewExportReportUseCase(buildReportUC)
	askUC := reportsUsecase.NewAskUseCase(buildReportUC)

	// HTTP (Fiber) app + handlers. Read/write timeouts bound one
	// interaction; an overrun fails the request, nothing is retried.
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// dataset registry endpoints
	datasetsHandler := datasetsHttp.NewDatasetHandler(uploadDatasetUC, listDatasetsUC)
	app.Post("/datasets", datasetsHandler.UploadDataset)
	app.Get("/datasets", datasetsHandler.ListDatasets)

	// report endpoints
	reportsHandler := reportsHttp.NewReportHandler(buildReportUC, exportReportUC, askUC)
	app.Get("/datasets/:filename/records", reportsHandler.GetRecords)
	app.Get("/datasets/:filename/report", reportsHandler.GetReport)
	app.Get("/datasets/:filename/export", reportsHandler.ExportReport)
	app.Post("/datasets/:filename/ask", reportsHandler.Ask)
	app.Get("/questions", reportsHandler.ListQuestions)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
