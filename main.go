package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"excheck/internal/catalog"
	"excheck/internal/checkout"
	"excheck/internal/config"
	"excheck/internal/db"
	"excheck/internal/detection"
	"excheck/internal/report"
)

func main() {
	// Load environment variables; a missing .env is fine in deployment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Validate detector credentials early (fail fast)
	if cfg.DetectorURL == "" || cfg.DetectorKey == "" {
		log.Fatal("DETECTOR_URL and DETECTOR_KEY must be set")
	}

	// Stores: Postgres when configured, in-memory otherwise.
	var (
		catalogRepo  catalog.Repository
		checkoutRepo checkout.Repository
	)
	if cfg.DatabaseURL != "" {
		pool := db.ConnectPostgres(cfg.DatabaseURL)
		catalogRepo = catalog.NewPostgresRepository(pool)
		checkoutRepo = checkout.NewPostgresRepository(pool)
	} else {
		log.Println("DATABASE_URL not set, using in-memory stores")
		catalogRepo = catalog.NewInMemoryRepository()
		checkoutRepo = checkout.NewInMemoryRepository()
	}

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	detector := detection.NewVisionClient(cfg.DetectorURL, cfg.DetectorKey)
	detectionService := detection.NewService(detector, catalogService, cfg.CropWorkers)
	detectionHandler := detection.NewHandler(detectionService)

	checkoutService := checkout.NewService(checkoutRepo)
	checkoutHandler := checkout.NewHandler(checkoutService)

	grouper := report.NewGrouper(cfg.ReportTimezone, cfg.TaxRate)
	reportService := report.NewService(checkoutRepo, grouper)
	reportHandler := report.NewHandler(reportService)

	r := gin.Default()
	r.Use(cors.Default())

	r.POST("/predict-image", detectionHandler.PredictImage)
	r.POST("/product", catalogHandler.SaveProduct)
	r.GET("/products", catalogHandler.ListProducts)
	r.POST("/checkout", checkoutHandler.Checkout)
	r.GET("/transactions", reportHandler.GetTransactions)
	r.GET("/transaction/:id", checkoutHandler.GetTransaction)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	addr := ":" + cfg.Port
	log.Printf("Server running on http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
