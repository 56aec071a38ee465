package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/freshkeeper/freshkeeper-api/docs" // Import generated docs
	"github.com/freshkeeper/freshkeeper-api/internal/config"
	"github.com/freshkeeper/freshkeeper-api/internal/controllers"
	"github.com/freshkeeper/freshkeeper-api/internal/database"
	"github.com/freshkeeper/freshkeeper-api/internal/middleware"
	"github.com/freshkeeper/freshkeeper-api/internal/models"
	"github.com/freshkeeper/freshkeeper-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                   *gorm.DB
	ingredientService    services.IngredientService
	recipeService        services.RecipeService
	ingredientController controllers.IngredientController
	recipeController     controllers.RecipeController
	configuration        *config.Config
)

// @title FreshKeeper API
// @version 1.0
// @description Tracks pantry ingredients and their expiry dates and suggests recipes for items nearing expiry
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	ingredientService = services.NewIngredientService(db)
	recipeService = services.NewRecipeService(configuration.SpoonacularAPIKey, configuration.SpoonacularBaseURL)
	ingredientController = controllers.NewIngredientController(ingredientService)
	recipeController = controllers.NewRecipeController(ingredientService, recipeService)

	// Optionally seed an empty database with sample data
	if config.GetEnvAsType("SEED_EMPTY_DB", false) {
		seedDatabaseIfEmpty()
	}

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	if conf.SpoonacularAPIKey == "" {
		log.Warn("SPOONACULAR_API_KEY not set, recipe suggestions will be unavailable")
	}
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  "disable",
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Create the ingredients table at startup if absent
	checkPanicErr(db.AutoMigrate(&models.Ingredient{}))
	return db
}

// seedDatabaseIfEmpty inserts the fixed sample rows when the ingredients
// table has no data yet
func seedDatabaseIfEmpty() {
	var count int64
	db.Model(&models.Ingredient{}).Count(&count)
	if count > 0 {
		log.Info("Database already has ingredients, skipping seed")
		return
	}
	log.Info("Database is empty, seeding initial data")
	seeded, err := ingredientService.SeedTestData()
	if err != nil {
		log.WithError(err).Error("Failed to seed database")
		return
	}
	log.Infof("Seeded %d ingredients", seeded)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	api := router.Group("/api")
	{
		api.GET("/ingredients", ingredientController.GetAllIngredients)
		api.POST("/ingredients", ingredientController.CreateIngredient)
		// reset-database is registered before the :id routes so the literal
		// path wins over the parameter match
		api.DELETE("/ingredients/reset-database", ingredientController.ResetDatabase)
		api.PUT("/ingredients/:id", ingredientController.UpdateIngredient)
		api.DELETE("/ingredients/:id", ingredientController.DeleteIngredient)

		api.GET("/expiring", ingredientController.GetExpiringIngredients)
		api.GET("/recipe-suggestions", recipeController.GetRecipeSuggestions)
		api.GET("/stats", ingredientController.GetStats)
		api.POST("/test-data", ingredientController.AddTestData)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "freshkeeper-api",
	})
}
