package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizza-market-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-market-api/internal/auth"
	"github.com/franciscosanchezn/pizza-market-api/internal/config"
	"github.com/franciscosanchezn/pizza-market-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-market-api/internal/database"
	"github.com/franciscosanchezn/pizza-market-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-market-api/internal/models"
	"github.com/franciscosanchezn/pizza-market-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config

	oauthService *auth.OAuthService

	searchController    controllers.SearchController
	pizzaController     controllers.PizzaController
	menuController      controllers.MenuController
	pizzeriaController  controllers.PizzeriaController
	lookupController    controllers.LookupController
	referenceController controllers.ReferenceController
	geoController       controllers.GeoController
	authController      *controllers.AuthController
	clientController    *controllers.ClientController
)

// @title Pizza Market API
// @version 1.0
// @description Faceted pizza search and catalog management API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	setupServices()

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
	return conf
}

// setupDatabase initializes the database connection, applies migrations and
// seeds an empty database with a demo catalog
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.SeedIfEmpty(db))
	return db
}

// setupServices wires services and controllers onto the shared database handle
func setupServices() {
	searchService := services.NewSearchService(services.NewCatalogRepository(db))
	pizzaService := services.NewPizzaService(db)
	menuService := services.NewMenuService(db)
	pizzeriaService := services.NewPizzeriaService(db)
	lookupService := services.NewLookupService(db)
	catalogService := services.NewCatalogService(db)
	geoService := services.NewGeoService(db)
	userService := services.NewUserService(db)
	clientService := services.NewClientService(db)

	oauthService = auth.NewOAuthService(db, configuration.JWTSecret)

	searchController = controllers.NewSearchController(searchService, pizzeriaService)
	pizzaController = controllers.NewPizzaController(pizzaService)
	menuController = controllers.NewMenuController(menuService)
	pizzeriaController = controllers.NewPizzeriaController(pizzeriaService)
	lookupController = controllers.NewLookupController(lookupService)
	referenceController = controllers.NewReferenceController(catalogService)
	geoController = controllers.NewGeoController(geoService)
	authController = controllers.NewAuthController(userService, configuration.JWTSecret)
	clientController = controllers.NewClientController(clientService)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			// Search
			publicApi.POST("/search/pizzas", searchController.SearchPizzas)
			publicApi.GET("/search/pizzerias", searchController.SearchPizzerias)

			// Filter metadata
			publicApi.GET("/lookups/pizza-filters", lookupController.GetPizzaFilters)

			// Catalog browsing
			publicApi.GET("/pizzas", pizzaController.GetAllPizzas)
			publicApi.GET("/pizzas/:id", pizzaController.GetPizzaByID)
			publicApi.GET("/menus/:id", menuController.GetMenu)
			publicApi.GET("/pizzerias/:id", pizzeriaController.GetPizzeria)
			publicApi.GET("/pizzerias/:id/menus", menuController.GetMenusForPizzeria)

			// Reference data
			publicApi.GET("/brands", referenceController.GetBrands)
			publicApi.GET("/brands/:id", referenceController.GetBrandByID)
			publicApi.GET("/ingredients", referenceController.GetIngredients)
			publicApi.GET("/countries", geoController.GetCountries)
			publicApi.GET("/cities", geoController.GetCities)
			publicApi.GET("/cities/:id", geoController.GetCityByID)
		}

		// Authentication routes
		authApi := v1.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
		}

		// OAuth2 endpoints for machine clients
		oauthApi := v1.Group("/oauth")
		{
			oauthApi.POST("/token", oauthService.HandleToken)
			oauthApi.GET("/authorize", oauthService.HandleAuthorize)
		}

		// Protected routes (requires JWT authentication)
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.JWTAuth())
		{
			// Catalog management for brand owners (admins pass too)
			ownerApi := protectedApi.Group("/owner")
			ownerApi.Use(middleware.RequireAnyRole(models.RoleOwner, models.RoleAdmin))
			{
				ownerApi.POST("/brands", referenceController.CreateBrand)
				ownerApi.POST("/pizzerias", pizzeriaController.CreatePizzeria)

				ownerApi.POST("/menus", menuController.CreateMenu)
				ownerApi.POST("/menus/:id/activate", menuController.ActivateMenu)
				ownerApi.DELETE("/menus/:id", menuController.DeleteMenu)

				ownerApi.POST("/pizzas", pizzaController.CreatePizza)
				ownerApi.PUT("/pizzas/:id", pizzaController.UpdatePizza)
				ownerApi.DELETE("/pizzas/:id", pizzaController.DeletePizza)

				ownerApi.POST("/ingredients", referenceController.CreateIngredient)
			}

			// Reference data and OAuth client administration
			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole(models.RoleAdmin))
			{
				adminApi.POST("/countries", geoController.CreateCountry)
				adminApi.POST("/cities", geoController.CreateCity)
				adminApi.DELETE("/ingredients/:id", referenceController.DeleteIngredient)

				adminApi.POST("/clients", clientController.CreateClient)
				adminApi.GET("/clients", clientController.ListClients)
				adminApi.DELETE("/clients/:id", clientController.DeleteClient)
			}
		}
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
		"service":   "pizza-market-api",
	})
}
