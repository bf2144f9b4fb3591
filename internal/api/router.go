package api

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"energy-package-roi/internal/api/handlers"
	"energy-package-roi/internal/api/middleware"
	"energy-package-roi/internal/api/models"
	"energy-package-roi/internal/cache"
	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the HTTP API is built from. Nil Cache and
// Limiter disable those features; a nil Store falls back to memory.
type Deps struct {
	Catalog   *catalog.Catalog
	Store     store.Store
	Cache     cache.Cache
	Limiter   *middleware.RateLimiter
	StaticDir string
}

func NewRouter(d Deps) *gin.Engine {
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}
	if d.Store == nil {
		d.Store = store.NewMemory()
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	runner := handlers.NewRunner(d.Catalog, d.Cache)
	simulationHandler := handlers.NewSimulationHandler(runner)
	catalogHandler := handlers.NewCatalogHandler(d.Catalog)
	revenueHandler := handlers.NewRevenueHandler()
	scenarioHandler := handlers.NewScenarioHandler(d.Store, runner)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(d.Limiter))
	{
		api.POST("/simulate", simulationHandler.Simulate)
		api.POST("/simulate/compare", simulationHandler.Compare)

		api.GET("/estimates", revenueHandler.Estimates)
		api.GET("/revenue-models", revenueHandler.ListModels)
		api.GET("/price-patterns", revenueHandler.PricePatterns)

		api.GET("/packages", catalogHandler.ListPackages)
		api.GET("/recommend", catalogHandler.Recommend)

		api.POST("/scenarios", scenarioHandler.Create)
		api.GET("/scenarios", scenarioHandler.List)
		api.GET("/scenarios/:id", scenarioHandler.Get)
		api.PUT("/scenarios/:id", scenarioHandler.Update)
		api.DELETE("/scenarios/:id", scenarioHandler.Delete)
		api.POST("/scenarios/:id/simulate", scenarioHandler.Simulate)
	}

	serveStatic(router, d.StaticDir)
	return router
}

// serveStatic serves a built web client from dir with SPA fallback to index.html.
func serveStatic(router *gin.Engine, dir string) {
	notFound := models.ErrorResponse{Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"}}
	if dir == "" {
		router.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, notFound) })
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Printf("Static directory %s not found, skipping static file serving", dir)
		router.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, notFound) })
		return
	}

	router.Static("/assets", filepath.Join(dir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(dir, "favicon.ico"))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, notFound)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
	log.Printf("Serving static files from %s", dir)
}
