package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"energy-package-roi/internal/api"
	"energy-package-roi/internal/api/middleware"
	"energy-package-roi/internal/cache"
	"energy-package-roi/internal/catalog"
	"energy-package-roi/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	port := getEnv("API_PORT", "8080")
	if getEnv("API_ENV", "") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	deps := api.Deps{
		Catalog:   catalog.Default(),
		StaticDir: getEnv("STATIC_DIR", "./web/dist"),
	}

	if path := getEnv("CATALOG_FILE", ""); path != "" {
		cat, err := catalog.Load(path)
		if err != nil {
			log.Fatalf("Failed to load catalog %s: %v", path, err)
		}
		deps.Catalog = cat
		log.Printf("Loaded catalog from %s", path)
	}

	if url := getEnv("DATABASE_URL", ""); url != "" {
		pg, err := store.NewPostgres(ctx, url)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pg.Close()
		deps.Store = pg
		log.Printf("Storing scenarios in Postgres")
	} else {
		deps.Store = store.NewMemory()
		log.Printf("DATABASE_URL not set, storing scenarios in memory")
	}

	ttl := getDuration("SIM_CACHE_TTL", 10*time.Minute)
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		rc := cache.NewRedis(addr, ttl)
		if err := rc.Ping(ctx); err != nil {
			log.Printf("Redis at %s unreachable (%v), falling back to in-memory cache", addr, err)
			_ = rc.Close()
			deps.Cache = cache.NewMemory(ttl, time.Minute)
		} else {
			defer rc.Close()
			deps.Cache = rc
			log.Printf("Caching simulations in Redis at %s (ttl=%s)", addr, ttl)
		}
	} else if ttl > 0 {
		mem := cache.NewMemory(ttl, time.Minute)
		defer mem.Close()
		deps.Cache = mem
	}

	if rps := getFloat("RATE_LIMIT_RPS", 5); rps > 0 {
		deps.Limiter = middleware.NewRateLimiter(rps, getInt("RATE_LIMIT_BURST", 20))
	}

	router := api.NewRouter(deps)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
