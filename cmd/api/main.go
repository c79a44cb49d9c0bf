package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbermap/booking-api/internal/cache"
	"github.com/barbermap/booking-api/internal/config"
	dbpkg "github.com/barbermap/booking-api/internal/db"
	"github.com/barbermap/booking-api/internal/middleware"
	"github.com/barbermap/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	store := newCache(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newCache liga o Redis quando configurado; sem ele a API continua
// funcionando com cache desativado.
func newCache(cfg *config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewNoop()
	}

	r := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.Ping(ctx); err != nil {
		log.Printf("redis unavailable (%v), falling back to noop cache", err)
		return cache.NewNoop()
	}

	return r
}
