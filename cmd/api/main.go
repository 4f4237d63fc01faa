package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	cachepkg "github.com/vitalcare/clinic-api/internal/cache"
	"github.com/vitalcare/clinic-api/internal/config"
	dbpkg "github.com/vitalcare/clinic-api/internal/db"
	"github.com/vitalcare/clinic-api/internal/middleware"
	"github.com/vitalcare/clinic-api/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	cch, err := cachepkg.New(cfg.RedisURL, 5*time.Minute)
	if err != nil {
		log.Printf("redis disabled: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cch, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
