package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NavalhaStudio/barbearia-api/internal/config"
	dbpkg "github.com/NavalhaStudio/barbearia-api/internal/db"
	"github.com/NavalhaStudio/barbearia-api/internal/lock"
	"github.com/NavalhaStudio/barbearia-api/internal/routes"
	"github.com/NavalhaStudio/barbearia-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.Configure(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	locker, err := lock.NewRedisLock(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer locker.Close()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, locker, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
