package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/agendaplus/salon-scheduler/internal/config"
	dbpkg "github.com/agendaplus/salon-scheduler/internal/db"
	"github.com/agendaplus/salon-scheduler/internal/logging"
	"github.com/agendaplus/salon-scheduler/internal/metrics"
	"github.com/agendaplus/salon-scheduler/internal/middleware"
	"github.com/agendaplus/salon-scheduler/internal/routes"
	"github.com/agendaplus/salon-scheduler/internal/timezone"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(cfg)
	metrics.Register()
	timezone.Configure(cfg.Timezone)

	db := dbpkg.NewDB(cfg, log)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	notifier := routes.RegisterRoutes(r, db, rdb, cfg, log)
	defer notifier.Close()

	log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
