package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/piddash/pidgen/internal/app_context"
	"github.com/piddash/pidgen/internal/auth"
	"github.com/piddash/pidgen/internal/config"
	"github.com/piddash/pidgen/internal/controller"
	"github.com/piddash/pidgen/internal/database"
	"github.com/piddash/pidgen/internal/env"
	"github.com/piddash/pidgen/internal/mailer"
	"github.com/piddash/pidgen/internal/middleware"
	ratelimiter "github.com/piddash/pidgen/internal/rate_limiter"
	"github.com/piddash/pidgen/internal/refcache"
	"github.com/piddash/pidgen/internal/repository"
	"github.com/piddash/pidgen/internal/route"
	"github.com/piddash/pidgen/internal/util"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.ADDR,
		Password: cfg.Redis.PASSWORD,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("Error connecting to redis")
		logger.Panic(err)
	}
	defer redisClient.Close()
	logger.Info("Redis connected \n")

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, jwtService)

	refCache := refcache.NewCache(redisClient, repository.NewReferenceLoader(repo), cfg.Redis.ReferenceTTL, logger)
	if err := refCache.Refresh(context.Background()); err != nil {
		// The dashboard stays gated until the first successful refresh, so a
		// cold start with the database up but redis lagging is not fatal.
		logger.Errorf("Initial reference cache refresh failed: %v", err)
	}

	refreshCron := cron.New()
	if _, err := refreshCron.AddFunc("@every 15m", func() {
		if err := refCache.Refresh(context.Background()); err != nil {
			logger.Errorf("Scheduled reference cache refresh failed: %v", err)
		}
	}); err != nil {
		logger.Panic(err)
	}
	refreshCron.Start()
	defer refreshCron.Stop()

	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		RefCache:   refCache,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RequestIdMiddleware)
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth)
	route.V1_Me(rApi, _controller.User, _middleware)
	route.V1_Projects(rApi, _controller.Project, _middleware)
	route.V1_CoreProjects(rApi, _controller.CoreProject, _middleware)
	route.V1_References(rApi, _controller.Reference, _middleware)
	route.V1_Users(rApi, _controller.User, _middleware)
	route.V1_Roles(rApi, _controller.Role, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
