package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	appcontext "github.com/renovalte/renovalte/internal/app_context"
	"github.com/renovalte/renovalte/internal/auth"
	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/controller"
	"github.com/renovalte/renovalte/internal/database"
	"github.com/renovalte/renovalte/internal/env"
	"github.com/renovalte/renovalte/internal/mailer"
	"github.com/renovalte/renovalte/internal/middleware"
	"github.com/renovalte/renovalte/internal/plan"
	ratelimiter "github.com/renovalte/renovalte/internal/rate_limiter"
	"github.com/renovalte/renovalte/internal/repository"
	"github.com/renovalte/renovalte/internal/route"
	"github.com/renovalte/renovalte/internal/service"
	"github.com/renovalte/renovalte/internal/storage"
	"github.com/renovalte/renovalte/internal/util"
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

	s3, err := storage.NewMinioClient(&cfg.Minio)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger, s3)
	letterStore := storage.NewMinioOfferLetterStore(s3, cfg.Minio.BUCKET)
	app := appcontext.Application{
		Config:        &cfg,
		Repository:    repo,
		Logger:        logger,
		Mailer:        mail,
		JWTService:    jwtService,
		Invitation:    service.NewInvitationService(repo, mail, &cfg, logger),
		Submission:    service.NewOfferSubmissionService(repo, letterStore, logger),
		PlanGenerator: plan.NewGeminiClient(cfg.Gemini, logger),
		LetterStore:   letterStore,
		S3:            s3,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetHTMLTemplate(controller.LoadHTMLTemplates())

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	if cfg.RateLimiter.Enabled {
		r.Use(_middleware.RateLimiterMiddleware)
	}

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)
	r.GET("/healthz", _controller.Index.Healthcheck)

	route.Upload(r, _controller.Upload)

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth, _middleware)
	route.V1_Contractors(rApi, _controller.Contractor, _controller.Invitation, _middleware)
	route.V1_Projects(rApi, _controller.Project, _middleware)
	route.V1_Renovation(rApi, _controller.Plan, _middleware)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
