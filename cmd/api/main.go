package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "skyton-backend/docs"

	"skyton-backend/internal/common/logger"
	"skyton-backend/internal/common/middleware"
	"skyton-backend/internal/config"
	adminhttp "skyton-backend/internal/features/admin/delivery/http"
	adminsvc "skyton-backend/internal/features/admin/service"
	ledgerhttp "skyton-backend/internal/features/ledger/delivery/http"
	ledgersvc "skyton-backend/internal/features/ledger/service"
	referralhttp "skyton-backend/internal/features/referral/delivery/http"
	referralsvc "skyton-backend/internal/features/referral/service"
	taskhttp "skyton-backend/internal/features/task/delivery/http"
	taskredis "skyton-backend/internal/features/task/repository/redis"
	tasksvc "skyton-backend/internal/features/task/service"
	userhttp "skyton-backend/internal/features/user/delivery/http"
	userredis "skyton-backend/internal/features/user/repository/redis"
	usersvc "skyton-backend/internal/features/user/service"
	withdrawalhttp "skyton-backend/internal/features/withdrawal/delivery/http"
	withdrawalredis "skyton-backend/internal/features/withdrawal/repository/redis"
	withdrawalsvc "skyton-backend/internal/features/withdrawal/service"
	"skyton-backend/internal/notify"
	redisplatform "skyton-backend/internal/platform/redis"
	"skyton-backend/internal/platform/telegram"
	"skyton-backend/internal/workers"
)

// @title SkyTON API
// @version 1.0
// @description Reward/task platform backend for the SkyTON Telegram mini-app.
// @BasePath /api/v1
// @securityDefinitions.apikey TelegramInitData
// @in header
// @name init_data
func main() {
	cfg := config.MustLoad()
	logger.Init("skyton-backend", cfg.Debug)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Cancellable root context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checkInLoc, err := cfg.CheckInLocation()
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.CheckInTZ).Msg("invalid check-in timezone")
	}

	rdb, err := redisplatform.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis open")
	}
	defer rdb.Close()

	tg, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("telegram bot auth")
	}

	userRepo := userredis.NewUserRepository(rdb)
	taskRepo := taskredis.NewTaskRepository(rdb)
	withdrawalRepo := withdrawalredis.NewWithdrawalRepository(rdb)
	queue := notify.NewQueue(rdb)

	userService := usersvc.NewUserService(userRepo)
	taskService := tasksvc.NewTaskService(taskRepo)
	ledgerService := ledgersvc.NewLedgerService(userRepo, taskRepo, tg, queue, checkInLoc)
	referralService := referralsvc.NewReferralService(userRepo, taskRepo, queue)
	withdrawalService := withdrawalsvc.NewWithdrawalService(withdrawalRepo, userRepo)
	adminService := adminsvc.NewAdminService(userRepo, ledgerService, withdrawalRepo, queue)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "init_data", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	api := router.Group("/api/v1")
	api.Use(
		middleware.TelegramInitData(cfg.Telegram.BotToken),
		middleware.RequireAuth(),
		middleware.CheckBanned(cfg.Telegram.AdminIDs, userService),
	)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(cfg.Telegram.AdminIDs, userService))

	userhttp.NewUserHandler(userService).RegisterRoutes(api)
	taskhttp.NewTaskHandler(taskService).RegisterRoutes(api, admin)
	ledgerhttp.NewLedgerHandler(ledgerService).RegisterRoutes(api)
	referralhttp.NewReferralHandler(referralService).RegisterRoutes(api)
	withdrawalhttp.NewWithdrawalHandler(withdrawalService).RegisterRoutes(api)
	adminhttp.NewAdminHandler(adminService, userService).RegisterRoutes(admin)

	worker := workers.NewNotifyStreamWorker(rdb, tg)
	go worker.Start(ctx)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
