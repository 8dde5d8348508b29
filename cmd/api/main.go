/**
* Name: 			main.go
* Description: 		CareerGenome API 서버 진입점
* Workflow: 		.env/환경변수 로드 -> 로거 -> 저장소(Mongo, 실패 시 SQLite) -> Redis(선택)
*					-> 외부 클라이언트/서비스 구성 -> gin 라우터 -> cron -> graceful shutdown
 */
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/depu2006/CareerGenomeai/docs"
	"github.com/depu2006/CareerGenomeai/internal/archiver"
	"github.com/depu2006/CareerGenomeai/internal/assistant"
	"github.com/depu2006/CareerGenomeai/internal/auth"
	"github.com/depu2006/CareerGenomeai/internal/cache"
	"github.com/depu2006/CareerGenomeai/internal/catalog"
	"github.com/depu2006/CareerGenomeai/internal/config"
	"github.com/depu2006/CareerGenomeai/internal/failure"
	"github.com/depu2006/CareerGenomeai/internal/feeds"
	"github.com/depu2006/CareerGenomeai/internal/handler"
	"github.com/depu2006/CareerGenomeai/internal/interview"
	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/logger"
	"github.com/depu2006/CareerGenomeai/internal/metrics"
	"github.com/depu2006/CareerGenomeai/internal/middleware"
	"github.com/depu2006/CareerGenomeai/internal/quiz"
	"github.com/depu2006/CareerGenomeai/internal/readiness"
	"github.com/depu2006/CareerGenomeai/internal/refdata"
	"github.com/depu2006/CareerGenomeai/internal/seeding"
	"github.com/depu2006/CareerGenomeai/internal/shocks"
	"github.com/depu2006/CareerGenomeai/internal/skillgap"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const seedLockTTL = 10 * time.Minute

// @title                       CareerGenome API
// @version                     1.0
// @description                 커리어 준비도 분석, 스킬 갭 로드맵, 모의 면접 API
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env 파일이 없어도 환경변수만으로 동작
	_ = godotenv.Load()

	cfg, cfgErr := config.Load()

	log, err := logger.New(cfg.IsDevelopment(), cfg.LogLevel, cfg.ErrorLogPath)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	if cfgErr != nil {
		log.Fatal("invalid configuration", zap.Error(cfgErr))
	}
	if cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn("JWT_SECRET_KEY not set, using the built-in development key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(ctx, cfg, log)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, continuing with in-process locks and cache", zap.Error(err))
			_ = rdb.Close()
			rdb = nil
		} else {
			defer rdb.Close()
			log.Info("connected to redis")
		}
	}

	ref := refdata.Load(cfg.RefDataDir, log)
	fc := feeds.NewClient(feeds.DefaultEndpoints(), log)
	gen := llm.NewClient(cfg.LLMBaseURL, log)
	archive := openArchive(ctx, cfg, log)

	var stt llm.Transcriber
	var tts llm.Synthesizer
	if cfg.SpeechEnabled {
		recognizer, err := llm.NewSpeechRecognizer(ctx, cfg.GoogleCredsFile, log)
		if err != nil {
			log.Fatal("failed to create speech recognizer", zap.Error(err))
		}
		defer recognizer.Close()
		synth, err := llm.NewTTSClient(ctx, cfg.GoogleCredsFile, log)
		if err != nil {
			log.Fatal("failed to create tts client", zap.Error(err))
		}
		defer synth.Close()
		stt, tts = recognizer, synth
	}

	guard := seeding.NewGuard(rdb, seedLockTTL, log)
	seeder := seeding.NewSeeder(store, gen, guard, cfg.LLMModel, cfg.LLMInterviewModel, log)
	avatar := interview.NewManager(store, cfg.SessionTTL, log)

	h := handler.New(handler.Deps{
		Store:     store,
		Tokens:    auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Quiz:      quiz.NewService(store, seeder, gen, fc, cfg.LLMModel, log),
		Readiness: readiness.NewService(ref, store, archive, log),
		Failure:   failure.NewService(store, log),
		Catalog:   catalog.NewService(ref, fc),
		SkillGap:  skillgap.NewService(ref, store, gen, cfg.LLMModel, log),
		Assistant: assistant.NewService(gen, store, cfg.LLMModel, log),
		Avatar:    avatar,
		Smart:     interview.NewSmartService(store, seeder, gen, cfg.LLMInterviewModel, log),
		Shocks:    shocks.NewService(fc, cache.New(rdb, shocks.CacheTTL, log), log),
		STT:       stt,
		TTS:       tts,
		Log:       log,
	})

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Admin-Key")
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.Register(router, handler.RouteOptions{
		AdminEnabled:   cfg.AdminEnabled,
		AdminKey:       cfg.AdminKey,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})
	if cfg.AdminEnabled && cfg.AdminKey == "" {
		log.Warn("admin collection routes are enabled without ADMIN_KEY")
	}

	scheduler := cron.New()
	if err := avatar.Schedule(scheduler); err != nil {
		log.Fatal("failed to schedule session sweep", zap.Error(err))
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	<-scheduler.Stop().Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg config.Config, log *zap.Logger) storage.Store {
	if cfg.MongoURI != "" {
		mongoCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		store, err := storage.OpenMongo(mongoCtx, cfg.MongoURI, cfg.DBName, log)
		if err == nil {
			return store
		}
		log.Warn("mongodb unavailable, falling back to sqlite", zap.Error(err))
	}
	store, err := storage.OpenSQLite(ctx, cfg.SQLitePath, log)
	if err != nil {
		log.Fatal("failed to open sqlite store", zap.Error(err))
	}
	log.Info("using sqlite store", zap.String("dsn", cfg.SQLitePath))
	return store
}

// S3 버킷 우선, 없으면 로컬 디렉터리, 둘 다 없으면 보관하지 않음
func openArchive(ctx context.Context, cfg config.Config, log *zap.Logger) archiver.Archiver {
	switch {
	case cfg.S3Bucket != "":
		a, err := archiver.NewS3Archiver(ctx, archiver.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.AWSAccessKeyID,
			SecretKey: cfg.AWSSecretKey,
		}, log)
		if err != nil {
			log.Warn("s3 archive disabled", zap.Error(err))
			return nil
		}
		return a
	case cfg.ResumeArchiveDir != "":
		a, err := archiver.NewLocalArchiver(cfg.ResumeArchiveDir, log)
		if err != nil {
			log.Warn("local archive disabled", zap.Error(err))
			return nil
		}
		return a
	}
	return nil
}
