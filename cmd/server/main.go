package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/handler"
	"github.com/devfolio/internal/router"
	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	st, closeStore, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseTarget())
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer closeStore()

	auth := service.NewAuthService(st, service.AuthConfig{
		LegacyToken: cfg.AdminToken,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.AdminTokenTTL,
		Username:    cfg.AdminUsername,
		Password:    cfg.AdminPassword,
	})
	if created, err := auth.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	} else if created {
		log.Printf("created admin user %q", cfg.AdminUsername)
	}
	if cfg.AdminToken != "" {
		log.Printf("warning: legacy shared admin token is enabled; set ADMIN_TOKEN=- to disable it")
	}

	var repoCache service.RepoCache
	if cfg.RedisURL != "" {
		redisCache, err := service.NewRedisRepoCache(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to configure redis: %v", err)
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Printf("redis unavailable, using in-process cache: %v", err)
			redisCache.Close()
		} else {
			repoCache = redisCache
			defer redisCache.Close()
		}
		cancel()
	}

	api := handler.NewAPI(handler.Services{
		Content:     service.NewContentService(st),
		Skills:      service.NewSkillService(st),
		Experiences: service.NewExperienceService(st),
		Projects:    service.NewProjectService(st),
		Messages:    service.NewMessageService(st),
		Auth:        auth,
		Repos:       service.NewRepoService(cfg.GitHubToken, cfg.GitHubUsername, repoCache),
		Uploads:     service.NewUploadService(cfg.UploadDir, cfg.UploadURLPath),
	})

	// 设置 Gin 路由并包上 CORS
	r := router.SetupRouter(api, router.Options{
		SessionSecret: cfg.SessionSecret,
		SecureCookie:  cfg.GinMode == gin.ReleaseMode,
	})
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "If-None-Match"},
		ExposedHeaders:   []string{"ETag"},
		AllowCredentials: true,
	}).Handler(r)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}
