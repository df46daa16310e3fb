package main

import (
	"context"
	"log"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/seed"
	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/store"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	st, closeStore, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseTarget())
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	defer closeStore()

	auth := service.NewAuthService(st, service.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Username:  cfg.AdminUsername,
		Password:  cfg.AdminPassword,
	})

	log.Println("Seeding database with initial content...")
	report, err := seed.New(st, auth).Run(context.Background())
	if err != nil {
		closeStore()
		log.Fatalf("error during database seeding: %v", err)
	}

	log.Printf("seeding completed: admin=%t sections=%v skills=%d experiences=%d projects=%d",
		report.AdminCreated, report.Sections, report.Skills, report.Experiences, report.Projects)
}
