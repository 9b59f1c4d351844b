package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/DennisSalmazs/project-service/config"
	"github.com/DennisSalmazs/project-service/internal/auth"
	"github.com/DennisSalmazs/project-service/internal/bootstrap"
	"github.com/DennisSalmazs/project-service/internal/events"
	cronjob "github.com/DennisSalmazs/project-service/internal/projects/cron"
	"github.com/DennisSalmazs/project-service/internal/projects/repository"
	"github.com/DennisSalmazs/project-service/internal/projects/service"
	"github.com/DennisSalmazs/project-service/internal/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	db, err := bootstrap.OpenDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	var authClient *fbauth.Client
	if cfg.Auth.Mode == "firebase" {
		authClient, err = auth.InitializeFirebase(&cfg.Auth)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	} else {
		log.Println("AUTH_MODE=header: trusting X-User-Id / X-User-Roles headers")
	}

	repo := repository.NewProjectRepository(db)

	taskClient := tasks.NewClient(cfg.TaskService.BaseURL, tasks.Options{
		Timeout:   cfg.TaskService.Timeout,
		RateLimit: cfg.TaskService.RateLimit,
		Burst:     cfg.TaskService.Burst,
	})
	gateway := tasks.NewCachedGateway(taskClient, rdb, 0)

	publisher := events.NewPublisher(rdb)

	projectService := service.NewProjectService(repo, gateway, publisher)

	cronjob.NewScheduler(repo, gateway, cfg.Cron.CountsRefreshSpec).Start()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "project-service",
		Version:     cfg.App.Version,
		AuthMode:    cfg.Auth.Mode,
		AuthClient:  authClient,
		DB:          db,
		Redis:       rdb,
		Projects:    projectService,
	})

	log.Printf("project-service listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
