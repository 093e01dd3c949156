package app

import (
	"fmt"
	"strings"

	"github.com/robinlwong/tech-talent-radar/internal/config"
	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/handler"
	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/middleware"
	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/routes"
	"github.com/robinlwong/tech-talent-radar/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(container.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	registry := &routes.Registry{
		Health:         handler.NewHealthHandler(cfg.App.AppName),
		Auth:           handler.NewAuthHandler(container.AuthUC),
		Skill:          handler.NewSkillHandler(container.SkillUC),
		Job:            handler.NewJobHandler(container.JobListUC),
		Recommendation: handler.NewRecommendationHandler(container.RecommendationUC),
		Corpus:         handler.NewCorpusHandler(container.CorpusUC),
		AuthMw:         middleware.NewAuthMiddleware(container.JWT),
		WS:             ws.NewHandler(container.Hub, container.Logger),
	}
	registry.Register(f)

	go container.Hub.Run()

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
