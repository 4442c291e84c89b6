package app

import (
	"context"
	"fmt"
	"strings"

	"hiring-intel/internal/config"
	"hiring-intel/internal/delivery/http/handler"
	"hiring-intel/internal/delivery/http/middleware"
	"hiring-intel/internal/delivery/http/routes"
	v1 "hiring-intel/internal/delivery/http/routes/v1"
	"hiring-intel/internal/pkg/logger"
	"hiring-intel/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	newRegistry(c).Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and the HTTP app. The websocket hub runs
// until ctx is done; cleanup closes the container.
func Bootstrap(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run(ctx)

	return New(c), c.Close, nil
}

// registerGlobalMiddleware installs access log and metrics ahead of the error
// middleware so both see the status code the error middleware wrote.
func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	log := logger.OrNop(c.Logger)
	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewMetricsMiddleware(c.Metrics).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func newRegistry(c *Container) *routes.Registry {
	var cachePinger handler.Pinger
	if c.Cache.Available() {
		cachePinger = c.Cache
	}

	return routes.NewRegistry(
		handler.NewHealthHandler(c.DB, cachePinger),
		ws.NewHandler(c.Hub),
		c.Metrics.Handler(),
		v1.Handlers{
			Candidates: handler.NewCandidateHandler(c.CandidateUsecase),
			Jobs:       handler.NewJobHandler(c.JobUsecase),
			Matches:    handler.NewMatchHandler(c.MatchUsecase),
			Recruiters: handler.NewRecruiterHandler(c.RecruiterUsecase),
		},
	)
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
