package app

import (
	"context"
	"fmt"
	"strings"

	"skill-gap/internal/config"
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/delivery/http/routes"
	"skill-gap/internal/logging"
	"skill-gap/internal/ws"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// multipartOverhead leaves room for boundaries and headers around an upload.
const multipartOverhead = 1 << 20

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:     cfg.App.AppName,
		BodyLimit:   cfg.Data.MaxUploadBytes + multipartOverhead,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	registerGlobalMiddleware(f, cfg)
	registerRoutes(f, cfg, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, cfg config.Config) {
	accessLog := middleware.NewAccessLogMiddleware(logging.WithComponent("http"))
	errMw := middleware.NewErrorMiddleware(logging.WithComponent("http"))

	app.Use(accessLog.Middleware())
	app.Use(errMw.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: splitOrigins(cfg.App.CORSAllowOrigins),
		AllowHeaders: []string{fiber.HeaderContentType, fiber.HeaderAuthorization, middleware.HeaderRequestID},
	}))
}

func registerRoutes(app *fiber.App, cfg config.Config, c *Container) {
	checks := map[string]handler.HealthCheck{}
	if cfg.Redis.Enabled {
		checks["redis"] = c.Cache.Ping
	}
	if c.DB != nil {
		checks["postgres"] = c.DB.Ping
	}

	reg := routes.NewRegistry(routes.Handlers{
		Health:          handler.NewHealthHandler(checks),
		Dataset:         handler.NewDatasetHandler(c.Dataset),
		Upload:          handler.NewUploadHandler(c.Dataset, cfg.Data.MaxUploadBytes),
		Recommendations: handler.NewRecommendationHandler(c.Recommendations),
		Auth:            handler.NewAuthHandler(c.Auth),
		WS:              ws.NewHandler(c.Hub, logging.WithComponent("ws")),
		Admin:           middleware.NewAuthMiddleware(c.JWT),
	})
	reg.Register(app)
}

func splitOrigins(raw string) []string {
	out := make([]string, 0, 1)
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = append(out, "*")
	}
	return out
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
