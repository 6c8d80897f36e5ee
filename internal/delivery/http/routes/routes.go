package routes

import (
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	health          *handler.HealthHandler
	dataset         *handler.DatasetHandler
	upload          *handler.UploadHandler
	recommendations *handler.RecommendationHandler
	auth            *handler.AuthHandler
	ws              *ws.Handler
	admin           *middleware.AuthMiddleware
}

type Handlers struct {
	Health          *handler.HealthHandler
	Dataset         *handler.DatasetHandler
	Upload          *handler.UploadHandler
	Recommendations *handler.RecommendationHandler
	Auth            *handler.AuthHandler
	WS              *ws.Handler
	Admin           *middleware.AuthMiddleware
}

func NewRegistry(h Handlers) *Registry {
	return &Registry{
		health:          h.Health,
		dataset:         h.Dataset,
		upload:          h.Upload,
		recommendations: h.Recommendations,
		auth:            h.Auth,
		ws:              h.WS,
		admin:           h.Admin,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	r.registerAPI(app.Group("/api"))
}

func (r *Registry) registerAPI(api fiber.Router) {
	admin := r.admin.Middleware()

	r.dataset.RegisterRoutes(api, admin)
	r.upload.RegisterRoutes(api, admin)
	r.recommendations.RegisterRoutes(api)
	r.auth.RegisterRoutes(api.Group("/auth"))
	if r.ws != nil {
		r.ws.RegisterRoutes(api)
	}
}
