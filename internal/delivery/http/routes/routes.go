package routes

import (
	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/handler"
	"github.com/robinlwong/tech-talent-radar/internal/delivery/http/middleware"
	"github.com/robinlwong/tech-talent-radar/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler onto the app. Construction happens in the
// container; this package only knows about paths and route grouping.
type Registry struct {
	Health         *handler.HealthHandler
	Auth           *handler.AuthHandler
	Skill          *handler.SkillHandler
	Job            *handler.JobHandler
	Recommendation *handler.RecommendationHandler
	Corpus         *handler.CorpusHandler

	AuthMw *middleware.AuthMiddleware
	WS     *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	v1 := api.Group("/v1")

	if r.Auth != nil {
		r.Auth.RegisterRoutes(v1.Group("/auth"))
	}
	if r.Skill != nil {
		r.Skill.RegisterRoutes(v1)
	}
	if r.Job != nil {
		r.Job.RegisterRoutes(v1)
	}
	if r.Recommendation != nil {
		r.Recommendation.RegisterRoutes(v1)
	}

	if r.Corpus != nil && r.AuthMw != nil {
		protected := v1.Group("", r.AuthMw.Middleware())
		r.Corpus.RegisterRoutes(protected)
	}

	if r.WS != nil {
		app.Get("/ws/updates", r.WS.HandleUpdatesWS)
	}
}
