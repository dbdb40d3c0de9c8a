package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"

	"alfredoptarigan/resume-analyzer/internal/config"
)

type Handlers struct {
	Upload   *UploadHandler
	Analyze  *AnalyzeHandler
	Match    *MatchHandler
	Search   *SearchHandler
	Feedback *FeedbackHandler
	Admin    *AdminHandler
}

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(app *fiber.App, h Handlers, admin config.AdminConfig) {
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/upload", h.Upload.HandleUpload)
	api.Post("/analyze", h.Analyze.HandleAnalyze)
	api.Post("/match", h.Match.HandleCreate)
	api.Get("/match/:id", h.Match.HandleGet)
	api.Post("/search", h.Search.HandleSearch)
	api.Post("/feedback", h.Feedback.HandleFeedback)

	adminGroup := api.Group("/admin", basicauth.New(basicauth.Config{
		Users: map[string]string{
			admin.User: admin.Password,
		},
		Realm: "Resume Analyzer Admin",
	}))
	adminGroup.Get("/analyses", h.Admin.HandleListAnalyses)
	adminGroup.Get("/feedback", h.Admin.HandleListFeedback)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/analyze",
				"POST /api/v1/match",
				"GET /api/v1/match/:id",
				"POST /api/v1/search",
				"POST /api/v1/feedback",
				"GET /api/v1/admin/analyses",
				"GET /api/v1/admin/feedback",
			},
		})
	})
}
