package api

import (
	"weekpulse/internal/auth"
	"weekpulse/internal/database"

	"github.com/gofiber/fiber/v2"
)

// Options carries the dependencies the route handlers close over.
type Options struct {
	DB       database.DB
	Tokens   *auth.TokenManager
	Limiter  *auth.Limiter
	Password string
}

func SetupRoutes(app *fiber.App, opts Options) {
	db := opts.DB
	api := app.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", LoginHandler(opts.Limiter, opts.Tokens, opts.Password))
	authGroup.Get("/verify", AuthMiddleware(opts.Tokens), VerifyHandler())

	// Public blog routes. /themes must be registered before /:id.
	api.Get("/blog-posts", ListBlogPostsHandler(db))
	api.Get("/blog-posts/themes", ListBlogThemesHandler(db))
	api.Get("/blog-posts/:id", GetBlogPostHandler(db))
	api.Get("/blog-posts/:id/votes", GetVotesHandler(db))
	api.Get("/blog-posts/:id/my-vote", GetMyVoteHandler(db))
	api.Post("/blog-posts/:id/vote", SubmitVoteHandler(db))
	api.Delete("/blog-posts/:id/vote", RemoveVoteHandler(db))

	// Protected routes
	protected := api.Group("/", AuthMiddleware(opts.Tokens))

	tasks := protected.Group("/scheduled-tasks")
	tasks.Get("/", ListTasksHandler(db))
	tasks.Post("/", CreateTaskHandler(db))
	tasks.Put("/:id", UpdateTaskHandler(db))
	tasks.Delete("/:id", DeleteTaskHandler(db))

	events := protected.Group("/events")
	events.Get("/", ListEventsHandler(db))
	events.Post("/", CreateEventHandler(db))
	events.Put("/:id", UpdateEventHandler(db))
	events.Delete("/:id", DeleteEventHandler(db))

	goals := protected.Group("/weekly-goals")
	goals.Get("/:weekStart", ListGoalsHandler(db))
	goals.Post("/", CreateGoalHandler(db))
	goals.Put("/:id", UpdateGoalHandler(db))
	goals.Delete("/:id", DeleteGoalHandler(db))

	notes := protected.Group("/pulse-notes")
	notes.Get("/", ListNotesHandler(db))
	notes.Post("/", CreateNoteHandler(db))
	notes.Delete("/:id", DeleteNoteHandler(db))

	templates := protected.Group("/templates")
	templates.Get("/", ListTemplatesHandler(db))
	templates.Get("/:id", GetTemplateHandler(db))
	templates.Post("/", CreateTemplateHandler(db))
	templates.Delete("/:id", DeleteTemplateHandler(db))
	templates.Post("/:id/tasks", AddTemplateTaskHandler(db))
	templates.Post("/:id/apply", ApplyTemplateHandler(db))

	templateTasks := protected.Group("/template-tasks")
	templateTasks.Put("/:id", UpdateTemplateTaskHandler(db))
	templateTasks.Delete("/:id", DeleteTemplateTaskHandler(db))

	reflections := protected.Group("/reflections")
	reflections.Get("/", ListReflectionsHandler(db))
	reflections.Post("/", CreateReflectionHandler(db))

	protected.Get("/week-view", WeekViewHandler(db))

	protected.Get("/blog-posts-all", ListAllBlogPostsHandler(db))
	protected.Post("/blog-posts", CreateBlogPostHandler(db))
	protected.Put("/blog-posts/:id", UpdateBlogPostHandler(db))
	protected.Delete("/blog-posts/:id", DeleteBlogPostHandler(db))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
