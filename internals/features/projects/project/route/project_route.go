package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	projectCtrl "moonsys_backend/internals/features/projects/project/controller"
)

func ProjectRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := projectCtrl.NewProjectController(db)

	g := r.Group("/projects")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/stats", ctrl.Stats)
	g.Get("/slug/:slug", ctrl.GetBySlug)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
