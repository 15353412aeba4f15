package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taxonomyCtrl "moonsys_backend/internals/features/projects/taxonomy/controller"
)

func TaxonomyRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := taxonomyCtrl.NewTaxonomyController(db)

	categories := r.Group("/categories")
	categories.Get("/", ctrl.ListCategories)
	categories.Post("/", ctrl.CreateCategory)
	categories.Put("/:id", ctrl.UpdateCategory)
	categories.Delete("/:id", ctrl.DeleteCategory)

	tags := r.Group("/tags")
	tags.Get("/", ctrl.ListTags)
	tags.Post("/", ctrl.CreateTag)
	tags.Put("/:id", ctrl.UpdateTag)
	tags.Delete("/:id", ctrl.DeleteTag)
}
