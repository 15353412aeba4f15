// file: internals/features/projects/taxonomy/controller/taxonomy_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moonsys_backend/internals/features/projects/taxonomy/dto"
	"moonsys_backend/internals/features/projects/taxonomy/model"
	helper "moonsys_backend/internals/helpers"
)

type TaxonomyController struct {
	DB *gorm.DB
}

func NewTaxonomyController(db *gorm.DB) *TaxonomyController {
	return &TaxonomyController{DB: db}
}

/* ===================== CATEGORIES ===================== */

// GET /api/categories
func (ctrl *TaxonomyController) ListCategories(c *fiber.Ctx) error {
	var categories []model.ProjectCategoryModel
	if err := ctrl.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch categories")
	}
	return helper.Success(c, "OK", categories)
}

// POST /api/categories
func (ctrl *TaxonomyController) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:       "project_categories",
		SlugColumn:  "slug",
		DefaultBase: "category",
	}, req.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	color := req.Color
	if color == "" {
		color = model.DefaultCategoryColor
	}

	category := model.ProjectCategoryModel{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Color:       color,
	}
	if err := ctrl.DB.Create(&category).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create category")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Category created", category)
}

// PUT /api/categories/:id
func (ctrl *TaxonomyController) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var category model.ProjectCategoryModel
	if err := ctrl.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch category")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
			Table:       "project_categories",
			SlugColumn:  "slug",
			DefaultBase: "category",
		}, *req.Name)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
		}
		updates["name"] = *req.Name
		updates["slug"] = slug
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&category).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update category")
		}
	}

	return helper.Success(c, "Category updated", category)
}

// DELETE /api/categories/:id
func (ctrl *TaxonomyController) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category ID")
	}

	if err := ctrl.DB.Delete(&model.ProjectCategoryModel{}, id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete category")
	}
	return helper.Success(c, "Category deleted", nil)
}

/* ===================== TAGS ===================== */

// GET /api/tags
func (ctrl *TaxonomyController) ListTags(c *fiber.Ctx) error {
	var tags []model.ProjectTagModel
	if err := ctrl.DB.Order("name ASC").Find(&tags).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tags")
	}
	return helper.Success(c, "OK", tags)
}

// POST /api/tags
func (ctrl *TaxonomyController) CreateTag(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:       "project_tags",
		SlugColumn:  "slug",
		DefaultBase: "tag",
	}, req.Name)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	color := req.Color
	if color == "" {
		color = model.DefaultTagColor
	}

	tag := model.ProjectTagModel{Name: req.Name, Slug: slug, Color: color}
	if err := ctrl.DB.Create(&tag).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create tag")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Tag created", tag)
}

// PUT /api/tags/:id
func (ctrl *TaxonomyController) UpdateTag(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tag ID")
	}

	var req dto.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var tag model.ProjectTagModel
	if err := ctrl.DB.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tag not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tag")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
			Table:       "project_tags",
			SlugColumn:  "slug",
			DefaultBase: "tag",
		}, *req.Name)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
		}
		updates["name"] = *req.Name
		updates["slug"] = slug
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&tag).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update tag")
		}
	}

	return helper.Success(c, "Tag updated", tag)
}

// DELETE /api/tags/:id
func (ctrl *TaxonomyController) DeleteTag(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid tag ID")
	}

	if err := ctrl.DB.Delete(&model.ProjectTagModel{}, id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete tag")
	}
	return helper.Success(c, "Tag deleted", nil)
}
