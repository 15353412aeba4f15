// file: internals/features/projects/project/controller/project_controller.go
package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moonsys_backend/internals/features/projects/project/dto"
	"moonsys_backend/internals/features/projects/project/model"
	taxonomyModel "moonsys_backend/internals/features/projects/taxonomy/model"
	helper "moonsys_backend/internals/helpers"
)

type ProjectController struct {
	DB *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{DB: db}
}

func parseTagIDs(csv string) []uint {
	var ids []uint
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseUint(part, 10, 32); err == nil && id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return ids
}

/* ===================== LIST ===================== */
// GET /api/projects
func (ctrl *ProjectController) List(c *fiber.Ctx) error {
	var req dto.ListProjectsRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	q := ctrl.DB.Model(&model.ProjectModel{})

	if req.CategoryID != nil {
		q = q.Where("category_id = ?", *req.CategoryID)
	}
	if req.Status != nil {
		q = q.Where("status = ?", *req.Status)
	}
	if req.Featured != nil {
		q = q.Where("featured = ?", *req.Featured)
	}
	if req.Search != nil && *req.Search != "" {
		term := "%" + *req.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR client_name LIKE ?", term, term, term)
	}
	if req.Year != nil {
		q = q.Where("YEAR(start_date) = ?", *req.Year)
	}
	if req.TagIDs != nil {
		if ids := parseTagIDs(*req.TagIDs); len(ids) > 0 {
			q = q.Where("id IN (SELECT project_id FROM project_tag_relations WHERE tag_id IN ?)", ids)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count projects")
	}

	sortBy := "created_at"
	if req.SortBy != nil {
		sortBy = *req.SortBy
	}
	sortOrder := "DESC"
	if req.SortOrder != nil && strings.EqualFold(*req.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	paging := helper.ResolvePaging(c, 10, 100)

	var projects []model.ProjectModel
	err := q.
		Preload("Category").
		Preload("Tags").
		Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&projects).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch projects")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(projects)

	return helper.Success(c, "OK", fiber.Map{
		"projects":   projects,
		"total":      total,
		"pagination": pagination,
	})
}

func (ctrl *ProjectController) loadProject(query string, args ...interface{}) (*model.ProjectModel, error) {
	var project model.ProjectModel
	err := ctrl.DB.
		Preload("Category").
		Preload("Tags").
		Preload("TechStack").
		Preload("TeamMembers").
		Preload("Files", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where(query, args...).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

/* ===================== DETAIL ===================== */
// GET /api/projects/:id
func (ctrl *ProjectController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project ID")
	}

	project, err := ctrl.loadProject("id = ?", id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch project")
	}
	return helper.Success(c, "OK", project)
}

// GET /api/projects/slug/:slug
func (ctrl *ProjectController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Slug is required")
	}

	project, err := ctrl.loadProject("slug = ?", slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch project")
	}
	return helper.Success(c, "OK", project)
}

/* ===================== CREATE ===================== */
// POST /api/projects
func (ctrl *ProjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:       "projects",
		SlugColumn:  "slug",
		DefaultBase: "project",
	}, req.Title)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	status := req.Status
	if status == "" {
		status = model.StatusCompleted
	}
	currency := req.Currency
	if currency == "" {
		currency = "PKR"
	}

	project := model.ProjectModel{
		Title:            req.Title,
		Slug:             slug,
		Description:      req.Description,
		ClientName:       req.ClientName,
		ClientLogoURL:    req.ClientLogoURL,
		CategoryID:       req.CategoryID,
		Status:           status,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Budget:           req.Budget,
		Currency:         currency,
		LiveURL:          req.LiveURL,
		GithubURL:        req.GithubURL,
		DocumentationURL: req.DocumentationURL,
		Featured:         req.Featured,
		TechStack:        buildTechStack(req.TechStack),
		TeamMembers:      buildTeamMembers(req.TeamMembers),
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		if len(req.TagIDs) > 0 {
			tags := tagRefs(req.TagIDs)
			if err := tx.Model(&project).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create project")
	}

	created, err := ctrl.loadProject("id = ?", project.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch created project")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Project created", created)
}

/* ===================== UPDATE ===================== */
// PUT /api/projects/:id
func (ctrl *ProjectController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project ID")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var project model.ProjectModel
	if err := ctrl.DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch project")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
		// The numeric suffix keeps renames collision-free without a
		// second uniqueness scan.
		updates["slug"] = helper.GenerateSlug(*req.Title) + "-" + strconv.Itoa(id)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientLogoURL != nil {
		updates["client_logo_url"] = *req.ClientLogoURL
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.LiveURL != nil {
		updates["live_url"] = *req.LiveURL
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	if req.DocumentationURL != nil {
		updates["documentation_url"] = *req.DocumentationURL
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&project).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.TagIDs != nil {
			tags := tagRefs(*req.TagIDs)
			if err := tx.Model(&project).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}

		if req.TechStack != nil {
			if err := tx.Where("project_id = ?", project.ID).Delete(&model.ProjectTechStackModel{}).Error; err != nil {
				return err
			}
			stack := buildTechStack(*req.TechStack)
			for i := range stack {
				stack[i].ProjectID = project.ID
			}
			if len(stack) > 0 {
				if err := tx.Create(&stack).Error; err != nil {
					return err
				}
			}
		}

		if req.TeamMembers != nil {
			if err := tx.Where("project_id = ?", project.ID).Delete(&model.ProjectTeamMemberModel{}).Error; err != nil {
				return err
			}
			members := buildTeamMembers(*req.TeamMembers)
			for i := range members {
				members[i].ProjectID = project.ID
			}
			if len(members) > 0 {
				if err := tx.Create(&members).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update project")
	}

	updated, err := ctrl.loadProject("id = ?", project.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch updated project")
	}
	return helper.Success(c, "Project updated", updated)
}

/* ===================== DELETE ===================== */
// DELETE /api/projects/:id
func (ctrl *ProjectController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project ID")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectTechStackModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectTeamMemberModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectFileModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM project_tag_relations WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProjectModel{}, id).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete project")
	}

	return helper.Success(c, "Project deleted", nil)
}

/* ===================== STATS ===================== */
// GET /api/projects/stats
func (ctrl *ProjectController) Stats(c *fiber.Ctx) error {
	var stats dto.ProjectStatsResponse
	err := ctrl.DB.Model(&model.ProjectModel{}).
		Select(`
			COUNT(*) AS total_projects,
			SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END) AS completed,
			SUM(CASE WHEN status = 'ongoing' THEN 1 ELSE 0 END) AS ongoing,
			SUM(CASE WHEN status = 'archived' THEN 1 ELSE 0 END) AS archived,
			COUNT(DISTINCT client_name) AS total_clients`).
		Scan(&stats).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch project stats")
	}
	return helper.Success(c, "OK", stats)
}

/* ===================== BUILDERS ===================== */

func buildTechStack(in []dto.TechStackInput) []model.ProjectTechStackModel {
	out := make([]model.ProjectTechStackModel, 0, len(in))
	for _, t := range in {
		category := t.Category
		if category == "" {
			category = model.TechCategoryOther
		}
		out = append(out, model.ProjectTechStackModel{
			TechName:    t.TechName,
			TechIconURL: t.TechIconURL,
			Category:    category,
		})
	}
	return out
}

func buildTeamMembers(in []dto.TeamMemberInput) []model.ProjectTeamMemberModel {
	out := make([]model.ProjectTeamMemberModel, 0, len(in))
	for _, m := range in {
		out = append(out, model.ProjectTeamMemberModel{
			MemberName: m.MemberName,
			Role:       m.Role,
			AvatarURL:  m.AvatarURL,
		})
	}
	return out
}

func tagRefs(ids []uint) []taxonomyModel.ProjectTagModel {
	tags := make([]taxonomyModel.ProjectTagModel, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, taxonomyModel.ProjectTagModel{ID: id})
	}
	return tags
}
