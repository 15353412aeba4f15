// file: internals/features/projects/file/controller/file_controller.go
package controller

import (
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moonsys_backend/internals/constants"
	"moonsys_backend/internals/features/projects/file/dto"
	projectModel "moonsys_backend/internals/features/projects/project/model"
	helper "moonsys_backend/internals/helpers"
	helperS3 "moonsys_backend/internals/helpers/s3"
)

type FileController struct {
	DB *gorm.DB
	S3 *helperS3.S3Service
}

func NewFileController(db *gorm.DB, s3 *helperS3.S3Service) *FileController {
	return &FileController{DB: db, S3: s3}
}

func (ctrl *FileController) requireS3() error {
	if ctrl.S3 == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "S3 is not configured")
	}
	return nil
}

func (ctrl *FileController) projectExists(id uint) error {
	var count int64
	if err := ctrl.DB.Model(&projectModel.ProjectModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check project")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Project not found")
	}
	return nil
}

func normalizeCategory(category string) string {
	switch category {
	case projectModel.FileCategoryScreenshot,
		projectModel.FileCategoryDocument,
		projectModel.FileCategoryVideo:
		return category
	}
	return projectModel.FileCategoryOther
}

/* ===================== PRESIGNED UPLOAD ===================== */
// POST /api/projects/files/upload-url
func (ctrl *FileController) PresignUpload(c *fiber.Ctx) error {
	if err := ctrl.requireS3(); err != nil {
		return err
	}

	var req dto.PresignUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctrl.projectExists(req.ProjectID); err != nil {
		return err
	}

	category := normalizeCategory(req.FileCategory)
	key := helperS3.BuildObjectKey(req.ProjectID, category, req.FileName)

	uploadURL, err := ctrl.S3.PresignPut(c.UserContext(), key, req.FileType)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create upload URL")
	}

	return helper.Success(c, "OK", dto.PresignUploadResponse{
		UploadURL: uploadURL,
		FileURL:   ctrl.S3.PublicURL(key),
		FileKey:   key,
	})
}

/* ===================== CONFIRM ===================== */
// POST /api/projects/files
func (ctrl *FileController) Confirm(c *fiber.Ctx) error {
	var req dto.ConfirmUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := ctrl.projectExists(req.ProjectID); err != nil {
		return err
	}

	file := projectModel.ProjectFileModel{
		ProjectID:    req.ProjectID,
		FileName:     req.FileName,
		FileURL:      req.FileURL,
		FileKey:      req.FileKey,
		FileType:     req.FileType,
		FileSize:     req.FileSize,
		FileCategory: normalizeCategory(req.FileCategory),
	}
	if err := ctrl.DB.Create(&file).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save file metadata")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "File recorded", file)
}

/* ===================== SERVER-SIDE UPLOAD ===================== */
// POST /api/projects/files/upload (multipart)
//
// Screenshots are recompressed to WebP before they hit the bucket;
// other files are stored as-is.
func (ctrl *FileController) Upload(c *fiber.Ctx) error {
	if err := ctrl.requireS3(); err != nil {
		return err
	}

	projectID, err := strconv.Atoi(c.FormValue("project_id"))
	if err != nil || projectID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "project_id is required")
	}
	if err := ctrl.projectExists(uint(projectID)); err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "file is required")
	}

	src, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to read uploaded file")
	}

	category := c.FormValue("file_category")
	if category == "" {
		category = constants.DetectFileCategory(fh.Filename)
	}
	category = normalizeCategory(category)
	fileName := fh.Filename
	contentType := fh.Header.Get("Content-Type")

	if category == projectModel.FileCategoryScreenshot && helperS3.IsImageFilename(fileName) {
		converted, err := helperS3.ConvertToWebP(data)
		if err != nil {
			return fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format")
		}
		data = converted
		fileName = helperS3.WebPKeyName(fileName)
		contentType = "image/webp"
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := helperS3.BuildObjectKey(uint(projectID), category, fileName)
	if err := ctrl.S3.Put(c.UserContext(), key, data, contentType); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to upload file")
	}

	size := int64(len(data))
	file := projectModel.ProjectFileModel{
		ProjectID:    uint(projectID),
		FileName:     fileName,
		FileURL:      ctrl.S3.PublicURL(key),
		FileKey:      key,
		FileType:     &contentType,
		FileSize:     &size,
		FileCategory: category,
	}
	if err := ctrl.DB.Create(&file).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save file metadata")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "File uploaded", file)
}

/* ===================== DOWNLOAD LINK ===================== */
// GET /api/projects/files/:id/url
func (ctrl *FileController) DownloadURL(c *fiber.Ctx) error {
	if err := ctrl.requireS3(); err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file ID")
	}

	var file projectModel.ProjectFileModel
	if err := ctrl.DB.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "File not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch file")
	}

	url, err := ctrl.S3.PresignGet(c.UserContext(), file.FileKey, helperS3.DownloadURLTTL)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create download URL")
	}

	return helper.Success(c, "OK", fiber.Map{"url": url})
}

/* ===================== DELETE ===================== */
// DELETE /api/projects/files/:id
func (ctrl *FileController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file ID")
	}

	var file projectModel.ProjectFileModel
	if err := ctrl.DB.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "File not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch file")
	}

	if err := ctrl.DB.Delete(&file).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete file")
	}

	// The row is gone; a failed bucket delete only leaks the object.
	if ctrl.S3 != nil {
		if err := ctrl.S3.Delete(c.UserContext(), file.FileKey); err != nil {
			log.Printf("[WARN] s3 delete %s: %v", file.FileKey, err)
		}
	}

	return helper.Success(c, "File deleted", nil)
}

/* ===================== LIST ===================== */
// GET /api/projects/:id/files
func (ctrl *FileController) ListByProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid project ID")
	}

	var files []projectModel.ProjectFileModel
	q := ctrl.DB.Where("project_id = ?", id)
	if category := strings.TrimSpace(c.Query("file_category")); category != "" {
		q = q.Where("file_category = ?", category)
	}
	if err := q.Order("created_at DESC").Find(&files).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch files")
	}

	return helper.Success(c, "OK", files)
}
