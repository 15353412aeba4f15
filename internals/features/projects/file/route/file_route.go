package route

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fileCtrl "moonsys_backend/internals/features/projects/file/controller"
	helperS3 "moonsys_backend/internals/helpers/s3"
)

func FileRoutes(r fiber.Router, db *gorm.DB) {
	var s3 *helperS3.S3Service
	if helperS3.IsConfigured() {
		svc, err := helperS3.NewS3ServiceFromEnv(context.Background())
		if err != nil {
			log.Printf("⚠️ S3 init failed, file uploads disabled: %v", err)
		} else {
			s3 = svc
		}
	} else {
		log.Println("⚠️ AWS credentials not set, file uploads disabled")
	}

	ctrl := fileCtrl.NewFileController(db, s3)

	files := r.Group("/projects/files")
	files.Post("/upload-url", ctrl.PresignUpload)
	files.Post("/upload", ctrl.Upload)
	files.Post("/", ctrl.Confirm)
	files.Get("/:id/url", ctrl.DownloadURL)
	files.Delete("/:id", ctrl.Delete)

	r.Get("/projects/:id/files", ctrl.ListByProject)
}
