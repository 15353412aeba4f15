// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	projectModel "moonsys_backend/internals/features/projects/project/model"
	taxonomyModel "moonsys_backend/internals/features/projects/taxonomy/model"
	slackModel "moonsys_backend/internals/features/slack/model"
)

// Migrate keeps the schema in step with the models. Safe to run on
// every boot; AutoMigrate only adds what is missing.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&slackModel.SlackMessageModel{},
		&taxonomyModel.ProjectCategoryModel{},
		&taxonomyModel.ProjectTagModel{},
		&projectModel.ProjectModel{},
		&projectModel.ProjectTechStackModel{},
		&projectModel.ProjectTeamMemberModel{},
		&projectModel.ProjectFileModel{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
