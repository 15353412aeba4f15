// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	taxonomyModel "moonsys_backend/internals/features/projects/taxonomy/model"
	helper "moonsys_backend/internals/helpers"
)

// RunAllSeeds fills empty lookup tables with sensible defaults so a
// fresh install has something to categorize projects with.
func RunAllSeeds(db *gorm.DB) {
	seedCategories(db)
	seedTags(db)
}

var defaultCategories = []struct {
	Name        string
	Description string
}{
	{"Web Development", "Websites, portals and dashboards"},
	{"Mobile Development", "iOS and Android apps"},
	{"DevOps & Infrastructure", "CI/CD, hosting and cloud setup"},
	{"Design", "Branding and UI/UX work"},
}

var defaultTags = []string{
	"React", "Next.js", "Node.js", "Go", "MySQL", "AWS",
}

func seedCategories(db *gorm.DB) {
	var count int64
	if err := db.Model(&taxonomyModel.ProjectCategoryModel{}).Count(&count).Error; err != nil {
		log.Printf("⚠️ Seed categories count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for _, c := range defaultCategories {
		desc := c.Description
		category := taxonomyModel.ProjectCategoryModel{
			Name:        c.Name,
			Slug:        helper.GenerateSlug(c.Name),
			Description: &desc,
			Color:       taxonomyModel.DefaultCategoryColor,
		}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("⚠️ Seed category %q failed: %v", c.Name, err)
		}
	}
	log.Println("✅ Seeded default project categories.")
}

func seedTags(db *gorm.DB) {
	var count int64
	if err := db.Model(&taxonomyModel.ProjectTagModel{}).Count(&count).Error; err != nil {
		log.Printf("⚠️ Seed tags count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for _, name := range defaultTags {
		tag := taxonomyModel.ProjectTagModel{
			Name:  name,
			Slug:  helper.GenerateSlug(name),
			Color: taxonomyModel.DefaultTagColor,
		}
		if err := db.Create(&tag).Error; err != nil {
			log.Printf("⚠️ Seed tag %q failed: %v", name, err)
		}
	}
	log.Println("✅ Seeded default project tags.")
}
