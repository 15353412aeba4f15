// file: internals/features/projects/taxonomy/model/taxonomy_model.go
package model

import "time"

const (
	DefaultCategoryColor = "#6366f1"
	DefaultTagColor      = "#10b981"
)

type ProjectCategoryModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Color       string    `gorm:"size:16;not null;default:'#6366f1'" json:"color"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProjectCategoryModel) TableName() string {
	return "project_categories"
}

type ProjectTagModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Color     string    `gorm:"size:16;not null;default:'#10b981'" json:"color"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProjectTagModel) TableName() string {
	return "project_tags"
}
