// file: internals/features/projects/project/model/project_model.go
package model

import (
	"time"

	taxonomyModel "moonsys_backend/internals/features/projects/taxonomy/model"
)

const (
	StatusCompleted = "completed"
	StatusOngoing   = "ongoing"
	StatusArchived  = "archived"
)

const (
	TechCategoryFrontend = "frontend"
	TechCategoryBackend  = "backend"
	TechCategoryDatabase = "database"
	TechCategoryDevops   = "devops"
	TechCategoryOther    = "other"
)

const (
	FileCategoryScreenshot = "screenshot"
	FileCategoryDocument   = "document"
	FileCategoryVideo      = "video"
	FileCategoryOther      = "other"
)

type ProjectModel struct {
	ID               uint     `gorm:"primaryKey" json:"id"`
	Title            string   `gorm:"size:200;not null" json:"title"`
	Slug             string   `gorm:"size:220;uniqueIndex;not null" json:"slug"`
	Description      *string  `gorm:"type:text" json:"description,omitempty"`
	ClientName       *string  `gorm:"size:150" json:"client_name,omitempty"`
	ClientLogoURL    *string  `gorm:"size:500" json:"client_logo_url,omitempty"`
	CategoryID       *uint    `gorm:"index" json:"category_id,omitempty"`
	Status           string   `gorm:"size:20;not null;default:'completed'" json:"status"`
	StartDate        *string  `gorm:"type:date" json:"start_date,omitempty"`
	EndDate          *string  `gorm:"type:date" json:"end_date,omitempty"`
	Budget           *float64 `gorm:"type:decimal(14,2)" json:"budget,omitempty"`
	Currency         string   `gorm:"size:8;not null;default:'PKR'" json:"currency"`
	LiveURL          *string  `gorm:"size:500" json:"live_url,omitempty"`
	GithubURL        *string  `gorm:"size:500" json:"github_url,omitempty"`
	DocumentationURL *string  `gorm:"size:500" json:"documentation_url,omitempty"`
	Featured         bool     `gorm:"not null;default:false" json:"featured"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Category    *taxonomyModel.ProjectCategoryModel `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags        []taxonomyModel.ProjectTagModel     `gorm:"many2many:project_tag_relations;joinForeignKey:project_id;joinReferences:tag_id" json:"tags,omitempty"`
	TechStack   []ProjectTechStackModel             `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tech_stack,omitempty"`
	TeamMembers []ProjectTeamMemberModel            `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"team_members,omitempty"`
	Files       []ProjectFileModel                  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"files,omitempty"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

type ProjectTechStackModel struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProjectID   uint    `gorm:"index;not null" json:"project_id"`
	TechName    string  `gorm:"size:100;not null" json:"tech_name"`
	TechIconURL *string `gorm:"size:500" json:"tech_icon_url,omitempty"`
	Category    string  `gorm:"size:20;not null;default:'other'" json:"category"`
}

func (ProjectTechStackModel) TableName() string {
	return "project_tech_stack"
}

type ProjectTeamMemberModel struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ProjectID  uint    `gorm:"index;not null" json:"project_id"`
	MemberName string  `gorm:"size:150;not null" json:"member_name"`
	Role       *string `gorm:"size:100" json:"role,omitempty"`
	AvatarURL  *string `gorm:"size:500" json:"avatar_url,omitempty"`
}

func (ProjectTeamMemberModel) TableName() string {
	return "project_team_members"
}

type ProjectFileModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"index;not null" json:"project_id"`
	FileName     string    `gorm:"size:255;not null" json:"file_name"`
	FileURL      string    `gorm:"size:600;not null" json:"file_url"`
	FileKey      string    `gorm:"size:600;not null" json:"file_key"`
	FileType     *string   `gorm:"size:100" json:"file_type,omitempty"`
	FileSize     *int64    `json:"file_size,omitempty"`
	FileCategory string    `gorm:"size:20;not null;default:'other'" json:"file_category"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProjectFileModel) TableName() string {
	return "project_files"
}
