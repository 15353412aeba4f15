// file: internals/features/projects/project/dto/project_dto.go
package dto

type TechStackInput struct {
	TechName    string  `json:"tech_name" validate:"required,max=100"`
	TechIconURL *string `json:"tech_icon_url" validate:"omitempty,url"`
	Category    string  `json:"category" validate:"omitempty,oneof=frontend backend database devops other"`
}

type TeamMemberInput struct {
	MemberName string  `json:"member_name" validate:"required,max=150"`
	Role       *string `json:"role" validate:"omitempty,max=100"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url"`
}

type CreateProjectRequest struct {
	Title            string            `json:"title" validate:"required,min=2,max=200"`
	Description      *string           `json:"description"`
	ClientName       *string           `json:"client_name" validate:"omitempty,max=150"`
	ClientLogoURL    *string           `json:"client_logo_url" validate:"omitempty,url"`
	CategoryID       *uint             `json:"category_id"`
	Status           string            `json:"status" validate:"omitempty,oneof=completed ongoing archived"`
	StartDate        *string           `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string           `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Budget           *float64          `json:"budget" validate:"omitempty,gte=0"`
	Currency         string            `json:"currency" validate:"omitempty,len=3"`
	LiveURL          *string           `json:"live_url" validate:"omitempty,url"`
	GithubURL        *string           `json:"github_url" validate:"omitempty,url"`
	DocumentationURL *string           `json:"documentation_url" validate:"omitempty,url"`
	Featured         bool              `json:"featured"`
	TagIDs           []uint            `json:"tag_ids"`
	TechStack        []TechStackInput  `json:"tech_stack" validate:"omitempty,dive"`
	TeamMembers      []TeamMemberInput `json:"team_members" validate:"omitempty,dive"`
}

// UpdateProjectRequest uses pointers throughout so absent fields stay
// untouched. Nil slices mean "leave the relation alone"; empty slices
// clear it.
type UpdateProjectRequest struct {
	Title            *string            `json:"title" validate:"omitempty,min=2,max=200"`
	Description      *string            `json:"description"`
	ClientName       *string            `json:"client_name" validate:"omitempty,max=150"`
	ClientLogoURL    *string            `json:"client_logo_url" validate:"omitempty,url"`
	CategoryID       *uint              `json:"category_id"`
	Status           *string            `json:"status" validate:"omitempty,oneof=completed ongoing archived"`
	StartDate        *string            `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          *string            `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Budget           *float64           `json:"budget" validate:"omitempty,gte=0"`
	Currency         *string            `json:"currency" validate:"omitempty,len=3"`
	LiveURL          *string            `json:"live_url" validate:"omitempty,url"`
	GithubURL        *string            `json:"github_url" validate:"omitempty,url"`
	DocumentationURL *string            `json:"documentation_url" validate:"omitempty,url"`
	Featured         *bool              `json:"featured"`
	TagIDs           *[]uint            `json:"tag_ids"`
	TechStack        *[]TechStackInput  `json:"tech_stack" validate:"omitempty,dive"`
	TeamMembers      *[]TeamMemberInput `json:"team_members" validate:"omitempty,dive"`
}

type ListProjectsRequest struct {
	CategoryID *uint   `query:"category_id"`
	Status     *string `query:"status" validate:"omitempty,oneof=completed ongoing archived"`
	Featured   *bool   `query:"featured"`
	Search     *string `query:"search" validate:"omitempty,max=200"`
	Year       *int    `query:"year" validate:"omitempty,min=2000,max=2100"`
	TagIDs     *string `query:"tag_ids"`
	SortBy     *string `query:"sort_by" validate:"omitempty,oneof=created_at title start_date budget"`
	SortOrder  *string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

type ProjectStatsResponse struct {
	TotalProjects int64 `json:"total_projects"`
	Completed     int64 `json:"completed"`
	Ongoing       int64 `json:"ongoing"`
	Archived      int64 `json:"archived"`
	TotalClients  int64 `json:"total_clients"`
}
