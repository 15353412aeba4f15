// file: internals/features/projects/file/dto/file_dto.go
package dto

type PresignUploadRequest struct {
	ProjectID    uint   `json:"project_id" validate:"required"`
	FileName     string `json:"file_name" validate:"required,max=255"`
	FileType     string `json:"file_type" validate:"required,max=100"`
	FileCategory string `json:"file_category" validate:"omitempty,oneof=screenshot document video other"`
}

type PresignUploadResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	FileKey   string `json:"file_key"`
}

// ConfirmUploadRequest records metadata after a successful direct
// upload through a presigned URL.
type ConfirmUploadRequest struct {
	ProjectID    uint    `json:"project_id" validate:"required"`
	FileName     string  `json:"file_name" validate:"required,max=255"`
	FileURL      string  `json:"file_url" validate:"required,url"`
	FileKey      string  `json:"file_key" validate:"required,max=600"`
	FileType     *string `json:"file_type" validate:"omitempty,max=100"`
	FileSize     *int64  `json:"file_size" validate:"omitempty,gte=0"`
	FileCategory string  `json:"file_category" validate:"omitempty,oneof=screenshot document video other"`
}
