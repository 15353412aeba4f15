package constants

import (
	"path/filepath"
	"strings"
)

// DetectFileCategory maps a filename extension to a project file
// category. Used when an upload does not state one explicitly.
func DetectFileCategory(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".bmp":
		return "screenshot"
	case ".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx", ".txt", ".md":
		return "document"
	case ".mp4", ".mov", ".webm", ".avi", ".mkv":
		return "video"
	default:
		return "other"
	}
}
