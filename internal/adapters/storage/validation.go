package storage

import (
	"fmt"
	"strings"
)

// AllowedContentTypes defines the MIME types accepted for appointment
// attachments: images and common document formats.
var AllowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,

	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	"text/csv":   true,
}

// ValidateContentType checks if the content type is allowed.
func (s *MinIOService) ValidateContentType(contentType string) error {
	// Strip any parameters like "; charset=utf-8"
	base := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if !AllowedContentTypes[base] {
		return fmt.Errorf("content type %q is not allowed", contentType)
	}
	return nil
}

// ValidateFileSize checks if the file size is within limits.
func (s *MinIOService) ValidateFileSize(sizeBytes int64) error {
	if sizeBytes <= 0 {
		return fmt.Errorf("file size must be positive")
	}
	if sizeBytes > s.maxFileSize {
		return fmt.Errorf("file size %d exceeds the maximum of %d bytes", sizeBytes, s.maxFileSize)
	}
	return nil
}
