package handler

import (
	"github.com/labstack/echo/v4"

	"protegeo/internal/domain/service"
	"protegeo/pkg/errors"
	"protegeo/pkg/logger"
	"protegeo/pkg/response"
)

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

type FileHandler struct {
	fileService service.FileUploadService
	maxFileSize int64
}

func NewFileHandler(fileService service.FileUploadService, maxFileSize int64) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		maxFileSize: maxFileSize,
	}
}

var fileHandler *FileHandler

func SetupFileHandler(fileService service.FileUploadService, maxFileSize int64) {
	fileHandler = NewFileHandler(fileService, maxFileSize)
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

// UploadPhoto accepts a multipart photo and returns the public URL to embed
// in a report.
func (h *FileHandler) UploadPhoto(c echo.Context) error {
	userID := c.Get("uid").(string)

	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest("File exceeds the 5 MB limit", nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !allowedPhotoTypes[fileType] {
		return response.Error(c, errors.BadRequest("Only JPEG, PNG and GIF images are allowed", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	url, err := h.fileService.UploadFile(c.Request().Context(), src, fileType, "reports/"+userID)
	if err != nil {
		logger.Error("Photo upload failed for user %s: %v", userID, err)
		return response.Error(c, errors.Internal("Failed to upload photo", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}
