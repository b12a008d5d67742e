package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"streamhub/infrastructure/logger"
)

// stageFile writes the named multipart file into tempDir under a unique
// name and returns its path. Missing files return an empty path and no
// error; the caller decides whether the field is required.
func stageFile(c *gin.Context, field, tempDir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}

	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(tempDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

// removeStaged deletes a staged upload. Safe on the empty path.
func removeStaged(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.GetLogger().WithField("error", err).WithField("path", path).
			Warn("Error removing staged upload")
	}
}
