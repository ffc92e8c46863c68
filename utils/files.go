package utils

import (
	"log"
	"os"
	"path/filepath"

	"dealersite/config"
)

// DeleteImage removes an uploaded file referenced by its relative path.
// A missing file or empty path is not an error; cleanup is best-effort.
func DeleteImage(relPath string) {
	if relPath == "" {
		return
	}
	full := filepath.Join(config.App.UploadPath, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Println("Failed to delete image:", full, err)
	}
}
