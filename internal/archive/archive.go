// Package archive moves finished lesson output out of the way.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArchiveLessons moves lessonsDir to archive/lessons-<timestamp> next to it
// and returns the new path.
func ArchiveLessons(lessonsDir string) (string, error) {
	info, err := os.Stat(lessonsDir)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("lessons directory does not exist: %s", lessonsDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat lessons directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", lessonsDir)
	}

	archiveDir := filepath.Join(filepath.Dir(lessonsDir), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	archivePath := uniquePath(archiveDir, "lessons-"+time.Now().Format("20060102-150405"))
	if err := os.Rename(lessonsDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive lessons directory: %w", err)
	}
	return archivePath, nil
}

// uniquePath returns dir/name, or dir/name.N for the first N not taken
func uniquePath(dir, name string) string {
	path := filepath.Join(dir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s.%d", name, i))
	}
}
