package project

import (
	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/system"
)

// Cleanup removes a partially created project directory.
// It is best-effort: a failure is reported as a warning and never returned.
// It reports whether the directory was removed.
func Cleanup(fs system.FileSystem, path string) bool {
	if !fs.Exists(path) {
		logging.Debug("nothing to clean up", "path", path)
		return false
	}

	logging.Debug("removing incomplete project directory", "path", path)
	if err := fs.RemoveAll(path); err != nil {
		logging.Warn("failed to remove project directory", "path", path, "error", err)
		logging.UserWarning("Warning: Could not clean up project directory")
		return false
	}

	logging.UserNote("Cleaned up incomplete project directory")
	return true
}
