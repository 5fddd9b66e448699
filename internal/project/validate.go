package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/dimi-r1/create-fb-react/internal/errors"
	"github.com/dimi-r1/create-fb-react/internal/system"
)

// nameRegex matches project names: letters, digits, hyphens, and underscores.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateName checks if a project name is valid.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("Project name cannot be empty")
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("Project name can only contain letters, numbers, hyphens, and underscores")
	}

	return nil
}

// ResolvePath joins name onto dir and fails unless the lexical path is also
// where the filesystem would put it. Lexical escapes such as "../x" and
// symlinks anywhere below dir both count as resolving elsewhere.
func ResolvePath(dir, name string) (string, error) {
	path := filepath.Join(dir, name)

	resolved, err := securejoin.SecureJoin(dir, name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project path: %w", err)
	}
	if resolved != path {
		return "", fmt.Errorf("project path %s does not resolve inside %s", path, dir)
	}
	return path, nil
}

// CheckTargetAbsent fails if anything already exists at path, including a
// symlink whose target is missing. It never modifies the filesystem.
func CheckTargetAbsent(fs system.FileSystem, path, name string) error {
	if fs.Exists(path) {
		return errors.DirectoryExists(name)
	}
	return nil
}
