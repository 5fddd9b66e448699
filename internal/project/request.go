package project

import (
	"path/filepath"

	"github.com/dimi-r1/create-fb-react/internal/errors"
	"github.com/dimi-r1/create-fb-react/internal/logging"
	"github.com/dimi-r1/create-fb-react/internal/scaffold"
)

// Request is a single invocation's project: created up front, then either
// finalized or discarded.
type Request struct {
	// Name is the project name as given by the user
	Name string

	// Path is the absolute project directory
	Path string

	// Template is the --template value. No step reads it.
	Template string
}

// NewRequest validates name and joins it onto dir. The path is not
// resolved; Creator checks it with CheckTargetAbsent and ResolvePath.
func NewRequest(dir, name, template string) (*Request, error) {
	if err := ValidateName(name); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	path := filepath.Join(dir, name)

	if template != "" {
		logging.Debug("template option accepted but not used", "template", template)
	}

	return &Request{Name: name, Path: path, Template: template}, nil
}

// Target returns the step sequence's view of the request.
func (r *Request) Target() *scaffold.Target {
	return &scaffold.Target{Name: r.Name, Path: r.Path}
}
