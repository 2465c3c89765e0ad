package service

import (
	"strings"
)

// ValidationError reports required fields left empty. It is raised before
// any remote call is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "Please fill in all required fields"
	}
	return "Please fill in all required fields: " + strings.Join(e.Fields, ", ")
}

// requiredFields collects the names of blank values, in declaration order
type requiredFields struct {
	missing []string
}

func (r *requiredFields) check(name, value string) {
	if strings.TrimSpace(value) == "" {
		r.missing = append(r.missing, name)
	}
}

func (r *requiredFields) err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return &ValidationError{Fields: r.missing}
}
