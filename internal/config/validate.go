package config

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents an Appfile validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the config for required fields and valid values.
// File-backed command specs must point to an existing regular file with
// the executable bit set; inline specs are only validated at run time.
func Validate(c *Config) error {
	var errors []string

	seen := make(map[string]bool, len(c.Apps))
	for i, app := range c.Apps {
		if err := validateApp(i, app, seen); err != nil {
			errors = append(errors, err.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func validateApp(index int, app App, seen map[string]bool) error {
	if app.Name == "" {
		return ValidationError{
			Field:   fmt.Sprintf("app[%d].name", index),
			Message: "name is required",
		}
	}

	if seen[app.Name] {
		return ValidationError{
			Field:   fmt.Sprintf("app[%d].name", index),
			Message: fmt.Sprintf("duplicate app name '%s'", app.Name),
		}
	}
	seen[app.Name] = true

	if err := app.Compare.Validate(); err != nil {
		return ValidationError{
			Field:   fmt.Sprintf("app[%d].compare", index),
			Message: err.Error(),
		}
	}

	for _, spec := range []struct {
		field string
		spec  CommandSpec
	}{
		{"local", app.Local},
		{"remote", app.Remote},
		{"update", app.Update},
	} {
		if err := validateCommandSpec(spec.spec); err != nil {
			return ValidationError{
				Field:   fmt.Sprintf("app[%d].%s", index, spec.field),
				Message: err.Error(),
			}
		}
	}

	return nil
}

func validateCommandSpec(spec CommandSpec) error {
	if spec.File == "" && spec.Inline == "" {
		return fmt.Errorf("either 'file' or 'inline' is required")
	}
	if spec.File != "" && spec.Inline != "" {
		return fmt.Errorf("'file' and 'inline' are mutually exclusive")
	}

	// Inline scripts are validated at runtime
	if spec.File == "" {
		return nil
	}

	info, err := os.Stat(spec.File)
	if err != nil {
		return fmt.Errorf("failed to stat script %s: %w", spec.File, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("script path %s is not a file", spec.File)
	}

	if info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("script %s is not executable (chmod +x)", spec.File)
	}

	return nil
}
