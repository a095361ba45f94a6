package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks that the merged configuration is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.GuidesDir, validation.Required),
		validation.Field(&c.OutputFormat, validation.In("auto", "text", "markdown", "json")),
		validation.Field(&c.Severity, validation.In("error", "warning", "info", "hint")),
		validation.Field(&c.Jobs, validation.Min(0)),
		validation.Field(&c.SeverityOverrides, validation.Each(validation.In("error", "warning", "info", "hint"))),
	); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
