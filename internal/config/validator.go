package config

import (
	"github.com/alexisbeaulieu97/boardtile/internal/validation"
	apperrors "github.com/alexisbeaulieu97/boardtile/pkg/errors"
)

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	return validation.Struct(cfg, "config")
}
