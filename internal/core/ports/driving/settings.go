package driving

import "github.com/custodia-labs/vecdemo/internal/core/domain"

// SettingsService reads and validates demo settings.
type SettingsService interface {
	// Get returns the current settings, falling back to defaults for missing
	// or unrecognised values.
	Get() (domain.DemoSettings, error)

	// Validate checks that every field of settings is usable.
	Validate(settings domain.DemoSettings) error
}
