package services

import (
	"fmt"

	"github.com/custodia-labs/vecdemo/internal/core/domain"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driven"
	"github.com/custodia-labs/vecdemo/internal/core/ports/driving"
	"github.com/custodia-labs/vecdemo/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputStyle = "output.style"
	keyLogVerbose  = "log.verbose"
)

// SettingsService reads demo settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current demo settings.
// Missing keys use defaults; an unrecognised style is logged and replaced by the default.
func (s *SettingsService) Get() (domain.DemoSettings, error) {
	defaults := domain.DefaultDemoSettings()

	return domain.DemoSettings{
		Style:   s.getStyle(defaults.Style),
		Verbose: s.getBool(keyLogVerbose, defaults.Verbose),
	}, nil
}

// Validate checks that the settings can be used to run the demo.
func (s *SettingsService) Validate(settings domain.DemoSettings) error {
	if !settings.Style.IsValid() {
		return fmt.Errorf("%w: render style %q", domain.ErrInvalidInput, settings.Style)
	}
	return nil
}

func (s *SettingsService) getStyle(defaultStyle domain.RenderStyle) domain.RenderStyle {
	raw := s.configStore.GetString(keyOutputStyle)
	if raw == "" {
		return defaultStyle
	}
	style := domain.RenderStyle(raw)
	if !style.IsValid() {
		logger.Warn("Ignoring %s=%q, using %q", keyOutputStyle, raw, defaultStyle)
		return defaultStyle
	}
	return style
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
