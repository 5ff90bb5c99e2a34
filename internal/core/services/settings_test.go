package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecdemo/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vecdemo/internal/core/domain"
	"github.com/custodia-labs/vecdemo/internal/logger"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDemoSettings(), settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("output.style", "glm")
	_ = store.Set("log.verbose", true)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.RenderStyleGLM, settings.Style)
	assert.True(t, settings.Verbose)
}

func TestSettingsService_Get_InvalidStyleReturnsDefault(t *testing.T) {
	defer logger.Reset()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)

	store := memory.NewConfigStore()
	_ = store.Set("output.style", "fancy")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.RenderStyleBracket, settings.Style)
	assert.Contains(t, buf.String(), `[WARN] Ignoring output.style="fancy"`)
}

func TestSettingsService_Validate(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.NoError(t, service.Validate(domain.DefaultDemoSettings()))
	assert.NoError(t, service.Validate(domain.DemoSettings{Style: domain.RenderStyleGLM}))

	err := service.Validate(domain.DemoSettings{Style: "fancy"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), `"fancy"`)
}
