package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Notifications(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Notifications.Enabled {
		t.Error("expected notifications enabled by default")
	}
	if !cfg.Notifications.Sound {
		t.Error("expected sound enabled by default")
	}
}

func TestDefaultThemeConfig_AllFieldsSet(t *testing.T) {
	theme := DefaultThemeConfig()

	assert.NotEmpty(t, theme.ColorWork)
	assert.NotEmpty(t, theme.ColorBreak)
	assert.NotEmpty(t, theme.ColorPaused)
	assert.NotEmpty(t, theme.ColorTitle)
	assert.NotEmpty(t, theme.ColorHelp)
	assert.NotEmpty(t, theme.WorkGradientStart)
	assert.NotEmpty(t, theme.WorkGradientEnd)
	assert.NotEmpty(t, theme.BreakGradientStart)
	assert.NotEmpty(t, theme.BreakGradientEnd)
	assert.NotEmpty(t, theme.PausedGradientStart)
	assert.NotEmpty(t, theme.PausedGradientEnd)
	assert.NotEmpty(t, theme.IconApp)
	assert.NotEmpty(t, theme.IconStats)
	assert.NotEmpty(t, theme.IconPaused)
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error: %v", err)
	}
	assert.Contains(t, path, ".pomo")
	assert.Contains(t, path, "config.toml")
}
