package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, values map[string]any) string {
	t.Helper()
	data, err := yaml.Marshal(values)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "oxbmi.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
	assert.True(t, cfg.Interactive())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, map[string]any{
		"clear_screen": false,
		"format":       "JSON",
		"height":       175,
		"weight":       72,
	})

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.False(t, cfg.ClearScreen)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, uint16(175), cfg.Height)
	assert.Equal(t, uint16(72), cfg.Weight)
	assert.False(t, cfg.Interactive())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("OXBMI_FORMAT", "yaml")
	t.Setenv("OXBMI_HEIGHT", "180")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, uint16(180), cfg.Height)
	assert.True(t, cfg.Interactive())
}

func TestLoad_OverrideWins(t *testing.T) {
	path := writeConfig(t, map[string]any{"weight": 60})
	v := viper.New()
	v.Set("weight", 90)

	cfg, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, uint16(90), cfg.Weight)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(viper.New(), writeConfig(t, map[string]any{"format": "xml"}))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Load(viper.New(), writeConfig(t, map[string]any{"height": 70000}))
	assert.ErrorContains(t, err, "height must be between 0 and 65535")

	_, err = Load(viper.New(), writeConfig(t, map[string]any{"weight": -1}))
	assert.ErrorContains(t, err, "weight")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		format  string
		wantErr bool
	}{
		{FormatText, false},
		{FormatJSON, false},
		{FormatYAML, false},
		{"", true},
		{"csv", true},
	}
	for _, tc := range testCases {
		cfg := NewDefaultConfig()
		cfg.Format = tc.format
		err := cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("Validate() with format %q: err = %v, wantErr %v", tc.format, err, tc.wantErr)
		}
	}
}
