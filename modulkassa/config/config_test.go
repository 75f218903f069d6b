package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgigel/go-modulkassa/modulkassa/document"
)

// chdir changes the working directory for the duration of the test;
// testing.T.Chdir is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.TestMode)
	assert.Equal(t, document.DefaultShippingLabel, cfg.ShippingLabel)
	assert.Empty(t, cfg.Secret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MODULKASSA_SECRET", "s3cret")
	t.Setenv("MODULKASSA_VAT_TAG", "2")
	t.Setenv("MODULKASSA_TEST_MODE", "false")
	t.Setenv("MODULKASSA_RETAIL_POINT_ID", "rp-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, 2, cfg.VatTag)
	assert.False(t, cfg.TestMode)
	assert.Equal(t, "rp-1", cfg.RetailPointID)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := "secret: file-secret\nvat_tag: 1\nshipping_label: SHIPPING\nresponse_url: https://shop.example.com/response\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modulkassa.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.Secret)
	assert.Equal(t, 1, cfg.VatTag)
	assert.Equal(t, "SHIPPING", cfg.ShippingLabel)
	assert.Equal(t, "https://shop.example.com/response", cfg.ResponseURL)
}
