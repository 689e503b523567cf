package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("IMOJE_TOKEN", "")
	t.Setenv("ING_TOKEN", "")

	cfg, err := loadFromEnv(discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTPClient.Timeout)
	assert.Equal(t, "imoje", cfg.Imoje.Code)
	assert.Equal(t, "sandbox", cfg.Imoje.Environment)
	assert.Equal(t, "https://sandbox.api.imoje.pl/v1/merchant", cfg.Imoje.SandboxURL)
	assert.Equal(t, "https://api.imoje.pl/v1/merchant", cfg.Imoje.ProdURL)
	assert.Equal(t, "ing", cfg.Ing.Code)
	assert.False(t, cfg.Imoje.Gateway().Enabled())
}

func TestLoadFromEnv_Gateways(t *testing.T) {
	t.Setenv("IMOJE_TOKEN", "imoje-secret")
	t.Setenv("IMOJE_MERCHANT_ID", "M1")
	t.Setenv("IMOJE_ENVIRONMENT", "production")
	t.Setenv("ING_CODE", "ing_card")
	t.Setenv("ING_TOKEN", "ing-secret")
	t.Setenv("ING_MERCHANT_ID", "M2")
	t.Setenv("ING_SANDBOX_URL", "https://ing.sandbox.example")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")

	cfg, err := loadFromEnv(discardLogger())
	require.NoError(t, err)

	imoje := cfg.Imoje.Gateway()
	assert.True(t, imoje.Enabled())
	assert.Equal(t, "M1", imoje.MerchantID)
	assert.Equal(t, "production", imoje.Environment)

	ing := cfg.Ing.Gateway()
	assert.True(t, ing.Enabled())
	assert.Equal(t, "ing_card", ing.Code)
	assert.Equal(t, "https://ing.sandbox.example", ing.SandboxURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPClient.Timeout)
}

func TestLoadFromEnv_InvalidDuration(t *testing.T) {
	t.Setenv("HTTP_CLIENT_TIMEOUT", "soon")

	_, err := loadFromEnv(discardLogger())
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("IMOJE_MERCHANT_ID=FROMFILE\n"), 0o600))
	t.Setenv("IMOJE_MERCHANT_ID", "")
	require.NoError(t, os.Unsetenv("IMOJE_MERCHANT_ID"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FROMFILE", cfg.Imoje.MerchantID)
}

func TestFindEnvFile(t *testing.T) {
	_, err := FindEnvFile("definitely-not-here.env")
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	found, err := FindEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "", maskValue(""))
	assert.Equal(t, "****", maskValue("abc"))
	assert.Equal(t, "se****cret", maskValue("secret-secret"))
}

func TestGateway_Conversions(t *testing.T) {
	var nilImoje *Imoje
	assert.Nil(t, nilImoje.Gateway())
	assert.False(t, nilImoje.Gateway().Enabled())

	ing := &Ing{Code: "ing", Token: "t", MerchantID: "M"}
	assert.True(t, ing.Gateway().Enabled())
}
