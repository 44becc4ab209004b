package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"canteen-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The signing key must resolve after LoadEnv, so a secret supplied only
// through .env is picked up instead of the hard-coded fallback.
func TestJWTSecretHonorsDotenv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".env"),
		[]byte("JWT_SECRET=from-dotenv\n"),
		0o600,
	))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	config.LoadEnv()
	assert.Equal(t, "from-dotenv", string(config.JWTSecret()))
}
