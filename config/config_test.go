package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: develop
  serviceName: checkin
secretKey:
  establishment: est-secret
  visitor: vis-secret
auth:
  bcryptCost: 4
  sessionTTL: 72h
mail:
  provider: log
  from: noreply@example.com
rateLimit:
  redisAddr: ""
  requests: 5
  window: 10m
onboarding:
  reviewerEmails:
    - ops@example.com
`

func TestLoadWithEnv_YAMLWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_VISITOR", "from-env")
	t.Setenv("MAIL_PROVIDER", "mailersend")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, "est-secret", cfg.SecretKey.Establishment)
	assert.Equal(t, "from-env", cfg.SecretKey.Visitor)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 72*time.Hour, cfg.Auth.SessionTTL)
	require.NotNil(t, cfg.Mail)
	assert.Equal(t, "mailersend", cfg.Mail.Provider)
	require.NotNil(t, cfg.RateLimit)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.Window)
	require.NotNil(t, cfg.Onboarding)
	assert.Equal(t, []string{"ops@example.com"}, cfg.Onboarding.ReviewerEmails)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file absent.yaml not found")
}
