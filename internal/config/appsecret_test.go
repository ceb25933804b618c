package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppSecretConfig(t *testing.T) {
	tests := []struct {
		name        string
		cost        string
		secret      string
		wantCost    int
		wantEnabled bool
		wantErr     bool
	}{
		{name: "defaults without secret", wantCost: 10},
		{name: "secret with default cost", secret: "s3cret", wantCost: 10, wantEnabled: true},
		{name: "custom cost", cost: "11", secret: "s3cret", wantCost: 11, wantEnabled: true},
		{name: "cost too low", cost: "4", wantErr: true},
		{name: "cost too high", cost: "15", wantErr: true},
		{name: "cost not a number", cost: "high", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			t.Setenv("ANDROID_APP_SECRET", tt.secret)

			cfg, err := NewAppSecretConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.wantEnabled, cfg.Enabled())
		})
	}
}

func TestAppSecretConfig_Verify(t *testing.T) {
	cfg := &AppSecretConfig{BcryptCost: 10}
	require.NoError(t, cfg.SetSecret("android-shared-secret"))

	assert.True(t, cfg.Verify("android-shared-secret"))
	assert.False(t, cfg.Verify("android-shared-secret "))
	assert.False(t, cfg.Verify("wrong"))
	assert.False(t, cfg.Verify(""))
}

func TestAppSecretConfig_Disabled(t *testing.T) {
	var nilCfg *AppSecretConfig
	assert.False(t, nilCfg.Enabled())
	assert.False(t, nilCfg.Verify("anything"))

	cfg := &AppSecretConfig{BcryptCost: 10}
	require.NoError(t, cfg.SetSecret("first"))
	require.NoError(t, cfg.SetSecret(""))
	assert.False(t, cfg.Enabled())
	assert.False(t, cfg.Verify("first"))
}

func TestAppSecretConfig_HashIsSalted(t *testing.T) {
	a := &AppSecretConfig{BcryptCost: 10}
	b := &AppSecretConfig{BcryptCost: 10}
	require.NoError(t, a.SetSecret("same"))
	require.NoError(t, b.SetSecret("same"))

	assert.NotEqual(t, a.hash, b.hash)
	assert.True(t, a.Verify("same"))
	assert.True(t, b.Verify("same"))
}
