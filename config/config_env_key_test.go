package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access":  "x",
			"refresh": "y",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
		"auth": map[string]any{
			"bcryptCost":     12,
			"accessTokenTtl": "48h",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{name: "aligns camelCase parent", rawKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{name: "aligns camelCase leaf", rawKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{name: "aligns nested camelCase leaf", rawKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{name: "unknown keys pass through lowercased", rawKey: "HTTP_PORT", want: "http.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "secretkey", normalizeToken("secretKey"))
	assert.Equal(t, "bcryptcost", normalizeToken("BCRYPT_COST"))
	assert.Equal(t, "", normalizeToken("___"))
}

func TestConfigTTLDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, defaultAccessTokenTTL, cfg.AccessTTL())
	assert.Equal(t, defaultRefreshTokenTTL, cfg.RefreshTTL())

	cfg.Auth = &AuthConfig{AccessTokenTTL: defaultAccessTokenTTL / 2}
	assert.Equal(t, defaultAccessTokenTTL/2, cfg.AccessTTL())
	assert.Equal(t, defaultRefreshTokenTTL, cfg.RefreshTTL())
}
