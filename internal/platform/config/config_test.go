package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "4000", cfg.Port)
	assert.Empty(t, cfg.RedisAddr, "Redis stays disabled without REDIS_HOST")
	assert.Equal(t, 3, cfg.MinSenhaLen)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("MIN_SENHA_LEN", "8")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, 8, cfg.MinSenhaLen)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_UnparsableIntFallsBack(t *testing.T) {
	t.Setenv("MIN_SENHA_LEN", "not-a-number")

	cfg := Load()

	assert.Equal(t, 3, cfg.MinSenhaLen)
}
